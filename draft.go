package compose

import (
	"time"

	"github.com/lingoffice/compose/pkg/attach"
)

// Origin records how a draft was seeded. It determines the initial
// recipient, subject and body but not the draft's later editability.
type Origin int

const (
	OriginBlank Origin = iota
	OriginReply
	OriginForward
)

// String implements fmt.Stringer.
func (o Origin) String() string {
	switch o {
	case OriginReply:
		return "reply"
	case OriginForward:
		return "forward"
	default:
		return "blank"
	}
}

// SourceMessage is the received message a reply or forward starts from.
type SourceMessage struct {
	From    string // sender address
	Name    string // sender display name, may be empty
	Subject string
	Body    string // HTML body
	Date    time.Time
}

// Sender returns the display form of the original sender.
func (m SourceMessage) Sender() string {
	if m.Name != "" {
		return m.Name
	}
	return m.From
}

// Draft is the in-progress message. It exists only inside an open
// session and is never persisted.
type Draft struct {
	ID               string
	Recipient        string
	Subject          string
	Body             string // HTML from the rich-text editor
	Attachments      *attach.Stage
	LinkedProjectID  string
	LinkedCustomerID string
	PreviewMode      bool
	Origin           Origin
}
