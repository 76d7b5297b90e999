package compose

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/lingoffice/compose/pkg/attach"
	"github.com/lingoffice/compose/pkg/directory"
	"github.com/lingoffice/compose/pkg/locale"
	"github.com/lingoffice/compose/pkg/logger"
	"github.com/lingoffice/compose/pkg/mailer"
	"github.com/lingoffice/compose/pkg/placeholder"
	"github.com/lingoffice/compose/pkg/resolver"
	"github.com/lingoffice/compose/pkg/sanitizer"
	"github.com/lingoffice/compose/pkg/template"
)

// Session is the single-draft compose state machine. All mutations go
// through its methods; the mutex is held across every synchronous
// command and released at the two await points (attachment fetch and
// send), so the draft stays editable while either call is in flight.
type Session struct {
	mu       sync.Mutex
	draft    *Draft
	gen      uint64 // bumped on every open/close, outdates in-flight results
	sending  bool
	logger   *slog.Logger
	resolver *resolver.Resolver
	projects directory.ProjectDirectory
	fetcher  directory.FileFetcher
	accounts *mailer.Accounts
	format   *locale.Format
	now      func() time.Time
}

// New creates a closed session.
func New(opts ...Option) *Session {
	s := &Session{
		logger:   logger.Discard(),
		resolver: resolver.New(nil, nil),
		accounts: mailer.NewAccounts(),
		format:   locale.DeDE(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// OpenBlank starts a new empty draft, replacing any open one.
func (s *Session) OpenBlank() Draft {
	return s.open(Draft{Origin: OriginBlank})
}

// OpenReply starts a draft answering src. The recipient is the original
// sender, the subject gets the "Re: " prefix and the body embeds the
// sanitized original below a German quote line.
func (s *Session) OpenReply(src SourceMessage) Draft {
	body := fmt.Sprintf("<br/><br/>--- Am %s schrieb %s:<br/><blockquote>%s</blockquote>",
		s.format.DateTime(src.Date), src.Sender(), sanitizer.Body(src.Body))
	return s.open(Draft{
		Origin:    OriginReply,
		Recipient: src.From,
		Subject:   "Re: " + src.Subject,
		Body:      body,
	})
}

// OpenForward starts a draft forwarding src. The recipient is left
// empty for the user to fill in.
func (s *Session) OpenForward(src SourceMessage) Draft {
	body := fmt.Sprintf("<br/><br/>--- Weitergeleitete Nachricht ---<br/>Von: %s<br/>Datum: %s<br/>Betreff: %s<br/><br/>%s",
		src.Sender(), s.format.DateTime(src.Date), src.Subject, sanitizer.Body(src.Body))
	return s.open(Draft{
		Origin:  OriginForward,
		Subject: "Fwd: " + src.Subject,
		Body:    body,
	})
}

func (s *Session) open(d Draft) Draft {
	s.mu.Lock()
	defer s.mu.Unlock()

	d.ID = uuid.NewString()
	d.Attachments = attach.NewStage()
	s.draft = &d
	s.gen++
	s.logger.Debug("draft opened",
		slog.String("draft_id", d.ID),
		slog.String("origin", d.Origin.String()))
	return d
}

// Draft returns a snapshot of the open draft. The attachment stage is
// shared, not copied; it is safe for concurrent use.
func (s *Session) Draft() (Draft, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.draft == nil {
		return Draft{}, false
	}
	return *s.draft, true
}

// SetRecipient updates the recipient line.
func (s *Session) SetRecipient(addr string) error {
	return s.update(func(d *Draft) { d.Recipient = addr })
}

// SetSubject updates the subject line.
func (s *Session) SetSubject(subject string) error {
	return s.update(func(d *Draft) { d.Subject = subject })
}

// SetBody replaces the draft body with the editor's current HTML.
func (s *Session) SetBody(body string) error {
	return s.update(func(d *Draft) { d.Body = body })
}

// ToggleToken inserts the token's placeholder at the caret or removes
// its first occurrence. Reports whether the placeholder is present
// after the call.
func (s *Session) ToggleToken(key string, caret int) (bool, error) {
	var present bool
	err := s.update(func(d *Draft) {
		d.Body, present = placeholder.ToggleInsert(d.Body, key, caret)
	})
	return present, err
}

// ApplyTemplate overwrites subject and body with the template's.
// Recipient, attachments and project link are untouched; applying a
// template is a content replacement, not a session reset.
func (s *Session) ApplyTemplate(tpl template.Template) error {
	return s.update(func(d *Draft) {
		d.Subject = tpl.Subject
		d.Body = tpl.Body
	})
}

// LinkProject links the draft to a project. When the project can be
// loaded, the customer link follows it, and an empty recipient or
// subject is auto-filled from the project's customer and number. An
// empty id clears the project link without touching other fields.
// Lookup failures only skip the auto-fill; the link itself is kept.
func (s *Session) LinkProject(ctx context.Context, projectID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.draft == nil {
		return ErrNoDraft
	}

	if projectID == "" {
		s.draft.LinkedProjectID = ""
		return nil
	}
	s.draft.LinkedProjectID = projectID

	if s.projects == nil {
		return nil
	}
	p, err := s.projects.ProjectByID(ctx, projectID)
	if err != nil {
		s.logger.Warn("project lookup failed",
			slog.String("project_id", projectID),
			slog.String("error", err.Error()))
		return nil
	}

	if p.Customer != nil {
		s.draft.LinkedCustomerID = p.Customer.ID
		if s.draft.Recipient == "" {
			s.draft.Recipient = p.Customer.Email
		}
	}
	if s.draft.Subject == "" {
		number := p.Number
		if number == "" {
			number = "PRJ-" + p.ID
		}
		s.draft.Subject = "Projekt " + number
	}
	return nil
}

// LinkCustomer links the draft to a customer without a project.
func (s *Session) LinkCustomer(customerID string) error {
	return s.update(func(d *Draft) { d.LinkedCustomerID = customerID })
}

// TogglePreview flips between editing and previewing. The stored body
// is never mutated by previewing; use Preview to get the rendered form.
func (s *Session) TogglePreview() (bool, error) {
	var preview bool
	err := s.update(func(d *Draft) {
		d.PreviewMode = !d.PreviewMode
		preview = d.PreviewMode
	})
	return preview, err
}

// Preview renders the draft body with the resolved context of the
// linked project or customer. Display only; the draft is unchanged.
func (s *Session) Preview(ctx context.Context) (string, error) {
	s.mu.Lock()
	if s.draft == nil {
		s.mu.Unlock()
		return "", ErrNoDraft
	}
	body := s.draft.Body
	projectID := s.draft.LinkedProjectID
	customerID := s.draft.LinkedCustomerID
	s.mu.Unlock()

	values := s.resolver.Resolve(ctx, projectID, customerID)
	return placeholder.Render(body, values), nil
}

// AttachLocal stages locally picked files. Same-named local picks are
// allowed on purpose.
func (s *Session) AttachLocal(files ...attach.File) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.draft == nil {
		return ErrNoDraft
	}
	s.draft.Attachments.Add(files...)
	return nil
}

// AttachProjectFiles downloads the given project files and stages them,
// skipping names that are already staged. The session stays editable
// while the download runs; if the draft is closed or replaced in the
// meantime the late result is dropped.
func (s *Session) AttachProjectFiles(ctx context.Context, projectID string, files []directory.ProjectFile) (attach.ProjectAddResult, error) {
	s.mu.Lock()
	if s.draft == nil {
		s.mu.Unlock()
		return attach.ProjectAddResult{}, ErrNoDraft
	}
	stage := s.draft.Attachments
	gen := s.gen
	fetcher := s.fetcher
	s.mu.Unlock()

	res, err := stage.AddFromProject(ctx, fetcher, projectID, files)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gen != gen {
		s.logger.Debug("dropping stale attachment batch",
			slog.String("project_id", projectID))
		return attach.ProjectAddResult{}, nil
	}
	if err != nil {
		s.logger.Warn("attachment batch finished with failures",
			slog.String("project_id", projectID),
			slog.String("error", err.Error()))
	}
	return res, err
}

// RemoveAttachment removes the staged file at index i.
func (s *Session) RemoveAttachment(i int) (attach.StagedFile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.draft == nil {
		return attach.StagedFile{}, ErrNoDraft
	}
	return s.draft.Attachments.Remove(i)
}

// Send validates the draft, hands it to the account's sender and on
// success closes the session. Validation failures and delivery errors
// leave the draft intact so the user can edit and retry. A second Send
// while one is outstanding is refused.
func (s *Session) Send(ctx context.Context, accountID string) error {
	s.mu.Lock()
	if s.draft == nil {
		s.mu.Unlock()
		return ErrNoDraft
	}
	if s.sending {
		s.mu.Unlock()
		return ErrSendInProgress
	}
	d := *s.draft
	if d.Recipient == "" {
		s.mu.Unlock()
		return mailer.ErrNoRecipient
	}
	if d.Subject == "" {
		s.mu.Unlock()
		return mailer.ErrNoSubject
	}
	sender, err := s.accounts.SenderFor(accountID)
	if err != nil {
		s.mu.Unlock()
		return err
	}
	s.sending = true
	gen := s.gen
	s.mu.Unlock()

	email := buildEmail(d)
	sendCtx := logger.ContextWithDraftID(ctx, d.ID)
	sendErr := sender.Send(sendCtx, email)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sending = false
	if sendErr != nil {
		s.logger.ErrorContext(sendCtx, "send failed",
			slog.String("account_id", accountID),
			slog.String("error", sendErr.Error()))
		return sendErr
	}
	s.logger.InfoContext(sendCtx, "message sent",
		slog.String("account_id", accountID),
		slog.String("recipient", d.Recipient),
		slog.Int("attachments", len(email.Attachments)))
	if s.gen == gen {
		s.draft = nil
		s.gen++
	}
	return nil
}

// buildEmail packages a draft for the mail provider. The HTML body is
// accompanied by a plain text alternative; the project link rides along
// as a header for the receiving back office.
func buildEmail(d Draft) *mailer.Email {
	email := &mailer.Email{
		Subject: d.Subject,
		HTML:    d.Body,
		Text:    sanitizer.PlainText(d.Body),
		To:      []string{d.Recipient},
	}
	if d.LinkedProjectID != "" {
		email.Headers = map[string]string{"X-Project-Ref": d.LinkedProjectID}
	}
	for _, f := range d.Attachments.Files() {
		email.Attachments = append(email.Attachments, mailer.Attachment{
			Filename:    f.Name,
			ContentType: attach.ContentType(f),
			Content:     f.Content,
		})
	}
	return email
}

// Discard drops the draft and closes the session.
func (s *Session) Discard() {
	s.close("draft discarded")
}

// Close closes the session from any state. Pending attachment fetches
// finish against the dropped stage and their results are ignored.
func (s *Session) Close() {
	s.close("session closed")
}

func (s *Session) close(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.draft == nil {
		return
	}
	s.logger.Debug(msg, slog.String("draft_id", s.draft.ID))
	s.draft = nil
	s.gen++
}

func (s *Session) update(fn func(*Draft)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.draft == nil {
		return ErrNoDraft
	}
	fn(s.draft)
	return nil
}
