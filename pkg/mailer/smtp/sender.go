package smtp

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/emersion/go-message/mail"
	"github.com/emersion/go-sasl"
	"github.com/emersion/go-smtp"

	"github.com/lingoffice/compose/pkg/mailer"
)

// Sender implements mailer.Sender over SMTP.
type Sender struct {
	config Config
	now    func() time.Time
}

// New creates a new SMTP sender for one mail account.
func New(cfg Config) *Sender {
	return &Sender{config: cfg, now: time.Now}
}

// Send implements mailer.Sender. The message is built as a MIME multipart
// (text + HTML alternative, then attachments) and handed to the server in
// one transaction; an error means the server accepted nothing.
func (s *Sender) Send(ctx context.Context, email *mailer.Email) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	raw, err := s.buildMessage(email)
	if err != nil {
		return fmt.Errorf("smtp: %w: %w", mailer.ErrSendFailed, err)
	}

	from := s.config.SenderEmail
	if email.From != "" {
		from = email.From
	}

	envelope := make([]string, 0, len(email.To)+len(email.CC)+len(email.BCC))
	envelope = append(envelope, email.To...)
	envelope = append(envelope, email.CC...)
	envelope = append(envelope, email.BCC...)

	if err := s.deliver(from, envelope, raw); err != nil {
		return fmt.Errorf("smtp: %w: %w", mailer.ErrSendFailed, err)
	}
	return nil
}

func (s *Sender) deliver(from string, rcpts []string, raw []byte) error {
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)

	var (
		client *smtp.Client
		err    error
	)
	switch s.config.Encryption {
	case "tls":
		client, err = smtp.DialTLS(addr, nil)
	case "none":
		client, err = smtp.Dial(addr)
	default:
		client, err = smtp.DialStartTLS(addr, nil)
	}
	if err != nil {
		return err
	}
	defer client.Close()

	if s.config.Username != "" {
		auth := sasl.NewPlainClient("", s.config.Username, s.config.Password)
		if err := client.Auth(auth); err != nil {
			return err
		}
	}

	if err := client.SendMail(from, rcpts, bytes.NewReader(raw)); err != nil {
		return err
	}
	return client.Quit()
}

// buildMessage assembles the RFC 5322 message. BCC recipients go on the
// envelope only, never into the headers.
func (s *Sender) buildMessage(email *mailer.Email) ([]byte, error) {
	var buf bytes.Buffer

	var h mail.Header
	h.SetDate(s.now())
	h.SetSubject(email.Subject)
	h.SetAddressList("From", []*mail.Address{{Name: s.config.SenderName, Address: s.fromAddress(email)}})
	h.SetAddressList("To", toAddresses(email.To))
	if len(email.CC) > 0 {
		h.SetAddressList("Cc", toAddresses(email.CC))
	}
	if email.ReplyTo != "" {
		h.SetAddressList("Reply-To", toAddresses([]string{email.ReplyTo}))
	}
	for k, v := range email.Headers {
		h.Set(k, v)
	}

	mw, err := mail.CreateWriter(&buf, h)
	if err != nil {
		return nil, err
	}

	tw, err := mw.CreateInline()
	if err != nil {
		return nil, err
	}
	if email.Text != "" {
		var th mail.InlineHeader
		th.SetContentType("text/plain", map[string]string{"charset": "utf-8"})
		w, err := tw.CreatePart(th)
		if err != nil {
			return nil, err
		}
		if _, err := io.WriteString(w, email.Text); err != nil {
			return nil, err
		}
		w.Close()
	}
	if email.HTML != "" {
		var hh mail.InlineHeader
		hh.SetContentType("text/html", map[string]string{"charset": "utf-8"})
		w, err := tw.CreatePart(hh)
		if err != nil {
			return nil, err
		}
		if _, err := io.WriteString(w, email.HTML); err != nil {
			return nil, err
		}
		w.Close()
	}
	tw.Close()

	for _, a := range email.Attachments {
		var ah mail.AttachmentHeader
		ah.SetContentType(a.ContentType, nil)
		ah.SetFilename(a.Filename)
		w, err := mw.CreateAttachment(ah)
		if err != nil {
			return nil, err
		}
		if _, err := w.Write(a.Content); err != nil {
			return nil, err
		}
		w.Close()
	}

	if err := mw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (s *Sender) fromAddress(email *mailer.Email) string {
	if email.From != "" {
		return email.From
	}
	return s.config.SenderEmail
}

func toAddresses(addrs []string) []*mail.Address {
	out := make([]*mail.Address, len(addrs))
	for i, a := range addrs {
		out[i] = &mail.Address{Address: a}
	}
	return out
}
