package compose

import (
	"log/slog"
	"time"

	"github.com/lingoffice/compose/pkg/directory"
	"github.com/lingoffice/compose/pkg/locale"
	"github.com/lingoffice/compose/pkg/mailer"
	"github.com/lingoffice/compose/pkg/resolver"
)

// Option configures the session.
type Option func(*Session)

// WithLogger sets the session logger.
// If nil, logging is disabled.
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithResolver sets the context resolver used for previews.
// Defaults to a resolver without directories, so previews render demo
// data only.
func WithResolver(r *resolver.Resolver) Option {
	return func(s *Session) {
		if r != nil {
			s.resolver = r
		}
	}
}

// WithProjects sets the project directory used by LinkProject to
// auto-fill the recipient and subject.
func WithProjects(p directory.ProjectDirectory) Option {
	return func(s *Session) {
		if p != nil {
			s.projects = p
		}
	}
}

// WithFetcher sets the file-download collaborator for staging project
// attachments.
func WithFetcher(f directory.FileFetcher) Option {
	return func(s *Session) {
		if f != nil {
			s.fetcher = f
		}
	}
}

// WithAccounts sets the registry of mail accounts Send goes through.
func WithAccounts(a *mailer.Accounts) Option {
	return func(s *Session) {
		if a != nil {
			s.accounts = a
		}
	}
}

// WithFormat sets the locale used for dates in reply and forward
// skeletons. Defaults to de-DE.
func WithFormat(f *locale.Format) Option {
	return func(s *Session) {
		if f != nil {
			s.format = f
		}
	}
}

// WithClock overrides the time source. Intended for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Session) {
		if now != nil {
			s.now = now
		}
	}
}
