package compose

import "errors"

var (
	// ErrNoDraft indicates a draft operation was attempted while the
	// session is closed.
	ErrNoDraft = errors.New("no open draft")

	// ErrSendInProgress indicates a send was attempted while a previous
	// send is still outstanding.
	ErrSendInProgress = errors.New("send already in progress")
)
