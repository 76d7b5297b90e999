package attach

import "errors"

var (
	// ErrFetchFailed indicates at least one project file could not be
	// downloaded. Files fetched successfully in the same batch stay staged.
	ErrFetchFailed = errors.New("failed to fetch project file")

	// ErrIndexOutOfRange indicates a remove position outside the stage.
	ErrIndexOutOfRange = errors.New("attachment index out of range")
)
