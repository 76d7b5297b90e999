package template

import "errors"

var (
	// ErrNotFound indicates no template with the requested name exists.
	ErrNotFound = errors.New("template not found")

	// ErrInvalidFrontmatter indicates malformed YAML frontmatter.
	ErrInvalidFrontmatter = errors.New("invalid template frontmatter")

	// ErrRenderFailed indicates the markdown body could not be converted.
	ErrRenderFailed = errors.New("failed to render template body")

	// ErrDuplicateName indicates two template files resolve to the same name.
	ErrDuplicateName = errors.New("duplicate template name")
)
