// Package attach manages the ordered collection of pending attachments of
// one message draft.
//
// Files enter the stage from three sources: local file picks, drag-and-drop
// (both via Add, never deduplicated; the user may deliberately attach
// same-named files from disk), and remote project files (via
// AddFromProject, which fetches bytes through the FileFetcher collaborator
// and refuses files whose name is already staged, reporting them back so
// the UI can show an "already attached" state).
//
// Same name means same file for project sourcing. That is a deliberate
// product-level simplification, not a bug.
//
// The stage places no size cap; TotalSize exposes the running byte count
// for the caller to enforce transfer limits.
package attach
