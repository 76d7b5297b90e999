// Package placeholder rewrites message text containing tokens.
//
// Two bracket dialects are accepted interchangeably in the same body,
// {key} and {{key}}; both forms survive in saved templates, so Render
// must keep supporting both. Render replaces every occurrence of every
// known token in a single left-to-right pass; substituted values are
// never re-scanned, and brace text that is not a known token is left
// untouched. Rendering never fails.
//
// ToggleInsert implements the token picker's click-to-toggle behavior:
// clicking a token inserts it at the caret, clicking it again removes the
// first occurrence along with one adjacent leading whitespace character.
package placeholder
