package placeholder

import "strings"

// Render replaces every {key} and {{key}} occurrence whose key is present
// in values. The body is scanned once from left to right, so a substituted
// value is never reinterpreted as containing a token. Brace text that does
// not match a known key stays literal.
func Render(body string, values map[string]string) string {
	if len(values) == 0 || !strings.ContainsRune(body, '{') {
		return body
	}

	var b strings.Builder
	b.Grow(len(body))

	i := 0
	for i < len(body) {
		if body[i] != '{' {
			b.WriteByte(body[i])
			i++
			continue
		}

		// Prefer the {{key}} dialect when both braces are present.
		if strings.HasPrefix(body[i:], "{{") {
			if key, next, ok := matchToken(body, i+2, "}}"); ok {
				if v, found := values[key]; found {
					b.WriteString(v)
					i = next
					continue
				}
			}
		}
		if key, next, ok := matchToken(body, i+1, "}"); ok {
			if v, found := values[key]; found {
				b.WriteString(v)
				i = next
				continue
			}
		}

		// Not a token: emit the brace literally and keep scanning. This also
		// lets a malformed {{key} fall back to its inner {key} form.
		b.WriteByte('{')
		i++
	}

	return b.String()
}

// matchToken reads a candidate key starting at start and the expected
// closing braces. It returns the key and the scan position after the
// closing braces.
func matchToken(body string, start int, closing string) (key string, next int, ok bool) {
	end := strings.Index(body[start:], closing)
	if end < 0 {
		return "", 0, false
	}
	key = body[start : start+end]
	if key == "" || strings.ContainsAny(key, "{} \t\n") {
		return "", 0, false
	}
	return key, start + end + len(closing), true
}

// ToggleInsert inserts or removes the token at key. If either spelling of
// the token occurs in body, the first occurrence is removed together with
// one directly preceding whitespace character, and present is false.
// Otherwise " {{key}}" is inserted at the byte offset caret (a negative
// caret appends) and present is true. Applying the result to ToggleInsert
// again restores the original body.
func ToggleInsert(body, key string, caret int) (newBody string, present bool) {
	for _, form := range []string{"{{" + key + "}}", "{" + key + "}"} {
		idx := strings.Index(body, form)
		if idx < 0 {
			continue
		}
		start := idx
		if start > 0 && isSpace(body[start-1]) {
			start--
		}
		return body[:start] + body[idx+len(form):], false
	}

	insert := " {{" + key + "}}"
	if caret < 0 || caret > len(body) {
		caret = len(body)
	}
	return body[:caret] + insert + body[caret:], true
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}
