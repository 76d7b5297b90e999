package suggest

// Navigator tracks the highlighted entry of one open suggestion list.
// The zero value is a closed list. Navigator is not safe for concurrent
// use; it belongs to a single compose panel.
type Navigator struct {
	results   []Entry
	highlight int
	open      bool
}

// SetResults replaces the current result set (after every keystroke) and
// resets the highlight to the first entry. An empty result set closes the
// list.
func (n *Navigator) SetResults(results []Entry) {
	n.results = results
	n.highlight = 0
	n.open = len(results) > 0
}

// Open reports whether a suggestion list is currently showing.
func (n *Navigator) Open() bool { return n.open }

// Highlighted returns the currently highlighted entry.
func (n *Navigator) Highlighted() (Entry, bool) {
	if !n.open {
		return Entry{}, false
	}
	return n.results[n.highlight], true
}

// Next moves the highlight forward, wrapping around at the end.
func (n *Navigator) Next() {
	if n.open {
		n.highlight = (n.highlight + 1) % len(n.results)
	}
}

// Prev moves the highlight backward, wrapping around at the start.
func (n *Navigator) Prev() {
	if n.open {
		n.highlight = (n.highlight - 1 + len(n.results)) % len(n.results)
	}
}

// Accept commits the highlighted entry's address and closes the list.
// It returns false if no list is open.
func (n *Navigator) Accept() (string, bool) {
	e, ok := n.Highlighted()
	if !ok {
		return "", false
	}
	n.Dismiss()
	return e.Address, true
}

// Dismiss closes the list without committing anything.
func (n *Navigator) Dismiss() {
	n.results = nil
	n.highlight = 0
	n.open = false
}
