package suggest

import (
	"strings"

	"github.com/lingoffice/compose/pkg/directory"
)

// maxResults caps the number of entries a query returns.
const maxResults = 10

// Source identifies where a suggestion entry came from.
type Source int

const (
	SourceCustomer Source = iota
	SourceCustomerAlternate
	SourcePartner
)

// Entry is one suggested recipient.
type Entry struct {
	Label   string
	Address string
	Source  Source
}

// Index is the derived, read-only suggestion directory.
type Index struct {
	entries []Entry
}

// BuildIndex derives the suggestion directory from the current customer and
// partner lists. Entries are deduplicated by address, case-insensitively;
// the first occurrence wins, customers before partners.
func BuildIndex(customers []directory.Customer, partners []directory.Partner) *Index {
	idx := &Index{}
	seen := make(map[string]struct{})

	add := func(label, address string, source Source) {
		address = strings.TrimSpace(address)
		if address == "" {
			return
		}
		key := strings.ToLower(address)
		if _, dup := seen[key]; dup {
			return
		}
		seen[key] = struct{}{}
		idx.entries = append(idx.entries, Entry{Label: label, Address: address, Source: source})
	}

	for _, c := range customers {
		add(c.DisplayName(), c.Email, SourceCustomer)
		add(c.DisplayName(), c.AlternateEmail, SourceCustomerAlternate)
	}
	for _, p := range partners {
		add(p.DisplayName(), p.Email, SourcePartner)
	}

	return idx
}

// Len returns the number of indexed entries.
func (idx *Index) Len() int { return len(idx.entries) }

// Query returns up to ten entries whose label or address contains text,
// case-insensitively, in index order. An empty text matches everything.
func (idx *Index) Query(text string) []Entry {
	text = strings.ToLower(strings.TrimSpace(text))

	var out []Entry
	for _, e := range idx.entries {
		if text == "" ||
			strings.Contains(strings.ToLower(e.Label), text) ||
			strings.Contains(strings.ToLower(e.Address), text) {
			out = append(out, e)
			if len(out) == maxResults {
				break
			}
		}
	}
	return out
}
