package token_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lingoffice/compose/pkg/token"
)

func TestAll_CategoryOrderAndUniqueKeys(t *testing.T) {
	t.Parallel()

	all := token.All()
	require.Len(t, all, 38)

	seen := make(map[string]struct{}, len(all))
	lastCategory := token.CategoryCustomer
	for _, tok := range all {
		_, dup := seen[tok.Key]
		require.False(t, dup, "duplicate key %q", tok.Key)
		seen[tok.Key] = struct{}{}

		require.GreaterOrEqual(t, int(tok.Category), int(lastCategory), "catalog must be grouped by category order")
		lastCategory = tok.Category
	}
}

func TestFilter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		query    string
		contains []string
		empty    bool
	}{
		{name: "empty query returns all", query: "", contains: []string{"customer_name", "sender_name"}},
		{name: "matches key substring", query: "iban", contains: []string{"bank_iban"}},
		{name: "case insensitive label match", query: "KUNDE", contains: []string{"customer_name", "customer_email"}},
		{name: "matches description", query: "Postleitzahl", contains: []string{"customer_zip"}},
		{name: "no match yields empty slice", query: "zzz-no-such-token", empty: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := token.Filter(tt.query)
			if tt.empty {
				require.Empty(t, got)
				return
			}
			keys := make(map[string]struct{}, len(got))
			for _, tok := range got {
				keys[tok.Key] = struct{}{}
			}
			for _, want := range tt.contains {
				require.Contains(t, keys, want)
			}
		})
	}
}

func TestFilter_MergesAcrossCategories(t *testing.T) {
	t.Parallel()

	// "email" appears in customer, partner, and company tokens.
	got := token.Filter("email")
	categories := make(map[token.Category]struct{})
	for _, tok := range got {
		require.True(t, strings.Contains(strings.ToLower(tok.Key), "email") ||
			strings.Contains(strings.ToLower(tok.Label), "email") ||
			strings.Contains(strings.ToLower(tok.Description), "email"))
		categories[tok.Category] = struct{}{}
	}
	require.GreaterOrEqual(t, len(categories), 3)
}

func TestLookup(t *testing.T) {
	t.Parallel()

	tok, ok := token.Lookup("price_net")
	require.True(t, ok)
	require.Equal(t, token.CategoryFinance, tok.Category)

	_, ok = token.Lookup("nope")
	require.False(t, ok)
}

func TestByCategory(t *testing.T) {
	t.Parallel()

	partners := token.ByCategory(token.CategoryPartner)
	require.Len(t, partners, 2)
	require.Equal(t, "partner_name", partners[0].Key)
	require.Equal(t, "partner_email", partners[1].Key)
}
