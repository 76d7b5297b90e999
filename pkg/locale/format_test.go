package locale_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/lingoffice/compose/pkg/locale"
)

func TestFormat_Currency(t *testing.T) {
	t.Parallel()

	de := locale.DeDE()
	us := locale.EnUS()

	tests := []struct {
		name   string
		format *locale.Format
		amount float64
		want   string
	}{
		{name: "german whole amount", format: de, amount: 450, want: "450,00 €"},
		{name: "german fraction", format: de, amount: 535.5, want: "535,50 €"},
		{name: "german thousands", format: de, amount: 12345.67, want: "12.345,67 €"},
		{name: "german negative", format: de, amount: -99.9, want: "-99,90 €"},
		{name: "us symbol before", format: us, amount: 1234.5, want: "$1,234.50"},
		{name: "zero", format: de, amount: 0, want: "0,00 €"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, tt.format.Currency(tt.amount))
		})
	}
}

func TestFormat_Dates(t *testing.T) {
	t.Parallel()

	ts := time.Date(2024, 3, 15, 14, 30, 0, 0, time.UTC)

	require.Equal(t, "15.03.2024", locale.DeDE().Date(ts))
	require.Equal(t, "15.03.2024 14:30", locale.DeDE().DateTime(ts))
	require.Equal(t, "03/15/2024", locale.EnUS().Date(ts))
	require.Equal(t, "15/03/2024", locale.EnGB().Date(ts))
}

func TestFormat_Number(t *testing.T) {
	t.Parallel()

	require.Equal(t, "1.000,00", locale.DeDE().Number(1000))
	require.Equal(t, "0,19", locale.DeDE().Number(0.19))
}

func TestMatch(t *testing.T) {
	t.Parallel()

	ts := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		tag  string
		want string
	}{
		{tag: "de", want: "02.01.2024"},
		{tag: "de-AT", want: "02.01.2024"},
		{tag: "en-US", want: "01/02/2024"},
		{tag: "en-GB", want: "02/01/2024"},
		{tag: "", want: "02.01.2024"},
		{tag: "not-a-tag!", want: "02.01.2024"},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, locale.Match(tt.tag).Date(ts), "tag %q", tt.tag)
	}
}
