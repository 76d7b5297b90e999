package locale

import "golang.org/x/text/language"

// DeDE returns a Format configured for German (de-DE).
func DeDE() *Format {
	return New(
		WithDecimalSeparator(","),
		WithThousandSeparator("."),
		WithCurrencySymbol("€"),
		WithCurrencyPosition(SymbolAfter),
		WithDateLayout("02.01.2006"),
		WithDateTimeLayout("02.01.2006 15:04"),
	)
}

// EnUS returns a Format configured for US English (en-US).
func EnUS() *Format {
	return New()
}

// EnGB returns a Format configured for British English (en-GB).
func EnGB() *Format {
	return New(
		WithCurrencySymbol("£"),
		WithDateLayout("02/01/2006"),
		WithDateTimeLayout("02/01/2006 15:04"),
	)
}

// supported lists the tags Match can resolve, in matcher priority order.
// German first: it is the product's primary locale.
var supported = []language.Tag{
	language.German,
	language.AmericanEnglish,
	language.BritishEnglish,
}

var matcher = language.NewMatcher(supported)

// Match resolves a BCP 47 language tag (e.g. "de-AT", "en") to the closest
// predefined Format. Unknown or empty tags fall back to German.
func Match(tag string) *Format {
	t, err := language.Parse(tag)
	if err != nil {
		return DeDE()
	}

	_, idx, _ := matcher.Match(t)
	switch supported[idx] {
	case language.AmericanEnglish:
		return EnUS()
	case language.BritishEnglish:
		return EnGB()
	default:
		return DeDE()
	}
}
