// Package locale provides locale-specific formatting for dates and money.
//
// A Format is immutable after creation and safe for concurrent use. The
// back office targets German customers, so DeDE is the default used by the
// context resolver, but any locale can be assembled via options:
//
//	f := locale.New(
//		locale.WithDecimalSeparator(","),
//		locale.WithCurrencySymbol("€"),
//		locale.WithCurrencyPosition(locale.SymbolAfter),
//	)
//	f.Currency(450) // "450,00 €"
//
// Match resolves a BCP 47 tag (e.g. from an Accept-Language value) to the
// closest predefined Format.
package locale
