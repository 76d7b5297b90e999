package token

import "strings"

// Category groups tokens for presentation. The zero value is CategoryCustomer;
// categories are listed in their fixed display order.
type Category int

const (
	CategoryCustomer Category = iota
	CategoryProject
	CategoryFinance
	CategoryPartner
	CategoryCompany
	CategoryGeneral
)

// String returns the human-readable category name.
func (c Category) String() string {
	switch c {
	case CategoryCustomer:
		return "Kunde"
	case CategoryProject:
		return "Projekt"
	case CategoryFinance:
		return "Finanzen"
	case CategoryPartner:
		return "Partner"
	case CategoryCompany:
		return "Unternehmen"
	case CategoryGeneral:
		return "Allgemein"
	default:
		return "Unbekannt"
	}
}

// Categories returns all categories in display order.
func Categories() []Category {
	return []Category{
		CategoryCustomer,
		CategoryProject,
		CategoryFinance,
		CategoryPartner,
		CategoryCompany,
		CategoryGeneral,
	}
}

// Token is a named placeholder. Key is the stable identifier used inside
// message bodies as {key} or {{key}}; Label and Description are for the
// token picker UI.
type Token struct {
	Key         string
	Label       string
	Description string
	Category    Category
}

// catalog is the full token list, ordered by category. Keys are part of the
// template compatibility contract and must not be renamed.
var catalog = []Token{
	// Kunde
	{"customer_name", "Kundenname", "Firmenname oder Vor- und Nachname des Kunden", CategoryCustomer},
	{"contact_person", "Ansprechpartner", "Ansprechpartner beim Kunden", CategoryCustomer},
	{"customer_email", "Kunden-E-Mail", "E-Mail-Adresse des Kunden", CategoryCustomer},
	{"customer_phone", "Kunden-Telefon", "Telefonnummer des Kunden", CategoryCustomer},
	{"customer_address", "Kundenadresse", "Straße und Hausnummer des Kunden", CategoryCustomer},
	{"customer_city", "Kunden-Ort", "Stadt des Kunden", CategoryCustomer},
	{"customer_zip", "Kunden-PLZ", "Postleitzahl des Kunden", CategoryCustomer},

	// Projekt
	{"project_number", "Projektnummer", "Eindeutige Projektnummer", CategoryProject},
	{"project_name", "Projektname", "Bezeichnung des Projekts", CategoryProject},
	{"project_status", "Projektstatus", "Aktueller Status des Projekts", CategoryProject},
	{"source_language", "Ausgangssprache", "Sprache des Ausgangstextes", CategoryProject},
	{"target_language", "Zielsprache", "Sprache des Zieltextes", CategoryProject},
	{"project_languages", "Sprachkombination", "Ausgangs- und Zielsprache als Paar", CategoryProject},
	{"deadline", "Liefertermin", "Abgabetermin des Projekts", CategoryProject},
	{"document_type", "Dokumententyp", "Art des Dokuments (Vertrag, Urkunde, ...)", CategoryProject},
	{"priority", "Priorität", "Dringlichkeit des Projekts", CategoryProject},

	// Finanzen
	{"price_net", "Preis (Netto)", "Nettobetrag des Projekts", CategoryFinance},
	{"price_gross", "Preis (Brutto)", "Bruttobetrag inkl. MwSt.", CategoryFinance},
	{"payment_terms", "Zahlungsziel", "Zahlungsziel in Tagen", CategoryFinance},
	{"invoice_number", "Rechnungsnummer", "Nummer der ersten Projektrechnung", CategoryFinance},
	{"invoice_date", "Rechnungsdatum", "Datum der ersten Projektrechnung", CategoryFinance},
	{"due_date", "Fälligkeitsdatum", "Fälligkeit der ersten Projektrechnung", CategoryFinance},

	// Partner
	{"partner_name", "Partnername", "Firmenname oder Name des Partners", CategoryPartner},
	{"partner_email", "Partner-E-Mail", "E-Mail-Adresse des Partners", CategoryPartner},

	// Unternehmen
	{"company_name", "Firmenname", "Name des eigenen Unternehmens", CategoryCompany},
	{"company_address", "Firmenadresse", "Anschrift des eigenen Unternehmens", CategoryCompany},
	{"company_phone", "Firmen-Telefon", "Telefonnummer des eigenen Unternehmens", CategoryCompany},
	{"company_email", "Firmen-E-Mail", "E-Mail-Adresse des eigenen Unternehmens", CategoryCompany},
	{"company_website", "Webseite", "Webseite des eigenen Unternehmens", CategoryCompany},
	{"managing_director", "Geschäftsführer", "Geschäftsführer des eigenen Unternehmens", CategoryCompany},
	{"vat_id", "USt-IdNr.", "Umsatzsteuer-Identifikationsnummer", CategoryCompany},
	{"tax_id", "Steuernummer", "Steuernummer des eigenen Unternehmens", CategoryCompany},
	{"bank_name", "Bank", "Name der Bank", CategoryCompany},
	{"bank_iban", "IBAN", "IBAN der Geschäftsbank", CategoryCompany},
	{"bank_bic", "BIC", "BIC der Geschäftsbank", CategoryCompany},
	{"bank_holder", "Kontoinhaber", "Inhaber des Geschäftskontos", CategoryCompany},

	// Allgemein
	{"date", "Datum", "Aktuelles Datum", CategoryGeneral},
	{"sender_name", "Absendername", "Name des angemeldeten Benutzers", CategoryGeneral},
}

// index maps key to catalog position for O(1) lookups.
var index = func() map[string]int {
	m := make(map[string]int, len(catalog))
	for i, t := range catalog {
		m[t.Key] = i
	}
	return m
}()

// All returns the full catalog in category order.
// The returned slice is a copy and safe to modify.
func All() []Token {
	out := make([]Token, len(catalog))
	copy(out, catalog)
	return out
}

// ByCategory returns all tokens of the given category, in catalog order.
func ByCategory(c Category) []Token {
	var out []Token
	for _, t := range catalog {
		if t.Category == c {
			out = append(out, t)
		}
	}
	return out
}

// Filter returns tokens whose key, label, or description contains q,
// case-insensitively. An empty q behaves like All. No match yields an
// empty slice, not an error.
func Filter(q string) []Token {
	if q == "" {
		return All()
	}
	q = strings.ToLower(q)
	var out []Token
	for _, t := range catalog {
		if strings.Contains(strings.ToLower(t.Key), q) ||
			strings.Contains(strings.ToLower(t.Label), q) ||
			strings.Contains(strings.ToLower(t.Description), q) {
			out = append(out, t)
		}
	}
	return out
}

// Lookup returns the token for the given key.
func Lookup(key string) (Token, bool) {
	i, ok := index[key]
	if !ok {
		return Token{}, false
	}
	return catalog[i], true
}

// Keys returns all catalog keys in catalog order.
func Keys() []string {
	out := make([]string, len(catalog))
	for i, t := range catalog {
		out[i] = t.Key
	}
	return out
}
