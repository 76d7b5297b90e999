package resolver

// demoContext returns the static fallback tier: one internally consistent
// fake record per category. Every catalog token has a value here; this is
// what guarantees total coverage.
func demoContext() Context {
	return Context{
		// Kunde
		"customer_name":    "Musterfirma GmbH",
		"contact_person":   "Max Mustermann",
		"customer_email":   "info@musterfirma.de",
		"customer_phone":   "+49 30 1234567",
		"customer_address": "Musterstraße 12",
		"customer_city":    "Berlin",
		"customer_zip":     "10115",

		// Projekt
		"project_number":    "PRJ-XXXX-XXXX",
		"project_name":      "Webseiten-Übersetzung EN>DE",
		"project_status":    "In Bearbeitung",
		"source_language":   "Englisch",
		"target_language":   "Deutsch",
		"project_languages": "Englisch → Deutsch",
		"deadline":          "15.03.2024 12:00",
		"document_type":     "Webseite",
		"priority":          "Normal",

		// Finanzen
		"price_net":      "0,00 €",
		"price_gross":    "0,00 €",
		"payment_terms":  "14 Tage",
		"invoice_number": "RE-XXXX-XXXX",
		"invoice_date":   "15.03.2024",
		"due_date":       "29.03.2024",

		// Partner
		"partner_name":  "Sprachwerk Berlin",
		"partner_email": "kontakt@sprachwerk.de",

		// Unternehmen
		"company_name":      "Translation Office GmbH",
		"company_address":   "Musterallee 1, 10117 Berlin",
		"company_phone":     "+49 30 7654321",
		"company_email":     "kontakt@translation-office.de",
		"company_website":   "www.translation-office.de",
		"managing_director": "Erika Musterfrau",
		"vat_id":            "DE123456789",
		"tax_id":            "29/123/45678",
		"bank_name":         "Musterbank Berlin",
		"bank_iban":         "DE89 3704 0044 0532 0130 00",
		"bank_bic":          "COBADEFFXXX",
		"bank_holder":       "Translation Office GmbH",

		// Allgemein (date is always overwritten with the current date)
		"date":        "01.01.2024",
		"sender_name": "Anna Schmidt",
	}
}
