// Package token defines the static catalog of message placeholders.
//
// A token is a named placeholder (e.g. customer_name) that stands in for a
// business-data value inside free text. The catalog is fixed at compile time;
// keys are stable identifiers that must not change, because saved templates
// reference them literally.
//
// Tokens are grouped into categories (Customer, Project, Finance, Partner,
// Company, General) for presentation. All returns the full catalog in
// category order; Filter performs a case-insensitive substring search across
// key, label, and description:
//
//	for _, t := range token.Filter("kunde") {
//		fmt.Println(t.Key, t.Label)
//	}
package token
