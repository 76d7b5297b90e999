// Package resolver builds the key→value context used to render message
// placeholders.
//
// Resolve follows a three-tier fallback: data from a linked project wins,
// then data from a linked customer, then static demo values. The demo tier
// covers every catalog token, so a context is always total and a preview
// always renders something plausible. Resolution never fails.
//
//	r := resolver.New(projects, customers,
//		resolver.WithCompany(company),
//		resolver.WithSenderName("Anna Schmidt"),
//	)
//	c := r.Resolve(ctx, projectID, "")
//	c["price_net"] // "450,00 €"
package resolver
