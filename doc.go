// Package compose implements the message composition engine of the
// agency back office: a single-draft session state machine on top of
// the token catalog, context resolver, placeholder renderer, recipient
// suggestion index and attachment stage.
//
// A Session holds at most one draft at a time. The UI layer drives it
// with discrete commands and reads the draft back between commands:
//
//	session := compose.New(
//	    compose.WithLogger(log),
//	    compose.WithResolver(resolver.New(projects, customers)),
//	    compose.WithProjects(projects),
//	    compose.WithAccounts(accounts),
//	)
//
//	session.OpenBlank()
//	session.SetRecipient("info@musterfirma.de")
//	session.SetSubject("Ihr Angebot")
//	session.SetBody("<p>Sehr geehrte Damen und Herren,</p>")
//	if err := session.Send(ctx, "office"); err != nil {
//	    // draft is untouched, user can edit and retry
//	}
//
// Previewing renders the body through the resolver without mutating it;
// reply and forward drafts are seeded with German quoting skeletons that
// embed the sanitized original message.
package compose
