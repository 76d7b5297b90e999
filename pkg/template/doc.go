// Package template loads reusable message templates.
//
// Templates are markdown files with YAML frontmatter, stored on any fs.FS
// (usually an embed.FS shipped with the application, or a directory synced
// from the backend):
//
//	---
//	name: Angebot
//	subject: "Ihr Angebot {project_number}"
//	type: Vertrieb
//	---
//
//	Sehr geehrte Damen und Herren von {{customer_name}},
//
//	anbei erhalten Sie unser Angebot über **{price_gross}**.
//
// The markdown body is converted to HTML at load time, because the compose
// editor works on HTML. Placeholder tokens survive the conversion untouched
// and are resolved later, at preview or send time.
package template
