package resolver

import (
	"context"
	"fmt"
	"time"

	"github.com/lingoffice/compose/pkg/directory"
	"github.com/lingoffice/compose/pkg/locale"
)

// vatRate is the fixed VAT rate applied to derive gross amounts.
const vatRate = 0.19

// Context maps a token key to its resolved display string. It is built
// fresh per render and never persisted. A context produced by Resolve
// covers every token in the catalog.
type Context map[string]string

// priorityLabels maps the backend's priority identifiers to display text.
var priorityLabels = map[string]string{
	"low":     "Standard",
	"medium":  "Normal",
	"high":    "Hohe Priorität",
	"express": "Express",
}

// Resolver resolves linked business entities into a render context.
// It is immutable after creation and safe for concurrent use.
type Resolver struct {
	projects  directory.ProjectDirectory
	customers directory.CustomerDirectory
	company   directory.Company
	sender    string
	format    *locale.Format
	now       func() time.Time
}

// Option configures a Resolver during construction.
type Option func(*Resolver)

// WithCompany sets the agency's own master data for company_* and bank_*
// tokens. Empty fields keep their demo defaults.
func WithCompany(c directory.Company) Option {
	return func(r *Resolver) { r.company = c }
}

// WithSenderName sets the value of the sender_name token.
func WithSenderName(name string) Option {
	return func(r *Resolver) {
		if name != "" {
			r.sender = name
		}
	}
}

// WithFormat sets the locale format. Defaults to de-DE.
func WithFormat(f *locale.Format) Option {
	return func(r *Resolver) {
		if f != nil {
			r.format = f
		}
	}
}

// WithClock overrides the time source for the date token. For tests.
func WithClock(now func() time.Time) Option {
	return func(r *Resolver) {
		if now != nil {
			r.now = now
		}
	}
}

// New creates a Resolver. Both directories may be nil, in which case the
// corresponding tiers are skipped and demo data is used.
func New(projects directory.ProjectDirectory, customers directory.CustomerDirectory, opts ...Option) *Resolver {
	r := &Resolver{
		projects:  projects,
		customers: customers,
		format:    locale.DeDE(),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve builds the context for an optional project and/or customer link.
// A linked project wins over a linked customer; anything not covered by the
// link falls through to demo values. Lookup failures are swallowed: the
// result is always a complete context.
func (r *Resolver) Resolve(ctx context.Context, projectID, customerID string) Context {
	c := demoContext()

	r.applyCompany(c)
	c["date"] = r.format.Date(r.now())
	set(c, "sender_name", r.sender)

	if projectID != "" && r.projects != nil {
		if p, err := r.projects.ProjectByID(ctx, projectID); err == nil {
			r.applyProject(c, p)
			return c
		}
	}
	if customerID != "" && r.customers != nil {
		if cust, err := r.customers.CustomerByID(ctx, customerID); err == nil {
			r.applyCustomer(c, cust)
		}
	}

	return c
}

func (r *Resolver) applyProject(c Context, p directory.Project) {
	if p.Customer != nil {
		r.applyCustomer(c, *p.Customer)
	}
	if p.Partner != nil {
		set(c, "partner_name", p.Partner.DisplayName())
		set(c, "partner_email", p.Partner.Email)
	}

	number := p.Number
	if number == "" && p.ID != "" {
		number = "PRJ-" + p.ID
	}
	set(c, "project_number", number)
	set(c, "project_name", p.Name)
	set(c, "project_status", p.Status)
	set(c, "source_language", p.SourceLanguage)
	set(c, "target_language", p.TargetLanguage)
	if p.SourceLanguage != "" && p.TargetLanguage != "" {
		c["project_languages"] = p.SourceLanguage + " → " + p.TargetLanguage
	}
	if p.Deadline != nil {
		c["deadline"] = r.format.DateTime(*p.Deadline)
	}
	set(c, "document_type", p.DocumentType)
	if p.Priority != "" {
		if label, ok := priorityLabels[p.Priority]; ok {
			c["priority"] = label
		} else {
			c["priority"] = p.Priority
		}
	}

	c["price_net"] = r.format.Currency(p.PriceNet)
	c["price_gross"] = r.format.Currency(p.PriceNet * (1 + vatRate))

	days := p.PaymentDays
	if p.Customer != nil && p.Customer.PaymentDays > 0 {
		days = p.Customer.PaymentDays
	}
	if days > 0 {
		c["payment_terms"] = fmt.Sprintf("%d Tage", days)
	}

	if len(p.Invoices) > 0 {
		inv := p.Invoices[0]
		set(c, "invoice_number", inv.Number)
		if !inv.Date.IsZero() {
			c["invoice_date"] = r.format.Date(inv.Date)
		}
		if !inv.DueDate.IsZero() {
			c["due_date"] = r.format.Date(inv.DueDate)
		}
	}
}

func (r *Resolver) applyCustomer(c Context, cust directory.Customer) {
	set(c, "customer_name", cust.DisplayName())

	contact := cust.ContactPerson
	if contact == "" {
		contact = trimJoin(cust.FirstName, cust.LastName)
	}
	set(c, "contact_person", contact)

	set(c, "customer_email", cust.Email)
	set(c, "customer_phone", cust.Phone)
	set(c, "customer_address", trimJoin(cust.Street, cust.HouseNo))
	set(c, "customer_city", cust.City)
	set(c, "customer_zip", cust.Zip)
}

func (r *Resolver) applyCompany(c Context) {
	set(c, "company_name", r.company.Name)
	set(c, "company_address", r.company.Address())
	set(c, "company_phone", r.company.Phone)
	set(c, "company_email", r.company.Email)
	set(c, "company_website", r.company.Website)
	set(c, "managing_director", r.company.ManagingDirector)
	set(c, "vat_id", r.company.VATID)
	set(c, "tax_id", r.company.TaxID)
	set(c, "bank_name", r.company.BankName)
	set(c, "bank_iban", r.company.BankIBAN)
	set(c, "bank_bic", r.company.BankBIC)
	set(c, "bank_holder", r.company.BankHolder)
}

// set overrides the demo default only with a non-empty value.
func set(c Context, key, value string) {
	if value != "" {
		c[key] = value
	}
}

func trimJoin(a, b string) string {
	switch {
	case a == "":
		return b
	case b == "":
		return a
	default:
		return a + " " + b
	}
}
