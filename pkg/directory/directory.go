package directory

import (
	"context"
	"strings"
	"time"
)

// Customer is a client of the agency.
type Customer struct {
	ID             string
	CompanyName    string
	FirstName      string
	LastName       string
	ContactPerson  string
	Email          string
	AlternateEmail string
	Phone          string
	Street         string
	HouseNo        string
	Zip            string
	City           string
	PaymentDays    int
}

// DisplayName returns the company name, falling back to the concatenated
// first and last name.
func (c Customer) DisplayName() string {
	if c.CompanyName != "" {
		return c.CompanyName
	}
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}

// Partner is an external translator or interpreter.
type Partner struct {
	ID        string
	Company   string
	FirstName string
	LastName  string
	Email     string
}

// DisplayName returns the partner's company name, falling back to the
// concatenated first and last name.
func (p Partner) DisplayName() string {
	if p.Company != "" {
		return p.Company
	}
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

// Invoice is a billing document attached to a project.
type Invoice struct {
	Number  string
	Date    time.Time
	DueDate time.Time
}

// Project is a translation job. Invoices are ordered oldest first; the
// resolver reads the first one.
type Project struct {
	ID             string
	Number         string
	Name           string
	Status         string
	Customer       *Customer
	Partner        *Partner
	SourceLanguage string
	TargetLanguage string
	Deadline       *time.Time
	DocumentType   string
	Priority       string
	PriceNet       float64
	PaymentDays    int
	Invoices       []Invoice
}

// Company is the agency's own master data, used for company_* and bank_*
// tokens and the mail signature.
type Company struct {
	Name             string
	Street           string
	HouseNo          string
	Zip              string
	City             string
	Phone            string
	Email            string
	Website          string
	ManagingDirector string
	VATID            string
	TaxID            string
	BankName         string
	BankIBAN         string
	BankBIC          string
	BankHolder       string
}

// Address returns the single-line postal address.
func (c Company) Address() string {
	street := strings.TrimSpace(c.Street + " " + c.HouseNo)
	city := strings.TrimSpace(c.Zip + " " + c.City)
	switch {
	case street == "":
		return city
	case city == "":
		return street
	default:
		return street + ", " + city
	}
}

// ProjectFile describes a file stored on a project, without its bytes.
type ProjectFile struct {
	ID   string
	Name string
	Size int64
}

// ProjectDirectory looks up projects.
type ProjectDirectory interface {
	ProjectByID(ctx context.Context, id string) (Project, error)
}

// CustomerDirectory looks up customers.
type CustomerDirectory interface {
	CustomerByID(ctx context.Context, id string) (Customer, error)
	Customers(ctx context.Context) ([]Customer, error)
}

// PartnerDirectory lists partners.
type PartnerDirectory interface {
	Partners(ctx context.Context) ([]Partner, error)
}

// FileFetcher downloads the bytes of a project file.
type FileFetcher interface {
	DownloadProjectFile(ctx context.Context, projectID, fileID string) ([]byte, error)
}
