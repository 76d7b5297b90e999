package resolver_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/lingoffice/compose/pkg/directory"
	"github.com/lingoffice/compose/pkg/resolver"
	"github.com/lingoffice/compose/pkg/token"
)

type fakeProjects map[string]directory.Project

func (f fakeProjects) ProjectByID(_ context.Context, id string) (directory.Project, error) {
	p, ok := f[id]
	if !ok {
		return directory.Project{}, errors.New("project not found")
	}
	return p, nil
}

type fakeCustomers map[string]directory.Customer

func (f fakeCustomers) CustomerByID(_ context.Context, id string) (directory.Customer, error) {
	c, ok := f[id]
	if !ok {
		return directory.Customer{}, errors.New("customer not found")
	}
	return c, nil
}

func (f fakeCustomers) Customers(_ context.Context) ([]directory.Customer, error) {
	out := make([]directory.Customer, 0, len(f))
	for _, c := range f {
		out = append(out, c)
	}
	return out, nil
}

func musterfirma() directory.Customer {
	return directory.Customer{
		ID:            "c1",
		CompanyName:   "Musterfirma GmbH",
		ContactPerson: "Max Mustermann",
		Email:         "info@musterfirma.de",
		Phone:         "+49 30 1234567",
		Street:        "Musterstraße",
		HouseNo:       "12",
		Zip:           "10115",
		City:          "Berlin",
		PaymentDays:   30,
	}
}

func testProject() directory.Project {
	cust := musterfirma()
	deadline := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	return directory.Project{
		ID:             "p1",
		Number:         "PRJ-2024-0042",
		Name:           "Webseiten-Übersetzung",
		Status:         "In Bearbeitung",
		Customer:       &cust,
		SourceLanguage: "Englisch",
		TargetLanguage: "Deutsch",
		Deadline:       &deadline,
		DocumentType:   "Webseite",
		Priority:       "high",
		PriceNet:       450,
		Invoices: []directory.Invoice{{
			Number:  "RE-2024-0101",
			Date:    time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			DueDate: time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC),
		}},
	}
}

func TestResolve_DemoTotality(t *testing.T) {
	t.Parallel()

	r := resolver.New(nil, nil)
	c := r.Resolve(context.Background(), "", "")

	for _, key := range token.Keys() {
		require.NotEmpty(t, c[key], "token %q must resolve to a non-empty demo value", key)
	}
}

func TestResolve_ProjectTier(t *testing.T) {
	t.Parallel()

	r := resolver.New(
		fakeProjects{"p1": testProject()},
		fakeCustomers{},
	)
	c := r.Resolve(context.Background(), "p1", "")

	require.Equal(t, "Musterfirma GmbH", c["customer_name"])
	require.Equal(t, "info@musterfirma.de", c["customer_email"])
	require.Equal(t, "Musterstraße 12", c["customer_address"])
	require.Equal(t, "PRJ-2024-0042", c["project_number"])
	require.Equal(t, "Englisch → Deutsch", c["project_languages"])
	require.Equal(t, "15.03.2024 12:00", c["deadline"])
	require.Equal(t, "Hohe Priorität", c["priority"])
	require.Equal(t, "450,00 €", c["price_net"])
	require.Equal(t, "535,50 €", c["price_gross"])
	require.Equal(t, "30 Tage", c["payment_terms"])
	require.Equal(t, "RE-2024-0101", c["invoice_number"])
	require.Equal(t, "01.03.2024", c["invoice_date"])
	require.Equal(t, "31.03.2024", c["due_date"])
}

func TestResolve_CustomerTierKeepsProjectDemo(t *testing.T) {
	t.Parallel()

	r := resolver.New(
		fakeProjects{},
		fakeCustomers{"c1": musterfirma()},
	)
	c := r.Resolve(context.Background(), "", "c1")

	require.Equal(t, "Musterfirma GmbH", c["customer_name"])
	require.Equal(t, "PRJ-XXXX-XXXX", c["project_number"])
	require.Equal(t, "0,00 €", c["price_net"])
}

func TestResolve_FailedProjectLookupFallsBack(t *testing.T) {
	t.Parallel()

	r := resolver.New(
		fakeProjects{},
		fakeCustomers{"c1": musterfirma()},
	)

	// Project lookup fails, customer link still applies; never an error.
	c := r.Resolve(context.Background(), "missing", "c1")
	require.Equal(t, "Musterfirma GmbH", c["customer_name"])
	require.Equal(t, "PRJ-XXXX-XXXX", c["project_number"])
}

func TestResolve_CustomerNameFallsBackToPersonName(t *testing.T) {
	t.Parallel()

	cust := directory.Customer{ID: "c2", FirstName: "Erika", LastName: "Beispiel", Email: "erika@example.de"}
	r := resolver.New(fakeProjects{}, fakeCustomers{"c2": cust})

	c := r.Resolve(context.Background(), "", "c2")
	require.Equal(t, "Erika Beispiel", c["customer_name"])
	require.Equal(t, "Erika Beispiel", c["contact_person"])
}

func TestResolve_MissingProjectFieldsKeepDemo(t *testing.T) {
	t.Parallel()

	p := directory.Project{ID: "p2", PriceNet: 100} // no languages, no deadline
	r := resolver.New(fakeProjects{"p2": p}, fakeCustomers{})

	c := r.Resolve(context.Background(), "p2", "")
	require.Equal(t, "PRJ-p2", c["project_number"])
	require.Equal(t, "Englisch → Deutsch", c["project_languages"], "pair keeps demo value when a side is missing")
	require.Equal(t, "15.03.2024 12:00", c["deadline"])
	require.Equal(t, "119,00 €", c["price_gross"])
}

func TestResolve_CompanyAndSender(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	r := resolver.New(nil, nil,
		resolver.WithCompany(directory.Company{
			Name:     "Lingoffice GmbH",
			Street:   "Kantstraße",
			HouseNo:  "8",
			Zip:      "10623",
			City:     "Berlin",
			BankIBAN: "DE02 1203 0000 0000 2020 51",
		}),
		resolver.WithSenderName("Anna Schmidt"),
		resolver.WithClock(func() time.Time { return now }),
	)

	c := r.Resolve(context.Background(), "", "")
	require.Equal(t, "Lingoffice GmbH", c["company_name"])
	require.Equal(t, "Kantstraße 8, 10623 Berlin", c["company_address"])
	require.Equal(t, "DE02 1203 0000 0000 2020 51", c["bank_iban"])
	require.Equal(t, "Musterbank Berlin", c["bank_name"], "unset company fields keep demo values")
	require.Equal(t, "Anna Schmidt", c["sender_name"])
	require.Equal(t, "01.06.2024", c["date"])
}
