// Package directory defines the business-entity records the composition
// engine reads and the collaborator interfaces through which it reads them.
//
// The engine never talks to the REST backend itself; the embedding
// application implements ProjectDirectory, CustomerDirectory,
// PartnerDirectory, and FileFetcher on top of its data services and hands
// them to the resolver, the suggestion index, and the attachment stage.
package directory
