package repository

import (
	"context"

	"go_doc_rpc/models"
)

// URIFunc returns a fresh document URI. Backends call it inside their write critical
// section when the caller did not supply a URI.
type URIFunc func() string

// DocumentBackend is a document store. Implementations must make "pick a URI" and "write the
// document" one atomic step.
type DocumentBackend interface {
	Name() string
	Ping(ctx context.Context) error
	// Insert stores doc and returns the URI it was stored under. An empty doc.URI means
	// newURI is used. With overwrite false an existing URI yields ErrDocumentExists.
	Insert(ctx context.Context, doc *models.StoredDocument, newURI URIFunc, overwrite bool) (string, error)
	Get(ctx context.Context, uri string) (*models.StoredDocument, error)
	Count(ctx context.Context) (int64, error)
	// CollectionMembers lists, sorted, the URIs of documents labelled with collection.
	CollectionMembers(ctx context.Context, collection string) ([]string, error)
	Close() error
}

// generated URIs are retried this many times on collision before giving up
const maxURIAttempts = 8
