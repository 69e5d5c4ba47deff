package repository

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"go_doc_rpc/models"
	"go_doc_rpc/pkg/logging"
	"go_doc_rpc/platform/storage"
)

// objectRepository stores one JSON envelope object per document in a minio/s3 bucket. The
// object key is the document URI without its leading slash.
type objectRepository struct {
	ss *storage.Service
}

func NewObjectRepository(ss *storage.Service) DocumentBackend {
	return &objectRepository{ss: ss}
}

func (r *objectRepository) Name() string { return r.ss.StorageType }

func (r *objectRepository) Ping(ctx context.Context) error {
	return classify(r.Name()+" ping", r.ss.Ping(ctx))
}

func objectKey(uri string) string {
	return strings.TrimPrefix(uri, "/")
}

func (r *objectRepository) Insert(ctx context.Context, doc *models.StoredDocument, newURI URIFunc, overwrite bool) (string, error) {
	stored := *doc
	if stored.InsertedAt.IsZero() {
		stored.InsertedAt = time.Now().UTC()
	}
	generated := stored.URI == ""

	for i := 0; i < maxURIAttempts; i++ {
		if generated {
			stored.URI = newURI()
		}
		body, err := encodeEnvelope(&stored)
		if err != nil {
			return "", err
		}
		err = r.ss.PutJSON(ctx, objectKey(stored.URI), body, overwrite && !generated)
		switch {
		case err == nil:
			return stored.URI, nil
		case errors.Is(err, storage.ErrObjectExists) && generated:
			continue
		case errors.Is(err, storage.ErrObjectExists):
			return "", ErrDocumentExists
		default:
			return "", classify(r.Name()+" put", err)
		}
	}
	return "", fmt.Errorf("%s insert: could not generate a free document uri", r.Name())
}

func (r *objectRepository) Get(ctx context.Context, uri string) (*models.StoredDocument, error) {
	body, err := r.ss.GetJSON(ctx, objectKey(uri))
	if err != nil {
		return nil, classify(r.Name()+" get", err)
	}
	if body == nil {
		return nil, ErrDocumentNotFound
	}
	return decodeEnvelope(body)
}

func (r *objectRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.ss.CountObjects(ctx)
	return n, classify(r.Name()+" count", err)
}

// CollectionMembers reads every envelope in the bucket; buckets carry no secondary index.
func (r *objectRepository) CollectionMembers(ctx context.Context, collection string) ([]string, error) {
	keys, err := r.ss.ListKeys(ctx)
	if err != nil {
		return nil, classify(r.Name()+" list", err)
	}
	uris := []string{}
	for _, key := range keys {
		body, err := r.ss.GetJSON(ctx, key)
		if err != nil {
			return nil, classify(r.Name()+" get", err)
		}
		if body == nil {
			continue
		}
		h, err := decodeEnvelopeHeader(body)
		if err != nil {
			logging.Logger.Warn("skipping unreadable document envelope", "key", key, "error", err)
			continue
		}
		if slices.Contains(h.Collections, collection) {
			uris = append(uris, h.URI)
		}
	}
	slices.Sort(uris)
	return uris, nil
}

func (r *objectRepository) Close() error { return nil }
