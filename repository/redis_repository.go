package repository

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"go_doc_rpc/models"
	"go_doc_rpc/pkg/logging"
	rds "go_doc_rpc/platform/redis"

	"github.com/redis/go-redis/v9"
)

const (
	documentKeyPrefix   = "doc:"
	collectionKeyPrefix = "collection:"
	documentIndexKey    = "docs:index"
)

// redisRepository stores envelopes under doc:<uri>, keeps the set of URIs in docs:index and
// one set per collection under collection:<name>.
type redisRepository struct {
	svc *rds.Service
}

func NewRedisRepository(svc *rds.Service) DocumentBackend {
	return &redisRepository{svc: svc}
}

func (r *redisRepository) Name() string { return "redis" }

func (r *redisRepository) Ping(ctx context.Context) error {
	return r.classify("redis ping", r.svc.Ping(ctx))
}

func (r *redisRepository) Insert(ctx context.Context, doc *models.StoredDocument, newURI URIFunc, overwrite bool) (string, error) {
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

		if overwrite && !generated {
			if err := r.replace(ctx, &stored, body); err != nil {
				return "", r.classify("redis overwrite", err)
			}
			return stored.URI, nil
		}

		ok, err := r.svc.Rdb.SetNX(ctx, documentKeyPrefix+stored.URI, body, 0).Result()
		if err != nil {
			return "", r.classify("redis insert", err)
		}
		if !ok {
			if generated {
				continue
			}
			return "", ErrDocumentExists
		}
		if _, err := r.svc.Rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			queueIndex(ctx, pipe, &stored)
			return nil
		}); err != nil {
			return "", r.classify("redis index", err)
		}
		return stored.URI, nil
	}
	return "", fmt.Errorf("redis insert: could not generate a free document uri")
}

// replace overwrites doc.URI and moves it out of collections it no longer carries. The
// previous envelope is watched so a concurrent writer forces a retry.
func (r *redisRepository) replace(ctx context.Context, doc *models.StoredDocument, body []byte) error {
	key := documentKeyPrefix + doc.URI
	for i := 0; i < maxURIAttempts; i++ {
		err := r.svc.Rdb.Watch(ctx, func(tx *redis.Tx) error {
			stale, err := staleCollections(ctx, tx, key, doc.Collections)
			if err != nil {
				return err
			}
			_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
				pipe.Set(ctx, key, body, 0)
				for _, c := range stale {
					pipe.SRem(ctx, collectionKeyPrefix+c, doc.URI)
				}
				queueIndex(ctx, pipe, doc)
				return nil
			})
			return err
		}, key)
		if !errors.Is(err, redis.TxFailedErr) {
			return err
		}
	}
	return fmt.Errorf("%s: concurrent writers kept changing the document", doc.URI)
}

// staleCollections returns the labels of the stored envelope at key that are not in keep.
func staleCollections(ctx context.Context, tx *redis.Tx, key string, keep []string) ([]string, error) {
	prev, err := tx.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	old, err := decodeEnvelopeHeader(prev)
	if err != nil {
		logging.Logger.Warn("unreadable previous envelope, collection index not pruned", "key", key, "error", err)
		return nil, nil
	}
	var stale []string
	for _, c := range old.Collections {
		if !slices.Contains(keep, c) {
			stale = append(stale, c)
		}
	}
	return stale, nil
}

func queueIndex(ctx context.Context, pipe redis.Pipeliner, doc *models.StoredDocument) {
	pipe.SAdd(ctx, documentIndexKey, doc.URI)
	for _, c := range doc.Collections {
		pipe.SAdd(ctx, collectionKeyPrefix+c, doc.URI)
	}
}

func (r *redisRepository) Get(ctx context.Context, uri string) (*models.StoredDocument, error) {
	body, err := r.svc.Rdb.Get(ctx, documentKeyPrefix+uri).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrDocumentNotFound
	}
	if err != nil {
		return nil, r.classify("redis get", err)
	}
	return decodeEnvelope(body)
}

func (r *redisRepository) CollectionMembers(ctx context.Context, collection string) ([]string, error) {
	uris, err := r.svc.Rdb.SMembers(ctx, collectionKeyPrefix+collection).Result()
	if err != nil {
		return nil, r.classify("redis collection", err)
	}
	slices.Sort(uris)
	return uris, nil
}

func (r *redisRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.svc.Rdb.SCard(ctx, documentIndexKey).Result()
	return n, r.classify("redis count", err)
}

func (r *redisRepository) Close() error {
	return r.svc.Close()
}

func (r *redisRepository) classify(op string, err error) error {
	if errors.Is(err, redis.ErrClosed) {
		return fmt.Errorf("%s: %w: %v", op, ErrBackendUnavailable, err)
	}
	return classify(op, err)
}
