package repository

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"go_doc_rpc/models"
	"go_doc_rpc/platform/database"

	"github.com/goccy/go-json"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// documentRepository keeps documents in a relational table through gorm (postgres or sqlite).
type documentRepository struct {
	db *database.DB
}

func NewDocumentRepository(db *database.DB) DocumentBackend {
	return &documentRepository{db: db}
}

func (r *documentRepository) Name() string { return r.db.Dialect() }

func (r *documentRepository) Ping(ctx context.Context) error {
	return classify(r.Name()+" ping", r.db.Ping(ctx))
}

func (r *documentRepository) Insert(ctx context.Context, doc *models.StoredDocument, newURI URIFunc, overwrite bool) (string, error) {
	rec := models.NewDocumentRecord(doc)
	if rec.InsertedAt.IsZero() {
		rec.InsertedAt = time.Now().UTC()
	}
	db := r.db.GetDatabase().WithContext(ctx)

	if rec.URI == "" {
		for i := 0; i < maxURIAttempts; i++ {
			rec.URI = newURI()
			created, err := r.createIfAbsent(db, rec)
			if err != nil {
				return "", classify(r.Name()+" insert", err)
			}
			if created {
				return rec.URI, nil
			}
		}
		return "", fmt.Errorf("%s insert: could not generate a free document uri", r.Name())
	}

	if overwrite {
		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "uri"}},
			DoUpdates: clause.AssignmentColumns([]string{"raw", "collections", "metadata", "size_bytes", "inserted_at"}),
		}).Create(rec).Error
		if err != nil {
			return "", classify(r.Name()+" upsert", err)
		}
		return rec.URI, nil
	}

	created, err := r.createIfAbsent(db, rec)
	if err != nil {
		return "", classify(r.Name()+" insert", err)
	}
	if !created {
		return "", ErrDocumentExists
	}
	return rec.URI, nil
}

func (r *documentRepository) createIfAbsent(db *gorm.DB, rec *models.DocumentRecord) (bool, error) {
	res := db.Clauses(clause.OnConflict{DoNothing: true}).Create(rec)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *documentRepository) Get(ctx context.Context, uri string) (*models.StoredDocument, error) {
	var rec models.DocumentRecord
	err := r.db.GetDatabase().WithContext(ctx).Where("uri = ?", uri).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrDocumentNotFound
	}
	if err != nil {
		return nil, classify(r.Name()+" get", err)
	}
	doc, err := rec.ToStoredDocument()
	if err != nil {
		return nil, fmt.Errorf("%s get %s: stored payload is corrupt: %w", r.Name(), uri, err)
	}
	return doc, nil
}

func (r *documentRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.GetDatabase().WithContext(ctx).Model(&models.DocumentRecord{}).Count(&n).Error
	return n, classify(r.Name()+" count", err)
}

// CollectionMembers narrows candidates with LIKE on the JSON-encoded label column, then
// checks the decoded labels exactly.
func (r *documentRepository) CollectionMembers(ctx context.Context, collection string) ([]string, error) {
	label, err := json.Marshal(collection)
	if err != nil {
		return nil, err
	}
	var recs []models.DocumentRecord
	err = r.db.GetDatabase().WithContext(ctx).
		Select("uri", "collections").
		Where("collections LIKE ?", "%"+string(label)+"%").
		Order("uri").
		Find(&recs).Error
	if err != nil {
		return nil, classify(r.Name()+" collection", err)
	}
	uris := []string{}
	for _, rec := range recs {
		if slices.Contains(rec.Collections, collection) {
			uris = append(uris, rec.URI)
		}
	}
	return uris, nil
}

func (r *documentRepository) Close() error {
	return r.db.Close()
}
