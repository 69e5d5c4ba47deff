package models

import (
	"time"

	"gorm.io/gorm"
)

// DocumentRecord is the relational row for a stored document.
type DocumentRecord struct {
	URI         string            `gorm:"column:uri;type:varchar(1024);primaryKey" json:"uri"`
	Raw         string            `gorm:"column:raw;type:text;not null" json:"data"`
	Collections []string          `gorm:"column:collections;type:text;serializer:json" json:"collections"`
	Metadata    map[string]string `gorm:"column:metadata;type:text;serializer:json" json:"metadata"`
	SizeBytes   int               `gorm:"column:size_bytes;type:int" json:"size_bytes"`
	InsertedAt  time.Time         `gorm:"column:inserted_at;index:idx_inserted_at" json:"inserted_at"`
}

func (DocumentRecord) TableName() string {
	return "documents"
}

func (r *DocumentRecord) BeforeCreate(tx *gorm.DB) error {
	if r.InsertedAt.IsZero() {
		r.InsertedAt = time.Now().UTC()
	}
	return nil
}

func NewDocumentRecord(doc *StoredDocument) *DocumentRecord {
	return &DocumentRecord{
		URI:         doc.URI,
		Raw:         doc.Raw,
		Collections: doc.Collections,
		Metadata:    doc.Metadata,
		SizeBytes:   doc.SizeBytes,
		InsertedAt:  doc.InsertedAt,
	}
}

// ToStoredDocument re-parses the raw payload; rows are only written after validation, so a
// parse failure here means the row was changed outside this service.
func (r *DocumentRecord) ToStoredDocument() (*StoredDocument, error) {
	payload, err := ParsePayload(r.Raw)
	if err != nil {
		return nil, err
	}
	return &StoredDocument{
		URI:         r.URI,
		Raw:         r.Raw,
		Data:        payload,
		Collections: r.Collections,
		Metadata:    r.Metadata,
		InsertedAt:  r.InsertedAt,
		SizeBytes:   r.SizeBytes,
	}, nil
}
