package repository

import (
	"fmt"
	"strings"
	"time"

	"go_doc_rpc/models"

	"github.com/goccy/go-json"
)

// envelope is the self-describing JSON form used by key/value and object backends.
type envelope struct {
	URI         string            `json:"uri"`
	Data        json.RawMessage   `json:"data"`
	Collections []string          `json:"collections"`
	Metadata    map[string]string `json:"metadata"`
	InsertedAt  time.Time         `json:"inserted_at"`
	SizeBytes   int               `json:"size_bytes"`
}

func encodeEnvelope(doc *models.StoredDocument) ([]byte, error) {
	return json.Marshal(envelope{
		URI:         doc.URI,
		Data:        json.RawMessage(strings.TrimSpace(doc.Raw)),
		Collections: doc.Collections,
		Metadata:    doc.Metadata,
		InsertedAt:  doc.InsertedAt,
		SizeBytes:   doc.SizeBytes,
	})
}

func decodeEnvelope(data []byte) (*models.StoredDocument, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("decode document envelope: %w", err)
	}
	raw := string(env.Data)
	payload, err := models.ParsePayload(raw)
	if err != nil {
		return nil, fmt.Errorf("decode document payload: %w", err)
	}
	return &models.StoredDocument{
		URI:         env.URI,
		Raw:         raw,
		Data:        payload,
		Collections: env.Collections,
		Metadata:    env.Metadata,
		InsertedAt:  env.InsertedAt,
		SizeBytes:   env.SizeBytes,
	}, nil
}

// envelopeHeader is the part of an envelope needed to maintain collection indexes.
type envelopeHeader struct {
	URI         string   `json:"uri"`
	Collections []string `json:"collections"`
}

func decodeEnvelopeHeader(data []byte) (envelopeHeader, error) {
	var h envelopeHeader
	if err := json.Unmarshal(data, &h); err != nil {
		return h, fmt.Errorf("decode document envelope: %w", err)
	}
	return h, nil
}
