package models

import "time"

type DocumentEventType string

const (
	EventDocumentInserted DocumentEventType = "inserted"
)

type DocumentEvent struct {
	Type        DocumentEventType `json:"type"`
	DocumentURI string            `json:"document_uri"`
	Collections []string          `json:"collections,omitempty"`
	Mode        string            `json:"mode"`
	Backend     string            `json:"backend"`
	SizeBytes   int               `json:"size_bytes"`
	Timestamp   time.Time         `json:"timestamp"`
}
