package models

import (
	"fmt"
	"time"
)

// DocumentRequest is one InsertDocument call. An empty DocumentURI means the server picks one.
type DocumentRequest struct {
	JSONData    string            `json:"json_data"`
	DocumentURI string            `json:"document_uri,omitempty"`
	Collections []string          `json:"collections,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

type DocumentResponse struct {
	StatusCode    int32  `json:"status_code"`
	StatusMessage string `json:"status_message"`
	DocumentURI   string `json:"document_uri,omitempty"`
	Details       string `json:"details,omitempty"`
}

// StoredDocument is what a backend keeps for one URI.
type StoredDocument struct {
	URI         string            `json:"uri"`
	Raw         string            `json:"data"`
	Data        Payload           `json:"-"`
	Collections []string          `json:"collections"`
	Metadata    map[string]string `json:"metadata"`
	InsertedAt  time.Time         `json:"inserted_at"`
	SizeBytes   int               `json:"size_bytes"`
}

// Clone returns a copy that shares no slices or maps with d.
func (d *StoredDocument) Clone() *StoredDocument {
	if d == nil {
		return nil
	}
	c := *d
	c.Data = d.Data.Clone()
	c.Collections = append([]string(nil), d.Collections...)
	c.Metadata = make(map[string]string, len(d.Metadata))
	for k, v := range d.Metadata {
		c.Metadata[k] = v
	}
	return &c
}

// BackendMode is decided once at startup and never changes for the life of the process.
type BackendMode int

const (
	ModeSimulated BackendMode = iota
	ModeReal
)

func (m BackendMode) String() string {
	switch m {
	case ModeReal:
		return "real"
	case ModeSimulated:
		return "simulated"
	default:
		return fmt.Sprintf("BackendMode(%d)", int(m))
	}
}

type ServiceStatus struct {
	Status     string `json:"status"`
	Mode       string `json:"mode"`
	Backend    string `json:"backend"`
	Documents  int64  `json:"documents"`
	// URIsIssued counts generated URIs, including ones discarded after a collision.
	URIsIssued uint64 `json:"uris_issued"`
}
