package response

import (
	"time"

	"insurance_xpto/internal/domain/entities"
)

type DocumentResponse struct {
	ID          uint      `json:"id"`
	PolicyID    uint      `json:"policy_id"`
	PaymentID   *uint     `json:"payment_id,omitempty"`
	Kind        string    `json:"kind"`
	FileName    string    `json:"file_name"`
	ContentType string    `json:"content_type"`
	StorageKey  string    `json:"storage_key"`
	SizeBytes   int64     `json:"size_bytes"`
	Checksum    string    `json:"checksum_sha256"`
	CreatedAt   time.Time `json:"created_at"`
}

func FromDocument(d entities.Document) DocumentResponse {
	return DocumentResponse{
		ID:          d.ID,
		PolicyID:    d.PolicyID,
		PaymentID:   d.PaymentID,
		Kind:        string(d.Kind),
		FileName:    d.FileName,
		ContentType: d.ContentType,
		StorageKey:  d.StorageKey,
		SizeBytes:   d.SizeBytes,
		Checksum:    d.Checksum,
		CreatedAt:   d.CreatedAt,
	}
}

func FromDocuments(docs []entities.Document) []DocumentResponse {
	out := make([]DocumentResponse, 0, len(docs))
	for _, d := range docs {
		out = append(out, FromDocument(d))
	}
	return out
}
