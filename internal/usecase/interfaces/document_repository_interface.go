package interfaces

import (
	"context"
	"insurance_xpto/internal/domain/entities"
)

type IDocumentRepository interface {
	Create(ctx context.Context, d entities.Document) (entities.Document, error)
	ListByPolicyID(ctx context.Context, policyID uint) ([]entities.Document, error)
}

// IDocumentStorage stores rendered artifacts in object storage.
type IDocumentStorage interface {
	Put(ctx context.Context, key, contentType string, body []byte) error
}
