package entities

import "time"

type DocumentKind string

const (
	DocumentKindPolicy  DocumentKind = "policy"
	DocumentKindReceipt DocumentKind = "receipt"
)

// Document is an archived rendered artifact kept in object storage.
type Document struct {
	ID          uint
	PolicyID    uint
	PaymentID   *uint
	Kind        DocumentKind
	FileName    string
	ContentType string
	StorageKey  string
	SizeBytes   int64
	Checksum    string
	CreatedBy   uint
	CreatedAt   time.Time
}
