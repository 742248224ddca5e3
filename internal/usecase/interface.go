package usecase

import (
	"context"
)

// DocumentReader defines the interface for loading the raw text of a bank export.
// The usecase layer depends on this interface, not on a concrete implementation.
//
//go:generate mockgen -destination=mocks/mock_document_reader.go -source=interface.go DocumentReader
type DocumentReader interface {
	ReadDocument(ctx context.Context, path string) (string, error)
}
