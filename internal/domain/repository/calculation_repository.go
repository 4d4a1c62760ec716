// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application
// layers and the document-store infrastructure.
package repository

import (
	"context"

	"freightprint/internal/domain/entity"
	"freightprint/internal/errors"

	"github.com/google/uuid"
)

// ErrCalculationNotFound is returned when a calculation document does
// not exist.
var ErrCalculationNotFound = errors.New("calculation not found")

// CalculationRepository defines the document-store operations for
// persisted footprint calculations.
type CalculationRepository interface {
	// Create persists a new calculation document.
	Create(ctx context.Context, calculation *entity.Calculation) error

	// FindByID retrieves a calculation by its unique ID.
	// Returns ErrCalculationNotFound if no document exists.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Calculation, error)

	// FindByUser retrieves calculations for a user, newest first.
	// A limit <= 0 returns the user's full history.
	FindByUser(ctx context.Context, userID string, limit int) ([]*entity.Calculation, error)

	// DeleteByID removes a calculation document.
	// Deleting a missing document is not an error.
	DeleteByID(ctx context.Context, id uuid.UUID) error

	// CountByUser returns the number of calculations stored for a user.
	CountByUser(ctx context.Context, userID string) (int64, error)
}
