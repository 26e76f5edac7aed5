package resume

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/hr360/assistant/pkg/assistant"
)

var ErrNotFound = errors.New("screening not found")

// Screening is a stored resume screening: metadata of the uploaded file plus
// the analysis produced for it.
type Screening struct {
	ID        uuid.UUID                `json:"id"`
	OwnerID   uuid.UUID                `json:"ownerId"`
	Filename  string                   `json:"filename"`
	MimeType  string                   `json:"mimeType"`
	Size      int64                    `json:"size"`
	Analysis  assistant.ResumeAnalysis `json:"analysis"`
	CreatedAt time.Time                `json:"createdAt"`
}

// Repository is the port for persisted screenings.
type Repository interface {
	Create(ctx context.Context, s Screening) error
	GetForOwner(ctx context.Context, ownerID, id uuid.UUID) (Screening, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]Screening, error)
	DeleteForOwner(ctx context.Context, ownerID, id uuid.UUID) error
}
