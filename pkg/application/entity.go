package application

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Common errors used by repository/use cases
var (
	ErrNotFound         = errors.New("application not found")
	ErrInvalidStatus    = errors.New("invalid application status")
	ErrPositionRequired = errors.New("position is required")
	ErrCannotWithdraw   = errors.New("application can no longer be withdrawn")
)

// Status is the lifecycle state of a job application.
type Status string

const (
	StatusApplied   Status = "applied"
	StatusScreening Status = "screening"
	StatusInterview Status = "interview"
	StatusOffered   Status = "offered"
	StatusHired     Status = "hired"
	StatusRejected  Status = "rejected"
	StatusWithdrawn Status = "withdrawn"
)

func (s Status) Valid() bool {
	switch s {
	case StatusApplied, StatusScreening, StatusInterview, StatusOffered,
		StatusHired, StatusRejected, StatusWithdrawn:
		return true
	}
	return false
}

// Final reports whether the application reached a terminal state.
func (s Status) Final() bool {
	return s == StatusHired || s == StatusRejected || s == StatusWithdrawn
}

// Application tracks one candidate application to a position.
type Application struct {
	ID          uuid.UUID `json:"id"`
	OwnerID     uuid.UUID `json:"ownerId"`
	Position    string    `json:"position"`
	Status      Status    `json:"status"`
	AIScore     int       `json:"aiScore,omitempty"`
	ScreeningID uuid.UUID `json:"screeningId,omitempty"`
	AppliedAt   time.Time `json:"appliedAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Stats summarizes an applicant's pipeline.
type Stats struct {
	Total     int `json:"total"`
	Screening int `json:"screening"`
	Interview int `json:"interview"`
	Hired     int `json:"hired"`
}

// Repository is the persistence port for applications.
type Repository interface {
	Create(ctx context.Context, a Application) error
	GetForOwner(ctx context.Context, ownerID, id uuid.UUID) (Application, error)
	// status empty means all statuses
	ListByOwner(ctx context.Context, ownerID uuid.UUID, status Status, limit, offset int) ([]Application, error)
	UpdateStatus(ctx context.Context, ownerID, id uuid.UUID, status Status, updatedAt time.Time) error
	CountByStatus(ctx context.Context, ownerID uuid.UUID) (map[Status]int, error)
}
