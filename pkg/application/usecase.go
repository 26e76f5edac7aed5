package application

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

// UseCase describes job-application tracking for the current user.
type UseCase interface {
	Apply(ctx context.Context, ownerID uuid.UUID, position string, screeningID uuid.UUID, aiScore int) (Application, error)
	Get(ctx context.Context, ownerID, id uuid.UUID) (Application, error)
	List(ctx context.Context, ownerID uuid.UUID, status string, limit, offset int) ([]Application, error)
	Stats(ctx context.Context, ownerID uuid.UUID) (Stats, error)
	Withdraw(ctx context.Context, ownerID, id uuid.UUID) (Application, error)
}

type service struct {
	repo Repository
}

// NewService returns the default UseCase implementation.
func NewService(repo Repository) UseCase {
	return &service{repo: repo}
}

func (s *service) Apply(ctx context.Context, ownerID uuid.UUID, position string, screeningID uuid.UUID, aiScore int) (Application, error) {
	position = strings.TrimSpace(position)
	if position == "" {
		return Application{}, ErrPositionRequired
	}
	now := time.Now().UTC()
	a := Application{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		Position:    position,
		Status:      StatusApplied,
		AIScore:     aiScore,
		ScreeningID: screeningID,
		AppliedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.Create(ctx, a); err != nil {
		return Application{}, err
	}
	return a, nil
}

func (s *service) Get(ctx context.Context, ownerID, id uuid.UUID) (Application, error) {
	return s.repo.GetForOwner(ctx, ownerID, id)
}

func (s *service) List(ctx context.Context, ownerID uuid.UUID, status string, limit, offset int) ([]Application, error) {
	var st Status
	if status != "" {
		st = Status(strings.ToLower(status))
		if !st.Valid() {
			return nil, ErrInvalidStatus
		}
	}
	return s.repo.ListByOwner(ctx, ownerID, st, limit, offset)
}

func (s *service) Stats(ctx context.Context, ownerID uuid.UUID) (Stats, error) {
	counts, err := s.repo.CountByStatus(ctx, ownerID)
	if err != nil {
		return Stats{}, err
	}
	out := Stats{
		Screening: counts[StatusScreening],
		Interview: counts[StatusInterview],
		Hired:     counts[StatusHired],
	}
	for _, n := range counts {
		out.Total += n
	}
	return out, nil
}

func (s *service) Withdraw(ctx context.Context, ownerID, id uuid.UUID) (Application, error) {
	a, err := s.repo.GetForOwner(ctx, ownerID, id)
	if err != nil {
		return Application{}, err
	}
	if a.Status.Final() {
		return Application{}, ErrCannotWithdraw
	}
	now := time.Now().UTC()
	if err := s.repo.UpdateStatus(ctx, ownerID, id, StatusWithdrawn, now); err != nil {
		return Application{}, err
	}
	a.Status = StatusWithdrawn
	a.UpdatedAt = now
	return a, nil
}
