package application

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type memRepo struct {
	items map[uuid.UUID]Application
}

func newMemRepo() *memRepo { return &memRepo{items: map[uuid.UUID]Application{}} }

func (m *memRepo) Create(_ context.Context, a Application) error {
	m.items[a.ID] = a
	return nil
}

func (m *memRepo) GetForOwner(_ context.Context, ownerID, id uuid.UUID) (Application, error) {
	a, ok := m.items[id]
	if !ok || a.OwnerID != ownerID {
		return Application{}, ErrNotFound
	}
	return a, nil
}

func (m *memRepo) ListByOwner(_ context.Context, ownerID uuid.UUID, status Status, limit, offset int) ([]Application, error) {
	var out []Application
	for _, a := range m.items {
		if a.OwnerID != ownerID {
			continue
		}
		if status != "" && a.Status != status {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

func (m *memRepo) UpdateStatus(_ context.Context, ownerID, id uuid.UUID, status Status, updatedAt time.Time) error {
	a, ok := m.items[id]
	if !ok || a.OwnerID != ownerID {
		return ErrNotFound
	}
	a.Status = status
	a.UpdatedAt = updatedAt
	m.items[id] = a
	return nil
}

func (m *memRepo) CountByStatus(_ context.Context, ownerID uuid.UUID) (map[Status]int, error) {
	out := map[Status]int{}
	for _, a := range m.items {
		if a.OwnerID == ownerID {
			out[a.Status]++
		}
	}
	return out, nil
}

func TestApply(t *testing.T) {
	repo := newMemRepo()
	svc := NewService(repo)
	owner := uuid.New()

	a, err := svc.Apply(context.Background(), owner, "Frontend Developer", uuid.Nil, 85)
	require.NoError(t, err)
	require.Equal(t, StatusApplied, a.Status)
	require.Equal(t, 85, a.AIScore)
	require.Len(t, repo.items, 1)

	_, err = svc.Apply(context.Background(), owner, "   ", uuid.Nil, 0)
	require.ErrorIs(t, err, ErrPositionRequired)
}

func TestListStatusFilter(t *testing.T) {
	repo := newMemRepo()
	svc := NewService(repo)
	owner := uuid.New()

	_, err := svc.Apply(context.Background(), owner, "Dev", uuid.Nil, 0)
	require.NoError(t, err)

	all, err := svc.List(context.Background(), owner, "", 50, 0)
	require.NoError(t, err)
	require.Len(t, all, 1)

	none, err := svc.List(context.Background(), owner, "Interview", 50, 0)
	require.NoError(t, err)
	require.Empty(t, none)

	_, err = svc.List(context.Background(), owner, "bogus", 50, 0)
	require.ErrorIs(t, err, ErrInvalidStatus)
}

func TestWithdraw(t *testing.T) {
	repo := newMemRepo()
	svc := NewService(repo)
	owner := uuid.New()

	a, err := svc.Apply(context.Background(), owner, "Dev", uuid.Nil, 0)
	require.NoError(t, err)

	withdrawn, err := svc.Withdraw(context.Background(), owner, a.ID)
	require.NoError(t, err)
	require.Equal(t, StatusWithdrawn, withdrawn.Status)

	// already terminal
	_, err = svc.Withdraw(context.Background(), owner, a.ID)
	require.ErrorIs(t, err, ErrCannotWithdraw)

	// not the owner
	_, err = svc.Withdraw(context.Background(), uuid.New(), a.ID)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestStats(t *testing.T) {
	repo := newMemRepo()
	svc := NewService(repo)
	owner := uuid.New()

	for _, st := range []Status{StatusScreening, StatusScreening, StatusInterview, StatusHired, StatusApplied} {
		a := Application{ID: uuid.New(), OwnerID: owner, Position: "Dev", Status: st}
		require.NoError(t, repo.Create(context.Background(), a))
	}

	stats, err := svc.Stats(context.Background(), owner)
	require.NoError(t, err)
	require.Equal(t, Stats{Total: 5, Screening: 2, Interview: 1, Hired: 1}, stats)
}
