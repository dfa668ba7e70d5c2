package profile

import (
	"context"
	"testing"

	"medisafe-companion/internal/ports/storage"
)

type testRepo struct {
	p       *Profile
	creates int
}

func (r *testRepo) Get(ctx context.Context) (Profile, error) {
	if r.p == nil {
		return Profile{}, storage.ErrNotFound
	}
	return *r.p, nil
}

func (r *testRepo) Create(ctx context.Context, p Profile) (int64, error) {
	r.creates++
	p.ID = 1
	r.p = &p
	return 1, nil
}

func (r *testRepo) Update(ctx context.Context, p Profile) error {
	r.p = &p
	return nil
}

func TestGet_CreatesDefaultsOnce(t *testing.T) {
	repo := &testRepo{}
	svc := NewService(repo)

	p, err := svc.Get(context.Background())
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if p.Name != DefaultName || p.Condition != DefaultCondition || p.ID != 1 {
		t.Fatalf("unexpected defaults: %+v", p)
	}

	if _, err := svc.Get(context.Background()); err != nil {
		t.Fatalf("get again: %v", err)
	}
	if repo.creates != 1 {
		t.Fatalf("expected a single create, got %d", repo.creates)
	}
}

func TestUpdate_ReplacesAllFields(t *testing.T) {
	repo := &testRepo{}
	svc := NewService(repo)

	_, err := svc.Update(context.Background(), UpdateInput{Name: " Ana ", Condition: "Hypertension"})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if repo.p.Name != "Ana" || repo.p.Condition != "Hypertension" || repo.p.DoctorNotes != "" {
		t.Fatalf("unexpected profile: %+v", *repo.p)
	}
}
