package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/babycare/store-api/internal/core/domain"
)

type stubOrderRepo struct {
	docs         []domain.Document
	updateResult *domain.UpdateResult
	insertErr    error
	updateErr    error
	inserted     []domain.Document
	updatedID    string
	updatedTo    string
}

func (r *stubOrderRepo) Insert(_ context.Context, doc domain.Document) (*domain.InsertResult, error) {
	if r.insertErr != nil {
		return nil, r.insertErr
	}
	r.inserted = append(r.inserted, doc)
	return &domain.InsertResult{InsertedID: "64f000000000000000000042"}, nil
}

func (r *stubOrderRepo) FindAll(_ context.Context) ([]domain.Document, error) {
	return r.docs, nil
}

func (r *stubOrderRepo) UpdateStatus(_ context.Context, id, status string) (*domain.UpdateResult, error) {
	if r.updateErr != nil {
		return nil, r.updateErr
	}
	r.updatedID = id
	r.updatedTo = status
	return r.updateResult, nil
}

func TestOrderService_Create(t *testing.T) {
	repo := &stubOrderRepo{}
	svc := NewOrderService(repo, zerolog.Nop())

	result, err := svc.Create(context.Background(), domain.Document{"item": "Bottle"})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if result.InsertedID == "" {
		t.Fatalf("expected inserted id")
	}
	if len(repo.inserted) != 1 || repo.inserted[0]["item"] != "Bottle" {
		t.Fatalf("document not stored verbatim: %+v", repo.inserted)
	}
}

func TestOrderService_List(t *testing.T) {
	repo := &stubOrderRepo{docs: []domain.Document{{"item": "Bottle"}, {"item": "Bib"}}}
	svc := NewOrderService(repo, zerolog.Nop())

	orders, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(orders) != 2 {
		t.Fatalf("expected 2 orders, got %d", len(orders))
	}
}

func TestOrderService_UpdateStatus(t *testing.T) {
	repo := &stubOrderRepo{updateResult: &domain.UpdateResult{MatchedCount: 1, ModifiedCount: 1}}
	svc := NewOrderService(repo, zerolog.Nop())

	result, err := svc.UpdateStatus(context.Background(), "64f000000000000000000042", "shipped")
	if err != nil {
		t.Fatalf("UpdateStatus returned error: %v", err)
	}
	if repo.updatedID != "64f000000000000000000042" || repo.updatedTo != "shipped" {
		t.Fatalf("unexpected update args: %s %s", repo.updatedID, repo.updatedTo)
	}
	if result.MatchedCount != 1 || result.ModifiedCount != 1 {
		t.Fatalf("unexpected result: %+v", result)
	}
}

func TestOrderService_UpdateStatus_ZeroMatchIsNotAnError(t *testing.T) {
	repo := &stubOrderRepo{updateResult: &domain.UpdateResult{}}
	svc := NewOrderService(repo, zerolog.Nop())

	result, err := svc.UpdateStatus(context.Background(), "64f0000000000000000000ff", "shipped")
	if err != nil {
		t.Fatalf("zero-match update must succeed: %v", err)
	}
	if result.MatchedCount != 0 || result.ModifiedCount != 0 {
		t.Fatalf("expected zero counts, got %+v", result)
	}
}

func TestOrderService_UpdateStatus_RepoError(t *testing.T) {
	repo := &stubOrderRepo{updateErr: errors.New("boom")}
	svc := NewOrderService(repo, zerolog.Nop())

	if _, err := svc.UpdateStatus(context.Background(), "64f000000000000000000042", "shipped"); err == nil {
		t.Fatalf("expected error")
	}
}
