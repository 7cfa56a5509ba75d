package app

import (
	"context"
	"strings"
	"testing"

	"rentaid/internal/common"
)

func TestSearchRejectsBlankTerm(t *testing.T) {
	repo := newFakeRepo()
	service := NewAdminService(repo)

	for _, term := range []string{"", "   ", "\t"} {
		_, err := service.Search(context.Background(), term)
		if !common.Is(err, common.CodeValidation) {
			t.Fatalf("expected validation error for %q, got %v", term, err)
		}
	}
	if repo.searched {
		t.Fatal("expected blank terms to never reach the repository")
	}
}

func TestSearchTrimsTerm(t *testing.T) {
	repo := newFakeRepo()
	service := NewAdminService(repo)

	if _, err := service.Search(context.Background(), "  spring  "); err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if !repo.searched {
		t.Fatal("expected search to reach the repository")
	}
}

func TestDeletePassesThroughNotFound(t *testing.T) {
	service := NewAdminService(newFakeRepo())
	err := service.Delete(context.Background(), 7)
	if !common.Is(err, common.CodeNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if !strings.Contains(err.Error(), "not found") {
		t.Fatalf("unexpected message: %v", err)
	}
}
