package app

import (
	"context"
	"strings"

	"rentaid/internal/common"
	"rentaid/internal/domain/application"
)

// AdminService exposes the read/search/delete/stats operations behind the
// admin gate. It adds no logic beyond argument checks and shaping.
type AdminService struct {
	repo application.Repository
}

func NewAdminService(repo application.Repository) *AdminService {
	return &AdminService{repo: repo}
}

func (s *AdminService) List(ctx context.Context) ([]application.Application, error) {
	return s.repo.List(ctx)
}

func (s *AdminService) Get(ctx context.Context, id int64) (*application.Application, error) {
	return s.repo.GetByID(ctx, id)
}

// Search requires a non-empty term; a blank term is a client error, not a
// match-all.
func (s *AdminService) Search(ctx context.Context, term string) ([]application.Application, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, common.NewValidationError("search query required", map[string]string{"q": "required"})
	}
	return s.repo.Search(ctx, term)
}

func (s *AdminService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *AdminService) Stats(ctx context.Context) (*application.Stats, error) {
	return s.repo.Stats(ctx)
}
