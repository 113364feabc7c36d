package service

import (
	"context"

	"github.com/alexkharrod/webapps/cafe/internal/model"
	cafeRepo "github.com/alexkharrod/webapps/cafe/internal/repository"
	"go.uber.org/zap"
)

type Service struct {
	log         *zap.Logger
	repo        cafeRepo.Repository
	adminAPIKey string
}

func NewService(repo cafeRepo.Repository, adminAPIKey string, log *zap.Logger) *Service {
	return &Service{
		log:         log,
		repo:        repo,
		adminAPIKey: adminAPIKey,
	}
}

func (s *Service) CreateCafe(ctx context.Context, cafe model.Cafe) (int, error) {
	return s.repo.CreateCafe(ctx, cafe)
}

func (s *Service) GetCafe(ctx context.Context, id int) (model.Cafe, error) {
	return s.repo.GetCafe(ctx, id)
}

func (s *Service) ListCafes(ctx context.Context, location string) ([]model.Cafe, error) {
	return s.repo.ListCafes(ctx, location)
}

func (s *Service) RandomCafe(ctx context.Context) (model.Cafe, error) {
	return s.repo.RandomCafe(ctx)
}

func (s *Service) UpdatePrice(ctx context.Context, id int, price string) (model.Cafe, error) {
	return s.repo.UpdatePrice(ctx, id, price)
}

func (s *Service) DeleteCafe(ctx context.Context, id int) error {
	return s.repo.DeleteCafe(ctx, id)
}

// Authorize compares the caller-supplied key against the configured admin
// key. One static shared secret is the whole security model here: no
// rotation, no scoping, no rate limit.
func (s *Service) Authorize(candidate string) bool {
	return candidate != "" && candidate == s.adminAPIKey
}
