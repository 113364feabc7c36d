package service

import (
	"context"

	"github.com/alexkharrod/webapps/movies/internal/model"
	movieRepo "github.com/alexkharrod/webapps/movies/internal/repository"
	"github.com/alexkharrod/webapps/movies/internal/tmdb"
	"go.uber.org/zap"
)

// Metadata is the slice of the external movie API the service needs.
type Metadata interface {
	Search(ctx context.Context, query string) ([]tmdb.Candidate, error)
	Detail(ctx context.Context, id int) (tmdb.Detail, error)
	PosterURL(path string) string
}

type Service struct {
	log      *zap.Logger
	repo     movieRepo.Repository
	metadata Metadata
}

func NewService(repo movieRepo.Repository, metadata Metadata, log *zap.Logger) *Service {
	return &Service{
		log:      log,
		repo:     repo,
		metadata: metadata,
	}
}

// ListMovies reads the full collection and recomputes the dense ranking as a
// write-back, so the stored ranking always tracks the current rating set.
// Every full read pays the write cost; acceptable at this scale.
func (s *Service) ListMovies(ctx context.Context) ([]model.Movie, error) {
	movies, err := s.repo.ListMovies(ctx)
	if err != nil {
		return nil, err
	}
	ranked := model.Rank(movies)
	if err := s.repo.SaveRankings(ctx, ranked); err != nil {
		return nil, err
	}
	return ranked, nil
}

func (s *Service) SearchMovies(ctx context.Context, title string) ([]tmdb.Candidate, error) {
	return s.metadata.Search(ctx, title)
}

// CreateFromExternal fetches the detail payload for externalID and inserts a
// draft record with neutral rating/ranking/review, pending a later edit. A
// failed or malformed lookup fails the whole create.
func (s *Service) CreateFromExternal(ctx context.Context, externalID int) (int, error) {
	detail, err := s.metadata.Detail(ctx, externalID)
	if err != nil {
		return 0, err
	}

	movie := model.Movie{
		Title:       detail.Title,
		Year:        detail.Year(),
		Description: detail.Overview,
		ImgURL:      s.metadata.PosterURL(detail.PosterPath),
	}
	return s.repo.CreateMovie(ctx, movie)
}

func (s *Service) GetMovie(ctx context.Context, id int) (model.Movie, error) {
	return s.repo.GetMovie(ctx, id)
}

func (s *Service) UpdateReview(ctx context.Context, id int, rating float64, review string) (model.Movie, error) {
	return s.repo.UpdateReview(ctx, id, rating, review)
}

func (s *Service) DeleteMovie(ctx context.Context, id int) error {
	return s.repo.DeleteMovie(ctx, id)
}
