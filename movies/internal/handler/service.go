package handler

import (
	"context"

	"github.com/alexkharrod/webapps/movies/internal/model"
	"github.com/alexkharrod/webapps/movies/internal/service"
	"github.com/alexkharrod/webapps/movies/internal/tmdb"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go -package=mocks

type MovieService interface {
	ListMovies(ctx context.Context) ([]model.Movie, error)
	SearchMovies(ctx context.Context, title string) ([]tmdb.Candidate, error)
	CreateFromExternal(ctx context.Context, externalID int) (int, error)
	GetMovie(ctx context.Context, id int) (model.Movie, error)
	UpdateReview(ctx context.Context, id int, rating float64, review string) (model.Movie, error)
	DeleteMovie(ctx context.Context, id int) error
}

var _ MovieService = (*service.Service)(nil)
