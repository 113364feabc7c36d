package service_test

import (
	"context"
	"testing"

	"github.com/alexkharrod/webapps/movies/internal/errs"
	"github.com/alexkharrod/webapps/movies/internal/model"
	"github.com/alexkharrod/webapps/movies/internal/service"
	"github.com/alexkharrod/webapps/movies/internal/tmdb"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeRepo struct {
	movies     []model.Movie
	created    []model.Movie
	savedRanks []model.Movie
	createErr  error
	nextID     int
}

func (f *fakeRepo) CreateMovie(_ context.Context, m model.Movie) (int, error) {
	if f.createErr != nil {
		return 0, f.createErr
	}
	f.nextID++
	m.ID = f.nextID
	f.created = append(f.created, m)
	return m.ID, nil
}

func (f *fakeRepo) GetMovie(_ context.Context, id int) (model.Movie, error) {
	for _, m := range f.movies {
		if m.ID == id {
			return m, nil
		}
	}
	return model.Movie{}, errs.ErrNotFound
}

func (f *fakeRepo) ListMovies(_ context.Context) ([]model.Movie, error) {
	out := make([]model.Movie, len(f.movies))
	copy(out, f.movies)
	return out, nil
}

func (f *fakeRepo) UpdateReview(_ context.Context, id int, rating float64, review string) (model.Movie, error) {
	for i := range f.movies {
		if f.movies[i].ID == id {
			f.movies[i].Rating = rating
			f.movies[i].Review = review
			return f.movies[i], nil
		}
	}
	return model.Movie{}, errs.ErrNotFound
}

func (f *fakeRepo) DeleteMovie(_ context.Context, id int) error {
	for i := range f.movies {
		if f.movies[i].ID == id {
			f.movies = append(f.movies[:i], f.movies[i+1:]...)
			return nil
		}
	}
	return errs.ErrNotFound
}

func (f *fakeRepo) SaveRankings(_ context.Context, movies []model.Movie) error {
	f.savedRanks = append([]model.Movie(nil), movies...)
	return nil
}

type fakeMetadata struct {
	detail    tmdb.Detail
	detailErr error
}

func (f *fakeMetadata) Search(context.Context, string) ([]tmdb.Candidate, error) { return nil, nil }
func (f *fakeMetadata) Detail(context.Context, int) (tmdb.Detail, error) {
	return f.detail, f.detailErr
}
func (f *fakeMetadata) PosterURL(path string) string {
	if path == "" {
		return ""
	}
	return "https://image.tmdb.org/t/p/w500" + path
}

func TestService_ListMovies_RanksAndWritesBack(t *testing.T) {
	t.Parallel()
	repo := &fakeRepo{movies: []model.Movie{
		{ID: 1, Title: "Heat", Rating: 9.1},
		{ID: 2, Title: "Alien", Rating: 8.5},
	}}
	svc := service.NewService(repo, &fakeMetadata{}, zap.NewExample())

	got, err := svc.ListMovies(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, got[0].Ranking)
	require.Equal(t, 2, got[1].Ranking)
	require.Equal(t, got, repo.savedRanks)
}

func TestService_CreateFromExternal(t *testing.T) {
	t.Parallel()

	t.Run("ok with neutral defaults", func(t *testing.T) {
		t.Parallel()
		repo := &fakeRepo{}
		svc := service.NewService(repo, &fakeMetadata{detail: tmdb.Detail{
			Title:       "The Matrix",
			Overview:    "A hacker learns the truth.",
			ReleaseDate: "1999-03-30",
			PosterPath:  "/matrix.jpg",
		}}, zap.NewExample())

		id, err := svc.CreateFromExternal(context.Background(), 603)
		require.NoError(t, err)
		require.Equal(t, 1, id)
		require.Len(t, repo.created, 1)

		m := repo.created[0]
		require.Equal(t, "The Matrix", m.Title)
		require.Equal(t, 1999, m.Year)
		require.Equal(t, "https://image.tmdb.org/t/p/w500/matrix.jpg", m.ImgURL)
		require.Zero(t, m.Rating)
		require.Zero(t, m.Ranking)
		require.Empty(t, m.Review)
	})

	t.Run("err lookup failure creates nothing", func(t *testing.T) {
		t.Parallel()
		repo := &fakeRepo{}
		svc := service.NewService(repo, &fakeMetadata{detailErr: errs.ErrExternalLookup}, zap.NewExample())

		_, err := svc.CreateFromExternal(context.Background(), 603)
		require.ErrorIs(t, err, errs.ErrExternalLookup)
		require.Empty(t, repo.created)
	})
}
