package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/alexkharrod/webapps/movies/internal/errs"
	"github.com/alexkharrod/webapps/movies/internal/model"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"

	sq "github.com/Masterminds/squirrel"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

type Repository interface {
	CreateMovie(ctx context.Context, movie model.Movie) (int, error)
	GetMovie(ctx context.Context, id int) (model.Movie, error)
	ListMovies(ctx context.Context) ([]model.Movie, error)
	UpdateReview(ctx context.Context, id int, rating float64, review string) (model.Movie, error)
	DeleteMovie(ctx context.Context, id int) error
	SaveRankings(ctx context.Context, movies []model.Movie) error
}

type repository struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewRepository(db *sqlx.DB, log *zap.Logger) (*repository, error) {
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

const (
	movieTableName = `movie`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var movieColumns = []string{
	"id", "title", "year", "description", "rating", "ranking", "review", "img_url",
}

func (r *repository) CreateMovie(ctx context.Context, movie model.Movie) (int, error) {
	q, args, err := qb.Insert(movieTableName).
		Columns("title", "year", "description", "rating", "ranking", "review", "img_url").
		Values(movie.Title, movie.Year, movie.Description, movie.Rating, movie.Ranking, movie.Review, movie.ImgURL).
		Suffix("returning id").
		ToSql()
	if err != nil {
		return 0, err
	}

	var id int
	if err := r.db.QueryRowContext(ctx, q, args...).Scan(&id); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return 0, errs.ErrUniqueViolation
		}
		r.log.Error("CreateMovie", zap.String("q", q), zap.Any("args", args))
		return 0, err
	}
	return id, nil
}

func (r *repository) GetMovie(ctx context.Context, id int) (model.Movie, error) {
	q, args, err := qb.Select(movieColumns...).
		From(movieTableName).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return model.Movie{}, err
	}

	var movie model.Movie
	if err := r.db.GetContext(ctx, &movie, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Movie{}, errs.ErrNotFound
		}
		return model.Movie{}, err
	}
	return movie, nil
}

// ListMovies returns the whole collection ordered by rating descending.
// Ordering ties by id keeps equal ratings in insertion order.
func (r *repository) ListMovies(ctx context.Context) ([]model.Movie, error) {
	q, args, err := qb.Select(movieColumns...).
		From(movieTableName).
		OrderBy("rating desc", "id").
		ToSql()
	if err != nil {
		return nil, err
	}

	var movies []model.Movie
	if err := r.db.SelectContext(ctx, &movies, q, args...); err != nil {
		return nil, err
	}
	return movies, nil
}

func (r *repository) UpdateReview(ctx context.Context, id int, rating float64, review string) (model.Movie, error) {
	q, args, err := qb.Update(movieTableName).
		Set("rating", rating).
		Set("review", review).
		Where(sq.Eq{"id": id}).
		Suffix("returning " + strings.Join(movieColumns, ", ")).
		ToSql()
	if err != nil {
		return model.Movie{}, err
	}

	var movie model.Movie
	if err := r.db.GetContext(ctx, &movie, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Movie{}, errs.ErrNotFound
		}
		r.log.Error("UpdateReview", zap.String("q", q), zap.Any("args", args))
		return model.Movie{}, err
	}
	return movie, nil
}

func (r *repository) DeleteMovie(ctx context.Context, id int) error {
	q, args, err := qb.Delete(movieTableName).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, q, args...)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return errs.ErrNotFound
	}
	return nil
}

// SaveRankings writes the derived rankings back, one row at a time. The
// value is recomputed on every full read, so a torn write between two
// concurrent readers converges on the next read.
func (r *repository) SaveRankings(ctx context.Context, movies []model.Movie) error {
	for _, m := range movies {
		q, args, err := qb.Update(movieTableName).
			Set("ranking", m.Ranking).
			Where(sq.Eq{"id": m.ID}).
			ToSql()
		if err != nil {
			return err
		}
		if _, err := r.db.ExecContext(ctx, q, args...); err != nil {
			return errors.Wrapf(err, "save ranking for movie %d", m.ID)
		}
	}
	return nil
}
