package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/alexkharrod/webapps/cafe/internal/errs"
	"github.com/alexkharrod/webapps/cafe/internal/model"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"

	sq "github.com/Masterminds/squirrel"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

type Repository interface {
	CreateCafe(ctx context.Context, cafe model.Cafe) (int, error)
	GetCafe(ctx context.Context, id int) (model.Cafe, error)
	ListCafes(ctx context.Context, location string) ([]model.Cafe, error)
	RandomCafe(ctx context.Context) (model.Cafe, error)
	UpdatePrice(ctx context.Context, id int, price string) (model.Cafe, error)
	DeleteCafe(ctx context.Context, id int) error
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
	cafeTableName = `cafe`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var cafeColumns = []string{
	"id", "name", "map_url", "img_url", "location", "seats",
	"has_toilet", "has_wifi", "has_sockets", "can_take_calls", "coffee_price",
}

func (r *repository) CreateCafe(ctx context.Context, cafe model.Cafe) (int, error) {
	q, args, err := qb.Insert(cafeTableName).
		Columns("name", "map_url", "img_url", "location", "seats",
			"has_toilet", "has_wifi", "has_sockets", "can_take_calls", "coffee_price").
		Values(cafe.Name, cafe.MapURL, cafe.ImgURL, cafe.Location, cafe.Seats,
			cafe.HasToilet, cafe.HasWifi, cafe.HasSockets, cafe.CanTakeCalls, cafe.CoffeePrice).
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
		r.log.Error("CreateCafe", zap.String("q", q), zap.Any("args", args))
		return 0, err
	}
	return id, nil
}

func (r *repository) GetCafe(ctx context.Context, id int) (model.Cafe, error) {
	q, args, err := qb.Select(cafeColumns...).
		From(cafeTableName).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return model.Cafe{}, err
	}

	var cafe model.Cafe
	if err := r.db.GetContext(ctx, &cafe, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Cafe{}, errs.ErrNotFound
		}
		return model.Cafe{}, err
	}
	return cafe, nil
}

// ListCafes lists every cafe, or only those at location when it is set.
// Zero matches is an empty slice, not an error.
func (r *repository) ListCafes(ctx context.Context, location string) ([]model.Cafe, error) {
	q := qb.Select(cafeColumns...).
		From(cafeTableName).
		OrderBy("id")
	if location != "" {
		q = q.Where(sq.Eq{"location": location})
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}

	var cafes []model.Cafe
	if err := r.db.SelectContext(ctx, &cafes, query, args...); err != nil {
		return nil, err
	}
	return cafes, nil
}

func (r *repository) RandomCafe(ctx context.Context) (model.Cafe, error) {
	q, args, err := qb.Select(cafeColumns...).
		From(cafeTableName).
		OrderBy("random()").
		Limit(1).
		ToSql()
	if err != nil {
		return model.Cafe{}, err
	}

	var cafe model.Cafe
	if err := r.db.GetContext(ctx, &cafe, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Cafe{}, errs.ErrNotFound
		}
		return model.Cafe{}, err
	}
	return cafe, nil
}

func (r *repository) UpdatePrice(ctx context.Context, id int, price string) (model.Cafe, error) {
	q, args, err := qb.Update(cafeTableName).
		Set("coffee_price", price).
		Where(sq.Eq{"id": id}).
		Suffix("returning " + strings.Join(cafeColumns, ", ")).
		ToSql()
	if err != nil {
		return model.Cafe{}, err
	}

	var cafe model.Cafe
	if err := r.db.GetContext(ctx, &cafe, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Cafe{}, errs.ErrNotFound
		}
		r.log.Error("UpdatePrice", zap.String("q", q), zap.Any("args", args))
		return model.Cafe{}, err
	}
	return cafe, nil
}

func (r *repository) DeleteCafe(ctx context.Context, id int) error {
	q, args, err := qb.Delete(cafeTableName).
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
