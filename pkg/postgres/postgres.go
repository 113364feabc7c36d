package postgres

import (
	"context"
	"embed"
	"fmt"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

type Database struct {
	Host     string `yaml:"host" envconfig:"DB_HOST" default:"localhost"`
	Port     string `yaml:"port" envconfig:"DB_PORT" default:"5432"`
	User     string `yaml:"user" envconfig:"DB_USER" default:"postgres"`
	Password string `yaml:"password" envconfig:"DB_PASSWORD" json:"-"`
	Name     string `yaml:"name" envconfig:"DB_NAME" default:"postgres"`
	SSLMode  string `yaml:"sslmode" envconfig:"DB_SSLMODE" default:"disable"`
}

func (d *Database) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

// NewPostgresDB connects through the pgx stdlib driver and applies the
// embedded DDL. The DDL files are plain `create table if not exists`
// statements, so applying them on every start is a no-op once the schema
// exists.
func NewPostgresDB(ctx context.Context, cfg *Database, schema embed.FS) (*sqlx.DB, error) {
	db, err := sqlx.ConnectContext(ctx, "pgx", cfg.DSN())
	if err != nil {
		return nil, errors.Wrap(err, "connect postgres")
	}

	entries, err := schema.ReadDir(".")
	if err != nil {
		return nil, errors.Wrap(err, "read schema dir")
	}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".sql") {
			continue
		}
		ddl, err := schema.ReadFile(e.Name())
		if err != nil {
			return nil, errors.Wrapf(err, "read schema %s", e.Name())
		}
		if _, err := db.ExecContext(ctx, string(ddl)); err != nil {
			return nil, errors.Wrapf(err, "apply schema %s", e.Name())
		}
	}

	return db, nil
}
