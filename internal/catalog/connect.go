package catalog

import (
	"context"
	"database/sql"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/pgdiff/pgdiff/internal/logger"
)

// Connect opens a connection to dsn and verifies it with a ping, the same
// open-then-ping sequence the teacher's cmd/util.Connect uses, adapted to
// take a raw DSN rather than discrete host/port/user fields.
func Connect(ctx context.Context, dsn string) (*sql.DB, error) {
	log := logger.Get()
	log.Debug("connecting to database")

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, wrap("open", err)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, wrap("ping", err)
	}

	log.Debug("database connection established")
	return db, nil
}
