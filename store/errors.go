package store

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	pkgerrors "github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Sentinel errors returned by the store layer. Callers branch on these to
// decide status codes and messaging; anything else is a store failure
// (connectivity, query error) wrapped with context.
var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate record")
)

const pgUniqueViolation = "23505"

// translate maps a gorm/driver error onto the store taxonomy and logs it.
// "No data" and "store failed" stay distinguishable all the way up. The
// postgres driver is pgx, so unique violations arrive as *pgconn.PgError.
func translate(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		log.WithField("op", op).WithError(err).Warn("unique constraint violation")
		return ErrDuplicate
	}
	log.WithField("op", op).WithError(err).Error("store operation failed")
	return pkgerrors.Wrap(err, op)
}
