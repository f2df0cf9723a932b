package store

import (
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/ougirez/ecotrack/internal/pkg/constants"
)

const (
	tableUsers      = "users"
	tableAreas      = "area"
	tableLocations  = "location"
	tableWasteTypes = "waste_type"
	tableWastes     = "waste"
	tableDisposals  = "user_waste"
	tableAuditLog   = "audit_log"
)

var mapping = map[error]error{pgx.ErrNoRows: constants.ErrDBNotFound}

func wrapErr(err error) error {
	for k, v := range mapping {
		if errors.Is(err, k) {
			return v
		}
	}
	return err
}

// builder returns a squirrel builder with Postgres placeholders.
func builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}
