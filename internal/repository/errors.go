package repository

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"

	appErrors "github.com/noah-isme/examdesk-api/pkg/errors"
)

// classify maps a driver failure onto the application error taxonomy.
// Missing rows become NotFound, data and integrity violations become
// Validation and everything else is reported as a Backend failure.
func classify(err error, op string) error {
	if err == nil {
		return nil
	}
	var appErr *appErrors.Error
	if errors.As(err, &appErr) {
		return err
	}
	if errors.Is(err, sql.ErrNoRows) {
		return appErrors.WrapAs(appErrors.ErrNotFound, err, op+": not found")
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code.Class() {
		case "22", "23":
			return appErrors.WrapAs(appErrors.ErrValidation, err, op+": invalid payload")
		}
	}
	return appErrors.WrapAs(appErrors.ErrBackend, err, op)
}
