package services

import (
	"errors"

	"github.com/jackc/pgx/v4"

	"github.com/plazacomercial/locales-service/internal/utils"
)

// translateRepoErr maps repository failures onto AppErrors. entity is
// used in the public message ("Zona not found").
func translateRepoErr(err error, entity string) error {
	var appErr *utils.AppError
	switch {
	case err == nil:
		return nil
	case errors.As(err, &appErr):
		return err
	case errors.Is(err, pgx.ErrNoRows):
		return utils.NewNotFoundError(entity + " not found")
	case errors.Is(err, utils.ErrRowVersionConflict):
		return utils.NewRowVersionConflictError(err)
	case utils.IsUniqueViolation(err):
		return utils.NewConflictError(entity+" already exists", err)
	case utils.IsForeignKeyViolation(err):
		return utils.NewConflictError(entity+" is referenced by other records", err)
	default:
		return utils.NewInternalError("Database error", err)
	}
}
