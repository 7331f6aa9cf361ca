package service

import (
	"errors"
	"fmt"

	"github.com/tuanvumaihuynh/invoicing-api/internal/apperr"
	"github.com/tuanvumaihuynh/invoicing-api/internal/repository"
	"github.com/tuanvumaihuynh/invoicing-api/internal/storage/table"
	"github.com/tuanvumaihuynh/invoicing-api/pkg/validator"
	"github.com/tuanvumaihuynh/invoicing-api/pkg/zerror"
)

// storageErr turns repository outcomes into application errors: no match
// becomes notFound and constraint violations become a conflict. Other faults
// are wrapped with op.
func storageErr(op string, err error, notFound zerror.ZError) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return notFound.WrapParent(err)
	case errors.Is(err, table.ErrConflict):
		return apperr.ConflictErr.WrapParent(err)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}

func validate(v validator.Validator, params any) error {
	if err := v.Validate(params); err != nil {
		return apperr.ValidationErr.WrapParent(err)
	}
	return nil
}
