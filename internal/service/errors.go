package service

import (
	"errors"

	"leadhub/internal/apperr"
	"leadhub/internal/models"
	"leadhub/internal/store"
)

// translate turns store sentinels into domain errors. Unrecognised errors
// are returned unchanged and end up as 500s.
func translate(err error, notFound, conflict string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, store.ErrNotFound), errors.Is(err, store.ErrReferenceMissing):
		return apperr.Wrap(apperr.KindNotFound, notFound, err)
	case errors.Is(err, store.ErrDuplicate) && conflict != "":
		return apperr.Wrap(apperr.KindConflict, conflict, err)
	}
	return err
}

func errPageOutOfRange(params models.PaginationParams) error {
	return apperr.Validation("page is out of range").WithDetails(map[string]interface{}{"page": params.Page})
}
