package handler

import (
	"net/http"
	"time"

	"slotwise/internal/delivery/api/middleware"
	"slotwise/internal/domain/entity"
	domainerrors "slotwise/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

var errInvalidInput = domainerrors.NewBaseError(
	http.StatusBadRequest,
	"INVALID_INPUT",
	"request could not be decoded",
)

// bindAndValidate decodes the request into req and runs struct validation.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return errInvalidInput
	}

	return c.Validate(req)
}

func shopOf(c echo.Context) (string, error) {
	shopID, ok := middleware.GetShopID(c)
	if !ok {
		return "", domainerrors.ErrUnauthorized
	}

	return shopID, nil
}

// coordinate pairs optional latitude and longitude. Either missing means no
// coordinate was given.
func coordinate(lat, lng *float64) *entity.Coordinate {
	if lat == nil || lng == nil {
		return nil
	}

	return &entity.Coordinate{Lat: *lat, Lng: *lng}
}

// optionalDate parses a YYYY-MM-DD field; empty yields nil.
func optionalDate(field, value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	d, err := entity.ParseDate(value)
	if err != nil {
		return nil, domainerrors.Invalid(field, "must be a date in "+entity.DateLayout+" format")
	}

	return &d, nil
}
