package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Binder wraps echo's default binder so malformed payloads come back as 400s
// through the central error handler.
type Binder struct {
	base echo.DefaultBinder
}

func NewBinder() *Binder {
	return &Binder{}
}

func (b *Binder) Bind(i interface{}, c echo.Context) error {
	if err := b.base.Bind(i, c); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}
