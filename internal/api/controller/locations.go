package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/ougirez/ecotrack/internal/domain/dto"
)

func (c *Controller) CreateLocation(ctx echo.Context) error {
	request := new(dto.LocationRequest)
	if err := ctx.Bind(request); err != nil {
		return err
	}
	if err := ctx.Validate(request); err != nil {
		return err
	}

	location, err := c.catalogService.CreateLocation(ctx.Request().Context(), request, actorID(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, location)
}

func (c *Controller) GetLocation(ctx echo.Context) error {
	id, err := idParam(ctx, "id")
	if err != nil {
		return err
	}

	location, err := c.catalogService.GetLocation(ctx.Request().Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, location)
}

func (c *Controller) ListLocations(ctx echo.Context) error {
	locations, err := c.catalogService.ListLocations(ctx.Request().Context())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, locations)
}

func (c *Controller) UpdateLocation(ctx echo.Context) error {
	id, err := idParam(ctx, "id")
	if err != nil {
		return err
	}

	request := new(dto.LocationRequest)
	if err := ctx.Bind(request); err != nil {
		return err
	}
	if err := ctx.Validate(request); err != nil {
		return err
	}

	location, err := c.catalogService.UpdateLocation(ctx.Request().Context(), id, request, actorID(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, location)
}

func (c *Controller) DeleteLocation(ctx echo.Context) error {
	id, err := idParam(ctx, "id")
	if err != nil {
		return err
	}

	if err := c.catalogService.DeleteLocation(ctx.Request().Context(), id, actorID(ctx)); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}
