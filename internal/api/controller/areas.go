package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/ougirez/ecotrack/internal/domain/dto"
)

func (c *Controller) CreateArea(ctx echo.Context) error {
	request := new(dto.AreaRequest)
	if err := ctx.Bind(request); err != nil {
		return err
	}
	if err := ctx.Validate(request); err != nil {
		return err
	}

	area, err := c.catalogService.CreateArea(ctx.Request().Context(), request, actorID(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, area)
}

func (c *Controller) GetArea(ctx echo.Context) error {
	id, err := idParam(ctx, "id")
	if err != nil {
		return err
	}

	area, err := c.catalogService.GetArea(ctx.Request().Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, area)
}

func (c *Controller) ListAreas(ctx echo.Context) error {
	areas, err := c.catalogService.ListAreas(ctx.Request().Context())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, areas)
}

func (c *Controller) UpdateArea(ctx echo.Context) error {
	id, err := idParam(ctx, "id")
	if err != nil {
		return err
	}

	request := new(dto.AreaRequest)
	if err := ctx.Bind(request); err != nil {
		return err
	}
	if err := ctx.Validate(request); err != nil {
		return err
	}

	area, err := c.catalogService.UpdateArea(ctx.Request().Context(), id, request, actorID(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, area)
}

func (c *Controller) DeleteArea(ctx echo.Context) error {
	id, err := idParam(ctx, "id")
	if err != nil {
		return err
	}

	if err := c.catalogService.DeleteArea(ctx.Request().Context(), id, actorID(ctx)); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}
