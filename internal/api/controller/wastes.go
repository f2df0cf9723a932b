package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/ougirez/ecotrack/internal/domain/dto"
)

func (c *Controller) CreateWaste(ctx echo.Context) error {
	request := new(dto.WasteRequest)
	if err := ctx.Bind(request); err != nil {
		return err
	}
	if err := ctx.Validate(request); err != nil {
		return err
	}

	waste, err := c.catalogService.CreateWaste(ctx.Request().Context(), request, actorID(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, waste)
}

func (c *Controller) GetWaste(ctx echo.Context) error {
	id, err := idParam(ctx, "id")
	if err != nil {
		return err
	}

	waste, err := c.catalogService.GetWaste(ctx.Request().Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, waste)
}

func (c *Controller) ListWastes(ctx echo.Context) error {
	wastes, err := c.catalogService.ListWastes(ctx.Request().Context())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, wastes)
}

func (c *Controller) UpdateWaste(ctx echo.Context) error {
	id, err := idParam(ctx, "id")
	if err != nil {
		return err
	}

	request := new(dto.WasteRequest)
	if err := ctx.Bind(request); err != nil {
		return err
	}
	if err := ctx.Validate(request); err != nil {
		return err
	}

	waste, err := c.catalogService.UpdateWaste(ctx.Request().Context(), id, request, actorID(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, waste)
}

func (c *Controller) DeleteWaste(ctx echo.Context) error {
	id, err := idParam(ctx, "id")
	if err != nil {
		return err
	}

	if err := c.catalogService.DeleteWaste(ctx.Request().Context(), id, actorID(ctx)); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}
