package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/ougirez/ecotrack/internal/domain/dto"
)

func (c *Controller) CreateWasteType(ctx echo.Context) error {
	request := new(dto.WasteTypeRequest)
	if err := ctx.Bind(request); err != nil {
		return err
	}
	if err := ctx.Validate(request); err != nil {
		return err
	}

	wasteType, err := c.catalogService.CreateWasteType(ctx.Request().Context(), request, actorID(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, wasteType)
}

func (c *Controller) GetWasteType(ctx echo.Context) error {
	id, err := idParam(ctx, "id")
	if err != nil {
		return err
	}

	wasteType, err := c.catalogService.GetWasteType(ctx.Request().Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, wasteType)
}

func (c *Controller) ListWasteTypes(ctx echo.Context) error {
	wasteTypes, err := c.catalogService.ListWasteTypes(ctx.Request().Context())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, wasteTypes)
}

func (c *Controller) UpdateWasteType(ctx echo.Context) error {
	id, err := idParam(ctx, "id")
	if err != nil {
		return err
	}

	request := new(dto.WasteTypeRequest)
	if err := ctx.Bind(request); err != nil {
		return err
	}
	if err := ctx.Validate(request); err != nil {
		return err
	}

	wasteType, err := c.catalogService.UpdateWasteType(ctx.Request().Context(), id, request, actorID(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, wasteType)
}

func (c *Controller) DeleteWasteType(ctx echo.Context) error {
	id, err := idParam(ctx, "id")
	if err != nil {
		return err
	}

	if err := c.catalogService.DeleteWasteType(ctx.Request().Context(), id, actorID(ctx)); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}
