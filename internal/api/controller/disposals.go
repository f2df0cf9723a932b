package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/ougirez/ecotrack/internal/domain/dto"
)

func (c *Controller) RegisterDisposal(ctx echo.Context) error {
	request := new(dto.RegisterDisposalRequest)
	if err := ctx.Bind(request); err != nil {
		return err
	}
	if err := ctx.Validate(request); err != nil {
		return err
	}

	disposal, err := c.disposalService.Register(ctx.Request().Context(), request, actorID(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, disposal)
}

func (c *Controller) GetDisposal(ctx echo.Context) error {
	id, err := idParam(ctx, "id")
	if err != nil {
		return err
	}

	disposal, err := c.disposalService.Get(ctx.Request().Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, disposal)
}

func (c *Controller) ListDisposals(ctx echo.Context) error {
	disposals, err := c.disposalService.List(ctx.Request().Context())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, disposals)
}

func (c *Controller) UpdateDisposal(ctx echo.Context) error {
	id, err := idParam(ctx, "id")
	if err != nil {
		return err
	}

	request := new(dto.UpdateDisposalRequest)
	if err := ctx.Bind(request); err != nil {
		return err
	}
	if err := ctx.Validate(request); err != nil {
		return err
	}

	disposal, err := c.disposalService.Update(ctx.Request().Context(), id, request, actorID(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, disposal)
}

func (c *Controller) DeleteDisposal(ctx echo.Context) error {
	id, err := idParam(ctx, "id")
	if err != nil {
		return err
	}

	if err := c.disposalService.Delete(ctx.Request().Context(), id, actorID(ctx)); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}
