package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/ougirez/ecotrack/internal/domain/dto"
)

func (c *Controller) GetUser(ctx echo.Context) error {
	id, err := idParam(ctx, "id")
	if err != nil {
		return err
	}

	user, err := c.userService.Get(ctx.Request().Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, user)
}

func (c *Controller) ListUsers(ctx echo.Context) error {
	users, err := c.userService.List(ctx.Request().Context())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, users)
}

func (c *Controller) UpdateUserProfile(ctx echo.Context) error {
	id, err := idParam(ctx, "id")
	if err != nil {
		return err
	}

	request := new(dto.UpdateProfileRequest)
	if err := ctx.Bind(request); err != nil {
		return err
	}
	if err := ctx.Validate(request); err != nil {
		return err
	}

	user, err := c.userService.UpdateProfile(ctx.Request().Context(), id, request, actorID(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, user)
}

func (c *Controller) UpdateUserPassword(ctx echo.Context) error {
	id, err := idParam(ctx, "id")
	if err != nil {
		return err
	}

	request := new(dto.UpdatePasswordRequest)
	if err := ctx.Bind(request); err != nil {
		return err
	}
	if err := ctx.Validate(request); err != nil {
		return err
	}

	if err := c.userService.UpdatePassword(ctx.Request().Context(), id, request, actorID(ctx)); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (c *Controller) UploadProfilePhoto(ctx echo.Context) error {
	id, err := idParam(ctx, "id")
	if err != nil {
		return err
	}

	request := new(dto.UploadProfilePhotoRequest)
	if err := ctx.Bind(request); err != nil {
		return err
	}
	if err := ctx.Validate(request); err != nil {
		return err
	}

	user, err := c.userService.UploadProfilePhoto(ctx.Request().Context(), id, request, actorID(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, user)
}

func (c *Controller) DeleteUser(ctx echo.Context) error {
	id, err := idParam(ctx, "id")
	if err != nil {
		return err
	}

	if err := c.userService.Delete(ctx.Request().Context(), id, actorID(ctx)); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}
