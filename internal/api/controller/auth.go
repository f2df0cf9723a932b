package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/ougirez/ecotrack/internal/domain/dto"
)

func (c *Controller) Signup(ctx echo.Context) error {
	request := new(dto.SignupRequest)
	if err := ctx.Bind(request); err != nil {
		return err
	}
	if err := ctx.Validate(request); err != nil {
		return err
	}

	resp, err := c.authService.Signup(ctx.Request().Context(), request)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, resp)
}

func (c *Controller) Login(ctx echo.Context) error {
	request := new(dto.LoginRequest)
	if err := ctx.Bind(request); err != nil {
		return err
	}
	if err := ctx.Validate(request); err != nil {
		return err
	}

	resp, err := c.authService.Login(ctx.Request().Context(), request)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, resp)
}

func (c *Controller) ServiceToken(ctx echo.Context) error {
	request := new(dto.ServiceTokenRequest)
	if err := ctx.Bind(request); err != nil {
		return err
	}
	if err := ctx.Validate(request); err != nil {
		return err
	}

	token, err := c.authService.ServiceToken(ctx.Request().Context(), request)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, map[string]string{"token": token})
}
