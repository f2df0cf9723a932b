package api

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/ougirez/ecotrack/internal/pkg/constants"
	"github.com/ougirez/ecotrack/internal/pkg/utils"
)

// RequestIDMiddleware tags every request with a uuid, propagated through the
// request context into log lines.
func (svc *APIService) RequestIDMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		reqID := ctx.Request().Header.Get(echo.HeaderXRequestID)
		if reqID == "" {
			reqID = uuid.NewString()
		}

		ctx.Response().Header().Set(echo.HeaderXRequestID, reqID)

		reqCtx := context.WithValue(ctx.Request().Context(), constants.CtxKeyRequestID, reqID)
		ctx.SetRequest(ctx.Request().WithContext(reqCtx))

		return next(ctx)
	}
}

// AuthMiddleware verifies the Bearer token and stores the actor's user id on
// the context. Service tokens carry no user id; handlers that require one
// treat the zero value as the service actor.
func (svc *APIService) AuthMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		header := ctx.Request().Header.Get(echo.HeaderAuthorization)
		if !strings.HasPrefix(header, "Bearer ") {
			return constants.ErrMissingAuthHeader
		}

		token, err := utils.ParseAuthToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			return err
		}

		ctx.Set(constants.CtxKeyUserID, token.UserID)

		return next(ctx)
	}
}
