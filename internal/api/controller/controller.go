package controller

import (
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/ougirez/ecotrack/internal/pkg/constants"
	"github.com/ougirez/ecotrack/internal/service/analytics"
	"github.com/ougirez/ecotrack/internal/service/auth"
	"github.com/ougirez/ecotrack/internal/service/catalog"
	"github.com/ougirez/ecotrack/internal/service/disposal"
	"github.com/ougirez/ecotrack/internal/service/user"
)

type Controller struct {
	authService      *auth.Service
	userService      *user.Service
	catalogService   *catalog.Service
	disposalService  *disposal.Service
	analyticsService *analytics.Service
}

func NewController(
	authService *auth.Service,
	userService *user.Service,
	catalogService *catalog.Service,
	disposalService *disposal.Service,
	analyticsService *analytics.Service,
) *Controller {
	return &Controller{
		authService:      authService,
		userService:      userService,
		catalogService:   catalogService,
		disposalService:  disposalService,
		analyticsService: analyticsService,
	}
}

func idParam(ctx echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil {
		return 0, constants.NewCodedError("invalid "+name, 400)
	}
	return id, nil
}

// actorID is the authenticated user set by the auth middleware; zero for
// service tokens.
func actorID(ctx echo.Context) int64 {
	if id, ok := ctx.Get(constants.CtxKeyUserID).(int64); ok {
		return id
	}
	return 0
}
