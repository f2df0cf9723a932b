package api

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/ougirez/ecotrack/internal/api/controller"
	"github.com/ougirez/ecotrack/internal/pkg/constants"
	"github.com/ougirez/ecotrack/internal/pkg/logger"
	"github.com/ougirez/ecotrack/internal/pkg/store"
	"github.com/ougirez/ecotrack/internal/service/analytics"
	"github.com/ougirez/ecotrack/internal/service/audit"
	"github.com/ougirez/ecotrack/internal/service/auth"
	"github.com/ougirez/ecotrack/internal/service/catalog"
	"github.com/ougirez/ecotrack/internal/service/disposal"
	"github.com/ougirez/ecotrack/internal/service/user"
	"github.com/spf13/viper"
)

type APIService struct {
	router *echo.Echo
}

func (svc *APIService) Serve(addr string) {
	logger.Fatal(context.Background(), svc.router.Start(addr))
}

func (svc *APIService) Shutdown(ctx context.Context) error {
	return svc.router.Shutdown(ctx)
}

// Router exposes the underlying echo instance for tests.
func (svc *APIService) Router() *echo.Echo {
	return svc.router
}

func NewAPIService(st store.Store) (*APIService, error) {
	svc := &APIService{router: echo.New()}

	svc.router.HideBanner = true
	svc.router.Validator = NewValidator()
	svc.router.Binder = NewBinder()
	svc.router.JSONSerializer = SonicSerializer{}
	svc.router.HTTPErrorHandler = httpErrorHandler
	svc.router.Use(middleware.Logger())
	svc.router.Use(svc.RequestIDMiddleware)
	svc.router.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{viper.GetString(constants.ViperCORSOrigin)},
		AllowMethods: []string{echo.GET, echo.PUT, echo.POST, echo.DELETE},
		AllowHeaders: []string{"Content-Type", "Authorization"},
	}))

	auditService := audit.NewAuditService(st)
	cntrl := controller.NewController(
		auth.NewAuthService(st, auditService),
		user.NewUserService(st, auditService),
		catalog.NewCatalogService(st, auditService),
		disposal.NewDisposalService(st, auditService),
		analytics.NewAnalyticsService(st),
	)

	api := svc.router.Group("/api/v1")

	authGroup := api.Group("/auth")
	authGroup.POST("/signup", cntrl.Signup)
	authGroup.POST("/login", cntrl.Login)
	authGroup.POST("/token", cntrl.ServiceToken)

	users := api.Group("/users", svc.AuthMiddleware)
	users.GET("/list", cntrl.ListUsers)
	users.GET("/:id", cntrl.GetUser)
	users.PUT("/:id/profile", cntrl.UpdateUserProfile)
	users.PUT("/:id/password", cntrl.UpdateUserPassword)
	users.PUT("/:id/photo", cntrl.UploadProfilePhoto)
	users.DELETE("/:id", cntrl.DeleteUser)

	areas := api.Group("/areas", svc.AuthMiddleware)
	areas.POST("", cntrl.CreateArea)
	areas.GET("/list", cntrl.ListAreas)
	areas.GET("/:id", cntrl.GetArea)
	areas.PUT("/:id", cntrl.UpdateArea)
	areas.DELETE("/:id", cntrl.DeleteArea)

	locations := api.Group("/locations", svc.AuthMiddleware)
	locations.POST("", cntrl.CreateLocation)
	locations.GET("/list", cntrl.ListLocations)
	locations.GET("/:id", cntrl.GetLocation)
	locations.PUT("/:id", cntrl.UpdateLocation)
	locations.DELETE("/:id", cntrl.DeleteLocation)

	wasteTypes := api.Group("/waste-types", svc.AuthMiddleware)
	wasteTypes.POST("", cntrl.CreateWasteType)
	wasteTypes.GET("/list", cntrl.ListWasteTypes)
	wasteTypes.GET("/:id", cntrl.GetWasteType)
	wasteTypes.PUT("/:id", cntrl.UpdateWasteType)
	wasteTypes.DELETE("/:id", cntrl.DeleteWasteType)

	wastes := api.Group("/wastes", svc.AuthMiddleware)
	wastes.POST("", cntrl.CreateWaste)
	wastes.GET("/list", cntrl.ListWastes)
	wastes.GET("/:id", cntrl.GetWaste)
	wastes.PUT("/:id", cntrl.UpdateWaste)
	wastes.DELETE("/:id", cntrl.DeleteWaste)

	disposals := api.Group("/disposals", svc.AuthMiddleware)
	disposals.POST("/register", cntrl.RegisterDisposal)
	disposals.GET("/list", cntrl.ListDisposals)
	disposals.GET("/:id", cntrl.GetDisposal)
	disposals.PUT("/:id", cntrl.UpdateDisposal)
	disposals.DELETE("/:id", cntrl.DeleteDisposal)

	analysis := api.Group("/analysis", svc.AuthMiddleware)
	analysis.GET("/recyclable-waste/:userId", cntrl.GetRecyclableSplit)
	analysis.GET("/top5-locations/:userId", cntrl.GetTopLocations)
	analysis.GET("/top5-waste-types/:userId", cntrl.GetTopWasteTypes)
	analysis.GET("/water-savings/:userId", cntrl.GetWaterSavings)
	analysis.GET("/co2-savings/:userId", cntrl.GetCO2Savings)
	analysis.GET("/waste-last7days/:userId", cntrl.GetWeightLast7Days)
	analysis.GET("/waste-today/:userId", cntrl.GetWasteToday)
	analysis.GET("/compare-waste-today/:userId", cntrl.GetTodayComparison)
	analysis.GET("/summary/:userId", cntrl.GetSummary)

	analysisAll := analysis.Group("/all")
	analysisAll.GET("/recyclable-waste", cntrl.GetRecyclableSplitAll)
	analysisAll.GET("/top5-locations", cntrl.GetTopLocationsAll)
	analysisAll.GET("/top5-waste-types", cntrl.GetTopWasteTypesAll)
	analysisAll.GET("/water-savings", cntrl.GetWaterSavingsAll)
	analysisAll.GET("/co2-savings", cntrl.GetCO2SavingsAll)
	analysisAll.GET("/waste-last7days", cntrl.GetWeightLast7DaysAll)
	analysisAll.GET("/summary", cntrl.GetSummaryAll)

	return svc, nil
}
