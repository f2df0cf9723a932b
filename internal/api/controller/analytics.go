package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (c *Controller) userScope(ctx echo.Context) (*int64, error) {
	id, err := idParam(ctx, "userId")
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func (c *Controller) GetRecyclableSplit(ctx echo.Context) error {
	scope, err := c.userScope(ctx)
	if err != nil {
		return err
	}

	split, err := c.analyticsService.RecyclableSplit(ctx.Request().Context(), scope)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, split)
}

func (c *Controller) GetRecyclableSplitAll(ctx echo.Context) error {
	split, err := c.analyticsService.RecyclableSplit(ctx.Request().Context(), nil)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, split)
}

func (c *Controller) GetTopLocations(ctx echo.Context) error {
	scope, err := c.userScope(ctx)
	if err != nil {
		return err
	}

	locations, err := c.analyticsService.TopLocationsByWeight(ctx.Request().Context(), scope)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, locations)
}

func (c *Controller) GetTopLocationsAll(ctx echo.Context) error {
	locations, err := c.analyticsService.TopLocationsByWeight(ctx.Request().Context(), nil)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, locations)
}

func (c *Controller) GetTopWasteTypes(ctx echo.Context) error {
	scope, err := c.userScope(ctx)
	if err != nil {
		return err
	}

	wasteTypes, err := c.analyticsService.TopWasteTypesByWeight(ctx.Request().Context(), scope)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, wasteTypes)
}

func (c *Controller) GetTopWasteTypesAll(ctx echo.Context) error {
	wasteTypes, err := c.analyticsService.TopWasteTypesByWeight(ctx.Request().Context(), nil)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, wasteTypes)
}

func (c *Controller) GetWaterSavings(ctx echo.Context) error {
	scope, err := c.userScope(ctx)
	if err != nil {
		return err
	}

	savings, err := c.analyticsService.WaterSavings(ctx.Request().Context(), scope)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, map[string]float64{"water_savings": savings})
}

func (c *Controller) GetWaterSavingsAll(ctx echo.Context) error {
	savings, err := c.analyticsService.WaterSavings(ctx.Request().Context(), nil)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, map[string]float64{"water_savings": savings})
}

func (c *Controller) GetCO2Savings(ctx echo.Context) error {
	scope, err := c.userScope(ctx)
	if err != nil {
		return err
	}

	savings, err := c.analyticsService.CO2Savings(ctx.Request().Context(), scope)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, map[string]float64{"co2_savings": savings})
}

func (c *Controller) GetCO2SavingsAll(ctx echo.Context) error {
	savings, err := c.analyticsService.CO2Savings(ctx.Request().Context(), nil)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, map[string]float64{"co2_savings": savings})
}

func (c *Controller) GetWeightLast7Days(ctx echo.Context) error {
	scope, err := c.userScope(ctx)
	if err != nil {
		return err
	}

	days, err := c.analyticsService.WeightByDayLast7Days(ctx.Request().Context(), scope)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, days)
}

func (c *Controller) GetWeightLast7DaysAll(ctx echo.Context) error {
	days, err := c.analyticsService.WeightByDayLast7Days(ctx.Request().Context(), nil)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, days)
}

func (c *Controller) GetWasteToday(ctx echo.Context) error {
	scope, err := c.userScope(ctx)
	if err != nil {
		return err
	}

	total, err := c.analyticsService.WasteToday(ctx.Request().Context(), scope)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, map[string]float64{"waste_today": total})
}

func (c *Controller) GetTodayComparison(ctx echo.Context) error {
	scope, err := c.userScope(ctx)
	if err != nil {
		return err
	}

	comparison, err := c.analyticsService.CompareTodayToMonthlyAverage(ctx.Request().Context(), scope)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, comparison)
}

func (c *Controller) GetSummary(ctx echo.Context) error {
	scope, err := c.userScope(ctx)
	if err != nil {
		return err
	}

	summary, err := c.analyticsService.Summary(ctx.Request().Context(), scope)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, summary)
}

func (c *Controller) GetSummaryAll(ctx echo.Context) error {
	summary, err := c.analyticsService.Summary(ctx.Request().Context(), nil)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, summary)
}
