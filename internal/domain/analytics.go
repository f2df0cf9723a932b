package domain

// RecyclableSplit partitions a window's total weight by the recyclable flag.
type RecyclableSplit struct {
	RecyclableWeight    float64 `json:"recyclable_weight"`
	NonRecyclableWeight float64 `json:"non_recyclable_weight"`
}

// LocationWeight is one row of the top-locations report.
type LocationWeight struct {
	LocationName string  `json:"location_name"`
	TotalWeight  float64 `json:"total_weight"`
}

// WasteTypeWeight is one row of the top-waste-types report.
type WasteTypeWeight struct {
	WasteType   string  `json:"waste_type"`
	TotalWeight float64 `json:"total_weight"`
}

// DayWeight is one point of the 7-day weight series. DayMonth is a "DD/MM"
// label.
type DayWeight struct {
	DayMonth    string  `json:"day_month"`
	TotalWeight float64 `json:"total_weight"`
}

// TodayComparison relates today's logged weight to the daily average of the
// last month. PercentageDifference is formatted to two decimals; positive
// means today is below average. When there is no data in the last month only
// Message is set.
type TodayComparison struct {
	DailyAverage         float64 `json:"daily_average,omitempty"`
	WasteToday           float64 `json:"waste_today,omitempty"`
	PercentageDifference string  `json:"percentage_difference,omitempty"`
	Message              string  `json:"message,omitempty"`
}

// AnalyticsSummary bundles the month-window reports for the dashboard.
type AnalyticsSummary struct {
	RecyclableSplit RecyclableSplit   `json:"recyclable_split"`
	TopLocations    []LocationWeight  `json:"top_locations"`
	TopWasteTypes   []WasteTypeWeight `json:"top_waste_types"`
	WaterSavings    float64           `json:"water_savings"`
	CO2Savings      float64           `json:"co2_savings"`
}
