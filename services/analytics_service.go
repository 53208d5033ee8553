package services

import "math"

// The analytics datasets are fixed demo data; there is no live analytics
// pipeline behind the admin dashboard.

type DailyTrend struct {
	Date     string  `json:"date"`
	Revenue  float64 `json:"revenue"`
	Visitors int     `json:"visitors"`
}

type MonthlyTrend struct {
	Month  string  `json:"month"`
	Sales  float64 `json:"sales"`
	Clicks int     `json:"clicks"`
}

type PopularProduct struct {
	Name              string  `json:"name"`
	Sales             int     `json:"sales"`
	Views             int     `json:"views"`
	Category          string  `json:"category"`
	ConversionRate    float64 `json:"conversionRate"`
	AverageTimeOnPage int     `json:"averageTimeOnPage"`
}

type AnalyticsSummary struct {
	TotalRevenue      float64 `json:"totalRevenue"`
	TotalOrders       int     `json:"totalOrders"`
	UniqueVisitors    int     `json:"uniqueVisitors"`
	TotalPageViews    int     `json:"totalPageViews"`
	ConversionRate    float64 `json:"conversionRate"`
	AverageOrderValue float64 `json:"averageOrderValue"`
}

type AnalyticsReport struct {
	Summary         AnalyticsSummary `json:"summary"`
	DailyTrends     []DailyTrend     `json:"dailyTrends"`
	PopularProducts []PopularProduct `json:"popularProducts"`
	MonthlyTrends   []MonthlyTrend   `json:"monthlyTrends"`
}

var allDailyTrends = []DailyTrend{
	{Date: "Jul 1", Revenue: 1250, Visitors: 160},
	{Date: "Jul 2", Revenue: 1550, Visitors: 190},
	{Date: "Jul 3", Revenue: 1400, Visitors: 170},
	{Date: "Jul 4", Revenue: 1900, Visitors: 230},
	{Date: "Jul 5", Revenue: 1650, Visitors: 210},
	{Date: "Jul 6", Revenue: 2100, Visitors: 260},
	{Date: "Jul 7", Revenue: 1800, Visitors: 220},
	{Date: "Jul 8", Revenue: 1950, Visitors: 240},
	{Date: "Jul 9", Revenue: 2200, Visitors: 270},
	{Date: "Jul 10", Revenue: 2000, Visitors: 250},
	{Date: "Jul 11", Revenue: 2100, Visitors: 260},
	{Date: "Jul 12", Revenue: 2300, Visitors: 280},
	{Date: "Jul 13", Revenue: 2400, Visitors: 290},
	{Date: "Jul 14", Revenue: 2500, Visitors: 300},
	{Date: "Jul 15", Revenue: 2600, Visitors: 310},
	{Date: "Jul 16", Revenue: 2700, Visitors: 320},
	{Date: "Jul 17", Revenue: 2800, Visitors: 330},
	{Date: "Jul 18", Revenue: 2900, Visitors: 340},
	{Date: "Jul 19", Revenue: 3000, Visitors: 350},
	{Date: "Jul 20", Revenue: 3100, Visitors: 360},
	{Date: "Jul 21", Revenue: 3200, Visitors: 370},
	{Date: "Jul 22", Revenue: 3300, Visitors: 380},
	{Date: "Jul 23", Revenue: 3400, Visitors: 390},
	{Date: "Jul 24", Revenue: 3500, Visitors: 400},
	{Date: "Jul 25", Revenue: 3600, Visitors: 410},
	{Date: "Jul 26", Revenue: 3700, Visitors: 420},
	{Date: "Jul 27", Revenue: 3800, Visitors: 430},
	{Date: "Jul 28", Revenue: 3900, Visitors: 440},
	{Date: "Jul 29", Revenue: 4000, Visitors: 450},
	{Date: "Jul 30", Revenue: 4100, Visitors: 460},
}

var allMonthlyTrends = []MonthlyTrend{
	{Month: "Jan", Sales: 16000, Clicks: 52000},
	{Month: "Feb", Sales: 19000, Clicks: 57000},
	{Month: "Mar", Sales: 23000, Clicks: 67000},
	{Month: "Apr", Sales: 20000, Clicks: 62000},
	{Month: "May", Sales: 26000, Clicks: 72000},
	{Month: "Jun", Sales: 29000, Clicks: 77000},
	{Month: "Jul", Sales: 27000, Clicks: 74000},
	{Month: "Aug", Sales: 30000, Clicks: 80000},
	{Month: "Sep", Sales: 28000, Clicks: 75000},
	{Month: "Oct", Sales: 32000, Clicks: 85000},
	{Month: "Nov", Sales: 35000, Clicks: 90000},
	{Month: "Dec", Sales: 40000, Clicks: 100000},
}

var allPopularProducts = []PopularProduct{
	{Name: "Triple S Sneaker", Sales: 135, Views: 1650, Category: "shoes", ConversionRate: 8.2, AverageTimeOnPage: 120},
	{Name: "City Bag Small", Sales: 100, Views: 1350, Category: "bags", ConversionRate: 7.4, AverageTimeOnPage: 150},
	{Name: "Oversized Blazer", Sales: 55, Views: 850, Category: "clothing", ConversionRate: 6.5, AverageTimeOnPage: 90},
	{Name: "Le Cagole Bag", Sales: 80, Views: 1200, Category: "bags", ConversionRate: 6.7, AverageTimeOnPage: 130},
	{Name: "Track Sneaker", Sales: 65, Views: 1000, Category: "shoes", ConversionRate: 6.5, AverageTimeOnPage: 110},
	{Name: "Hourglass Coat", Sales: 40, Views: 700, Category: "clothing", ConversionRate: 5.7, AverageTimeOnPage: 100},
}

// BuildAnalyticsReport filters the demo datasets by time range ("7d",
// "30d", anything else means all) and product category, then derives the
// summary figures from what survived the filter.
func BuildAnalyticsReport(timeRange, productCategory string) *AnalyticsReport {
	dailyTrends := allDailyTrends
	monthlyTrends := allMonthlyTrends
	popularProducts := allPopularProducts

	switch timeRange {
	case "7d":
		dailyTrends = allDailyTrends[len(allDailyTrends)-7:]
		monthlyTrends = []MonthlyTrend{}
	case "30d":
		if len(allDailyTrends) > 30 {
			dailyTrends = allDailyTrends[len(allDailyTrends)-30:]
		}
		monthlyTrends = []MonthlyTrend{}
	}

	if productCategory != "" && productCategory != "all" {
		filtered := []PopularProduct{}
		for _, product := range popularProducts {
			if product.Category == productCategory {
				filtered = append(filtered, product)
			}
		}
		popularProducts = filtered
	}

	totalRevenue := 0.0
	uniqueVisitors := 0
	for _, trend := range dailyTrends {
		totalRevenue += trend.Revenue
		uniqueVisitors += trend.Visitors
	}

	totalOrders := int(math.Floor(totalRevenue / 200))
	totalPageViews := uniqueVisitors * 5

	conversionRate := 0.0
	if uniqueVisitors > 0 {
		conversionRate = float64(totalOrders) / float64(uniqueVisitors) * 100
	}

	averageOrderValue := 0.0
	if totalOrders > 0 {
		averageOrderValue = totalRevenue / float64(totalOrders)
	}

	return &AnalyticsReport{
		Summary: AnalyticsSummary{
			TotalRevenue:      totalRevenue,
			TotalOrders:       totalOrders,
			UniqueVisitors:    uniqueVisitors,
			TotalPageViews:    totalPageViews,
			ConversionRate:    conversionRate,
			AverageOrderValue: averageOrderValue,
		},
		DailyTrends:     dailyTrends,
		PopularProducts: popularProducts,
		MonthlyTrends:   monthlyTrends,
	}
}
