package models

// PropertyInput is the set of attributes submitted by the dashboard form.
type PropertyInput struct {
	Address      string  `json:"address"`
	Price        float64 `json:"price"`
	Bedrooms     float64 `json:"bedrooms"`
	Bathrooms    float64 `json:"bathrooms"`
	SquareFeet   float64 `json:"squareFeet"`
	PropertyType string  `json:"propertyType"`
	YearBuilt    float64 `json:"yearBuilt"`
	RepairCost   float64 `json:"repairCost"`
	TargetRent   float64 `json:"targetRent"`
}

type ComparableRange struct {
	Low  float64 `json:"low"`
	High float64 `json:"high"`
}

type MarketAnalysis struct {
	CurrentValue    float64         `json:"currentValue"`
	PricePerSqFt    float64         `json:"pricePerSqFt"`
	ComparableRange ComparableRange `json:"comparableRange"`
}

type FixAndFlip struct {
	TotalCosts      float64 `json:"totalCosts"`
	PotentialProfit float64 `json:"potentialProfit"`
	TimelineMonths  float64 `json:"timelineMonths"`
	ROI             float64 `json:"roi"`
}

type RentalStrategy struct {
	MonthlyIncome      float64 `json:"monthlyIncome"`
	OperatingExpenses  float64 `json:"operatingExpenses"`
	NetOperatingIncome float64 `json:"netOperatingIncome"`
	CapRate            float64 `json:"capRate"`
	CashOnCashReturn   float64 `json:"cashOnCashReturn"`
}

type PropertyInsights struct {
	Strengths      []string `json:"strengths"`
	Considerations []string `json:"considerations"`
	Recommendation string   `json:"recommendation"`
}

// TrendDataset is one chart series. Colors and fill are display hints for the dashboard.
type TrendDataset struct {
	Label           string    `json:"label"`
	Data            []float64 `json:"data"`
	BorderColor     string    `json:"borderColor"`
	BackgroundColor string    `json:"backgroundColor"`
	Fill            bool      `json:"fill"`
}

type MarketTrends struct {
	Labels   []string       `json:"labels"`
	Datasets []TrendDataset `json:"datasets"`
}

// PropertyAnalysis is the response record. It is built per request and never stored.
type PropertyAnalysis struct {
	MarketAnalysis   MarketAnalysis   `json:"marketAnalysis"`
	FixAndFlip       FixAndFlip       `json:"fixAndFlip"`
	RentalStrategy   RentalStrategy   `json:"rentalStrategy"`
	PropertyInsights PropertyInsights `json:"propertyInsights"`
	MarketTrends     MarketTrends     `json:"marketTrends"`
}
