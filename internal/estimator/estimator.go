package estimator

import (
	"errors"
	"math"

	"github.com/Leckan/real-estate-analyzer/internal/models"
)

var ErrDivisionByZero = errors.New("division by zero in fallback estimate")

const (
	comparableLowFactor  = 0.95
	comparableHighFactor = 1.05
	closingCostRate      = 0.03
	resaleMarkup         = 1.25
	flipTimelineMonths   = 4
	operatingExpenseRate = 0.4
	netIncomeRate        = 0.6
	cashInvestedRate     = 0.25
)

var (
	fallbackStrengths = []string{
		"Property available below market value",
		"Good rental market potential",
		"Manageable repair costs",
	}
	fallbackConsiderations = []string{
		"Market conditions may change",
		"Repair costs could increase",
		"Rental demand fluctuation",
	}
	fallbackRecommendation = "Consider property's location and market trends before proceeding"
)

// Inputs holds the numeric fields the fallback formulas read.
type Inputs struct {
	Price      float64
	RepairCost float64
	TargetRent float64
	SquareFeet float64
}

// FromProperty picks the estimator inputs out of a validated request.
func FromProperty(p models.PropertyInput) Inputs {
	return Inputs{
		Price:      p.Price,
		RepairCost: p.RepairCost,
		TargetRent: p.TargetRent,
		SquareFeet: p.SquareFeet,
	}
}

// Estimate builds a complete analysis (without market trends) from fixed
// multipliers. It is deterministic and never calls out.
func Estimate(in Inputs) (*models.PropertyAnalysis, error) {
	if in.Price == 0 || in.SquareFeet == 0 {
		return nil, ErrDivisionByZero
	}

	acquisitionCost := in.Price + in.RepairCost
	closingCosts := in.Price * closingCostRate
	allInCost := acquisitionCost + closingCosts
	if allInCost == 0 {
		return nil, ErrDivisionByZero
	}

	resaleValue := acquisitionCost * resaleMarkup
	profit := resaleValue - allInCost

	annualNOI := in.TargetRent * 12 * netIncomeRate

	return &models.PropertyAnalysis{
		MarketAnalysis: models.MarketAnalysis{
			CurrentValue: in.Price,
			PricePerSqFt: Round(in.Price / in.SquareFeet),
			ComparableRange: models.ComparableRange{
				Low:  Round(in.Price * comparableLowFactor),
				High: Round(in.Price * comparableHighFactor),
			},
		},
		FixAndFlip: models.FixAndFlip{
			TotalCosts:      in.Price + in.RepairCost + Round(closingCosts),
			PotentialProfit: Round(profit),
			TimelineMonths:  flipTimelineMonths,
			ROI:             RoundPercent(profit / allInCost * 100),
		},
		RentalStrategy: models.RentalStrategy{
			MonthlyIncome:      in.TargetRent,
			OperatingExpenses:  Round(in.TargetRent * operatingExpenseRate),
			NetOperatingIncome: Round(annualNOI),
			CapRate:            RoundPercent(annualNOI / in.Price * 100),
			CashOnCashReturn:   RoundPercent(annualNOI / (in.Price * cashInvestedRate) * 100),
		},
		PropertyInsights: models.PropertyInsights{
			Strengths:      append([]string(nil), fallbackStrengths...),
			Considerations: append([]string(nil), fallbackConsiderations...),
			Recommendation: fallbackRecommendation,
		},
	}, nil
}

// Round rounds half up toward positive infinity (-2.5 becomes -2, unlike math.Round).
func Round(v float64) float64 {
	return math.Floor(v + 0.5)
}

// RoundPercent rounds a percentage to two decimals using Round.
func RoundPercent(v float64) float64 {
	return Round(v*100) / 100
}
