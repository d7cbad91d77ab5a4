package analyzer

import (
	"strconv"
	"strings"

	"github.com/Leckan/real-estate-analyzer/internal/models"
)

const analysisSchema = `{
  "marketAnalysis": {
    "currentValue": number,
    "pricePerSqFt": number,
    "comparableRange": {
      "low": number,
      "high": number
    }
  },
  "fixAndFlip": {
    "totalCosts": number,
    "potentialProfit": number,
    "timelineMonths": number,
    "roi": number
  },
  "rentalStrategy": {
    "monthlyIncome": number,
    "operatingExpenses": number,
    "netOperatingIncome": number,
    "capRate": number,
    "cashOnCashReturn": number
  },
  "propertyInsights": {
    "strengths": string[],
    "considerations": string[],
    "recommendation": string
  }
}`

// BuildPrompt renders the analysis prompt for p. The output depends only on p.
func BuildPrompt(p models.PropertyInput) string {
	var sb strings.Builder
	sb.WriteString("Analyze this property as a real estate investment expert. Return a JSON object with the analysis.\n\n")
	sb.WriteString("Property Details:\n")
	writeDetail(&sb, "Address", p.Address)
	writeDetail(&sb, "Purchase Price", formatNumber(p.Price))
	writeDetail(&sb, "Property Type", p.PropertyType)
	writeDetail(&sb, "Bedrooms", formatNumber(p.Bedrooms))
	writeDetail(&sb, "Bathrooms", formatNumber(p.Bathrooms))
	writeDetail(&sb, "Square Feet", formatNumber(p.SquareFeet))
	writeDetail(&sb, "Year Built", formatNumber(p.YearBuilt))
	writeDetail(&sb, "Repair Costs", formatNumber(p.RepairCost))
	writeDetail(&sb, "Target Rent", formatNumber(p.TargetRent))
	sb.WriteString("\nProvide a detailed investment analysis in JSON format with this exact structure:\n")
	sb.WriteString(analysisSchema)
	return sb.String()
}

func writeDetail(sb *strings.Builder, name, value string) {
	sb.WriteString("- ")
	sb.WriteString(name)
	sb.WriteString(": ")
	sb.WriteString(value)
	sb.WriteString("\n")
}

// formatNumber prints integers without a decimal point and keeps fractions as entered.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
