package analyzer

import (
	"encoding/json"
	"fmt"
	"strings"

	jsonrepair "github.com/RealAlexandreAI/json-repair"
	hjson "github.com/hjson/hjson-go/v4"

	"github.com/Leckan/real-estate-analyzer/internal/models"
)

// ExtractJSON returns the first balanced {...} block in text. Braces inside
// string literals are ignored. It reports false when there is no opening
// brace or the block never closes.
func ExtractJSON(text string) (string, bool) {
	start := -1
	depth := 0
	inString := false
	escaped := false

	for i := 0; i < len(text); i++ {
		ch := text[i]

		if start < 0 {
			if ch == '{' {
				start = i
				depth = 1
			}
			continue
		}

		if inString {
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inString = false
			}
			continue
		}

		switch ch {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return text[start : i+1], true
			}
		}
	}

	return "", false
}

// completionAnalysis mirrors the expected response with pointer sections so
// that a missing section can be told apart from a zero one.
type completionAnalysis struct {
	MarketAnalysis   *models.MarketAnalysis   `json:"marketAnalysis"`
	FixAndFlip       *models.FixAndFlip       `json:"fixAndFlip"`
	RentalStrategy   *models.RentalStrategy   `json:"rentalStrategy"`
	PropertyInsights *models.PropertyInsights `json:"propertyInsights"`
}

func (c completionAnalysis) toAnalysis() (*models.PropertyAnalysis, error) {
	if c.MarketAnalysis == nil || c.FixAndFlip == nil || c.RentalStrategy == nil || c.PropertyInsights == nil {
		return nil, errIncompleteAnalysis
	}
	return &models.PropertyAnalysis{
		MarketAnalysis:   *c.MarketAnalysis,
		FixAndFlip:       *c.FixAndFlip,
		RentalStrategy:   *c.RentalStrategy,
		PropertyInsights: *c.PropertyInsights,
	}, nil
}

// ParseAnalysis extracts the JSON block from a completion and decodes it
// strictly. Any error means the caller should fall back to the estimator.
func ParseAnalysis(text string) (*models.PropertyAnalysis, error) {
	block, ok := ExtractJSON(text)
	if !ok {
		return nil, errNoJSON
	}
	return decodeStrict(block)
}

// ParseAnalysisLenient behaves like ParseAnalysis but retries a block that is
// not valid JSON through json-repair and then Hjson. A block that never
// closes (a truncated completion) is handed to the repairers as well.
func ParseAnalysisLenient(text string) (*models.PropertyAnalysis, error) {
	block, ok := ExtractJSON(text)
	if !ok {
		start := strings.IndexByte(text, '{')
		if start < 0 {
			return nil, errNoJSON
		}
		block = text[start:]
	}

	analysis, strictErr := decodeStrict(block)
	if strictErr == nil {
		return analysis, nil
	}

	if repaired, err := jsonrepair.RepairJSON(block); err == nil {
		if analysis, err := decodeStrict(repaired); err == nil {
			return analysis, nil
		}
	}

	var loose interface{}
	if err := hjson.Unmarshal([]byte(block), &loose); err == nil {
		if normalized, err := json.Marshal(loose); err == nil {
			if analysis, err := decodeStrict(string(normalized)); err == nil {
				return analysis, nil
			}
		}
	}

	return nil, strictErr
}

func decodeStrict(block string) (*models.PropertyAnalysis, error) {
	var raw completionAnalysis
	if err := json.Unmarshal([]byte(block), &raw); err != nil {
		return nil, fmt.Errorf("failed to decode response JSON: %w", err)
	}
	return raw.toAnalysis()
}
