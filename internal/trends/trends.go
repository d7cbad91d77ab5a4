package trends

import (
	"math/rand"
	"sync"
	"time"

	"github.com/Leckan/real-estate-analyzer/internal/estimator"
	"github.com/Leckan/real-estate-analyzer/internal/models"
)

// Months is the number of points in every series.
const Months = 12

type series struct {
	label           string
	baseFactor      float64
	monthlyGrowth   float64
	borderColor     string
	backgroundColor string
}

var defaultSeries = []series{
	{
		label:           "Property Value",
		baseFactor:      1,
		monthlyGrowth:   0.005,
		borderColor:     "rgb(59, 130, 246)",
		backgroundColor: "rgba(59, 130, 246, 0.1)",
	},
	{
		label:           "Area Average",
		baseFactor:      0.95,
		monthlyGrowth:   0.004,
		borderColor:     "rgb(99, 102, 241)",
		backgroundColor: "rgba(99, 102, 241, 0.1)",
	},
}

// maxVariation bounds the per-point noise to ±1%.
const maxVariation = 0.01

// Synthesizer produces cosmetic market-trend series. The numbers are random
// on purpose and are not market data.
type Synthesizer struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewSynthesizer returns a Synthesizer drawing from rnd. A nil rnd uses a
// time-seeded source.
func NewSynthesizer(rnd *rand.Rand) *Synthesizer {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Synthesizer{rnd: rnd}
}

// Generate returns the subject and area-average series for the twelve
// calendar months ending with now's month.
func (s *Synthesizer) Generate(price float64, now time.Time) models.MarketTrends {
	trends := models.MarketTrends{
		Labels:   MonthLabels(now),
		Datasets: make([]models.TrendDataset, 0, len(defaultSeries)),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, sr := range defaultSeries {
		base := price * sr.baseFactor
		data := make([]float64, Months)
		for i := range data {
			growth := 1 + float64(i)*sr.monthlyGrowth
			variation := 1 + (s.rnd.Float64()*2*maxVariation - maxVariation)
			data[i] = estimator.Round(base * growth * variation)
		}
		trends.Datasets = append(trends.Datasets, models.TrendDataset{
			Label:           sr.label,
			Data:            data,
			BorderColor:     sr.borderColor,
			BackgroundColor: sr.backgroundColor,
			Fill:            true,
		})
	}

	return trends
}

// MonthLabels returns short month names, oldest first, ending at now's month.
func MonthLabels(now time.Time) []string {
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	labels := make([]string, Months)
	for i := range labels {
		labels[i] = first.AddDate(0, i-(Months-1), 0).Format("Jan")
	}
	return labels
}
