package analyzer

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Leckan/real-estate-analyzer/internal/completion"
	"github.com/Leckan/real-estate-analyzer/internal/estimator"
	"github.com/Leckan/real-estate-analyzer/internal/models"
	"github.com/Leckan/real-estate-analyzer/internal/trends"
)

// Source tells which path produced an analysis. It is only logged; callers
// of the HTTP API cannot see it.
type Source string

const (
	SourceCompletion Source = "completion"
	SourceFallback   Source = "fallback"
)

// Options configures an Analyzer. It is read once at construction.
type Options struct {
	// APIKey is only checked for presence; the completer holds the real credential.
	APIKey string

	// Timeout bounds the completion call. Zero means no timeout.
	Timeout time.Duration

	// Lenient enables json-repair and Hjson when the response is not valid JSON.
	Lenient bool

	Trends *trends.Synthesizer
	Now    func() time.Time
}

type Analyzer struct {
	completer completion.Completer
	apiKey    string
	timeout   time.Duration
	lenient   bool
	trends    *trends.Synthesizer
	now       func() time.Time
	logger    *logrus.Logger
}

func New(completer completion.Completer, opts Options, logger *logrus.Logger) *Analyzer {
	if logger == nil {
		logger = logrus.New()
		logger.SetFormatter(&logrus.JSONFormatter{})
		logger.SetOutput(os.Stdout)
	}
	if opts.Trends == nil {
		opts.Trends = trends.NewSynthesizer(nil)
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	return &Analyzer{
		completer: completer,
		apiKey:    opts.APIKey,
		timeout:   opts.Timeout,
		lenient:   opts.Lenient,
		trends:    opts.Trends,
		now:       opts.Now,
		logger:    logger,
	}
}

// CheckConfig reports ErrConfiguration when no credential is configured.
func (a *Analyzer) CheckConfig() error {
	if a.apiKey == "" || a.completer == nil {
		return ErrConfiguration
	}
	return nil
}

// Validate rejects input with any missing field. Zero numbers and empty
// strings count as missing, so a price of 0 is rejected.
func Validate(p models.PropertyInput) error {
	if p.Address == "" || p.PropertyType == "" {
		return ErrInvalidInput
	}
	for _, v := range []float64{p.Price, p.Bedrooms, p.Bathrooms, p.SquareFeet, p.YearBuilt, p.RepairCost, p.TargetRent} {
		if v == 0 {
			return ErrInvalidInput
		}
	}
	return nil
}

// Analyze runs one analysis: validate, ask the completion service once,
// interpret its text (falling back to the estimator), then attach trends.
func (a *Analyzer) Analyze(ctx context.Context, p models.PropertyInput) (*models.PropertyAnalysis, error) {
	if err := a.CheckConfig(); err != nil {
		return nil, err
	}
	if err := Validate(p); err != nil {
		return nil, err
	}

	log := a.logger.WithFields(logrus.Fields{
		"address":       p.Address,
		"property_type": p.PropertyType,
		"price":         p.Price,
	})

	prompt := BuildPrompt(p)

	callCtx := ctx
	if a.timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	started := time.Now()
	text, err := a.completer.Complete(callCtx, prompt)
	if err != nil {
		log.WithError(err).Error("Completion request failed")
		return nil, &AnalysisError{Err: err}
	}
	log.WithFields(logrus.Fields{
		"duration_ms": time.Since(started).Milliseconds(),
		"response":    text,
	}).Debug("Raw completion response")

	analysis, source, err := a.interpret(text, p)
	if err != nil {
		log.WithError(err).Error("Fallback estimate failed")
		return nil, &AnalysisError{Err: err}
	}

	analysis.MarketTrends = a.trends.Generate(p.Price, a.now())

	log.WithField("source", source).Info("Property analysis completed")
	return analysis, nil
}

// interpret parses the completion text, substituting the fallback estimate
// when it holds no usable analysis. Only an estimator error is returned.
func (a *Analyzer) interpret(text string, p models.PropertyInput) (*models.PropertyAnalysis, Source, error) {
	parse := ParseAnalysis
	if a.lenient {
		parse = ParseAnalysisLenient
	}

	analysis, err := parse(text)
	if err == nil {
		return analysis, SourceCompletion, nil
	}

	a.logger.WithError(err).Warn("Could not parse completion response, using fallback estimate")

	analysis, err = estimator.Estimate(estimator.FromProperty(p))
	if err != nil {
		return nil, SourceFallback, fmt.Errorf("fallback estimate: %w", err)
	}
	return analysis, SourceFallback, nil
}
