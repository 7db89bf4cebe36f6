// Package metrics exposes prometheus instrumentation for the translation
// surfaces: operation counters, duration histograms, and symbol-length
// histograms, registered on a private registry so embedding applications
// keep control of their default registry.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Direction labels for translation metrics.
const (
	DirectionEncode = "encode"
	DirectionDecode = "decode"
)

// Outcome labels for translation metrics.
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

var defaultDurationBuckets = []float64{.0001, .00025, .0005, .001, .0025, .005, .01, .025, .05, .1, .25, 1}

var defaultLengthBuckets = []float64{1, 2, 5, 10, 20, 50, 100, 200, 500, 1000}

// Collector holds the codec metric families.
type Collector struct {
	registry *prometheus.Registry

	TranslationsTotal   *prometheus.CounterVec
	TranslationDuration *prometheus.HistogramVec
	SymbolLength        *prometheus.HistogramVec
}

// NewCollector registers the codec metrics on a fresh registry.
func NewCollector() *Collector {
	reg := prometheus.NewRegistry()

	c := &Collector{
		registry: reg,
		TranslationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "selfies_translations_total",
			Help: "Total translation calls by direction and outcome.",
		}, []string{"direction", "outcome"}),
		TranslationDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "selfies_translation_duration_seconds",
			Help:    "Translation call duration.",
			Buckets: defaultDurationBuckets,
		}, []string{"direction"}),
		SymbolLength: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "selfies_output_symbols",
			Help:    "Symbol count of translation outputs.",
			Buckets: defaultLengthBuckets,
		}, []string{"direction"}),
	}

	reg.MustRegister(c.TranslationsTotal, c.TranslationDuration, c.SymbolLength)
	return c
}

// ObserveTranslation records one translation call.
func (c *Collector) ObserveTranslation(direction string, start time.Time, outputSymbols int, err error) {
	outcome := OutcomeOK
	if err != nil {
		outcome = OutcomeError
	}
	c.TranslationsTotal.WithLabelValues(direction, outcome).Inc()
	c.TranslationDuration.WithLabelValues(direction).Observe(time.Since(start).Seconds())
	if err == nil {
		c.SymbolLength.WithLabelValues(direction).Observe(float64(outputSymbols))
	}
}

// Handler returns the /metrics HTTP handler for the private registry.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

//Personal.AI order the ending
