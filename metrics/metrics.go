package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics owns its registry so several instances can coexist in tests.
type Metrics struct {
	registry *prometheus.Registry

	suggestions      *prometheus.CounterVec
	offers           *prometheus.CounterVec
	externalFailures prometheus.Counter
	cacheLookups     *prometheus.CounterVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		suggestions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "refinance_suggestions_total",
			Help: "Suggestion responses built, by data mode.",
		}, []string{"mode"}),
		offers: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "refinance_offers_total",
			Help: "Refinance offers attached to loans, by offer source.",
		}, []string{"source"}),
		externalFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "refinance_external_loans_failures_total",
			Help: "External loan fetches that failed and were replaced by an empty list.",
		}),
		cacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "refinance_product_cache_lookups_total",
			Help: "Product catalog cache lookups, by result.",
		}, []string{"result"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.suggestions,
		m.offers,
		m.externalFailures,
		m.cacheLookups,
	)
	return m
}

// Handler serves the registry for the /metrics endpoint.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) SuggestionServed(mode string) {
	m.suggestions.WithLabelValues(mode).Inc()
}

func (m *Metrics) OfferBuilt(source string) {
	m.offers.WithLabelValues(source).Inc()
}

func (m *Metrics) ExternalLoansFailed() {
	m.externalFailures.Inc()
}

func (m *Metrics) CacheLookup(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	m.cacheLookups.WithLabelValues(result).Inc()
}
