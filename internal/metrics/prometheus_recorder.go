package metrics

import (
	"net/http"

	prom "github.com/prometheus/client_golang/prometheus"
	promhttp "github.com/prometheus/client_golang/prometheus/promhttp"
)

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	inputs      *prom.CounterVec
	evaluations *prom.CounterVec
	queueDepth  prom.Gauge
}

// NewPrometheusRecorder constructs and registers Prometheus metrics on reg.
// A nil reg gets a fresh private registry.
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		inputs: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "calcx",
			Name:      "inputs_total",
			Help:      "Processed calculator inputs by kind and outcome",
		}, []string{"kind", "outcome"}),
		evaluations: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "calcx",
			Name:      "evaluations_total",
			Help:      "Expression evaluations by result",
		}, []string{"result"}),
		queueDepth: prom.NewGauge(prom.GaugeOpts{
			Namespace: "calcx",
			Name:      "queue_depth",
			Help:      "Inputs waiting in the session queue",
		}),
	}
	reg.MustRegister(pr.inputs, pr.evaluations, pr.queueDepth)
	return pr
}

func (p *PrometheusRecorder) IncInput(kind string, outcome OutcomeLabel) {
	if p == nil {
		return
	}
	p.inputs.WithLabelValues(kind, string(outcome)).Inc()
}

func (p *PrometheusRecorder) IncEvaluation(computed bool) {
	if p == nil {
		return
	}
	res := "computed"
	if !computed {
		res = "not_computable"
	}
	p.evaluations.WithLabelValues(res).Inc()
}

func (p *PrometheusRecorder) SetQueueDepth(n int) {
	if p == nil {
		return
	}
	p.queueDepth.Set(float64(n))
}

// HTTPHandler returns an http.Handler that serves Prometheus metrics for the provided registry.
func HTTPHandler(reg *prom.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{EnableOpenMetrics: true})
}
