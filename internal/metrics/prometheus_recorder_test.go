package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrometheusRecorder(t *testing.T) {
	reg := prom.NewRegistry()
	pr := NewPrometheusRecorder(reg)
	pr.IncInput("digit", OutcomeApplied)
	pr.IncInput("digit", OutcomeApplied)
	pr.IncInput("digit", OutcomeIgnored)
	pr.IncEvaluation(true)
	pr.IncEvaluation(false)
	pr.SetQueueDepth(3)

	assert.InDelta(t, 2, testutil.ToFloat64(pr.inputs.WithLabelValues("digit", "applied")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(pr.inputs.WithLabelValues("digit", "ignored")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(pr.evaluations.WithLabelValues("not_computable")), 0)
	assert.InDelta(t, 3, testutil.ToFloat64(pr.queueDepth), 0)

	mfs, err := reg.Gather()
	require.NoError(t, err)
	assert.Len(t, mfs, 3)
}

func TestPrometheusRecorder_NilReceiver(t *testing.T) {
	var pr *PrometheusRecorder
	assert.NotPanics(t, func() {
		pr.IncInput("clear", OutcomeApplied)
		pr.IncEvaluation(true)
		pr.SetQueueDepth(1)
	})
}

func TestHTTPHandler(t *testing.T) {
	reg := prom.NewRegistry()
	NewPrometheusRecorder(reg).IncInput("equals", OutcomeApplied)

	srv := httptest.NewServer(HTTPHandler(reg))
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `calcx_inputs_total{kind="equals",outcome="applied"} 1`)
}

func TestNoopRecorder(t *testing.T) {
	var r Recorder = NoopRecorder{}
	r.IncInput("digit", OutcomeApplied)
	r.IncEvaluation(false)
	r.SetQueueDepth(0)
}
