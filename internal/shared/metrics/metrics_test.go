package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountersIncrement(t *testing.T) {
	before := testutil.ToFloat64(analysisCompletedTotal)
	IncAnalysisCompleted()
	assert.Equal(t, before+1, testutil.ToFloat64(analysisCompletedTotal))

	beforeStore := testutil.ToFloat64(versionsAppendedTotal.WithLabelValues("memory"))
	IncVersionAppended("memory")
	assert.Equal(t, beforeStore+1, testutil.ToFloat64(versionsAppendedTotal.WithLabelValues("memory")))
}

func TestHandlerServesRegistry(t *testing.T) {
	gin.SetMode(gin.TestMode)
	IncAnalysisStarted()
	ObserveAnalysisDurationMs(-5)
	ObserveTotalScore(77)

	r := gin.New()
	r.GET("/metrics", Handler())
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "analysis_started_total")
	assert.Contains(t, body, "analysis_duration_ms_bucket")
	assert.Contains(t, body, "analysis_total_score_count")
}

func TestSinceMillis(t *testing.T) {
	assert.GreaterOrEqual(t, SinceMillis(time.Now().Add(-10*time.Millisecond)), 10.0)
}
