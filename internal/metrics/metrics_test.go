package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrometheus_Counters(t *testing.T) {
	p := New()

	p.BookkeepingFailed("ensure_category")
	p.BookkeepingFailed("ensure_category")
	p.StockChanged("purchase", "ok")
	p.OrphansRemoved(3)
	p.OrphansRemoved(0)

	assert.Equal(t, 2.0, testutil.ToFloat64(p.bookkeeping.WithLabelValues("ensure_category")))
	assert.Equal(t, 1.0, testutil.ToFloat64(p.stock.WithLabelValues("purchase", "ok")))
	assert.Equal(t, 3.0, testutil.ToFloat64(p.sweptOrphan))
}

func TestPrometheus_Handler(t *testing.T) {
	p := New()
	p.StockChanged("restock", "ok")

	rec := httptest.NewRecorder()
	p.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `sweetshop_stock_changes_total{op="restock",outcome="ok"} 1`)
}
