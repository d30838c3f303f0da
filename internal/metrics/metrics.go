// Package metrics はカタログ操作のPrometheusメトリクスを持つ。
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Prometheus struct {
	registry    *prometheus.Registry
	bookkeeping *prometheus.CounterVec
	stock       *prometheus.CounterVec
	sweptOrphan prometheus.Counter
}

// New は専用のregistryにメトリクスを登録する。
func New() *Prometheus {
	reg := prometheus.NewRegistry()

	p := &Prometheus{
		registry: reg,
		bookkeeping: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sweetshop",
			Name:      "category_bookkeeping_failures_total",
			Help:      "Best-effort category bookkeeping steps that failed and were skipped.",
		}, []string{"op"}),
		stock: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sweetshop",
			Name:      "stock_changes_total",
			Help:      "Purchase and restock attempts by outcome.",
		}, []string{"op", "outcome"}),
		sweptOrphan: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "sweetshop",
			Name:      "orphan_categories_removed_total",
			Help:      "Categories removed because no item referenced them.",
		}),
	}

	reg.MustRegister(
		p.bookkeeping,
		p.stock,
		p.sweptOrphan,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return p
}

func (p *Prometheus) BookkeepingFailed(op string) {
	p.bookkeeping.WithLabelValues(op).Inc()
}

func (p *Prometheus) StockChanged(op string, outcome string) {
	p.stock.WithLabelValues(op, outcome).Inc()
}

func (p *Prometheus) OrphansRemoved(n int) {
	if n > 0 {
		p.sweptOrphan.Add(float64(n))
	}
}

// /metrics 用のハンドラ
func (p *Prometheus) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{Registry: p.registry})
}
