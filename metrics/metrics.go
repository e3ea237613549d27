// Package metrics exports gameplay events as Prometheus series.
package metrics

import (
	"log"
	"net/http"
	"os"

	"github.com/milk9111/pollo/component"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shirou/gopsutil/v3/process"
)

const namespace = "pollo"

// Exporter counts game events. It owns its registry so several can coexist
// in one process.
type Exporter struct {
	registry *prometheus.Registry

	events   *prometheus.CounterVec
	sessions *prometheus.CounterVec
	coins    prometheus.Gauge
	bottles  prometheus.Gauge
}

func NewExporter() *Exporter {
	e := &Exporter{
		registry: prometheus.NewRegistry(),
		events: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_total",
			Help:      "Gameplay events by type and subject.",
		}, []string{"type", "kind"}),
		sessions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sessions_finished_total",
			Help:      "Finished sessions by outcome.",
		}, []string{"outcome"}),
		coins: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "coins",
			Help:      "Coins held in the current session.",
		}),
		bottles: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "bottles",
			Help:      "Bottles held in the current session.",
		}),
	}
	e.registry.MustRegister(e.events, e.sessions, e.coins, e.bottles)
	e.registerProcess()
	return e
}

// registerProcess exports CPU and memory of the game process. It is skipped
// when the platform does not expose them.
func (e *Exporter) registerProcess() {
	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		log.Printf("metrics: process stats unavailable: %v", err)
		return
	}
	e.registry.MustRegister(
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "process_cpu_percent",
			Help:      "CPU used by the game process.",
		}, func() float64 {
			v, err := p.CPUPercent()
			if err != nil {
				return 0
			}
			return v
		}),
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "process_rss_bytes",
			Help:      "Resident memory of the game process.",
		}, func() float64 {
			m, err := p.MemoryInfo()
			if err != nil {
				return 0
			}
			return float64(m.RSS)
		}),
	)
}

// Handle is a component.GameEventHandler.
func (e *Exporter) Handle(evt component.GameEvent) {
	e.events.WithLabelValues(string(evt.Type), evt.Kind).Inc()

	switch evt.Type {
	case component.EventCoinCollected:
		e.coins.Set(float64(evt.Amount))
	case component.EventBottleCollected, component.EventBottleThrown:
		e.bottles.Set(float64(evt.Amount))
	case component.EventWon, component.EventLost:
		e.sessions.WithLabelValues(string(evt.Type)).Inc()
	}
}

// Reset clears the per-session gauges on restart.
func (e *Exporter) Reset() {
	e.coins.Set(0)
	e.bottles.Set(0)
}

func (e *Exporter) Handler() http.Handler {
	return promhttp.HandlerFor(e.registry, promhttp.HandlerOpts{})
}

// Serve starts /metrics on addr in the background. The server lives for the
// rest of the process.
func (e *Exporter) Serve(addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", e.Handler())
	go func() {
		log.Printf("metrics: serving /metrics on %s", addr)
		if err := http.ListenAndServe(addr, mux); err != nil {
			log.Printf("metrics: server stopped: %v", err)
		}
	}()
}
