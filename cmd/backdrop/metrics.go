package main

import (
	"errors"
	"net/http"
	"net/http/pprof"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"backdrop"
	"backdrop/misc"
)

type FrameMetrics struct {
	Frames       prometheus.Counter
	DroppedTicks prometheus.Counter
	FrameSeconds prometheus.Histogram
	Connections  prometheus.Gauge
	Sparkles     prometheus.Gauge
}

func NewFrameMetrics(reg prometheus.Registerer) *FrameMetrics {
	factory := promauto.With(reg)

	return &FrameMetrics{
		Frames: factory.NewCounter(prometheus.CounterOpts{
			Name: "backdrop_frames_total",
			Help: "Frames painted by the engine",
		}),
		DroppedTicks: factory.NewCounter(prometheus.CounterOpts{
			Name: "backdrop_dropped_ticks_total",
			Help: "Refresh ticks that did not paint a frame",
		}),
		FrameSeconds: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "backdrop_frame_seconds",
			Help:    "Time spent painting one frame",
			Buckets: prometheus.ExponentialBuckets(0.0005, 2, 10),
		}),
		Connections: factory.NewGauge(prometheus.GaugeOpts{
			Name: "backdrop_connections",
			Help: "Connection lines in the last frame",
		}),
		Sparkles: factory.NewGauge(prometheus.GaugeOpts{
			Name: "backdrop_visible_sparkles",
			Help: "Sparkles painted in the last frame",
		}),
	}
}

// Observe records one refresh tick.
// Safe to call on nil FrameMetrics.
func (m *FrameMetrics) Observe(painted bool, took time.Duration, info backdrop.FrameInfo) {
	if m == nil {
		return
	}
	if !painted {
		m.DroppedTicks.Inc()
		return
	}
	m.Frames.Inc()
	m.FrameSeconds.Observe(took.Seconds())
	m.Connections.Set(float64(info.Connections))
	m.Sparkles.Set(float64(info.VisibleSparkles))
}

// StartDebugServer serves pprof and prometheus metrics on addr in background.
func StartDebugServer(addr string, gatherer prometheus.Gatherer) *http.Server {
	mux := http.NewServeMux()

	mux.HandleFunc("/debug/pprof/", pprof.Index)
	mux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
	mux.HandleFunc("/debug/pprof/profile", pprof.Profile)
	mux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
	mux.HandleFunc("/debug/pprof/trace", pprof.Trace)

	mux.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	server := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	go func() {
		misc.InfoLogger.Infof("initializing pprof and metrics on http://%s", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			misc.ErrLogger.Errorf("debug server exited: %v", err)
		}
	}()

	return server
}
