package main

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type metrics struct {
	registry *prometheus.Registry
	rounds   *prometheus.CounterVec
	duration prometheus.Histogram
	dataSize prometheus.Gauge
}

func newMetrics() *metrics {
	m := &metrics{
		registry: prometheus.NewRegistry(),
		rounds: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "mergesort_rounds_total",
			Help: "Sort rounds by verification result",
		}, []string{"verified"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "mergesort_sort_duration_milliseconds",
			Help:    "Merge sort wall time per round in milliseconds",
			Buckets: prometheus.ExponentialBuckets(0.1, 2.0, 20),
		}),
		dataSize: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "mergesort_data_size",
			Help: "Number of integers sorted in the last round",
		}),
	}
	m.registry.MustRegister(m.rounds, m.duration, m.dataSize)
	return m
}

func (m *metrics) observe(res BenchmarkResult) {
	m.rounds.WithLabelValues(strconv.FormatBool(res.Verified)).Inc()
	m.duration.Observe(float64(res.Duration) / float64(time.Millisecond))
	m.dataSize.Set(float64(res.DataSize))
}

func (m *metrics) handler() http.Handler {
	r := mux.NewRouter()
	r.Handle("/metrics", promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})).Methods(http.MethodGet)
	return r
}

// serveMetrics ctx가 끝나면 서버를 종료한다
func serveMetrics(ctx context.Context, addr string, m *metrics) {
	srv := &http.Server{
		Addr:              addr,
		Handler:           m.handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("metrics 서버 종료 오류: %v", err)
		}
	}()

	log.Printf("metrics 서버 시작: %s/metrics", addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Printf("metrics 서버 오류: %v", err)
	}
}
