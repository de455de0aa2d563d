package metrics

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/gin-gonic/gin"
)

var (
	scoreRequestsTotal atomic.Uint64
	scorePassedTotal   atomic.Uint64
	scoreFailedTotal   atomic.Uint64
	scoreErrorsTotal   atomic.Uint64

	scoreDuration = newHistogram([]float64{1, 5, 10, 25, 50, 100, 250, 500, 1000})
)

// IncScoreRequest increments the scoring request counter.
func IncScoreRequest() {
	scoreRequestsTotal.Add(1)
}

// IncScoreOutcome increments the pass or fail counter for a completed scoring.
func IncScoreOutcome(isPass bool) {
	if isPass {
		scorePassedTotal.Add(1)
	} else {
		scoreFailedTotal.Add(1)
	}
}

// IncScoreError increments the scoring error counter.
func IncScoreError() {
	scoreErrorsTotal.Add(1)
}

// ObserveScoreDurationMs records a scoring duration in milliseconds.
func ObserveScoreDurationMs(value float64) {
	if value < 0 {
		value = 0
	}
	scoreDuration.Observe(value)
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Content-Type", "text/plain; version=0.0.4")
		c.String(http.StatusOK, Render())
	}
}

// Render renders metrics in Prometheus text format.
func Render() string {
	var buf bytes.Buffer
	writeCounter(&buf, "score_requests_total", "Total scoring requests received", scoreRequestsTotal.Load())
	writeCounter(&buf, "score_passed_total", "Total scorings above the pass threshold", scorePassedTotal.Load())
	writeCounter(&buf, "score_failed_total", "Total scorings below the pass threshold", scoreFailedTotal.Load())
	writeCounter(&buf, "score_errors_total", "Total scoring requests that errored", scoreErrorsTotal.Load())
	writeHistogram(&buf, "score_duration_ms", "Scoring duration in milliseconds", scoreDuration.Snapshot())
	return buf.String()
}

type histogram struct {
	mu      sync.Mutex
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

type histogramSnapshot struct {
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

func newHistogram(buckets []float64) *histogram {
	return &histogram{
		buckets: buckets,
		counts:  make([]uint64, len(buckets)),
	}
}

func (h *histogram) Observe(value float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.count++
	h.sum += value
	for i, bound := range h.buckets {
		if value <= bound {
			h.counts[i]++
		}
	}
}

func (h *histogram) Snapshot() histogramSnapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	return histogramSnapshot{
		buckets: append([]float64(nil), h.buckets...),
		counts:  append([]uint64(nil), h.counts...),
		sum:     h.sum,
		count:   h.count,
	}
}

func writeCounter(buf *bytes.Buffer, name, help string, value uint64) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s counter\n", name)
	fmt.Fprintf(buf, "%s %d\n", name, value)
}

func writeHistogram(buf *bytes.Buffer, name, help string, snap histogramSnapshot) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s histogram\n", name)
	for i, bound := range snap.buckets {
		fmt.Fprintf(buf, "%s_bucket{le=%q} %d\n", name, strconv.FormatFloat(bound, 'f', -1, 64), snap.counts[i])
	}
	fmt.Fprintf(buf, "%s_bucket{le=\"+Inf\"} %d\n", name, snap.count)
	fmt.Fprintf(buf, "%s_sum %g\n", name, snap.sum)
	fmt.Fprintf(buf, "%s_count %d\n", name, snap.count)
}
