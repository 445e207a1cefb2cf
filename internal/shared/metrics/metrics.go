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
	analyzeRequestsTotal atomic.Uint64
	analyzeAITotal       atomic.Uint64
	analyzeFallbackTotal atomic.Uint64
	analyzeRejectedTotal atomic.Uint64
	resumesRenderedTotal atomic.Uint64

	analyzeDuration = newHistogram([]float64{100, 250, 500, 1000, 2000, 5000, 10000, 30000, 60000})
)

// IncAnalyzeRequests increments the analyze request counter.
func IncAnalyzeRequests() {
	analyzeRequestsTotal.Add(1)
}

// IncAnalyzeAI counts analyses resolved through the AI path.
func IncAnalyzeAI() {
	analyzeAITotal.Add(1)
}

// IncAnalyzeFallback counts analyses resolved through the heuristic fallback.
func IncAnalyzeFallback() {
	analyzeFallbackTotal.Add(1)
}

// IncAnalyzeRejected counts uploads rejected before any AI cost.
func IncAnalyzeRejected() {
	analyzeRejectedTotal.Add(1)
}

// IncResumesRendered counts generated resume documents.
func IncResumesRendered() {
	resumesRenderedTotal.Add(1)
}

// ObserveAnalyzeDurationMs records an analyze request duration in milliseconds.
func ObserveAnalyzeDurationMs(value float64) {
	if value < 0 {
		value = 0
	}
	analyzeDuration.Observe(value)
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
	writeCounter(&buf, "analyze_requests_total", "Total analyze requests received", analyzeRequestsTotal.Load())
	writeCounter(&buf, "analyze_ai_total", "Analyses resolved via the AI path", analyzeAITotal.Load())
	writeCounter(&buf, "analyze_fallback_total", "Analyses resolved via the heuristic fallback", analyzeFallbackTotal.Load())
	writeCounter(&buf, "analyze_rejected_total", "Uploads rejected before AI invocation", analyzeRejectedTotal.Load())
	writeCounter(&buf, "resumes_rendered_total", "Resume documents generated", resumesRenderedTotal.Load())
	writeHistogram(&buf, "analyze_duration_ms", "Analyze request duration in milliseconds", analyzeDuration.Snapshot())
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
	// Per-bucket counts; Render accumulates them into the cumulative
	// form the exposition format expects.
	for i, bound := range h.buckets {
		if value <= bound {
			h.counts[i]++
			break
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
	var cumulative uint64
	for i, bound := range snap.buckets {
		cumulative += snap.counts[i]
		fmt.Fprintf(buf, "%s_bucket{le=\"%s\"} %d\n", name, formatFloat(bound), cumulative)
	}
	fmt.Fprintf(buf, "%s_bucket{le=\"+Inf\"} %d\n", name, snap.count)
	fmt.Fprintf(buf, "%s_sum %s\n", name, formatFloat(snap.sum))
	fmt.Fprintf(buf, "%s_count %d\n", name, snap.count)
}

func formatFloat(value float64) string {
	if value == float64(int64(value)) {
		return strconv.FormatInt(int64(value), 10)
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}
