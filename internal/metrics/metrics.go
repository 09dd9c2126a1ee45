package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	Requests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "HTTP requests by method and status code",
		},
		[]string{"method", "status"},
	)
	PostEdits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "post_edits_total",
			Help: "Post edit attempts by outcome",
		},
		[]string{"outcome"},
	)
	TagCreates = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tags_created_total",
			Help: "New tag rows created via get-or-create",
		},
	)
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// Middleware counts by method and status, not raw path, to keep label
// cardinality bounded.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		Requests.WithLabelValues(r.Method, strconv.Itoa(rec.status)).Inc()
	})
}
