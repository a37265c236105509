package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"go.uber.org/zap"
)

// getTestMetrics creates metrics on an isolated registry
func getTestMetrics() *Metrics {
	return NewWithRegistry(prometheus.NewRegistry(), zap.NewNop())
}

// getCounterValue reads the current value of a plain counter
func getCounterValue(t *testing.T, counter prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	if err := counter.Write(&m); err != nil {
		t.Fatalf("failed to read counter: %v", err)
	}
	return m.GetCounter().GetValue()
}

// getGaugeValue reads the current value of a plain gauge
func getGaugeValue(t *testing.T, gauge prometheus.Gauge) float64 {
	t.Helper()
	var m dto.Metric
	if err := gauge.Write(&m); err != nil {
		t.Fatalf("failed to read gauge: %v", err)
	}
	return m.GetGauge().GetValue()
}

// TestMetricsInitialization tests that all metrics are properly initialized
func TestMetricsInitialization(t *testing.T) {
	m := getTestMetrics()

	if m.HTTPRequestsTotal == nil {
		t.Error("HTTPRequestsTotal should not be nil")
	}
	if m.HTTPRequestDuration == nil {
		t.Error("HTTPRequestDuration should not be nil")
	}
	if m.DBConnectionsOpen == nil {
		t.Error("DBConnectionsOpen should not be nil")
	}
	if m.DBConnectionsInUse == nil {
		t.Error("DBConnectionsInUse should not be nil")
	}
	if m.DBConnectionsIdle == nil {
		t.Error("DBConnectionsIdle should not be nil")
	}
	if m.DBConnectionsMax == nil {
		t.Error("DBConnectionsMax should not be nil")
	}
	if m.DBConnectionWaitTotal == nil {
		t.Error("DBConnectionWaitTotal should not be nil")
	}
	if m.DBConnectionWaitDuration == nil {
		t.Error("DBConnectionWaitDuration should not be nil")
	}
	if m.DBQueryDuration == nil {
		t.Error("DBQueryDuration should not be nil")
	}
	if m.DBQueryErrors == nil {
		t.Error("DBQueryErrors should not be nil")
	}
	if m.BoardCreatedTotal == nil {
		t.Error("BoardCreatedTotal should not be nil")
	}
	if m.CommentCreatedTotal == nil {
		t.Error("CommentCreatedTotal should not be nil")
	}
	if m.CommentsDeletedTotal == nil {
		t.Error("CommentsDeletedTotal should not be nil")
	}
	if m.LikeToggledTotal == nil {
		t.Error("LikeToggledTotal should not be nil")
	}
	if m.UserCreatedTotal == nil {
		t.Error("UserCreatedTotal should not be nil")
	}
	if m.PermissionDeniedTotal == nil {
		t.Error("PermissionDeniedTotal should not be nil")
	}
	if m.CacheRequestsTotal == nil {
		t.Error("CacheRequestsTotal should not be nil")
	}
	if m.BoardsTotal == nil {
		t.Error("BoardsTotal should not be nil")
	}
	if m.CommentsTotal == nil {
		t.Error("CommentsTotal should not be nil")
	}
	if m.LikesTotal == nil {
		t.Error("LikesTotal should not be nil")
	}
	if m.UsersTotal == nil {
		t.Error("UsersTotal should not be nil")
	}
}

// TestRecordHTTPRequest tests HTTP request metric recording
func TestRecordHTTPRequest(t *testing.T) {
	m := getTestMetrics()

	m.RecordHTTPRequest("GET", "/api/v1/boards/page", 200, 50*time.Millisecond)

	counter, err := m.HTTPRequestsTotal.GetMetricWithLabelValues("GET", "/api/v1/boards/page", "2xx")
	if err != nil {
		t.Fatalf("failed to get counter: %v", err)
	}
	if got := getCounterValue(t, counter); got != 1 {
		t.Errorf("Expected counter value 1, got %f", got)
	}
}

// TestCategorizeStatus tests status code categorization
func TestCategorizeStatus(t *testing.T) {
	tests := []struct {
		code     int
		expected string
	}{
		{200, "2xx"},
		{201, "2xx"},
		{301, "3xx"},
		{400, "4xx"},
		{403, "4xx"},
		{404, "4xx"},
		{500, "5xx"},
		{100, "unknown"},
	}

	for _, tt := range tests {
		if got := categorizeStatus(tt.code); got != tt.expected {
			t.Errorf("categorizeStatus(%d) = %s, expected %s", tt.code, got, tt.expected)
		}
	}
}

// TestShouldSkipEndpoint tests exclusion of operational endpoints
func TestShouldSkipEndpoint(t *testing.T) {
	tests := []struct {
		path     string
		expected bool
	}{
		{"/metrics", true},
		{"/health", true},
		// base path 아래 운영 엔드포인트도 제외된다
		{"/api/v1/metrics", true},
		{"/api/v1/health", true},
		{"/api/v1/boards", false},
		{"/api/v1/boards/page", false},
	}

	for _, tt := range tests {
		if got := ShouldSkipEndpoint(tt.path); got != tt.expected {
			t.Errorf("ShouldSkipEndpoint(%s) = %v, expected %v", tt.path, got, tt.expected)
		}
	}
}

// TestRecordDBQuery tests database query metric recording
func TestRecordDBQuery(t *testing.T) {
	m := getTestMetrics()

	m.RecordDBQuery("SELECT", "boards", 5*time.Millisecond, nil)

	// Error counter should stay at zero for a successful query
	errCounter, err := m.DBQueryErrors.GetMetricWithLabelValues("select", "boards")
	if err != nil {
		t.Fatalf("failed to get counter: %v", err)
	}
	if got := getCounterValue(t, errCounter); got != 0 {
		t.Errorf("Expected no query errors, got %f", got)
	}
}
