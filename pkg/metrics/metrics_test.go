package metrics

import (
	"testing"
)

func TestMetrics_Counters(t *testing.T) {
	m := NewMetrics("test_service")
	m.RegisterCounter("signup_requests_total", "Total number of signup requests received")

	m.IncCounter("signup_requests_total")
	m.AddCounter("signup_requests_total", 2)

	families, err := m.GetRegistry().Gather()
	if err != nil {
		t.Fatalf("Gather() error = %v", err)
	}
	if len(families) != 1 {
		t.Fatalf("got %d metric families, want 1", len(families))
	}
	if got := families[0].GetMetric()[0].GetCounter().GetValue(); got != 3 {
		t.Errorf("counter value = %v, want 3", got)
	}
}

func TestMetrics_UnregisteredNamesAreIgnored(t *testing.T) {
	m := NewMetrics("test_service")

	// None of these may panic or implicitly register anything.
	m.IncCounter("missing")
	m.ObserveHistogram("missing", 1)
	m.SetGauge("missing", 1)
	m.IncGauge("missing")

	families, err := m.GetRegistry().Gather()
	if err != nil {
		t.Fatalf("Gather() error = %v", err)
	}
	if len(families) != 0 {
		t.Errorf("got %d metric families, want 0", len(families))
	}
}

func TestMetrics_Histogram(t *testing.T) {
	m := NewMetrics("test_service")
	m.RegisterHistogram("login_duration_seconds", "Duration of login requests in seconds",
		[]float64{0.1, 0.25, 0.5, 1})

	m.ObserveHistogram("login_duration_seconds", 0.3)
	m.ObserveHistogram("login_duration_seconds", 0.7)

	families, err := m.GetRegistry().Gather()
	if err != nil {
		t.Fatalf("Gather() error = %v", err)
	}
	if len(families) != 1 {
		t.Fatalf("got %d metric families, want 1", len(families))
	}
	hist := families[0].GetMetric()[0].GetHistogram()
	if hist.GetSampleCount() != 2 {
		t.Errorf("histogram sample count = %d, want 2", hist.GetSampleCount())
	}
}
