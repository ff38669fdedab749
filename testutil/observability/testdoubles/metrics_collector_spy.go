package testdoubles

import (
	"context"
	"maps"
	"sync"
	"time"
)

// MetricRecord is one captured metrics call. Duration is set for duration records, Value for value records.
type MetricRecord struct {
	Kind     string
	Metric   string
	Duration time.Duration
	Value    float64
	Labels   map[string]string
}

const (
	kindDuration = "duration"
	kindCounter  = "counter"
	kindValue    = "value"
)

// MetricsCollectorSpy captures MetricsCollector and ContextualMetricsCollector calls.
type MetricsCollectorSpy struct {
	records []MetricRecord
	mu      sync.Mutex
}

func NewMetricsCollectorSpy() *MetricsCollectorSpy {
	return &MetricsCollectorSpy{}
}

func (s *MetricsCollectorSpy) RecordDuration(metric string, duration time.Duration, labels map[string]string) {
	s.record(MetricRecord{Kind: kindDuration, Metric: metric, Duration: duration, Labels: maps.Clone(labels)})
}

func (s *MetricsCollectorSpy) IncrementCounter(metric string, labels map[string]string) {
	s.record(MetricRecord{Kind: kindCounter, Metric: metric, Labels: maps.Clone(labels)})
}

func (s *MetricsCollectorSpy) RecordValue(metric string, value float64, labels map[string]string) {
	s.record(MetricRecord{Kind: kindValue, Metric: metric, Value: value, Labels: maps.Clone(labels)})
}

func (s *MetricsCollectorSpy) RecordDurationContext(_ context.Context, metric string, duration time.Duration, labels map[string]string) {
	s.RecordDuration(metric, duration, labels)
}

func (s *MetricsCollectorSpy) IncrementCounterContext(_ context.Context, metric string, labels map[string]string) {
	s.IncrementCounter(metric, labels)
}

func (s *MetricsCollectorSpy) RecordValueContext(_ context.Context, metric string, value float64, labels map[string]string) {
	s.RecordValue(metric, value, labels)
}

// Records returns a copy of all captured records in call order.
func (s *MetricsCollectorSpy) Records() []MetricRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]MetricRecord(nil), s.records...)
}

func (s *MetricsCollectorSpy) HasDurationRecord(metric string, labels map[string]string) bool {
	return s.has(kindDuration, metric, labels)
}

func (s *MetricsCollectorSpy) HasCounterRecord(metric string, labels map[string]string) bool {
	return s.has(kindCounter, metric, labels)
}

func (s *MetricsCollectorSpy) HasValueRecord(metric string, labels map[string]string) bool {
	return s.has(kindValue, metric, labels)
}

// SumOfValues adds up all values recorded for the metric.
func (s *MetricsCollectorSpy) SumOfValues(metric string) float64 {
	var sum float64

	for _, r := range s.Records() {
		if r.Kind == kindValue && r.Metric == metric {
			sum += r.Value
		}
	}

	return sum
}

func (s *MetricsCollectorSpy) record(r MetricRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = append(s.records, r)
}

// has matches records containing at least the given labels.
func (s *MetricsCollectorSpy) has(kind, metric string, labels map[string]string) bool {
	for _, r := range s.Records() {
		if r.Kind != kind || r.Metric != metric {
			continue
		}

		if containsLabels(r.Labels, labels) {
			return true
		}
	}

	return false
}

func containsLabels(actual, expected map[string]string) bool {
	for k, v := range expected {
		if actual[k] != v {
			return false
		}
	}

	return true
}
