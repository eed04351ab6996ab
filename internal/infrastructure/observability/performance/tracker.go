// Package performance provides performance tracking for landing page
// operations.
package performance

import (
	"sort"
	"sync"
	"time"
)

// Tracker keeps a bounded history of completed markers and aggregates them
// per operation.
type Tracker struct {
	mu      sync.RWMutex
	history []Marker
	config  *TrackerConfig
	started time.Time
}

// TrackerConfig contains configuration options for the performance tracker
type TrackerConfig struct {
	MaxMarkers    int           `json:"maxMarkers"`
	SlowThreshold time.Duration `json:"slowThreshold"`
}

// DefaultTrackerConfig returns a sensible default configuration
func DefaultTrackerConfig() *TrackerConfig {
	return &TrackerConfig{
		MaxMarkers:    5000,
		SlowThreshold: 500 * time.Millisecond,
	}
}

// NewTracker creates a new performance tracker with the given configuration
func NewTracker(config *TrackerConfig) *Tracker {
	if config == nil {
		config = DefaultTrackerConfig()
	}
	return &Tracker{config: config, started: time.Now()}
}

// StartOperation creates a marker for an operation. Call Complete on it when
// the operation finishes.
func (t *Tracker) StartOperation(operation, subject string) *Marker {
	return &Marker{
		Operation: operation,
		Subject:   subject,
		StartTime: time.Now(),
		Metadata:  make(map[string]any),
		Success:   true,
		tracker:   t,
	}
}

func (t *Tracker) record(m *Marker) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.history = append(t.history, *m)
	if over := len(t.history) - t.config.MaxMarkers; over > 0 {
		t.history = append(t.history[:0:0], t.history[over:]...)
	}
}

// GetRecentMetrics returns markers completed within the window.
func (t *Tracker) GetRecentMetrics(within time.Duration) []Marker {
	cutoff := time.Now().Add(-within)
	t.mu.RLock()
	defer t.mu.RUnlock()

	var out []Marker
	for _, m := range t.history {
		if m.EndTime.After(cutoff) {
			out = append(out, m)
		}
	}
	return out
}

// Stats aggregates the retained history per operation, sorted by name.
func (t *Tracker) Stats() []OperationStats {
	t.mu.RLock()
	defer t.mu.RUnlock()

	byOp := make(map[string]*OperationStats)
	totals := make(map[string]time.Duration)
	for _, m := range t.history {
		s, ok := byOp[m.Operation]
		if !ok {
			s = &OperationStats{Operation: m.Operation}
			byOp[m.Operation] = s
		}
		s.Count++
		if !m.Success {
			s.Failures++
		}
		if m.Duration > s.Max {
			s.Max = m.Duration
		}
		if m.Duration > t.config.SlowThreshold {
			s.Slow++
		}
		totals[m.Operation] += m.Duration
	}

	out := make([]OperationStats, 0, len(byOp))
	for op, s := range byOp {
		s.Average = totals[op] / time.Duration(s.Count)
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Operation < out[j].Operation })
	return out
}

// Health summarises recent failures and slow operations.
func (t *Tracker) Health() HealthStatus {
	recent := t.GetRecentMetrics(5 * time.Minute)
	if len(recent) == 0 {
		return HealthUnknown
	}
	var failed, slow int
	for _, m := range recent {
		if !m.Success {
			failed++
		}
		if m.Duration > t.config.SlowThreshold {
			slow++
		}
	}
	ratio := float64(failed+slow) / float64(len(recent))
	switch {
	case ratio > 0.25:
		return HealthUnhealthy
	case ratio > 0.05:
		return HealthDegraded
	default:
		return HealthHealthy
	}
}

// Uptime reports how long the tracker has been running.
func (t *Tracker) Uptime() time.Duration {
	return time.Since(t.started)
}
