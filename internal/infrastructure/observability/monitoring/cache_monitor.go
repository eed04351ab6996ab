// Package monitoring provides cache hit tracking for the content cache
// layers.
package monitoring

import (
	"sort"
	"sync"
	"time"
)

// Cache layers tracked by the monitor.
const (
	LayerPage   = "page"
	LayerSlug   = "slug"
	LayerRender = "render"
)

// LayerMetrics represents performance metrics for a single cache layer
type LayerMetrics struct {
	Layer         string        `json:"layer"`
	Hits          int64         `json:"hits"`
	Misses        int64         `json:"misses"`
	HitRatio      float64       `json:"hitRatio"`
	AvgLatency    time.Duration `json:"avgLatency"`
	LastUpdated   time.Time     `json:"lastUpdated"`
	totalDuration time.Duration
}

// CacheMonitor tracks hits and misses per cache layer
type CacheMonitor struct {
	mu     sync.Mutex
	layers map[string]*LayerMetrics
}

func NewCacheMonitor() *CacheMonitor {
	return &CacheMonitor{layers: make(map[string]*LayerMetrics)}
}

// Record counts one lookup. A nil monitor ignores the call.
func (m *CacheMonitor) Record(layer string, hit bool, d time.Duration) {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	l, ok := m.layers[layer]
	if !ok {
		l = &LayerMetrics{Layer: layer}
		m.layers[layer] = l
	}
	if hit {
		l.Hits++
	} else {
		l.Misses++
	}
	l.totalDuration += d
	total := l.Hits + l.Misses
	l.HitRatio = float64(l.Hits) / float64(total)
	l.AvgLatency = l.totalDuration / time.Duration(total)
	l.LastUpdated = time.Now()
}

// Snapshot returns a copy of every layer's metrics sorted by name.
func (m *CacheMonitor) Snapshot() []LayerMetrics {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]LayerMetrics, 0, len(m.layers))
	for _, l := range m.layers {
		out = append(out, *l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Layer < out[j].Layer })
	return out
}
