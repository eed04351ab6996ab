// Package messaging defines interfaces for real-time communication.
package messaging

import (
	"encoding/json"
	"time"
)

const (
	EventComponentUpdated = "component_updated"
	EventComponentAdded   = "component_added"
	EventComponentRemoved = "component_removed"
	EventPageUpdated      = "page_updated"
)

// PreviewEvent is pushed to preview clients watching a page.
type PreviewEvent struct {
	Type        string          `json:"type"`
	PageID      string          `json:"pageId"`
	ComponentID string          `json:"componentId,omitempty"`
	Kind        string          `json:"kind,omitempty"`
	Config      json.RawMessage `json:"config,omitempty"`
	At          time.Time       `json:"at"`
}

// Publisher delivers preview events. Publishing never blocks the caller.
type Publisher interface {
	Publish(event PreviewEvent)
	HasViewers(pageID string) bool
}

// NopPublisher drops every event.
type NopPublisher struct{}

func (NopPublisher) Publish(PreviewEvent) {}

func (NopPublisher) HasViewers(string) bool { return false }
