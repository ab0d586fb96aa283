package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"wealthmindset/internal/domain"
)

// catalogFile is the on-disk shape of the event configuration.
type catalogFile struct {
	Events []*domain.Event `yaml:"events"`
}

type catalog struct {
	events []*domain.Event
	byID   map[string]*domain.Event
}

// Load reads the static event catalog from a YAML file. The catalog is fixed for
// the lifetime of the process; events are defined at deploy time only.
func Load(path string) (domain.EventCatalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read event catalog: %w", err)
	}
	return Parse(raw)
}

// Parse builds a catalog from raw YAML. It rejects events with missing or
// duplicate IDs so misconfiguration fails at startup rather than per request.
func Parse(raw []byte) (domain.EventCatalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse event catalog: %w", err)
	}
	byID := make(map[string]*domain.Event, len(file.Events))
	for _, ev := range file.Events {
		if ev.ID == "" {
			return nil, fmt.Errorf("event catalog: event %q has no id", ev.Title)
		}
		if _, exists := byID[ev.ID]; exists {
			return nil, fmt.Errorf("event catalog: duplicate event id %q", ev.ID)
		}
		byID[ev.ID] = ev
	}
	return &catalog{events: file.Events, byID: byID}, nil
}

func (c *catalog) GetByID(id string) (*domain.Event, error) {
	ev, ok := c.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return ev, nil
}

func (c *catalog) List() []*domain.Event {
	out := make([]*domain.Event, len(c.events))
	copy(out, c.events)
	return out
}
