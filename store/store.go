// Package store persists settings and lifetime stats between runs.
package store

import (
	"fmt"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// DefaultAppName names the gdata storage directory.
const DefaultAppName = "pollo_loco"

const (
	object       = "pollo"
	settingsProp = "settings.yaml"
	statsProp    = "stats.yaml"
)

// Settings are the player's persisted preferences.
type Settings struct {
	Muted bool `yaml:"muted"`
}

// Stats are lifetime counters across sessions.
type Stats struct {
	Sessions  int `yaml:"sessions"`
	Wins      int `yaml:"wins"`
	Losses    int `yaml:"losses"`
	BestCoins int `yaml:"best_coins"`
}

// Store reads and writes Settings and Stats through gdata. A Store with a
// nil manager keeps everything in memory.
type Store struct {
	manager  *gdata.Manager
	settings Settings
	stats    Stats
}

// Open creates a gdata manager for appName and loads saved data. If gdata
// cannot be opened the returned Store still works in memory-only mode and
// the error is returned alongside it.
func Open(appName string) (*Store, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return &Store{}, fmt.Errorf("store: open %s: %w", appName, err)
	}
	return New(m)
}

// New wraps an existing manager and loads saved data.
func New(m *gdata.Manager) (*Store, error) {
	s := &Store{manager: m}
	if err := s.load(settingsProp, &s.settings); err != nil {
		return s, err
	}
	if err := s.load(statsProp, &s.stats); err != nil {
		return s, err
	}
	return s, nil
}

// Persistent reports whether writes reach disk.
func (s *Store) Persistent() bool { return s.manager != nil }

func (s *Store) Settings() Settings { return s.settings }

func (s *Store) Stats() Stats { return s.stats }

// SetMuted records the mute preference.
func (s *Store) SetMuted(m bool) error {
	if s.settings.Muted == m {
		return nil
	}
	s.settings.Muted = m
	return s.save(settingsProp, s.settings)
}

// Record adds one finished session to the stats.
func (s *Store) Record(won bool, coins int) error {
	s.stats.Sessions++
	if won {
		s.stats.Wins++
	} else {
		s.stats.Losses++
	}
	if coins > s.stats.BestCoins {
		s.stats.BestCoins = coins
	}
	return s.save(statsProp, s.stats)
}

func (s *Store) load(prop string, into any) error {
	if s.manager == nil || !s.manager.ObjectPropExists(object, prop) {
		return nil
	}
	data, err := s.manager.LoadObjectProp(object, prop)
	if err != nil {
		return fmt.Errorf("store: load %s: %w", prop, err)
	}
	if err := yaml.Unmarshal(data, into); err != nil {
		return fmt.Errorf("store: unmarshal %s: %w", prop, err)
	}
	return nil
}

func (s *Store) save(prop string, v any) error {
	if s.manager == nil {
		return nil
	}
	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("store: marshal %s: %w", prop, err)
	}
	if err := s.manager.SaveObjectProp(object, prop, data); err != nil {
		return fmt.Errorf("store: save %s: %w", prop, err)
	}
	return nil
}
