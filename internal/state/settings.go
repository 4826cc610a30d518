package state

import (
	"fmt"
	"strconv"

	"github.com/atomicstack/popup-settings/internal/settings"
)

type SettingsStore interface {
	Value(key string) (interface{}, bool)
	Bool(key string) bool
	Int(key string) int
	String(key string) string
	Set(key string, value interface{})
	SetDefault(key string, value interface{})
	Snapshot() settings.Values
	Replace(settings.Values)
	Dirty() bool
	DirtyKeys() []string
	MarkClean()
}

type settingsStore struct {
	values   settings.Values
	defaults settings.Values
	dirty    map[string]struct{}
}

func NewSettingsStore(initial settings.Values) SettingsStore {
	return &settingsStore{
		values:   initial.Clone(),
		defaults: settings.Values{},
		dirty:    make(map[string]struct{}),
	}
}

func (s *settingsStore) Value(key string) (interface{}, bool) {
	if v, ok := s.values[key]; ok {
		return v, true
	}
	v, ok := s.defaults[key]
	return v, ok
}

func (s *settingsStore) Bool(key string) bool {
	v, _ := s.Value(key)
	switch b := v.(type) {
	case bool:
		return b
	case string:
		parsed, err := strconv.ParseBool(b)
		return err == nil && parsed
	}
	return false
}

func (s *settingsStore) Int(key string) int {
	v, _ := s.Value(key)
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	case string:
		parsed, err := strconv.Atoi(n)
		if err == nil {
			return parsed
		}
	}
	return 0
}

func (s *settingsStore) String(key string) string {
	v, ok := s.Value(key)
	if !ok || v == nil {
		return ""
	}
	if str, ok := v.(string); ok {
		return str
	}
	return fmt.Sprint(v)
}

func (s *settingsStore) Set(key string, value interface{}) {
	s.values[key] = normalise(value)
	s.dirty[key] = struct{}{}
}

// SetDefault registers the fallback used while the key has no stored value.
func (s *settingsStore) SetDefault(key string, value interface{}) {
	s.defaults[key] = normalise(value)
}

// Snapshot returns defaults overlaid with stored values.
func (s *settingsStore) Snapshot() settings.Values {
	out := s.defaults.Clone()
	for k, v := range s.values {
		out[k] = v
	}
	return out
}

func (s *settingsStore) Replace(values settings.Values) {
	s.values = settings.Values{}
	for k, v := range values {
		s.values[k] = normalise(v)
	}
	s.MarkClean()
}

func (s *settingsStore) Dirty() bool {
	return len(s.dirty) > 0
}

func (s *settingsStore) DirtyKeys() []string {
	keys := make(settings.Values, len(s.dirty))
	for k := range s.dirty {
		keys[k] = nil
	}
	return keys.Keys()
}

func (s *settingsStore) MarkClean() {
	for k := range s.dirty {
		delete(s.dirty, k)
	}
}

// normalise stores integers as int64 so in-memory values compare equal to
// those decoded from TOML.
func normalise(value interface{}) interface{} {
	switch n := value.(type) {
	case int:
		return int64(n)
	case int32:
		return int64(n)
	}
	return value
}
