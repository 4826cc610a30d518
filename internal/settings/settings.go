// Package settings reads and writes the TOML settings file edited by the
// panel.
//
// The file lives at ~/.config/popup-settings/settings.toml by default. Each
// section is stored as a table:
//
//	[audio]
//	master_volume = 80
//
// In memory the values are flattened to "audio.master_volume" keys.
package settings

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

const keySeparator = "."

// Values maps flattened "table.key" names to setting values.
type Values map[string]interface{}

// Clone returns a shallow copy.
func (v Values) Clone() Values {
	if v == nil {
		return Values{}
	}
	dup := make(Values, len(v))
	for k, val := range v {
		dup[k] = val
	}
	return dup
}

// Keys returns the value names in sorted order.
func (v Values) Keys() []string {
	keys := make([]string, 0, len(v))
	for k := range v {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Key joins a table and field name into a flattened key.
func Key(table, name string) string {
	return table + keySeparator + name
}

// DefaultPath returns the platform-appropriate settings file location.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "popup-settings", "settings.toml")
}

// Load reads the settings file at path. A missing file yields empty values
// and no error.
func Load(path string) (Values, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Values{}, nil
		}
		return nil, fmt.Errorf("read settings: %w", err)
	}
	doc := map[string]interface{}{}
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse settings %s: %w", path, err)
	}
	out := Values{}
	flatten("", doc, out)
	return out, nil
}

// Save writes values to path, creating parent directories as needed. The file
// is replaced atomically so a concurrent reader never sees a partial write.
func Save(path string, v Values) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create settings dir: %w", err)
	}
	data, err := toml.Marshal(nest(v))
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), ".settings-*.toml")
	if err != nil {
		return fmt.Errorf("create temp settings: %w", err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write settings: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replace settings: %w", err)
	}
	return nil
}

func flatten(prefix string, doc map[string]interface{}, out Values) {
	for k, val := range doc {
		key := k
		if prefix != "" {
			key = prefix + keySeparator + k
		}
		if table, ok := val.(map[string]interface{}); ok {
			flatten(key, table, out)
			continue
		}
		out[key] = val
	}
}

func nest(v Values) map[string]interface{} {
	doc := map[string]interface{}{}
	for _, key := range v.Keys() {
		parts := strings.Split(key, keySeparator)
		node := doc
		for _, part := range parts[:len(parts)-1] {
			child, ok := node[part].(map[string]interface{})
			if !ok {
				child = map[string]interface{}{}
				node[part] = child
			}
			node = child
		}
		node[parts[len(parts)-1]] = v[key]
	}
	return doc
}
