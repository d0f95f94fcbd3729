package resolve

import (
	"strings"

	"github.com/avalluri/wic/internal/constants"
	"github.com/avalluri/wic/internal/errors"
)

// rootfsEntry is one named rootfs source in a RootfsMap.
type rootfsEntry struct {
	key string
	dir string
}

// RootfsMap is an insertion-ordered mapping of rootfs mount-point keys to
// directories. Multi-partition images reference additional rootfs sources by
// key from their description file; the primary source uses DefaultRootfsKey.
//
// Keys are unique. Order is preserved so the serialized form is reproducible
// and can be echoed to users and compared in tests.
type RootfsMap struct {
	entries []rootfsEntry
}

// Set adds or replaces the directory for a key. A replaced key keeps its
// original position.
func (m *RootfsMap) Set(key, dir string) {
	for i := range m.entries {
		if m.entries[i].key == key {
			m.entries[i].dir = dir
			return
		}
	}
	m.entries = append(m.entries, rootfsEntry{key: key, dir: dir})
}

// Get returns the directory mapped to key.
func (m *RootfsMap) Get(key string) (string, bool) {
	for _, e := range m.entries {
		if e.key == key {
			return e.dir, true
		}
	}
	return "", false
}

// Default returns the directory mapped to the default rootfs key.
func (m *RootfsMap) Default() (string, bool) {
	return m.Get(constants.DefaultRootfsKey)
}

// Len returns the number of entries.
func (m *RootfsMap) Len() int {
	return len(m.entries)
}

// Keys returns the mapping keys in insertion order.
func (m *RootfsMap) Keys() []string {
	keys := make([]string, 0, len(m.entries))
	for _, e := range m.entries {
		keys = append(keys, e.key)
	}
	return keys
}

// Clone returns an independent copy of the map.
func (m *RootfsMap) Clone() RootfsMap {
	return RootfsMap{entries: append([]rootfsEntry(nil), m.entries...)}
}

// Args serializes the mapping into the composite string consumed by the image
// engine: entries joined by a single space, each rendered as KEY=PATH, in
// insertion order. An empty mapping yields an empty string.
func (m *RootfsMap) Args() string {
	if len(m.entries) == 0 {
		return ""
	}
	parts := make([]string, 0, len(m.entries))
	for _, e := range m.entries {
		parts = append(parts, e.key+"="+e.dir)
	}
	return strings.Join(parts, " ")
}

// ParseRootfsEntry parses a -r flag value of the form "KEY=DIR" or a bare
// "DIR" (which maps to the default key). It returns ErrInvalidRootfsEntry for
// empty keys or directories.
func ParseRootfsEntry(value string) (key, dir string, err error) {
	key = constants.DefaultRootfsKey
	dir = value
	if idx := strings.Index(value, "="); idx >= 0 {
		key = value[:idx]
		dir = value[idx+1:]
	}
	if key == "" || dir == "" {
		return "", "", errors.Wrapf(errors.ErrInvalidRootfsEntry, "%q", value)
	}
	return key, dir, nil
}
