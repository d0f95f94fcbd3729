package resolve_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avalluri/wic/internal/constants"
	wicerrors "github.com/avalluri/wic/internal/errors"
	"github.com/avalluri/wic/internal/resolve"
)

func TestRootfsMap_Args(t *testing.T) {
	t.Parallel()

	t.Run("empty mapping serializes to empty string", func(t *testing.T) {
		t.Parallel()
		var m resolve.RootfsMap
		assert.Empty(t, m.Args())
	})

	t.Run("preserves insertion order", func(t *testing.T) {
		t.Parallel()
		var m resolve.RootfsMap
		m.Set("ROOTFS_DIR", "/a")
		m.Set("OTHER", "/b")
		assert.Equal(t, "ROOTFS_DIR=/a OTHER=/b", m.Args())
	})

	t.Run("replacing a key keeps its position", func(t *testing.T) {
		t.Parallel()
		var m resolve.RootfsMap
		m.Set("ROOTFS_DIR", "/a")
		m.Set("OTHER", "/b")
		m.Set("ROOTFS_DIR", "/c")
		assert.Equal(t, "ROOTFS_DIR=/c OTHER=/b", m.Args())
		assert.Equal(t, 2, m.Len())
	})

	t.Run("single entry has no separator", func(t *testing.T) {
		t.Parallel()
		var m resolve.RootfsMap
		m.Set("ROOTFS_DIR", "/rootfs")
		assert.Equal(t, "ROOTFS_DIR=/rootfs", m.Args())
	})
}

func TestRootfsMap_Default(t *testing.T) {
	t.Parallel()

	var m resolve.RootfsMap
	_, ok := m.Default()
	assert.False(t, ok)

	m.Set(constants.DefaultRootfsKey, "/rootfs")
	dir, ok := m.Default()
	require.True(t, ok)
	assert.Equal(t, "/rootfs", dir)
}

func TestRootfsMap_Clone(t *testing.T) {
	t.Parallel()

	var m resolve.RootfsMap
	m.Set("A", "/a")
	clone := m.Clone()
	clone.Set("B", "/b")

	assert.Equal(t, 1, m.Len())
	assert.Equal(t, 2, clone.Len())
	assert.Equal(t, []string{"A"}, m.Keys())
	assert.Equal(t, []string{"A", "B"}, clone.Keys())
}

func TestParseRootfsEntry(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		value   string
		wantKey string
		wantDir string
		wantErr error
	}{
		{name: "bare directory uses default key", value: "/build/rootfs", wantKey: "ROOTFS_DIR", wantDir: "/build/rootfs"},
		{name: "explicit key", value: "ROOTFS_DIR_EXTRA=/build/extra", wantKey: "ROOTFS_DIR_EXTRA", wantDir: "/build/extra"},
		{name: "empty key", value: "=/build/rootfs", wantErr: wicerrors.ErrInvalidRootfsEntry},
		{name: "empty dir", value: "KEY=", wantErr: wicerrors.ErrInvalidRootfsEntry},
		{name: "empty value", value: "", wantErr: wicerrors.ErrInvalidRootfsEntry},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			key, dir, err := resolve.ParseRootfsEntry(tc.value)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantKey, key)
			assert.Equal(t, tc.wantDir, dir)
		})
	}
}
