package tui_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/avalluri/wic/internal/tui"
)

func TestActionableError_Error(t *testing.T) {
	t.Parallel()

	err := tui.NewActionableError("descriptor not found", "Run: wic list images")

	assert.Equal(t, "descriptor not found", err.Error())
	assert.Equal(t, "Run: wic list images", err.GetSuggestion())
}

func TestActionableError_WithContext(t *testing.T) {
	t.Parallel()

	err := tui.NewActionableError("rootfs directory not found", "Check the -r path").
		WithContext("/tmp/deploy/rootfs")

	assert.Equal(t, "rootfs directory not found (/tmp/deploy/rootfs)", err.Error())
	assert.Equal(t, "/tmp/deploy/rootfs", err.GetContext())
}
