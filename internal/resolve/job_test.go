package resolve_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/avalluri/wic/internal/constants"
	"github.com/avalluri/wic/internal/resolve"
)

func TestNewImageJob(t *testing.T) {
	t.Parallel()

	job := resolve.NewImageJob("core-image-minimal", true)
	assert.NotEmpty(t, job.ID)
	assert.Equal(t, resolve.JobImage, job.Kind)
	assert.Equal(t, "core-image-minimal", job.Target)
	assert.True(t, job.Debug)
}

func TestNewNativeToolsJob(t *testing.T) {
	t.Parallel()

	job := resolve.NewNativeToolsJob(false)
	assert.NotEmpty(t, job.ID)
	assert.Equal(t, resolve.JobNativeTools, job.Kind)
	assert.Equal(t, constants.NativeToolsTarget, job.Target)
	assert.False(t, job.Debug)
}

func TestJobIDs_Unique(t *testing.T) {
	t.Parallel()

	a := resolve.NewImageJob("img", false)
	b := resolve.NewImageJob("img", false)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestJobKind_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "image", resolve.JobImage.String())
	assert.Equal(t, "native-tools", resolve.JobNativeTools.String())
	assert.Equal(t, "unknown", resolve.JobKind(7).String())
}
