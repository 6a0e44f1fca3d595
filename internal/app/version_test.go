package app

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildVersion(t *testing.T) {
	assert.Equal(t, "dev (commit: unknown, built: unknown)", BuildVersion())
}

func TestBuildInfo(t *testing.T) {
	info := BuildInfo()
	assert.Equal(t, Version, info.Version)
	assert.Equal(t, runtime.Version(), info.GoVersion)
}
