package cmd

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stonkie/stonkie/pkg/version"
)

func TestVersionCmd(t *testing.T) {
	output := captureStdout(t, func() {
		versionCmd.Run(versionCmd, []string{})
	})

	assert.Contains(t, output, "Stonkie")
	assert.Contains(t, output, version.Version)
	assert.Contains(t, output, runtime.GOOS)
}
