package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMainWiring(t *testing.T) {
	origSetVersion := setVersionInfo
	origExecute := executeCmd
	t.Cleanup(func() {
		setVersionInfo = origSetVersion
		executeCmd = origExecute
	})

	var gotVersion [3]string
	executed := false
	setVersionInfo = func(v, c, d string) { gotVersion = [3]string{v, c, d} }
	executeCmd = func() { executed = true }

	main()

	assert.Equal(t, [3]string{"dev", "none", "unknown"}, gotVersion)
	assert.True(t, executed)
}
