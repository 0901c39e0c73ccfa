package main

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignals(t *testing.T) {
	sigs := getSignalsForPlatform()
	assert.Contains(t, sigs, os.Interrupt)
	assert.False(t, isSuspendSignal(os.Interrupt))
}
