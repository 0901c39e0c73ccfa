package keepalive

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanupManagerOrderAndErrors(t *testing.T) {
	cm := NewCleanupManager(time.Second)

	var order []string
	cm.RegisterFunc("keeper", func() error {
		order = append(order, "keeper")
		return nil
	})
	cm.RegisterFunc("tray", func() error {
		order = append(order, "tray")
		return errors.New("tray already gone")
	})
	cm.RegisterFunc("panicky", func() error {
		panic("boom")
	})
	cm.RegisterFunc("log", func() error {
		order = append(order, "log")
		return nil
	})

	errs := cm.Execute()
	assert.Equal(t, []string{"keeper", "tray", "log"}, order)
	require.Len(t, errs, 2)
	assert.ErrorContains(t, errs[0], "tray already gone")
	assert.ErrorContains(t, errs[1], "panic during cleanup of panicky")

	again := cm.Execute()
	assert.Equal(t, errs, again, "cleanup runs once")
	assert.Equal(t, []string{"keeper", "tray", "log"}, order)
}

func TestCleanupManagerTimeout(t *testing.T) {
	cm := NewCleanupManager(50 * time.Millisecond)
	release := make(chan struct{})
	defer close(release)

	cm.RegisterFunc("stuck", func() error {
		<-release
		return nil
	})

	errs := cm.Execute()
	require.Len(t, errs, 1)
	assert.EqualError(t, errs[0], "cleanup timeout exceeded")
}
