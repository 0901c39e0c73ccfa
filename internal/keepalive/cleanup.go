package keepalive

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/stigoleg/mouse-jiggler/internal/logging"
)

// CleanupManager runs registered shutdown steps once, in registration order,
// bounded by a timeout.
type CleanupManager struct {
	mu          sync.Mutex
	resources   []CleanupResource
	timeout     time.Duration
	cleanupOnce sync.Once
	errs        []error
}

// CleanupResource represents a resource that needs cleanup
type CleanupResource interface {
	Cleanup() error
	Name() string
}

// CleanupFunc is a function-based cleanup resource
type CleanupFunc struct {
	name string
	fn   func() error
}

func (c *CleanupFunc) Cleanup() error {
	return c.fn()
}

func (c *CleanupFunc) Name() string {
	return c.name
}

// NewCleanupManager creates a new cleanup manager with the specified timeout
func NewCleanupManager(timeout time.Duration) *CleanupManager {
	if timeout <= 0 {
		timeout = defaultStopTimeout
	}
	return &CleanupManager{
		resources: make([]CleanupResource, 0),
		timeout:   timeout,
	}
}

// Register adds a resource to be cleaned up
func (cm *CleanupManager) Register(resource CleanupResource) {
	cm.mu.Lock()
	defer cm.mu.Unlock()
	cm.resources = append(cm.resources, resource)
}

// RegisterFunc registers a cleanup function
func (cm *CleanupManager) RegisterFunc(name string, fn func() error) {
	cm.Register(&CleanupFunc{name: name, fn: fn})
}

// Execute performs cleanup of all registered resources. Later calls return
// the errors of the first.
func (cm *CleanupManager) Execute() []error {
	cm.cleanupOnce.Do(func() {
		cm.errs = cm.executeWithTimeout()
	})
	return cm.errs
}

func (cm *CleanupManager) executeWithTimeout() []error {
	cm.mu.Lock()
	resources := make([]CleanupResource, len(cm.resources))
	copy(resources, cm.resources)
	cm.mu.Unlock()

	if len(resources) == 0 {
		return nil
	}

	l := logging.For("cleanup")
	ctx, cancel := context.WithTimeout(context.Background(), cm.timeout)
	defer cancel()

	done := make(chan struct{})
	var cleanupErrors []error
	var mu sync.Mutex
	record := func(err error) {
		mu.Lock()
		cleanupErrors = append(cleanupErrors, err)
		mu.Unlock()
	}

	go func() {
		defer close(done)
		for _, resource := range resources {
			func() {
				defer func() {
					if r := recover(); r != nil {
						record(fmt.Errorf("panic during cleanup of %s: %v", resource.Name(), r))
						l.Error().Str("resource", resource.Name()).Interface("panic", r).Msg("panic during cleanup")
					}
				}()

				if err := resource.Cleanup(); err != nil {
					record(fmt.Errorf("%s: %w", resource.Name(), err))
					l.Warn().Err(err).Str("resource", resource.Name()).Msg("cleanup failed")
				} else {
					l.Debug().Str("resource", resource.Name()).Msg("cleaned up")
				}
			}()
		}
	}()

	select {
	case <-done:
		mu.Lock()
		defer mu.Unlock()
		return cleanupErrors
	case <-ctx.Done():
		l.Warn().Dur("timeout", cm.timeout).Msg("cleanup timed out; some resources may not have been released")
		record(errors.New("cleanup timeout exceeded"))
		mu.Lock()
		defer mu.Unlock()
		return append([]error(nil), cleanupErrors...)
	}
}
