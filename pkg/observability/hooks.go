// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about node dialog edits and document store access.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetModalHooks(&myModalHooks{})
//	    observability.SetStoreHooks(&myStoreHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Modal().OnEditStart(ctx, path)
//	// ... user edits ...
//	observability.Modal().OnSave(ctx, path, len(draft), duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Modal Hooks
// =============================================================================

// ModalHooks receives events from the node dialog.
type ModalHooks interface {
	// OnEditStart records the switch from viewing to editing a node.
	OnEditStart(ctx context.Context, path string)

	// OnEditCancel records a discarded draft.
	OnEditCancel(ctx context.Context, path string)

	// OnSave records a save attempt. size is the draft length in bytes.
	OnSave(ctx context.Context, path string, size int, duration time.Duration, err error)
}

// =============================================================================
// Store Hooks
// =============================================================================

// StoreHooks receives events from document store backends.
type StoreHooks interface {
	// OnRead records a whole-document read.
	OnRead(ctx context.Context, backend string, size int, duration time.Duration, err error)

	// OnWrite records a whole-document write.
	OnWrite(ctx context.Context, backend string, size int, duration time.Duration, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopModalHooks is a no-op implementation of ModalHooks.
type NoopModalHooks struct{}

func (NoopModalHooks) OnEditStart(context.Context, string)                       {}
func (NoopModalHooks) OnEditCancel(context.Context, string)                      {}
func (NoopModalHooks) OnSave(context.Context, string, int, time.Duration, error) {}

// NoopStoreHooks is a no-op implementation of StoreHooks.
type NoopStoreHooks struct{}

func (NoopStoreHooks) OnRead(context.Context, string, int, time.Duration, error)  {}
func (NoopStoreHooks) OnWrite(context.Context, string, int, time.Duration, error) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	modalHooks ModalHooks = NoopModalHooks{}
	storeHooks StoreHooks = NoopStoreHooks{}
	hooksMu    sync.RWMutex
)

// SetModalHooks registers custom dialog hooks.
// This should be called once at application startup before any dialog is opened.
func SetModalHooks(h ModalHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		modalHooks = h
	}
}

// SetStoreHooks registers custom store hooks.
// This should be called once at application startup before any store is opened.
func SetStoreHooks(h StoreHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		storeHooks = h
	}
}

// Modal returns the registered dialog hooks.
func Modal() ModalHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return modalHooks
}

// Store returns the registered store hooks.
func Store() StoreHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return storeHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	modalHooks = NoopModalHooks{}
	storeHooks = NoopStoreHooks{}
}
