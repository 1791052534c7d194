package ffi

import (
	"fmt"
	"log"
	"os"
)

// Binding owns the process-wide lifecycle of the native library: unloaded,
// loaded, initialized, finalized. It is constructed once (Default) and
// passed by reference to anything needing native access; tests construct
// their own instances with the load hooks replaced.
//
// The binding performs no locking. Initialize and Finalize are meant to be
// called from a single goroutine; concurrent native calls afterwards are
// subject to the native library's own thread-safety guarantees.
type Binding struct {
	handle      uintptr
	path        string
	loaded      bool
	initialized bool
	finalized   bool
	docs        bool

	// Hooks over the OS and native boundary, replaceable in tests.
	open           func(path string) (uintptr, error)
	register       func(handle uintptr)
	nativeInit     func() Status
	nativeFinalize func()
	stat           func(path string) error
}

// Default is the process-wide binding instance used by the public package.
var Default = NewBinding()

// NewBinding returns a binding in the unloaded state wired to the real
// loader and native entry points.
func NewBinding() *Binding {
	return &Binding{
		open:           openLibrary,
		register:       registerAll,
		nativeInit:     func() Status { return LibraryInitialize() },
		nativeFinalize: func() { LibraryFinalize() },
		stat: func(path string) error {
			_, err := os.Stat(path)
			return err
		},
	}
}

// load resolves the artifact, validates its existence and declares every
// entry point. It runs at most once; repeated calls after success are
// no-ops.
func (b *Binding) load() error {
	if b.loaded {
		return nil
	}

	path, err := TargetPath()
	if err != nil {
		return err
	}
	if err := b.stat(path); err != nil {
		return fmt.Errorf("no compiled spla library %s to load: %w", path, err)
	}

	handle, err := b.open(path)
	if err != nil {
		return err
	}
	b.register(handle)

	b.handle = handle
	b.path = path
	b.loaded = true
	return nil
}

// Initialize brings the binding into the initialized state: docs-mode
// short circuit, load, native initialize, optional debug callback. A
// second call while already initialized (or after Finalize) returns
// ErrInvalidState.
func (b *Binding) Initialize() error {
	if b.initialized || b.docs || b.finalized {
		return ErrInvalidState
	}

	if DocsMode() {
		b.docs = true
		return nil
	}

	if err := b.load(); err != nil {
		return err
	}

	if status := b.nativeInit(); status != StatusOK {
		return fmt.Errorf("%w: native initialize returned %s", ErrFailedInitialize, statusLabel(status))
	}
	b.initialized = true

	if Debug() {
		log.Printf("spla: loaded %s, registering default message callback", b.path)
		if err := b.SetMessageCallback(DefaultMessageCallback); err != nil {
			return err
		}
	}
	return nil
}

// Finalize releases the native library state. It is idempotent and a safe
// no-op when the binding never initialized; no further native calls are
// valid afterwards.
func (b *Binding) Finalize() {
	if !b.initialized || b.finalized {
		return
	}
	b.nativeFinalize()
	b.initialized = false
	b.finalized = true
}

// Ready returns nil when native calls may proceed.
func (b *Binding) Ready() error {
	if !b.initialized {
		return ErrInvalidState
	}
	return nil
}

// Initialized reports whether the native library initialized successfully
// and has not been finalized.
func (b *Binding) Initialized() bool { return b.initialized }

// Loaded reports whether the shared library is mapped into the process.
func (b *Binding) Loaded() bool { return b.loaded }

// Docs reports whether the binding short-circuited into docs mode; no
// backend is available in this state.
func (b *Binding) Docs() bool { return b.docs }

// Path returns the artifact path the library was loaded from, or "" when
// nothing was loaded.
func (b *Binding) Path() string { return b.path }
