package core

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync"
)

var (
	cleanupMu sync.Mutex
	cleanup   func()
)

// SetCleanup installs a function that HandleCrash runs before printing the
// stack trace, e.g. restoring the terminal to a sane state. The frontend
// owns the cleanup; the engine stays independent of any screen package.
func SetCleanup(fn func()) {
	cleanupMu.Lock()
	cleanup = fn
	cleanupMu.Unlock()
}

// HandleCrash is the unified panic handler. A panic escaping a tick means
// the pipeline stopped mid-flight and engine state can no longer be
// trusted, so the process terminates instead of resuming.
func HandleCrash(r any) {
	if r == nil {
		return
	}

	cleanupMu.Lock()
	fn := cleanup
	cleanupMu.Unlock()
	if fn != nil {
		fn()
	}

	// Force flush stdout before printing to stderr
	os.Stdout.Sync()

	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mCRASH DETECTED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())

	os.Stderr.Sync()

	os.Exit(1)
}

// Go runs a function in a new goroutine with panic recovery.
// Use this instead of the 'go' keyword for engine goroutines so a panic
// reaches HandleCrash rather than the runtime's default abort.
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}
