// Package core provides the crash-safe goroutine helper shared by all timing
// sources. A raw-mode terminal must be reset before a panic is printed, so
// the process installs a handler once at startup and every producer goroutine
// runs through Go.
package core

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync/atomic"
)

var crashHandler atomic.Pointer[func(any)]

// SetCrashHandler installs the process-wide panic handler, typically one that
// resets the terminal before printing. Must be called before Go.
func SetCrashHandler(fn func(any)) {
	crashHandler.Store(&fn)
}

// HandleCrash runs the installed handler, then prints the stack trace and
// exits non-zero.
func HandleCrash(r any) {
	if r == nil {
		return
	}
	if fn := crashHandler.Load(); fn != nil {
		(*fn)(r)
	}

	os.Stdout.Sync()
	os.Stderr.Sync()
	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mCRASH DETECTED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
	os.Stderr.Sync()

	os.Exit(1)
}

// Go runs a function in a new goroutine with panic recovery. Use this instead
// of the 'go' keyword to ensure terminal cleanup on crash.
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
