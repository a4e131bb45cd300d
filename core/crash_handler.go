// Package core holds process-wide crash handling shared by every goroutine that touches the terminal
package core

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync"
)

// emergencyReset leaves the alternate screen, shows the cursor, disables mouse tracking and resets attributes
const emergencyReset = "\x1b[?1049l\x1b[?25h\x1b[?1000l\x1b[?1002l\x1b[?1003l\x1b[?1006l\x1b[0m"

var (
	mu        sync.Mutex
	resetHook func()

	stderr io.Writer = os.Stderr
	stdout io.Writer = os.Stdout
	exit             = os.Exit
)

// SetTerminalReset registers the terminal teardown run before a crash report, nil clears it
func SetTerminalReset(fn func()) {
	mu.Lock()
	resetHook = fn
	mu.Unlock()
}

// HandleCrash is the unified panic handler that resets the terminal and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	mu.Lock()
	hook := resetHook
	resetHook = nil
	mu.Unlock()

	// Restore terminal to sane state before writing anything
	if hook != nil {
		func() {
			defer func() { _ = recover() }()
			hook()
		}()
	} else {
		_, _ = io.WriteString(stdout, emergencyReset)
	}

	// \r\n keeps output readable if raw mode survived the reset
	fmt.Fprintf(stderr, "\r\n\x1b[31mREELSPIN CRASHED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())

	exit(1)
}

// Go runs a function in a new goroutine with panic recovery.
// Use this instead of the 'go' keyword to ensure terminal cleanup on crash.
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
