// Package core holds small types shared across engine, systems and the runtime
package core

import (
	"fmt"
	"sync"
)

var (
	crashMu      sync.RWMutex
	crashHandler func(r any)
)

// SetCrashHandler installs the panic hook, typically a terminal reset plus stack dump
// Kept as injection so core stays independent of the terminal package
func SetCrashHandler(fn func(r any)) {
	crashMu.Lock()
	crashHandler = fn
	crashMu.Unlock()
}

// HandleCrash runs the installed hook; without one the panic is re-raised
func HandleCrash(r any) {
	if r == nil {
		return
	}
	crashMu.RLock()
	fn := crashHandler
	crashMu.RUnlock()
	if fn == nil {
		panic(r)
	}
	fn(r)
}

// Guard wraps fn for errgroup use: a panic becomes a crash-hook call plus an error
func Guard(fn func() error) func() error {
	return func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
				err = fmt.Errorf("panic: %v", r)
			}
		}()
		return fn()
	}
}
