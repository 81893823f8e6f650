// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package logger

import (
	"log"
	"sync"

	"github.com/hashicorp/go-hclog"
)

// Registry holds the logger that receives records from anywhere in the process.
// A logger can be installed only once.
type Registry struct {
	lock      sync.RWMutex
	installed Logger
	hooks     []func(Logger)
}

// global is the process-wide registry.
var global = NewRegistry(redirectStandardLog)

// NewRegistry returns an empty registry. Hooks run once, right after a logger is installed.
func NewRegistry(hooks ...func(Logger)) *Registry {
	return &Registry{hooks: hooks}
}

// Install stores l as the registry logger. It fails with ErrAlreadyInstalled
// if a logger was already installed.
func (r *Registry) Install(l Logger) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	if r.installed != nil {
		return ErrAlreadyInstalled
	}

	r.installed = l
	for _, hook := range r.hooks {
		hook(l)
	}

	return nil
}

// Logger returns the installed logger, or a logger discarding every record.
func (r *Registry) Logger() Logger {
	r.lock.RLock()
	defer r.lock.RUnlock()

	if r.installed == nil {
		return nullLogger
	}

	return r.installed
}

// Global returns the process-wide registry.
func Global() *Registry {
	return global
}

// Default returns the logger of the process-wide registry.
func Default() Logger {
	return global.Logger()
}

// redirectStandardLog routes the standard library log package and the hclog
// default logger through l.
func redirectStandardLog(l Logger) {
	i, ok := l.(*instance)
	if !ok {
		return
	}

	hclog.SetDefault(i.log)
	log.SetFlags(0)
	log.SetPrefix("")
	log.SetOutput(i.log.StandardWriter(&hclog.StandardLoggerOptions{InferLevels: true}))
}
