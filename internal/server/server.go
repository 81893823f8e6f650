// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package server

import (
	"context"
	"strconv"
	"sync"

	"github.com/google/uuid"

	"github.com/edgarvarela24/nixspaces/internal/info"
	"github.com/edgarvarela24/nixspaces/internal/logger"
)

const (
	loggerName = "server"

	// StartupMessage is logged at INFO level when the server starts.
	StartupMessage = "Starting NixSpaces backend..."
)

// State is the lifecycle state of a Server.
type State int

const (
	Starting State = iota
	Ready
)

func (s State) String() string {
	switch s {
	case Starting:
		return "starting"
	case Ready:
		return "ready"
	default:
		return "State(" + strconv.Itoa(int(s)) + ")"
	}
}

// Server is the backend server of a single process.
type Server struct {
	id    string
	state State

	lock sync.Mutex
}

// NewServer returns a server in the Starting state with a random instance id.
func NewServer() *Server {
	return &Server{id: uuid.NewString()}
}

// ID returns the instance id attached to the server records.
func (s *Server) ID() string {
	return s.id
}

// State returns the current lifecycle state.
func (s *Server) State() State {
	s.lock.Lock()
	defer s.lock.Unlock()

	return s.state
}

// Start logs the startup message with the logger found in ctx and moves the
// server to Ready. Starting a ready server does nothing.
func (s *Server) Start(ctx context.Context) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	log := logger.FromContext(ctx)
	if s.state == Ready {
		log.WithName(loggerName).Debug("server already started", "instance", s.id)
		return nil
	}

	log.Info(StartupMessage, "version", info.Version, "instance", s.id)
	s.state = Ready
	log.WithName(loggerName).Debug("server ready", "state", Ready.String(), "instance", s.id)

	return nil
}
