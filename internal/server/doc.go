// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

// Package server contains the NixSpaces backend server.
// The server announces its startup and moves from the starting to the ready
// state; it does not listen on any address and holds no goroutines, so the
// process exits as soon as the command returns.
package server
