// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

// Package logger wraps the underlying logging stack behind a consistent interface.
// It centralizes configuration, filters records per logger name with a directive
// string such as "nixspaces=debug,http=debug", keeps the process-wide logger in a
// registry and makes loggers available through context helpers.
package logger
