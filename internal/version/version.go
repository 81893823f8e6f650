// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

// Package version formats the build information of the running binary.
package version

import (
	"runtime"

	"github.com/edgarvarela24/nixspaces/internal/info"
)

var (
	// Version is injected at build time via the Makefile.
	Version = info.Version
	// BuildDate is injected at build time via the Makefile.
	BuildDate = info.BuildDate
)

// ServiceVersionInformation returns the version, the build date when known and the Go runtime version.
func ServiceVersionInformation() string {
	return versionString(Version, BuildDate, runtime.Version())
}

func versionString(version, buildDate, runtimeVersion string) string {
	outputString := version
	if buildDate != "" {
		outputString += " (" + buildDate + ")"
	}

	return outputString + ", Go Version: " + runtimeVersion
}
