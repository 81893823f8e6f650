// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
)

const (
	// LogFilterEnvName is the variable holding the logging filter directive.
	LogFilterEnvName = "NIXSPACES_LOG"
)

var (
	ErrEnvVariablesNotValid = errors.New("environment variables not valid")
)

// Config holds the process settings read from the environment.
type Config struct {
	LogFilter string `env:"NIXSPACES_LOG"`
	LogFormat string `env:"NIXSPACES_LOG_FORMAT" envDefault:"text"`
	LogColor  string `env:"NIXSPACES_LOG_COLOR" envDefault:"auto"`
}

// LoadConfig reads Config from the process environment.
func LoadConfig() (*Config, error) {
	var envVars Config
	if err := env.Parse(&envVars); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrEnvVariablesNotValid, err.Error())
	}

	return &envVars, nil
}
