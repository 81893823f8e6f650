// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package cmd

import (
	"context"
	"io"
	"strings"

	"github.com/edgarvarela24/nixspaces/internal/config"
	"github.com/edgarvarela24/nixspaces/internal/info"
	"github.com/edgarvarela24/nixspaces/internal/logger"
)

// SetupLogging builds the root logger described by cfg, installs it in registry
// and returns ctx carrying the application logger. A non empty override takes
// the place of the directive found in cfg. An empty or invalid directive falls
// back to logger.DefaultDirective; an invalid one is reported with a warning.
func SetupLogging(ctx context.Context, writer io.Writer, registry *logger.Registry, cfg config.Config, override string) (context.Context, error) {
	directive := cfg.LogFilter
	if override != "" {
		directive = override
	}

	filter, filterErr := logger.FilterOrDefault(directive)
	root := logger.NewLogger(writer,
		logger.WithFilter(filter),
		logger.WithFormat(logger.FormatFromString(cfg.LogFormat)),
		logger.WithColor(logger.ColorFromString(cfg.LogColor)),
	)

	if err := registry.Install(root); err != nil {
		return ctx, err
	}

	log := root.WithName(info.AppName)
	if filterErr != nil && strings.TrimSpace(directive) != "" {
		log.Warn("invalid log filter, using default",
			"filter", directive,
			"default", logger.DefaultDirective,
			"error", filterErr.Error(),
		)
	}
	log.Trace("logging configured", "filter", filter.String(), "max_level", filter.MaxLevel().String())

	return logger.WithContext(ctx, log), nil
}
