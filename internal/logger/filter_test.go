// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFilter(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		directive     string
		expectedErr   error
		expectedLevel map[string]Level
	}{
		"default directive": {
			directive: DefaultDirective,
			expectedLevel: map[string]Level{
				"nixspaces":           DEBUG,
				"nixspaces.server":    DEBUG,
				"http":                DEBUG,
				"http.request":        DEBUG,
				"nixspacesx":          OFF,
				"other":               OFF,
				"":                    OFF,
				"nixspaces_workspace": OFF,
			},
		},
		"most specific namespace wins": {
			directive: "nixspaces=info, nixspaces.workspace=trace",
			expectedLevel: map[string]Level{
				"nixspaces":                 INFO,
				"nixspaces.server":          INFO,
				"nixspaces.workspace":       TRACE,
				"nixspaces.workspace.build": TRACE,
			},
		},
		"bare level sets the default": {
			directive: "warn,nixspaces=off",
			expectedLevel: map[string]Level{
				"other":     WARN,
				"":          WARN,
				"nixspaces": OFF,
			},
		},
		"last item for a namespace wins": {
			directive: "nixspaces=info,nixspaces=TRACE",
			expectedLevel: map[string]Level{
				"nixspaces": TRACE,
			},
		},
		"empty items are skipped": {
			directive: ",,nixspaces=debug,,",
			expectedLevel: map[string]Level{
				"nixspaces": DEBUG,
			},
		},
		"empty directive": {
			directive:   "",
			expectedErr: ErrEmptyDirective,
		},
		"blank directive": {
			directive:   " , ",
			expectedErr: ErrEmptyDirective,
		},
		"unknown level": {
			directive:   "nixspaces=loud",
			expectedErr: ErrInvalidLevel,
		},
		"unknown bare level": {
			directive:   "verbose",
			expectedErr: ErrInvalidLevel,
		},
		"missing namespace": {
			directive:   "=debug",
			expectedErr: ErrInvalidNamespace,
		},
		"too many separators": {
			directive:   "nixspaces=debug=trace",
			expectedErr: ErrInvalidNamespace,
		},
		"one bad item rejects the directive": {
			directive:   "nixspaces=debug,http=nope",
			expectedErr: ErrInvalidLevel,
		},
	}

	for name, test := range testCases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			filter, err := ParseFilter(test.directive)
			if test.expectedErr != nil {
				assert.ErrorIs(t, err, test.expectedErr)
				assert.Nil(t, filter)
				return
			}

			require.NoError(t, err)
			for loggerName, level := range test.expectedLevel {
				assert.Equal(t, level, filter.LevelFor(loggerName), "logger %q", loggerName)
			}
		})
	}
}

func TestDirectiveErrorMessage(t *testing.T) {
	t.Parallel()

	_, err := ParseFilter("nixspaces=loud")
	require.Error(t, err)

	var directiveErr *DirectiveError
	require.ErrorAs(t, err, &directiveErr)
	assert.Equal(t, "nixspaces=loud", directiveErr.Item)
	assert.Equal(t, `invalid log level: "nixspaces=loud"`, err.Error())
}

func TestFilterOrDefault(t *testing.T) {
	t.Parallel()

	t.Run("valid directive", func(t *testing.T) {
		t.Parallel()

		filter, err := FilterOrDefault("nixspaces.workspace=trace")
		require.NoError(t, err)
		assert.Equal(t, TRACE, filter.LevelFor("nixspaces.workspace"))
		assert.Equal(t, OFF, filter.LevelFor("nixspaces"))
	})

	for name, directive := range map[string]string{
		"empty":     "",
		"malformed": "nixspaces=,,=",
		"garbage":   "🙃",
	} {
		t.Run(name+" falls back to default", func(t *testing.T) {
			t.Parallel()

			filter, err := FilterOrDefault(directive)
			require.Error(t, err)
			require.NotNil(t, filter)
			assert.Equal(t, DefaultFilter().String(), filter.String())
		})
	}
}

func TestFilterStringAndMaxLevel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "http=debug,nixspaces=debug", DefaultFilter().String())
	assert.Equal(t, DEBUG, DefaultFilter().MaxLevel())

	filter, err := ParseFilter("Info,nixspaces.workspace=trace,http=off")
	require.NoError(t, err)
	assert.Equal(t, "info,http=off,nixspaces.workspace=trace", filter.String())
	assert.Equal(t, TRACE, filter.MaxLevel())

	explicitError, err := ParseFilter("error,nixspaces=debug")
	require.NoError(t, err)
	assert.Equal(t, "error,nixspaces=debug", explicitError.String())

	roundTrip, err := ParseFilter(filter.String())
	require.NoError(t, err)
	assert.Equal(t, filter.String(), roundTrip.String())
}
