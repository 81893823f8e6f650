// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package logger

import (
	"slices"
	"strings"
)

const (
	// DefaultDirective is used when no directive is provided or the provided one is invalid.
	DefaultDirective = "nixspaces=debug,http=debug"

	// defaultLevel applies to names no directive item matches; a bare level item overrides it.
	defaultLevel = OFF

	directiveSeparator = ","
	levelSeparator     = "="
	nameSeparator      = "."
)

// namespaceLevel binds a logger namespace to its minimum level.
type namespaceLevel struct {
	namespace string
	level     Level
}

// Filter resolves the minimum level of a logger from its name.
type Filter struct {
	defaultLevel Level
	namespaces   []namespaceLevel
}

// ParseFilter parses a directive made of comma separated items, each either a
// bare level that sets the default or a namespace=level pair.
func ParseFilter(directive string) (*Filter, error) {
	filter := &Filter{defaultLevel: defaultLevel}
	items := 0
	for item := range strings.SplitSeq(directive, directiveSeparator) {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		items++

		namespace, levelName, found := strings.Cut(item, levelSeparator)
		if !found {
			level, err := ParseLevel(item)
			if err != nil {
				return nil, err
			}
			filter.defaultLevel = level
			continue
		}

		namespace = strings.TrimSpace(namespace)
		if namespace == "" || strings.Contains(levelName, levelSeparator) {
			return nil, &DirectiveError{Item: item, err: ErrInvalidNamespace}
		}

		level, err := ParseLevel(levelName)
		if err != nil {
			return nil, &DirectiveError{Item: item, err: ErrInvalidLevel}
		}
		filter.set(namespace, level)
	}

	if items == 0 {
		return nil, ErrEmptyDirective
	}

	return filter, nil
}

// DefaultFilter returns the filter built from DefaultDirective.
func DefaultFilter() *Filter {
	filter, err := ParseFilter(DefaultDirective)
	if err != nil {
		panic(err)
	}

	return filter
}

// FilterOrDefault parses directive and falls back to DefaultFilter when it is
// empty or malformed. The parse error is returned alongside the fallback so the
// caller can report it; the returned filter is never nil.
func FilterOrDefault(directive string) (*Filter, error) {
	filter, err := ParseFilter(directive)
	if err != nil {
		return DefaultFilter(), err
	}

	return filter, nil
}

// set stores level for namespace, replacing a previous item for the same
// namespace and keeping the most specific namespaces first.
func (f *Filter) set(namespace string, level Level) {
	f.namespaces = slices.DeleteFunc(f.namespaces, func(n namespaceLevel) bool {
		return n.namespace == namespace
	})
	f.namespaces = append(f.namespaces, namespaceLevel{namespace: namespace, level: level})
	slices.SortStableFunc(f.namespaces, func(a, b namespaceLevel) int {
		return len(b.namespace) - len(a.namespace)
	})
}

// LevelFor returns the level of the longest namespace matching name, or the
// default level when none matches. Without a bare level item unmatched names
// are turned off. A namespace matches itself and every name nested below it.
func (f *Filter) LevelFor(name string) Level {
	for _, n := range f.namespaces {
		if name == n.namespace || strings.HasPrefix(name, n.namespace+nameSeparator) {
			return n.level
		}
	}

	return f.defaultLevel
}

// MaxLevel returns the most verbose level any logger can reach with this filter.
func (f *Filter) MaxLevel() Level {
	level := f.defaultLevel
	for _, n := range f.namespaces {
		level = max(level, n.level)
	}

	return level
}

// String returns the filter in directive form, default level first.
func (f *Filter) String() string {
	items := make([]string, 0, len(f.namespaces)+1)
	if f.defaultLevel != defaultLevel {
		items = append(items, strings.ToLower(f.defaultLevel.String()))
	}

	sorted := slices.Clone(f.namespaces)
	slices.SortFunc(sorted, func(a, b namespaceLevel) int {
		return strings.Compare(a.namespace, b.namespace)
	})
	for _, n := range sorted {
		items = append(items, n.namespace+levelSeparator+strings.ToLower(n.level.String()))
	}

	return strings.Join(items, directiveSeparator)
}
