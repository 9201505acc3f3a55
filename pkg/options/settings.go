package options

import (
	"go.uber.org/zap"
	"golang.org/x/text/cases"
)

type settings struct {
	logger *zap.Logger
	fold   bool
	caser  cases.Caser
}

// Setting configures an ApplicationCommandOptions resolver
type Setting func(s *settings)

func (s *settings) apply(opts []Setting) {
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	if s.fold {
		s.caser = cases.Fold()
	}
}

// key returns the index key for an option name
func (s *settings) key(name string) string {
	if !s.fold {
		return name
	}
	return s.caser.String(name)
}

// WithLogger sets the logger used to report indexing and lookup failures
func WithLogger(logger *zap.Logger) Setting {
	return func(s *settings) {
		s.logger = logger
	}
}

// WithNameFolding makes option name lookups case-insensitive
func WithNameFolding() Setting {
	return func(s *settings) {
		s.fold = true
	}
}
