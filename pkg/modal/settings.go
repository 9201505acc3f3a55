package modal

import (
	"go.uber.org/zap"
)

type settings struct {
	logger *zap.Logger
}

// Setting configures a ModalSubmitFields resolver
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
}

// WithLogger sets the logger used to report indexing and lookup failures
func WithLogger(logger *zap.Logger) Setting {
	return func(s *settings) {
		s.logger = logger
	}
}
