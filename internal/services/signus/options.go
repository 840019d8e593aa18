package signus

import (
	"go.uber.org/zap"

	"signus/internal/domain"
	"signus/internal/metrics"
)

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

// WithMetrics records operation outcomes on c.
func WithMetrics(c *metrics.Collector) Option {
	return func(s *Service) { s.metrics = c }
}

// WithCodec replaces the Base58 exchange encoding.
func WithCodec(c domain.Codec) Option {
	return func(s *Service) {
		if c != nil {
			s.codec = c
		}
	}
}
