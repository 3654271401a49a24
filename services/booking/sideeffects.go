package booking

import "go.uber.org/zap"

// bestEffort runs a side effect that is not allowed to fail the operation
// that triggered it. Errors are logged and discarded.
func bestEffort(logger *zap.Logger, op string, fn func() error) {
	if err := fn(); err != nil {
		logger.Warn("side effect failed",
			zap.String("op", op),
			zap.Error(err),
		)
	}
}
