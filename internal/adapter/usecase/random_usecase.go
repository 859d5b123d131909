package usecase

import (
	"context"
	"log/slog"

	"random-service/internal/core/domain"
	"random-service/internal/core/port"
	"random-service/internal/logger"
)

// RandomUseCase draws random bytes from a ByteSource. It holds no mutable
// state and may be called concurrently.
type RandomUseCase struct {
	src port.ByteSource
	log *slog.Logger
}

// NewRandomUseCase creates a new usecase over the provided source.
func NewRandomUseCase(src port.ByteSource, log *slog.Logger) *RandomUseCase {
	return &RandomUseCase{src: src, log: log}
}

// Generate draws one byte and logs it at debug level, using the
// request-scoped logger from ctx when there is one.
func (u *RandomUseCase) Generate(ctx context.Context) domain.RandomByte {
	b := domain.RandomByte(u.src.Byte())
	logger.FromContext(ctx, u.log).DebugContext(ctx, "generated value", slog.Int("value", int(b)))
	return b
}
