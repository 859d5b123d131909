package port

import (
	"context"

	"random-service/internal/core/domain"
)

// RandomUseCase defines the business operation exposed to the HTTP layer.
// It cannot fail: every call yields a value.
type RandomUseCase interface {
	// Generate draws a single random byte.
	Generate(ctx context.Context) domain.RandomByte
}
