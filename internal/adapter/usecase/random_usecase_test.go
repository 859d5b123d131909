package usecase

import (
	"bytes"
	"context"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"random-service/internal/core/domain"
	"random-service/internal/core/port"
	"random-service/internal/core/port/mocks"
	"random-service/internal/logger"
)

var _ port.RandomUseCase = (*RandomUseCase)(nil)

// TestGenerate ensures the drawn byte is passed through unchanged.
func TestGenerate(t *testing.T) {
	for _, v := range []uint8{0, 1, 99, 100, 255} {
		src := mocks.NewMockByteSource(t)
		src.EXPECT().Byte().Return(v).Once()

		svc := NewRandomUseCase(src, logger.Nop())

		assert.Equal(t, domain.RandomByte(v), svc.Generate(context.Background()))
	}
}

// TestGenerateLogsValue ensures the value is reported at debug level.
func TestGenerateLogsValue(t *testing.T) {
	src := mocks.NewMockByteSource(t)
	src.EXPECT().Byte().Return(uint8(42)).Once()

	var buf bytes.Buffer
	svc := NewRandomUseCase(src, logger.New(&buf, slog.LevelDebug, logger.FormatText))
	svc.Generate(context.Background())

	assert.Contains(t, buf.String(), "value=42")
}

// TestGenerateConcurrent ensures the usecase can be shared by many goroutines.
func TestGenerateConcurrent(t *testing.T) {
	src := mocks.NewMockByteSource(t)
	src.EXPECT().Byte().Return(uint8(7)).Times(50)

	svc := NewRandomUseCase(src, logger.Nop())

	wg := sync.WaitGroup{}
	count := 50
	wg.Add(count)
	for i := 0; i < count; i++ {
		go func() {
			defer wg.Done()
			assert.Equal(t, domain.RandomByte(7), svc.Generate(context.Background()))
		}()
	}
	wg.Wait()
}

// TestGenerateUsesContextLogger ensures request-scoped attributes reach the log line.
func TestGenerateUsesContextLogger(t *testing.T) {
	src := mocks.NewMockByteSource(t)
	src.EXPECT().Byte().Return(uint8(3)).Once()

	var buf bytes.Buffer
	scoped := logger.New(&buf, slog.LevelDebug, logger.FormatText).With(slog.String("request_id", "abc"))
	ctx := logger.WithContext(context.Background(), scoped)

	svc := NewRandomUseCase(src, logger.Nop())
	svc.Generate(ctx)

	assert.Contains(t, buf.String(), "request_id=abc")
	assert.Contains(t, buf.String(), "value=3")
}
