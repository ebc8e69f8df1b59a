package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/newsbrief/mock"
	nbslog "github.com/fwojciec/newsbrief/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingGenerator_Generate(t *testing.T) {
	t.Parallel()

	t.Run("logs model and fragment count", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Generator{
			GenerateFn: func(ctx context.Context, prompt string) ([]string, error) {
				return []string{"one", "two"}, nil
			},
		}

		gen := nbslog.NewLoggingGenerator(inner, "gemini-2.5-flash", logger)
		fragments, err := gen.Generate(context.Background(), "prompt")

		require.NoError(t, err)
		assert.Equal(t, []string{"one", "two"}, fragments)
		output := buf.String()
		assert.Contains(t, output, "generate")
		assert.Contains(t, output, "model=gemini-2.5-flash")
		assert.Contains(t, output, "prompt_chars=6")
		assert.Contains(t, output, "fragments=2")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Generator{
			GenerateFn: func(ctx context.Context, prompt string) ([]string, error) {
				return nil, errors.New("quota exceeded")
			},
		}

		_, err := nbslog.NewLoggingGenerator(inner, "m", logger).Generate(context.Background(), "prompt")

		require.Error(t, err)
		assert.Contains(t, buf.String(), "err=\"quota exceeded\"")
	})
}
