package suite

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/rocketscienceinc/connectn/internal/repository"
)

const maxWaitDuration = 30 * time.Second

type Suite struct {
	*testing.T
	Logger *slog.Logger

	Storage repository.MatchRepository
}

// New returns a context bound to the test and a fixture with an empty match registry.
func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	return ctx, &Suite{
		T:       t,
		Logger:  logger,
		Storage: repository.NewMatchRepository(),
	}
}
