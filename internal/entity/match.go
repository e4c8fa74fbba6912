package entity

import (
	"sync"
	"time"

	"github.com/rocketscienceinc/connectn/internal/game"
)

// Match is one engine instance tracked by the application.
// The engine is not safe for concurrent use, so callers hold the embedded mutex around every Game call.
type Match struct {
	sync.Mutex

	ID        string
	Preset    string
	CreatedAt time.Time
	Game      *game.Game
}

func NewMatch(id, preset string, g *game.Game) *Match {
	return &Match{
		ID:        id,
		Preset:    preset,
		CreatedAt: time.Now().UTC(),
		Game:      g,
	}
}

// IsFinished reports whether the engine reached a terminal status. The caller must hold the lock.
func (that *Match) IsFinished() bool {
	return that.Game.IsGameOver()
}
