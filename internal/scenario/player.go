package scenario

import (
	"log/slog"
	"time"

	"github.com/jmylchreest/toastbox/internal/ecs"
	"github.com/jmylchreest/toastbox/internal/toast"
)

// Player replays compiled requests against frame time. It keeps a cursor
// into the (sorted) request list and an accumulated elapsed duration; each
// frame it emits every request whose offset has been reached.
type Player struct {
	logger  *slog.Logger
	pending []TimedRequest
	elapsed time.Duration
	cursor  int
}

// NewPlayer creates a player over compiled requests. The requests must be
// sorted by offset, which Compile guarantees.
func NewPlayer(logger *slog.Logger, requests []TimedRequest) *Player {
	if logger == nil {
		logger = slog.Default()
	}
	return &Player{logger: logger, pending: requests}
}

// Done reports whether every scripted request has been emitted.
func (p *Player) Done() bool {
	return p.cursor >= len(p.pending)
}

// System returns a frame system that advances the player and hands due
// requests to send.
func (p *Player) System(send func(toast.Request)) ecs.System {
	return func(_ *ecs.World, dt time.Duration) {
		p.elapsed += dt
		for p.cursor < len(p.pending) && p.pending[p.cursor].At <= p.elapsed {
			tr := p.pending[p.cursor]
			p.logger.Debug("scenario step fired",
				"at", tr.At,
				"elapsed", p.elapsed)
			send(tr.Request)
			p.cursor++
		}
	}
}
