package toast

import (
	"log/slog"
	"time"

	"github.com/jmylchreest/toastbox/internal/ecs"
)

// Plugin registers the toast systems with a world so they run every frame:
// request listener, press dismissal, countdown animation, and interaction
// latching, in that order.
type Plugin struct {
	// Logger receives per-toast lifecycle logs. Defaults to slog.Default().
	Logger *slog.Logger

	// Fade overrides the fade-in/fade-out duration. Zero means DefaultFade.
	Fade time.Duration
}

// Register wires the systems into the world and returns the host's handle.
func (p Plugin) Register(w *ecs.World) *Systems {
	s := newSystems(w, p.Logger, p.Fade)
	w.AddSystem(s.listen)
	w.AddSystem(s.dismiss)
	w.AddSystem(s.countdown)
	w.AddSystem(s.latchInteractions)
	return s
}

// PluginInStates is a Plugin whose systems only run while the host's current
// application state is a member of States. With an empty States list the
// systems run unconditionally, same as Plugin.
type PluginInStates[S comparable] struct {
	Plugin

	// Current reports the host's application state each frame.
	Current func() S

	// States is the set of states the systems are allowed to run in.
	States []S
}

// Register wires the gated systems into the world.
func (p PluginInStates[S]) Register(w *ecs.World) *Systems {
	if len(p.States) == 0 || p.Current == nil {
		return p.Plugin.Register(w)
	}

	allowed := make(map[S]struct{}, len(p.States))
	for _, st := range p.States {
		allowed[st] = struct{}{}
	}
	cond := func() bool {
		_, ok := allowed[p.Current()]
		return ok
	}

	s := newSystems(w, p.Logger, p.Fade)
	w.AddSystem(ecs.RunIf(s.listen, cond))
	w.AddSystem(ecs.RunIf(s.dismiss, cond))
	w.AddSystem(ecs.RunIf(s.countdown, cond))
	w.AddSystem(ecs.RunIf(s.latchInteractions, cond))
	return s
}
