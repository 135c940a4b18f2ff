package server

import (
	"log"
	"sync"
	"time"

	"voxphys/internal/geom"
	"voxphys/internal/physics"
	"voxphys/internal/profiling"
	"voxphys/internal/world"
)

// Loop runs the fixed-interval simulation: step all bodies, commit the
// world, broadcast a snapshot, wait for the next tick. Stop cancels
// the loop between ticks; individual steps are pure, so cancellation
// has no partial effects.
type Loop struct {
	orch    *world.Orchestrator
	hub     *Hub
	monitor *profiling.Monitor
	sample  physics.Sampler
	shape   geom.AABB

	mu      sync.Mutex
	worldID world.ID
	bodies  []world.Body

	stop chan struct{}
	done chan struct{}
}

// NewLoop assembles a loop for one world and its bodies. Every body
// shares the given collision shape.
func NewLoop(orch *world.Orchestrator, hub *Hub, monitor *profiling.Monitor, worldID world.ID, bodies []world.Body, shape geom.AABB, sample physics.Sampler) *Loop {
	return &Loop{
		orch:    orch,
		hub:     hub,
		monitor: monitor,
		sample:  sample,
		shape:   shape,
		worldID: worldID,
		bodies:  append([]world.Body(nil), bodies...),
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}
}

// Run blocks until Stop is called.
func (l *Loop) Run(deltaTime float64) {
	defer close(l.done)
	pacer := NewTickPacer()

	for {
		select {
		case <-l.stop:
			return
		default:
		}

		profiling.ResetTick()
		start := time.Now()
		l.tick(deltaTime)
		l.monitor.Record(time.Since(start))

		pacer.Wait()
	}
}

// Stop cancels the loop and waits for the current tick to finish.
func (l *Loop) Stop() {
	close(l.stop)
	<-l.done
}

func (l *Loop) tick(deltaTime float64) {
	l.mu.Lock()
	bodies := append([]world.Body(nil), l.bodies...)
	l.mu.Unlock()

	steps := make([]world.BodyStep, len(bodies))
	for i, b := range bodies {
		steps[i] = world.BodyStep{
			Body:  b,
			Shape: l.shape,
			Input: l.hub.Input(b.ID),
		}
	}

	results, err := l.orch.StepWorld(l.worldID, steps, world.StepOptions{
		DeltaTime: deltaTime,
		Sample:    l.sample,
	})
	if err != nil {
		log.Printf("step world %s: %v", l.worldID, err)
		return
	}

	snapshots := make([]BodySnapshot, len(results))
	for i, res := range results {
		bodies[i] = bodies[i].WithMotion(world.Motion{
			Position: res.Position,
			Velocity: res.Velocity,
		})
		l.orch.Repo().SaveBody(bodies[i])
		snapshots[i] = BodySnapshot{
			BodyID:   string(res.BodyID),
			X:        res.Position.X,
			Y:        res.Position.Y,
			Z:        res.Position.Z,
			VelX:     res.Velocity.X,
			VelY:     res.Velocity.Y,
			VelZ:     res.Velocity.Z,
			Grounded: res.Grounded,
		}
	}

	l.mu.Lock()
	l.bodies = bodies
	l.mu.Unlock()

	snap := WorldSnapshot{
		WorldID: string(l.worldID),
		Health:  l.monitor.Health().String(),
		Bodies:  snapshots,
	}
	if w, ok := l.orch.Repo().Find(l.worldID); ok {
		snap.TotalTime = float64(w.State.TotalTime)
	}
	l.hub.Broadcast(snap)
}
