package server

import (
	"testing"
	"time"

	"voxphys/internal/config"
	"voxphys/internal/geom"
	"voxphys/internal/profiling"
	"voxphys/internal/world"
)

func flatFloor(query geom.AABB) []geom.AABB {
	floor := geom.AABB{
		Min: geom.Vector3{X: -100, Y: -1, Z: -100},
		Max: geom.Vector3{X: 100, Y: 0, Z: 100},
	}
	if query.Intersects(floor) {
		return []geom.AABB{floor}
	}
	return nil
}

func TestLoopRunsTicksAndStops(t *testing.T) {
	prev := config.GetTickRate()
	config.SetTickRate(200)
	defer config.SetTickRate(prev)

	repo := world.NewRepository()
	w := world.New(world.DefaultConfig(), geom.Vector3{Y: -9.80665}).Start()
	repo.Save(w)
	orch := world.NewOrchestrator(repo)

	body, err := world.NewBody(world.BodySpec{
		WorldID:  w.ID,
		Type:     world.BodyDynamic,
		Material: "stone",
		Mass:     70,
		Position: geom.Vector3{Y: 3},
	})
	if err != nil {
		t.Fatalf("NewBody failed: %v", err)
	}

	shape := geom.AABB{Max: geom.Vector3{X: 0.6, Y: 1.8, Z: 0.6}}
	monitor := profiling.NewMonitor(16, 5*time.Millisecond)
	loop := NewLoop(orch, NewHub(), monitor, w.ID, []world.Body{body}, shape, flatFloor)

	go loop.Run(0.05)

	// Wait for at least one committed tick.
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if stepped, ok := repo.Find(w.ID); ok && stepped.State.TotalTime > 0 {
			break
		}
		time.Sleep(5 * time.Millisecond)
	}

	loop.Stop()

	stepped, _ := repo.Find(w.ID)
	if stepped.State.TotalTime == 0 {
		t.Fatal("Expected the loop to commit at least one tick")
	}
	if stepped.State.ActiveBodies != 1 {
		t.Errorf("Expected 1 active body, got %d", stepped.State.ActiveBodies)
	}
	if monitor.Average() == 0 {
		t.Error("Expected the monitor to record tick durations")
	}
}

func TestTickPacerHoldsConfiguredRate(t *testing.T) {
	prev := config.GetTickRate()
	config.SetTickRate(100) // 10ms period
	defer config.SetTickRate(prev)

	p := NewTickPacer()
	start := time.Now()
	p.Wait()
	p.Wait()
	if elapsed := time.Since(start); elapsed < 15*time.Millisecond {
		t.Errorf("Expected two 10ms ticks to take at least 15ms, got %v", elapsed)
	}
}

func TestTickPacerResyncsAfterHitch(t *testing.T) {
	prev := config.GetTickRate()
	config.SetTickRate(100)
	defer config.SetTickRate(prev)

	p := NewTickPacer()
	// Simulate a hitch: the next deadline is far in the past. Wait must
	// return immediately and resync instead of trying to catch up.
	p.next = time.Now().Add(-500 * time.Millisecond)
	start := time.Now()
	p.Wait()
	if elapsed := time.Since(start); elapsed > 50*time.Millisecond {
		t.Errorf("Expected an immediate return after a hitch, took %v", elapsed)
	}
	if p.next.Before(time.Now()) {
		t.Error("Expected the deadline resynced into the future")
	}
}
