// physicsd is a headless physics daemon: it runs one demo world on a
// fixed tick loop and serves per-tick snapshots over a websocket at
// /ws. Clients can steer bodies by sending input envelopes.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"net/http"
	"time"

	"github.com/xlab/closer"

	"voxphys/internal/config"
	"voxphys/internal/geom"
	"voxphys/internal/physics"
	"voxphys/internal/profiling"
	"voxphys/internal/server"
	"voxphys/internal/world"
)

func main() {
	configPath := flag.String("config", "physicsd.yaml", "path to settings file")
	flag.Parse()

	settings, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	config.SetTickRate(settings.TickRate)

	repo := world.NewRepository()
	orch := world.NewOrchestrator(repo)

	cfg, err := world.NewConfig(settings.TimeStep, 4, 0.01, 10)
	if err != nil {
		log.Fatalf("world config: %v", err)
	}
	w := world.New(cfg, geom.Vector3{Y: -physics.StandardGravity}).Start()

	bodies := make([]world.Body, 0, 2)
	for i := 0; i < 2; i++ {
		b, err := world.NewBody(world.BodySpec{
			WorldID:  w.ID,
			EntityID: fmt.Sprintf("demo-%d", i),
			Type:     world.BodyDynamic,
			Material: "stone",
			Mass:     70,
			Position: geom.Vector3{X: float64(i) * 2, Y: 5},
		})
		if err != nil {
			log.Fatalf("create body: %v", err)
		}
		bodies = append(bodies, b)
		repo.SaveBody(b)
	}
	repo.Save(w.WithEntityCount(len(bodies)))

	// Player-sized collision box in zero-origin local space.
	shape := geom.AABB{Max: geom.Vector3{X: 0.6, Y: 1.8, Z: 0.6}}

	budget := time.Second / time.Duration(settings.TickRate)
	monitor := profiling.NewMonitor(settings.MonitorWindow, budget)
	hub := server.NewHub()
	loop := server.NewLoop(orch, hub, monitor, w.ID, bodies, shape, flatSlabSampler(0.1))

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", hub.Handle)
	srv := &http.Server{Addr: settings.ListenAddr, Handler: mux}

	go func() {
		log.Printf("physicsd listening on %s", settings.ListenAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			closer.Fatalln(err)
		}
	}()
	go loop.Run(1.0 / float64(settings.TickRate))

	closer.Bind(func() {
		loop.Stop()
		_ = srv.Close()
	})
	closer.Hold()
}

// flatSlabSampler serves an endless ground slab whose top face sits at
// the given height, chopped into unit columns overlapping the query.
func flatSlabSampler(top float64) physics.Sampler {
	return func(query geom.AABB) []geom.AABB {
		if query.Min.Y > top || query.Max.Y < top-1 {
			return nil
		}
		minX := math.Floor(query.Min.X)
		maxX := math.Ceil(query.Max.X)
		minZ := math.Floor(query.Min.Z)
		maxZ := math.Ceil(query.Max.Z)
		var blocks []geom.AABB
		for x := minX; x < maxX; x++ {
			for z := minZ; z < maxZ; z++ {
				blocks = append(blocks, geom.AABB{
					Min: geom.Vector3{X: x, Y: top - 1, Z: z},
					Max: geom.Vector3{X: x + 1, Y: top, Z: z + 1},
				})
			}
		}
		return blocks
	}
}
