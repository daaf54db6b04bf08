package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"runtime"
	"time"

	"github.com/rs/zerolog"

	"github.com/plus3/strata/ecs"
)

//go:generate go run ./internal/gen -components 16 -systems 8 -out components_gen.go

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	entityCount := flag.Int("entities", 10000, "The initial number of entities to create.")
	seed := flag.Int64("seed", 1, "Seed for the entity composition RNG.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	log.Info().Msg("Starting ECS stress test...")

	// 1. Set up World and Scheduler; the chunk budget comes from the
	// environment (CHUNK_BYTES) when set.
	cfg := ecs.LoadWorldConfig()
	world := ecs.NewWorldWithConfig(cfg)
	world.SetLogger(log.Level(zerolog.WarnLevel))

	scheduler := ecs.NewScheduler()
	scheduler.SetLogger(log.Level(zerolog.WarnLevel))
	RegisterAllGeneratedSystems(scheduler)
	scheduler.Build()

	// 2. Populate the world with initial entities
	log.Info().Int("entities", *entityCount).Int("chunk_bytes", cfg.ChunkBytes).Msg("Populating world...")
	rng := rand.New(rand.NewSource(*seed))
	for i := 0; i < *entityCount; i++ {
		// Spawn an entity with 1 to 5 random components
		numComponents := rng.Intn(5) + 1
		SpawnRandomEntity(world, rng, numComponents)
	}
	log.Info().Msg("Population complete.")

	// 3. Run the simulation loop
	report := &Report{
		Duration:       *duration,
		Entities:       *entityCount,
		Components:     componentCount,
		Systems:        systemCount,
		Stages:         scheduler.StageCount(),
		GCPauseMetrics: *gcPauseMetrics,
		UpdateTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Info().Dur("duration", *duration).Msg("Running simulation...")
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()
	var totalUpdates int64

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			updateStart := time.Now()
			scheduler.Run(world)
			world.NextEpoch()
			updateDuration := time.Since(updateStart)

			report.UpdateTime.Samples = append(report.UpdateTime.Samples, updateDuration)
			totalUpdates++
		}
	}

	report.TotalTime = time.Since(startTime)
	report.TotalUpdates = totalUpdates
	report.UpdateTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Info().Msg("Simulation finished.")

	// 4. Generate Report to Console
	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("Failed to generate report")
	}
	fmt.Println("--- End of Report ---")

	log.Info().Msg("Stress test complete.")
}
