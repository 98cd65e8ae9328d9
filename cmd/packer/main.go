// Command packer is a minimal demonstration binary wiring a domain, an
// inventory, and an EngineConfig into one packing.Engine.Run call. It is not
// a replacement for a full CLI/GUI wizard (that collaborator is explicitly
// out of scope for this repository) — it exists only to exercise the engine
// and the config package end to end.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/FeDevv/GeneticAlgorithm-sub001/config"
	"github.com/FeDevv/GeneticAlgorithm-sub001/packing"
)

func main() {
	configPath := flag.String("config", "", "path to a TOML hyperparameter file (defaults built in if absent)")
	domainKind := flag.String("domain", "CIRCLE", "domain kind passed to config.BuildDomain; only a \"radius\" parameter is supplied, so only CIRCLE builds (other kinds fail with a missing-parameter error)")
	radius := flag.Float64("radius", 5, "radius of the CIRCLE domain")
	quantity := flag.Int("quantity", 10, "number of plants to place")
	plantRadius := flag.Float64("plant-radius", 0.3, "radius of each plant")
	flag.Parse()

	cfg := packing.DefaultEngineConfig()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("packer: loading config: %v", err)
		}
		cfg = loaded
	}

	domain, err := config.BuildDomain(*domainKind, config.DomainParams{"radius": *radius})
	if err != nil {
		log.Fatalf("packer: building domain: %v", err)
	}

	inventory := packing.Inventory{
		{VarietyID: 1, VarietyName: "default", TypeTag: "plant", Quantity: *quantity, Radius: *plantRadius},
	}

	engine, err := packing.NewEngine(domain, inventory, cfg)
	if err != nil {
		log.Fatalf("packer: constructing engine: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	start := time.Now()
	best, err := engine.Run(ctx)
	if err != nil {
		log.Fatalf("packer: run failed after %v: %v", time.Since(start), err)
	}

	log.Printf("completed in %v, best fitness %.6f", time.Since(start), best.Fitness)
	for i := 0; i < best.Len(); i++ {
		g := best.At(i)
		log.Printf("  gene %d: (%.4f, %.4f) r=%.4f variety=%d/%s", i, g.X, g.Y, g.Radius, g.VarietyID, g.VarietyName)
	}
}
