package packing

import (
	"context"
	"testing"
	"time"
)

func fastTestConfig() EngineConfig {
	cfg := DefaultEngineConfig()
	cfg.PopulationSize = 20
	cfg.Generations = 30
	cfg.Seed = 1
	cfg.MaxWorkers = 4
	return cfg
}

// S1: unit circle, one small gene — perfectly packable.
func TestEngineUnitCircleOneGene(t *testing.T) {
	circle, _ := NewCircle(1)
	inv := Inventory{{VarietyID: 1, VarietyName: "a", TypeTag: "t", Quantity: 1, Radius: 0.1}}

	engine, err := NewEngine(circle, inv, fastTestConfig())
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	best, err := engine.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if best.Fitness != 1.0 {
		t.Errorf("best fitness = %v, want 1.0", best.Fitness)
	}
	g := best.At(0)
	if g.X*g.X+g.Y*g.Y > 1 {
		t.Errorf("returned point escapes the unit circle: %+v", g)
	}
}

// S2: 10x10 rectangle, two touching genes of radius 1 — perfectly packable.
func TestEngineRectangleTwoTouchingGenes(t *testing.T) {
	rect, _ := NewRectangle(10, 10)
	inv := Inventory{{VarietyID: 1, VarietyName: "a", TypeTag: "t", Quantity: 2, Radius: 1.0}}

	cfg := fastTestConfig()
	cfg.Generations = 60
	engine, err := NewEngine(rect, inv, cfg)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	best, err := engine.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if best.Fitness != 1.0 {
		t.Errorf("best fitness = %v, want 1.0", best.Fitness)
	}
	if d := Distance(best.At(0), best.At(1)); d < 2.0-1e-9 {
		t.Errorf("touching genes must be at least 2.0 apart, got %v", d)
	}
}

// S3: overcrowded square — cannot reach perfect fitness, but must terminate
// within budget and produce a valid, bounded fitness.
func TestEngineOvercrowdedSquare(t *testing.T) {
	sq, _ := NewSquare(2)
	inv := Inventory{{VarietyID: 1, VarietyName: "a", TypeTag: "t", Quantity: 10, Radius: 0.5}}

	cfg := fastTestConfig()
	engine, err := NewEngine(sq, inv, cfg)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}

	start := time.Now()
	best, err := engine.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if time.Since(start) > TMax(inv.K()) {
		t.Errorf("run exceeded its time budget")
	}
	if best.Fitness <= 0 || best.Fitness > 1 {
		t.Errorf("fitness out of (0,1]: %v", best.Fitness)
	}
}

// S4-style annulus run with smaller plants (radius 0.1): whenever the final
// best reaches perfect fitness, every one of its genes must lie in the ring.
func TestEngineAnnulusFeasibility(t *testing.T) {
	ann, _ := NewAnnulus(1, 3)
	inv := Inventory{{VarietyID: 1, VarietyName: "a", TypeTag: "t", Quantity: 6, Radius: 0.1}}

	cfg := fastTestConfig()
	cfg.Generations = 80
	engine, err := NewEngine(ann, inv, cfg)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	best, err := engine.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	for i := 0; i < best.Len(); i++ {
		g := best.At(i)
		if ann.IsPointOutside(g.X, g.Y) && best.Fitness == 1.0 {
			t.Errorf("gene %+v outside annulus despite perfect fitness", g)
		}
	}
}

// S5: oversized plant — must fail construction with ConfigError.
func TestEngineRejectsOversizedPlant(t *testing.T) {
	sq, _ := NewSquare(1)
	inv := Inventory{{VarietyID: 1, VarietyName: "a", TypeTag: "t", Quantity: 1, Radius: 1.0}}

	_, err := NewEngine(sq, inv, DefaultEngineConfig())
	if err == nil {
		t.Fatalf("expected ConfigError for oversized plant")
	}
	if _, ok := err.(*ConfigError); !ok {
		t.Errorf("expected *ConfigError, got %T: %v", err, err)
	}
}

// Checks the population size invariant at genesis: the factory the engine
// starts from returns exactly PopulationSize individuals.
func TestEnginePopulationSizeInvariant(t *testing.T) {
	circle, _ := NewCircle(5)
	inv := Inventory{{VarietyID: 1, VarietyName: "a", TypeTag: "t", Quantity: 3, Radius: 0.2}}

	pop, err := CreateFirstGeneration(circle, inv, fastTestConfig().PopulationSize, 9)
	if err != nil {
		t.Fatalf("CreateFirstGeneration: %v", err)
	}
	if len(pop) != fastTestConfig().PopulationSize {
		t.Errorf("len(pop) = %d, want %d", len(pop), fastTestConfig().PopulationSize)
	}
}

func TestEngineRespectsContextCancellation(t *testing.T) {
	circle, _ := NewCircle(5)
	inv := Inventory{{VarietyID: 1, VarietyName: "a", TypeTag: "t", Quantity: 3, Radius: 0.2}}

	engine, err := NewEngine(circle, inv, fastTestConfig())
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := engine.Run(ctx); err == nil {
		t.Errorf("expected context cancellation error")
	}
}

func TestEmptyInventoryIsConfigError(t *testing.T) {
	circle, _ := NewCircle(1)
	_, err := NewEngine(circle, Inventory{}, DefaultEngineConfig())
	if err == nil {
		t.Errorf("expected error constructing engine with empty inventory")
	}
	if _, ok := err.(*ConfigError); !ok {
		t.Errorf("expected *ConfigError, got %T: %v", err, err)
	}
}
