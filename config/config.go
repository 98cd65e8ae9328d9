// Package config loads and saves engine hyperparameters as TOML files and
// builds domains from a kind keyword plus a parameter map, for collaborators
// (demo binaries, orchestrators) that want to configure a run without writing
// Go. It does not read domain definitions from files itself. The packing engine core never reads a
// file itself; EngineConfig and Domain values are always constructed
// directly.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/FeDevv/GeneticAlgorithm-sub001/packing"
)

// HyperparamFile mirrors packing.EngineConfig with TOML struct tags.
type HyperparamFile struct {
	PopulationSize   int     `toml:"population_size"`
	Generations      int     `toml:"generations"`
	TournamentSize   int     `toml:"tournament_size"`
	EliteFraction    float64 `toml:"elite_fraction"`
	CrossoverRate    float64 `toml:"crossover_rate"`
	MutationRate     float64 `toml:"mutation_rate"`
	MutationStrength float64 `toml:"mutation_strength"`
	DomainPenalty    float64 `toml:"domain_penalty"`
	OverlapWeight    float64 `toml:"overlap_weight"`
	HashingThreshold int     `toml:"hashing_threshold"`
	MaxWorkers       int     `toml:"max_workers"`
	Seed             int64   `toml:"seed"`
}

// Load reads a TOML hyperparameter file at path. If the file does not
// exist, it returns packing.DefaultEngineConfig() with no error, matching
// the fallback behavior of the pack's reference TOML config loader.
func Load(path string) (packing.EngineConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return packing.DefaultEngineConfig(), nil
		}
		return packing.DefaultEngineConfig(), fmt.Errorf("config: failed to read %s: %w", path, err)
	}

	var file HyperparamFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return packing.DefaultEngineConfig(), fmt.Errorf("config: failed to parse %s: %w", path, err)
	}

	return toEngineConfig(file), nil
}

func toEngineConfig(f HyperparamFile) packing.EngineConfig {
	return packing.EngineConfig{
		PopulationSize:   f.PopulationSize,
		Generations:      f.Generations,
		TournamentSize:   f.TournamentSize,
		EliteFraction:    f.EliteFraction,
		CrossoverRate:    f.CrossoverRate,
		MutationRate:     f.MutationRate,
		MutationStrength: f.MutationStrength,
		DomainPenalty:    f.DomainPenalty,
		OverlapWeight:    f.OverlapWeight,
		HashingThreshold: f.HashingThreshold,
		MaxWorkers:       f.MaxWorkers,
		Seed:             f.Seed,
	}
}

// Save writes cfg to path as TOML.
func Save(path string, cfg packing.EngineConfig) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("config: failed to create %s: %w", path, err)
	}
	defer f.Close()

	file := HyperparamFile{
		PopulationSize:   cfg.PopulationSize,
		Generations:      cfg.Generations,
		TournamentSize:   cfg.TournamentSize,
		EliteFraction:    cfg.EliteFraction,
		CrossoverRate:    cfg.CrossoverRate,
		MutationRate:     cfg.MutationRate,
		MutationStrength: cfg.MutationStrength,
		DomainPenalty:    cfg.DomainPenalty,
		OverlapWeight:    cfg.OverlapWeight,
		HashingThreshold: cfg.HashingThreshold,
		MaxWorkers:       cfg.MaxWorkers,
		Seed:             cfg.Seed,
	}
	return toml.NewEncoder(f).Encode(file)
}

// DomainParams holds the raw parameter map for BuildDomain, as loaded from a
// TOML domain definition (e.g. `[domain.params]` table).
type DomainParams map[string]float64

// BuildDomain constructs a packing.Domain from a domain kind keyword and its
// parameter map, per the parameter-key table collaborators use to describe
// a domain in configuration rather than in code.
func BuildDomain(kind string, params DomainParams) (packing.Domain, error) {
	get := func(key string) (float64, error) {
		v, ok := params[key]
		if !ok {
			return 0, fmt.Errorf("config: domain %q missing required parameter %q", kind, key)
		}
		return v, nil
	}

	switch kind {
	case "CIRCLE":
		r, err := get("radius")
		if err != nil {
			return nil, err
		}
		return packing.NewCircle(r)
	case "RECTANGLE":
		w, err := get("width")
		if err != nil {
			return nil, err
		}
		h, err := get("height")
		if err != nil {
			return nil, err
		}
		return packing.NewRectangle(w, h)
	case "SQUARE":
		s, err := get("side")
		if err != nil {
			return nil, err
		}
		return packing.NewSquare(s)
	case "ELLIPSE":
		a, err := get("semi-width")
		if err != nil {
			return nil, err
		}
		b, err := get("semi-height")
		if err != nil {
			return nil, err
		}
		return packing.NewEllipse(a, b)
	case "RIGHT_ANGLED_TRIANGLE":
		base, err := get("base")
		if err != nil {
			return nil, err
		}
		height, err := get("height")
		if err != nil {
			return nil, err
		}
		return packing.NewRightTriangle(base, height)
	case "FRAME":
		iw, err := get("innerWidth")
		if err != nil {
			return nil, err
		}
		ih, err := get("innerHeight")
		if err != nil {
			return nil, err
		}
		ow, err := get("outerWidth")
		if err != nil {
			return nil, err
		}
		oh, err := get("outerHeight")
		if err != nil {
			return nil, err
		}
		return packing.NewFrame(iw, ih, ow, oh)
	case "ANNULUS":
		inner, err := get("innerRadius")
		if err != nil {
			return nil, err
		}
		outer, err := get("outerRadius")
		if err != nil {
			return nil, err
		}
		return packing.NewAnnulus(inner, outer)
	default:
		return nil, fmt.Errorf("config: unknown domain kind %q", kind)
	}
}
