package main

import (
	"fmt"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"basement/pkg/game/behavior"
	"basement/pkg/game/config"
	"basement/pkg/game/content"
	"basement/pkg/game/generator"
)

// soak generates cfg.Soak levels from consecutive seeds and validates each
// map. Every failing seed is logged; the run fails if any did.
func soak(cfg config.Config, tables *content.Tables, registry *behavior.Registry, seed int64, log *zap.Logger) error {
	var (
		mu     sync.Mutex
		failed []int64
	)

	var eg errgroup.Group
	eg.SetLimit(cfg.SoakWorkers)
	for i := 0; i < cfg.Soak; i++ {
		s := seed + int64(i)
		eg.Go(func() error {
			err := soakOne(cfg, tables, registry, s)
			if err != nil {
				log.Warn("soak failure", zap.Int64("seed", s), zap.Error(err))
				mu.Lock()
				failed = append(failed, s)
				mu.Unlock()
			}
			return nil
		})
	}
	eg.Wait()

	log.Info("soak finished", zap.Int("levels", cfg.Soak), zap.Int("failed", len(failed)))
	if len(failed) > 0 {
		return fmt.Errorf("%d of %d levels failed validation (first seed %d)", len(failed), cfg.Soak, minSeed(failed))
	}
	fmt.Printf("%d levels generated and validated\n", cfg.Soak)
	return nil
}

func soakOne(cfg config.Config, tables *content.Tables, registry *behavior.Registry, seed int64) error {
	l, err := buildLevel(cfg, tables, registry, seed, zap.NewNop())
	if err != nil {
		return err
	}
	return generator.Validate(l.TileMap())
}

func minSeed(seeds []int64) int64 {
	m := seeds[0]
	for _, s := range seeds[1:] {
		m = min(m, s)
	}
	return m
}
