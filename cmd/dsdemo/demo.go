package main

import (
	"fmt"
	"math/rand/v2"

	"go.uber.org/zap"

	"github.com/scratchpad/dsgo/hashtable"
	"github.com/scratchpad/dsgo/heap"
)

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

// runHeap builds a heap of cfg.Count values in [0, 100] and pops
// up to cfg.Pops of them, logging the tree after each step.
func runHeap(cfg config, log *zap.Logger) error {
	rng := newRand(cfg.Seed)
	values := make([]int, cfg.Count)
	for i := range values {
		values[i] = rng.IntN(101)
	}
	less := heap.Ascending[int]
	if cfg.Order == "desc" {
		less = heap.Descending[int]
	}
	h := heap.New(values, less)
	log.Info("heap built", zap.Int("len", h.Len()), zap.String("order", cfg.Order))
	log.Debug("heap layout\n" + h.String())

	for range min(cfg.Pops, h.Len()) {
		x, err := h.Pop()
		if err != nil {
			return fmt.Errorf("cannot pop: %w", err)
		}
		log.Info("popped", zap.Int("value", x), zap.Int("len", h.Len()))
		log.Debug("heap layout\n" + h.String())
	}
	return nil
}

// runHashTable sets cfg.Count random keys in [0, 1024] to random
// 32-bit values, logging the load after each, then looks every key up.
func runHashTable(cfg config, log *zap.Logger) error {
	rng := newRand(cfg.Seed)
	tab := hashtable.New[int, uint32](cfg.Size, cfg.MaxLoad)
	var keys []int
	seen := make(map[int]bool)
	for range cfg.Count {
		k := rng.IntN(1025)
		v := rng.Uint32()
		if !seen[k] {
			seen[k] = true
			keys = append(keys, k)
		}
		tab.Set(k, v)
		used, size, ratio := tab.Load()
		log.Info("set",
			zap.Int("key", k),
			zap.Uint32("value", v),
			zap.Int("used", used),
			zap.Int("size", size),
			zap.Float64("load", ratio),
		)
	}
	log.Debug("buckets\n" + tab.String())

	for _, k := range keys {
		v, ok := tab.Get(k)
		if !ok {
			return fmt.Errorf("key %d missing after set", k)
		}
		log.Info("get", zap.Int("key", k), zap.Uint32("value", v))
	}
	log.Info("done", zap.Int("keys", tab.Len()))
	return nil
}
