package main

import (
	"math"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/tychoish/fun/assert"
	"github.com/tychoish/fun/assert/check"

	"sortcheck/kvdb"
)

func TestLoadConfig(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		cfg, err := loadConfig(nil)
		assert.NotError(t, err)
		check.Equal(t, 10000, cfg.Size)
		check.Equal(t, math.MaxInt32, cfg.MaxValue)
		check.Equal(t, 0, cfg.Rounds)
		check.Equal(t, storageMemory, cfg.Storage)
		check.Equal(t, "std", cfg.Reference)
		check.Equal(t, kvdb.None, cfg.Store)
		check.True(t, !cfg.Compress)
	})

	t.Run("Env", func(t *testing.T) {
		t.Setenv("SORT_SIZE", "500")
		t.Setenv("SORT_STORAGE", "file")
		t.Setenv("SORT_COMPRESS", "true")
		t.Setenv("SORT_STORE", "pebble")

		cfg, err := loadConfig(nil)
		assert.NotError(t, err)
		check.Equal(t, 500, cfg.Size)
		check.Equal(t, storageFile, cfg.Storage)
		check.True(t, cfg.Compress)
		check.Equal(t, kvdb.Pebble, cfg.Store)
	})

	t.Run("FlagsOverrideEnv", func(t *testing.T) {
		t.Setenv("SORT_SIZE", "500")

		cfg, err := loadConfig([]string{"-size", "20", "-rounds", "3", "-reference", "quicksort", "-seed", "9"})
		assert.NotError(t, err)
		check.Equal(t, 20, cfg.Size)
		check.Equal(t, 3, cfg.Rounds)
		check.Equal(t, "quicksort", cfg.Reference)
		check.Equal(t, int64(9), cfg.Seed)
	})

	t.Run("Invalid", func(t *testing.T) {
		for _, args := range [][]string{
			{"-size", "-1"},
			{"-max", "0"},
			{"-rounds", "-2"},
			{"-storage", "tape"},
			{"-reference", "bogosort"},
		} {
			_, err := loadConfig(args)
			check.True(t, err != nil)
		}

		_, err := loadConfig([]string{"-store", "leveldb"})
		check.True(t, errors.Is(err, kvdb.ErrUnknownBackend))
	})
}
