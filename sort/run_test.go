package main

import (
	"bytes"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/tychoish/fun/assert"
	"github.com/tychoish/fun/assert/check"

	"sortcheck/kvdb"
)

func testConfig(t *testing.T) Config {
	t.Helper()
	return Config{
		Size:      1000,
		MaxValue:  1000000,
		Seed:      42,
		Rounds:    2,
		Storage:   storageMemory,
		DataFile:  filepath.Join(t.TempDir(), "data.txt"),
		Reference: "std",
		Store:     kvdb.None,
	}
}

func TestDataFile(t *testing.T) {
	data := generateRandomData(rand.New(rand.NewSource(1)), 25000, 1000000)

	for _, compress := range []bool{false, true} {
		name := "Plain"
		if compress {
			name = "Snappy"
		}
		t.Run(name, func(t *testing.T) {
			filename := filepath.Join(t.TempDir(), "data.txt")
			assert.NotError(t, writeDataToFile(data, filename, compress))

			got, err := readDataFromFile(filename, compress)
			assert.NotError(t, err)
			check.True(t, slices.Equal(data, got))
		})
	}

	t.Run("BadLine", func(t *testing.T) {
		filename := filepath.Join(t.TempDir(), "bad.txt")
		assert.NotError(t, os.WriteFile(filename, []byte("1\nx\n3\n"), 0600))
		_, err := readDataFromFile(filename, false)
		check.True(t, err != nil)
	})
}

func TestRunner(t *testing.T) {
	t.Run("Batch", func(t *testing.T) {
		cfg := testConfig(t)
		m := newMetrics()
		r := newRunner(cfg, nil, m)

		var out bytes.Buffer
		assert.NotError(t, r.loop(strings.NewReader(""), &out))

		assert.Equal(t, 2, len(r.results))
		for i, res := range r.results {
			check.Equal(t, i+1, res.TestRun)
			check.Equal(t, 1000, res.DataSize)
			check.True(t, res.Verified)
			check.True(t, res.Sorted)
			check.True(t, res.Permutation)
		}
		check.Equal(t, 2, strings.Count(out.String(), "true"))
		check.True(t, !strings.Contains(out.String(), "ENTER"))
	})

	t.Run("InteractiveStopsAtEOF", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.Rounds = 0
		r := newRunner(cfg, nil, nil)

		var out bytes.Buffer
		assert.NotError(t, r.loop(strings.NewReader("\n\n"), &out))

		// 입력 2줄 + EOF = 3라운드
		check.Equal(t, 3, len(r.results))
		check.Equal(t, 3, strings.Count(out.String(), "ENTER"))
	})

	t.Run("FileStorageWithStore", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.Storage = storageFile
		cfg.Compress = true
		cfg.Reference = "quicksort"
		cfg.Store = kvdb.Bbolt

		store, err := kvdb.Open(cfg.Store, filepath.Join(t.TempDir(), "runs.db"))
		assert.NotError(t, err)
		defer store.Close()

		r := newRunner(cfg, store, nil)
		assert.NotError(t, r.loop(strings.NewReader(""), &bytes.Buffer{}))

		records, err := store.List()
		assert.NotError(t, err)
		assert.Equal(t, 2, len(records))
		for _, rec := range records {
			check.True(t, rec.Verified)
			check.Equal(t, storageFile, rec.StorageType)
			check.Equal(t, "quicksort", rec.Reference)
		}
	})

	t.Run("EmptyData", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.Size = 0
		cfg.Rounds = 1
		r := newRunner(cfg, nil, nil)

		res, err := r.runRound(1)
		assert.NotError(t, err)
		check.True(t, res.Verified)
		check.Equal(t, 0, res.DataSize)
	})

	t.Run("SameSeedSameData", func(t *testing.T) {
		cfg := testConfig(t)
		a, err := newRunner(cfg, nil, nil).runRound(1)
		assert.NotError(t, err)
		b, err := newRunner(cfg, nil, nil).runRound(1)
		assert.NotError(t, err)
		check.Equal(t, a.Fingerprint, b.Fingerprint)
	})
}

func TestReports(t *testing.T) {
	cfg := testConfig(t)
	r := newRunner(cfg, nil, nil)
	assert.NotError(t, r.loop(strings.NewReader(""), &bytes.Buffer{}))

	dir := t.TempDir()
	assert.NotError(t, saveResultsToMarkdown(r.results, dir))
	assert.NotError(t, saveResultsToJSON(r.results, dir))

	md, err := os.ReadFile(filepath.Join(dir, "sort_results.md"))
	assert.NotError(t, err)
	check.True(t, strings.Contains(string(md), "통과: 2/2"))

	js, err := os.ReadFile(filepath.Join(dir, "sort_results.json"))
	assert.NotError(t, err)
	check.True(t, strings.Contains(string(js), `"algorithm": "mergesort"`))
}

func TestMetricsHandler(t *testing.T) {
	m := newMetrics()
	m.observe(BenchmarkResult{DataSize: 10000, Verified: true})
	m.observe(BenchmarkResult{DataSize: 10000, Verified: false})

	rec := httptest.NewRecorder()
	m.handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	check.True(t, strings.Contains(body, `mergesort_rounds_total{verified="true"} 1`))
	check.True(t, strings.Contains(body, `mergesort_rounds_total{verified="false"} 1`))
	check.True(t, strings.Contains(body, "mergesort_data_size 10000"))
}
