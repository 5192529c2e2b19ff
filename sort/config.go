package main

import (
	"flag"
	"math"
	"os"
	"strconv"

	"github.com/cockroachdb/errors"

	"sortcheck/kvdb"
	"sortcheck/verify"
)

const (
	storageMemory = "memory"
	storageFile   = "file"
)

// Config 실행 설정. 기본값은 환경변수(.env 포함), 플래그가 우선한다.
type Config struct {
	Size        int
	MaxValue    int
	Seed        int64
	Rounds      int // 0이면 ENTER 입력마다 반복
	Storage     string
	DataFile    string
	Compress    bool
	Reference   string
	Store       string
	StorePath   string
	MetricsAddr string
	ReportDir   string
}

func loadConfig(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("sort", flag.ContinueOnError)
	fs.IntVar(&cfg.Size, "size", atoiDefault(getEnv("SORT_SIZE", ""), 10000), "number of random integers per round")
	fs.IntVar(&cfg.MaxValue, "max", atoiDefault(getEnv("SORT_MAX_VALUE", ""), math.MaxInt32), "values are drawn from [0, max)")
	fs.Int64Var(&cfg.Seed, "seed", int64(atoiDefault(getEnv("SORT_SEED", ""), 0)), "random seed, 0 for time based")
	fs.IntVar(&cfg.Rounds, "rounds", atoiDefault(getEnv("SORT_ROUNDS", ""), 0), "rounds to run, 0 for interactive")
	fs.StringVar(&cfg.Storage, "storage", getEnv("SORT_STORAGE", storageMemory), "dataset storage: memory or file")
	fs.StringVar(&cfg.DataFile, "data-file", getEnv("SORT_DATA_FILE", "test_data.txt"), "dataset file for file storage")
	fs.BoolVar(&cfg.Compress, "compress", getEnv("SORT_COMPRESS", "false") == "true", "snappy-compress the dataset file")
	fs.StringVar(&cfg.Reference, "reference", getEnv("SORT_REFERENCE", string(verify.Std)), "reference sort: std or quicksort")
	fs.StringVar(&cfg.Store, "store", getEnv("SORT_STORE", kvdb.None), "run store: none, bbolt, badger or pebble")
	fs.StringVar(&cfg.StorePath, "store-path", getEnv("SORT_STORE_PATH", "sort_runs"), "run store file or directory")
	fs.StringVar(&cfg.MetricsAddr, "metrics-addr", getEnv("SORT_METRICS_ADDR", ""), "prometheus listen address, empty to disable")
	fs.StringVar(&cfg.ReportDir, "report-dir", getEnv("SORT_REPORT_DIR", ""), "write markdown/json reports here on exit")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, cfg.validate()
}

func (c Config) validate() error {
	switch {
	case c.Size < 0:
		return errors.Newf("size must be >= 0, got %d", c.Size)
	case c.MaxValue <= 0:
		return errors.Newf("max must be > 0, got %d", c.MaxValue)
	case c.Rounds < 0:
		return errors.Newf("rounds must be >= 0, got %d", c.Rounds)
	case c.Storage != storageMemory && c.Storage != storageFile:
		return errors.Newf("unknown storage %q", c.Storage)
	}
	if _, err := verify.ReferenceSort(verify.Reference(c.Reference)); err != nil {
		return err
	}
	switch c.Store {
	case kvdb.None, kvdb.Bbolt, kvdb.Badger, kvdb.Pebble:
	default:
		return errors.Wrapf(kvdb.ErrUnknownBackend, "%q", c.Store)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func atoiDefault(s string, defaultValue int) int {
	if v, err := strconv.Atoi(s); err == nil {
		return v
	}
	return defaultValue
}
