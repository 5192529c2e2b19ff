package main

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"runtime"
	"time"

	"github.com/cockroachdb/errors"

	"sortcheck/kvdb"
	"sortcheck/mergesort"
	"sortcheck/verify"
)

const algorithmName = "mergesort"

type runner struct {
	cfg     Config
	rng     *rand.Rand
	store   kvdb.Store
	metrics *metrics
	results []BenchmarkResult
}

func newRunner(cfg Config, store kvdb.Store, m *metrics) *runner {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &runner{
		cfg:     cfg,
		rng:     rand.New(rand.NewSource(seed)),
		store:   store,
		metrics: m,
	}
}

// loadData 새 랜덤 데이터. file 모드면 파일에 쓰고 다시 읽어온다.
func (r *runner) loadData() ([]int, error) {
	data := generateRandomData(r.rng, r.cfg.Size, r.cfg.MaxValue)
	if r.cfg.Storage != storageFile {
		return data, nil
	}

	if err := writeDataToFile(data, r.cfg.DataFile, r.cfg.Compress); err != nil {
		return nil, errors.Wrap(err, "파일 쓰기 오류")
	}
	fileData, err := readDataFromFile(r.cfg.DataFile, r.cfg.Compress)
	if err != nil {
		return nil, errors.Wrap(err, "파일 읽기 오류")
	}
	return fileData, nil
}

// runRound 정렬 1회 + 기준 정렬 검증
func (r *runner) runRound(round int) (BenchmarkResult, error) {
	data, err := r.loadData()
	if err != nil {
		return BenchmarkResult{}, err
	}

	testData := make([]int, len(data))
	copy(testData, data)

	stats := startStats()
	mergesort.SortAll(testData)
	duration, memUsage := stats.endStats()

	check, err := verify.Check(data, testData, verify.Reference(r.cfg.Reference))
	if err != nil {
		return BenchmarkResult{}, err
	}

	result := BenchmarkResult{
		Algorithm:    algorithmName,
		Reference:    r.cfg.Reference,
		DataSize:     len(data),
		StorageType:  r.cfg.Storage,
		TestRun:      round,
		Duration:     duration,
		MemoryUsage:  memUsage,
		GoroutineNum: runtime.NumGoroutine(),
		Verified:     check.OK(),
		Sorted:       check.Sorted,
		Permutation:  check.Permutation,
		Fingerprint:  check.Fingerprint,
	}

	r.results = append(r.results, result)
	if r.metrics != nil {
		r.metrics.observe(result)
	}
	if r.store != nil {
		if err := r.store.Put(toRecord(result)); err != nil {
			return result, errors.Wrap(err, "기록 저장 오류")
		}
	}
	return result, nil
}

// loop Rounds가 0이면 ENTER마다 새 배열을 정렬하고 EOF에서 끝난다.
func (r *runner) loop(in io.Reader, out io.Writer) error {
	interactive := r.cfg.Rounds == 0
	reader := bufio.NewReader(in)

	for round := 1; interactive || round <= r.cfg.Rounds; round++ {
		result, err := r.runRound(round)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, result.Verified)
		fmt.Fprintln(out)

		if !interactive {
			continue
		}
		fmt.Fprintln(out, "새 배열을 정렬하려면 ENTER를 누르세요.")
		if _, err := reader.ReadString('\n'); err != nil {
			if err == io.EOF {
				return nil
			}
			return errors.Wrap(err, "입력 오류")
		}
	}
	return nil
}

func toRecord(res BenchmarkResult) kvdb.Record {
	return kvdb.Record{
		Round:       res.TestRun,
		At:          time.Now(),
		Algorithm:   res.Algorithm,
		Reference:   res.Reference,
		DataSize:    res.DataSize,
		StorageType: res.StorageType,
		Duration:    res.Duration,
		MemoryUsage: res.MemoryUsage,
		Fingerprint: res.Fingerprint,
		Verified:    res.Verified,
	}
}
