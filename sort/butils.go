package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/golang/snappy"
)

// BenchmarkResult 라운드 결과를 저장하는 구조체
type BenchmarkResult struct {
	Algorithm    string        `json:"algorithm"`
	Reference    string        `json:"reference"`
	DataSize     int           `json:"data_size"`
	StorageType  string        `json:"storage_type"`
	TestRun      int           `json:"test_run"`
	Duration     time.Duration `json:"duration"`
	MemoryUsage  uint64        `json:"memory_usage_bytes"`
	GoroutineNum int           `json:"goroutine_num"`
	Verified     bool          `json:"verified"`
	Sorted       bool          `json:"sorted"`
	Permutation  bool          `json:"permutation"`
	Fingerprint  uint64        `json:"fingerprint"`
}

// SystemStats 측정 구간 통계
type SystemStats struct {
	startTime time.Time
	startMem  runtime.MemStats
	endMem    runtime.MemStats
}

// generateRandomData [0, maxValue) 범위 랜덤 데이터 생성
func generateRandomData(rng *rand.Rand, size, maxValue int) []int {
	data := make([]int, size)
	for i := 0; i < size; i++ {
		data[i] = rng.Intn(maxValue)
	}
	return data
}

// writeDataToFile 한 줄에 하나씩 기록. compress면 snappy 프레임 포맷
func writeDataToFile(data []int, filename string, compress bool) (err error) {
	file, err := os.Create(filename)
	if err != nil {
		return errors.Wrapf(err, "create %s", filename)
	}
	defer func() {
		if cerr := file.Close(); err == nil {
			err = cerr
		}
	}()

	var w io.Writer = file
	if compress {
		sw := snappy.NewBufferedWriter(file)
		defer func() {
			if cerr := sw.Close(); err == nil {
				err = cerr
			}
		}()
		w = sw
	}

	// 큰 버퍼 사용으로 I/O 성능 향상
	writer := bufio.NewWriterSize(w, 64*1024)

	var builder strings.Builder
	builder.Grow(10000 * 8)

	for i, num := range data {
		if i > 0 {
			builder.WriteByte('\n')
		}
		builder.WriteString(strconv.Itoa(num))

		// 주기적으로 플러시
		if i%10000 == 0 {
			writer.WriteString(builder.String())
			builder.Reset()
		}
	}

	if builder.Len() > 0 {
		writer.WriteString(builder.String())
	}

	return writer.Flush()
}

// readDataFromFile writeDataToFile로 쓴 파일 읽기
func readDataFromFile(filename string, compress bool) ([]int, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", filename)
	}
	defer file.Close()

	fileInfo, err := file.Stat()
	if err != nil {
		return nil, err
	}

	var r io.Reader = file
	if compress {
		r = snappy.NewReader(file)
	}

	// 대략적인 숫자 개수 추정 (평균 6자리 + 개행)
	data := make([]int, 0, int(fileInfo.Size()/7))

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), bufio.MaxScanTokenSize)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		num, err := strconv.Atoi(line)
		if err != nil {
			return nil, errors.Wrapf(err, "%s: line %d", filename, len(data)+1)
		}
		data = append(data, num)
	}

	return data, scanner.Err()
}

// startStats 성능 측정 시작
func startStats() *SystemStats {
	runtime.GC()

	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	return &SystemStats{
		startTime: time.Now(),
		startMem:  m,
	}
}

// endStats 성능 측정 종료. (경과 시간, 할당 바이트)
func (s *SystemStats) endStats() (time.Duration, uint64) {
	duration := time.Since(s.startTime)

	runtime.ReadMemStats(&s.endMem)
	memUsage := s.endMem.TotalAlloc - s.startMem.TotalAlloc

	return duration, memUsage
}

// saveResultsToMarkdown 라운드별 표와 평균을 마크다운으로 저장
func saveResultsToMarkdown(results []BenchmarkResult, dir string) error {
	file, err := os.Create(filepath.Join(dir, "sort_results.md"))
	if err != nil {
		return err
	}
	defer file.Close()

	writer := bufio.NewWriterSize(file, 32*1024)

	var builder strings.Builder
	builder.WriteString("# 머지소트 검증 결과\n\n")
	builder.WriteString(fmt.Sprintf("실행 시간: %s\n", time.Now().Format("2006-01-02 15:04:05")))
	builder.WriteString(fmt.Sprintf("CPU 코어 수: %d\n", runtime.NumCPU()))
	builder.WriteString(fmt.Sprintf("GOMAXPROCS: %d\n\n", runtime.GOMAXPROCS(0)))

	builder.WriteString("| 라운드 | 데이터 | 저장방식 | 기준정렬 | 실행시간 | 메모리사용량 | 검증 |\n")
	builder.WriteString("|--------|--------|----------|----------|----------|--------------|------|\n")

	var totalDuration time.Duration
	var totalMemory uint64
	passed := 0
	for _, result := range results {
		builder.WriteString(fmt.Sprintf("| %d | %d | %s | %s | %v | %d bytes | %t |\n",
			result.TestRun, result.DataSize, result.StorageType, result.Reference,
			result.Duration, result.MemoryUsage, result.Verified))
		totalDuration += result.Duration
		totalMemory += result.MemoryUsage
		if result.Verified {
			passed++
		}
	}

	if len(results) > 0 {
		builder.WriteString("\n## 요약 통계\n\n")
		builder.WriteString(fmt.Sprintf("- 통과: %d/%d\n", passed, len(results)))
		builder.WriteString(fmt.Sprintf("- 평균 실행시간: %v\n", totalDuration/time.Duration(len(results))))
		builder.WriteString(fmt.Sprintf("- 평균 메모리사용량: %d bytes\n", totalMemory/uint64(len(results))))
	}

	if _, err := writer.WriteString(builder.String()); err != nil {
		return err
	}
	return writer.Flush()
}

// saveResultsToJSON JSON 저장
func saveResultsToJSON(results []BenchmarkResult, dir string) error {
	file, err := os.Create(filepath.Join(dir, "sort_results.json"))
	if err != nil {
		return err
	}
	defer file.Close()

	writer := bufio.NewWriterSize(file, 32*1024)

	encoder := json.NewEncoder(writer)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(results); err != nil {
		return err
	}
	return writer.Flush()
}
