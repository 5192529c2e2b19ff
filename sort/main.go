package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/joho/godotenv"

	"sortcheck/kvdb"
)

func main() {
	// .env가 없으면 시스템 환경변수만 사용
	if err := godotenv.Load(); err != nil {
		log.Println(".env 파일 없음, 시스템 환경변수 사용")
	}

	cfg, err := loadConfig(os.Args[1:])
	if err != nil {
		log.Fatalf("설정 오류: %v", err)
	}

	fmt.Println("머지소트 검증 시작...")
	fmt.Printf("CPU 코어 수: %d\n", runtime.NumCPU())
	fmt.Printf("배열 크기: %d개 (%s, 기준 정렬: %s)\n\n", cfg.Size, cfg.Storage, cfg.Reference)

	store, err := kvdb.Open(cfg.Store, cfg.StorePath)
	if err != nil {
		log.Fatalf("저장소 열기 오류: %v", err)
	}
	defer store.Close()

	if cfg.Storage == storageFile {
		defer os.Remove(cfg.DataFile)
	}

	m := newMetrics()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if cfg.MetricsAddr != "" {
		go serveMetrics(ctx, cfg.MetricsAddr, m)
	}

	r := newRunner(cfg, store, m)
	if err := r.loop(os.Stdin, os.Stdout); err != nil {
		log.Printf("실행 오류: %v", err)
	}

	if cfg.ReportDir != "" {
		if err := saveResultsToMarkdown(r.results, cfg.ReportDir); err != nil {
			fmt.Printf("마크다운 저장 오류: %v\n", err)
		} else {
			fmt.Println("sort_results.md 파일이 생성되었습니다.")
		}

		if err := saveResultsToJSON(r.results, cfg.ReportDir); err != nil {
			fmt.Printf("JSON 저장 오류: %v\n", err)
		} else {
			fmt.Println("sort_results.json 파일이 생성되었습니다.")
		}
	}

	if cfg.Store != kvdb.None {
		records, err := store.List()
		if err != nil {
			fmt.Printf("기록 조회 오류: %v\n", err)
		} else {
			fmt.Printf("%s 누적 기록: %d개\n", cfg.Store, len(records))
		}
	}

	fmt.Println("완료!")
}
