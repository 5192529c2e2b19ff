// Package kvdb 검증 라운드 기록을 임베디드 KV 저장소(bbolt, BadgerDB, PebbleDB)에 저장한다.
package kvdb

import (
	"encoding/binary"
	"encoding/json"
	"time"

	"github.com/cockroachdb/errors"
)

const (
	None   = "none"
	Bbolt  = "bbolt"
	Badger = "badger"
	Pebble = "pebble"

	keySize    = 16
	bucketName = "runs"
)

// ErrUnknownBackend 지원하지 않는 저장소 이름
var ErrUnknownBackend = errors.New("unknown store backend")

// Record 정렬 라운드 하나의 결과
type Record struct {
	Round       int           `json:"round"`
	At          time.Time     `json:"at"`
	Algorithm   string        `json:"algorithm"`
	Reference   string        `json:"reference"`
	DataSize    int           `json:"data_size"`
	StorageType string        `json:"storage_type"`
	Duration    time.Duration `json:"duration"`
	MemoryUsage uint64        `json:"memory_usage_bytes"`
	Fingerprint uint64        `json:"fingerprint"`
	Verified    bool          `json:"verified"`
}

// Store 라운드 기록 저장소
type Store interface {
	Put(rec Record) error
	// List 저장된 기록을 시간순으로 반환
	List() ([]Record, error)
	Close() error
}

// Open backend 이름으로 저장소를 연다. bbolt는 path를 파일로, 나머지는 디렉터리로 쓴다.
func Open(backend, path string) (Store, error) {
	switch backend {
	case None, "":
		return noopStore{}, nil
	case Bbolt:
		return openBbolt(path)
	case Badger:
		return openBadger(path)
	case Pebble:
		return openPebble(path)
	default:
		return nil, errors.Wrapf(ErrUnknownBackend, "%q", backend)
	}
}

// recordKey (unix nanos, round) big-endian. 바이트 순서 = 시간 순서
func recordKey(rec Record) []byte {
	var key [keySize]byte
	binary.BigEndian.PutUint64(key[:8], uint64(rec.At.UnixNano()))
	binary.BigEndian.PutUint64(key[8:], uint64(rec.Round))
	return key[:]
}

func encodeRecord(rec Record) ([]byte, []byte, error) {
	val, err := json.Marshal(rec)
	if err != nil {
		return nil, nil, errors.Wrap(err, "encode record")
	}
	return recordKey(rec), val, nil
}

func decodeRecord(val []byte) (Record, error) {
	var rec Record
	if err := json.Unmarshal(val, &rec); err != nil {
		return Record{}, errors.Wrap(err, "decode record")
	}
	return rec, nil
}

type noopStore struct{}

func (noopStore) Put(Record) error        { return nil }
func (noopStore) List() ([]Record, error) { return nil, nil }
func (noopStore) Close() error            { return nil }
