package kvdb

import (
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/pebble"
)

type pebbleStore struct {
	db *pebble.DB
}

func openPebble(dir string) (*pebbleStore, error) {
	db, err := pebble.Open(dir, &pebble.Options{})
	if err != nil {
		return nil, errors.Wrapf(err, "open pebble %s", dir)
	}
	return &pebbleStore{db: db}, nil
}

func (s *pebbleStore) Put(rec Record) error {
	key, val, err := encodeRecord(rec)
	if err != nil {
		return err
	}
	return s.db.Set(key, val, pebble.Sync)
}

func (s *pebbleStore) List() ([]Record, error) {
	iter, err := s.db.NewIter(&pebble.IterOptions{})
	if err != nil {
		return nil, errors.Wrap(err, "new iter")
	}

	var records []Record
	for iter.First(); iter.Valid(); iter.Next() {
		// Value()는 다음 이동 전까지만 유효. 바로 디코딩
		rec, err := decodeRecord(iter.Value())
		if err != nil {
			iter.Close()
			return nil, err
		}
		records = append(records, rec)
	}
	return records, iter.Close()
}

func (s *pebbleStore) Close() error {
	return s.db.Close()
}
