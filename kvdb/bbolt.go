package kvdb

import (
	"github.com/cockroachdb/errors"
	"go.etcd.io/bbolt"
)

type bboltStore struct {
	db *bbolt.DB
}

func openBbolt(path string) (*bboltStore, error) {
	db, err := bbolt.Open(path, 0600, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "open bbolt %s", path)
	}
	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketName))
		return err
	})
	if err != nil {
		db.Close()
		return nil, errors.Wrap(err, "create bucket")
	}
	return &bboltStore{db: db}, nil
}

func (s *bboltStore) Put(rec Record) error {
	key, val, err := encodeRecord(rec)
	if err != nil {
		return err
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(bucketName)).Put(key, val)
	})
}

func (s *bboltStore) List() ([]Record, error) {
	var records []Record
	err := s.db.View(func(tx *bbolt.Tx) error {
		// bbolt 커서는 키 순서로 순회
		return tx.Bucket([]byte(bucketName)).ForEach(func(_, v []byte) error {
			rec, err := decodeRecord(v)
			if err != nil {
				return err
			}
			records = append(records, rec)
			return nil
		})
	})
	return records, err
}

func (s *bboltStore) Close() error {
	return s.db.Close()
}
