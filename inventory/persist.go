package inventory

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"path/filepath"
	"time"

	"github.com/boltdb/bolt"
	"go.uber.org/zap"

	"steam-library-manager/settings"
)

const (
	DB_FILENAME           = "manifest-cache.db"
	DB_INTERNAL_TABLENAME = "internal-metadata"
)

// PersistentDB is a small gob-over-bolt store used to cache parsed
// manifests between runs.
type PersistentDB struct {
	db *bolt.DB
}

func NewPersistentDB(baseFolder string) (*PersistentDB, error) {
	db, err := bolt.Open(filepath.Join(baseFolder, DB_FILENAME), 0600, &bolt.Options{Timeout: 1 * time.Minute})
	if err != nil {
		return nil, err
	}

	err = db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(DB_INTERNAL_TABLENAME))
		if b == nil {
			b, err := tx.CreateBucket([]byte(DB_INTERNAL_TABLENAME))
			if b == nil || err != nil {
				return fmt.Errorf("create bucket: %s", err)
			}
			if err = b.Put([]byte("app_version"), []byte(settings.SLM_VERSION)); err != nil {
				zap.S().Warnf("failed to save app_version - %v", err)
				return err
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &PersistentDB{db: db}, nil
}

func (pd *PersistentDB) Close() {
	pd.db.Close()
}

func (pd *PersistentDB) ClearTable(tableName string) error {
	return pd.db.Update(func(tx *bolt.Tx) error {
		return tx.DeleteBucket([]byte(tableName))
	})
}

func (pd *PersistentDB) AddEntry(tableName string, key string, value interface{}) error {
	return pd.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(tableName))
		if b == nil {
			var err error
			b, err = tx.CreateBucket([]byte(tableName))
			if b == nil || err != nil {
				return fmt.Errorf("create bucket: %s", err)
			}
		}
		var bytesBuff bytes.Buffer
		if err := gob.NewEncoder(&bytesBuff).Encode(value); err != nil {
			return err
		}
		return b.Put([]byte(key), bytesBuff.Bytes())
	})
}

// GetEntry decodes the stored value into value. found is false when the
// table or key does not exist.
func (pd *PersistentDB) GetEntry(tableName string, key string, value interface{}) (bool, error) {
	found := false
	err := pd.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(tableName))
		if b == nil {
			return nil
		}
		v := b.Get([]byte(key))
		if v == nil {
			return nil
		}
		if err := gob.NewDecoder(bytes.NewReader(v)).Decode(value); err != nil {
			return err
		}
		found = true
		return nil
	})
	return found, err
}
