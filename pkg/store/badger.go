package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	badger "github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"

	"github.com/proteinnetworks/insight/pkg/supernetwork"
)

const badgerKeyPrefix = "super:"

// BadgerConfig configures a BadgerStore.
type BadgerConfig struct {
	// Path is the database directory, created if missing. Ignored when
	// InMemory is set.
	Path string

	// InMemory runs Badger without touching disk. Data is lost on Close.
	InMemory bool

	SyncWrites bool
}

// DefaultBadgerConfig returns production settings for the given path.
func DefaultBadgerConfig(path string) BadgerConfig {
	return BadgerConfig{Path: path, SyncWrites: true}
}

// InMemoryBadgerConfig returns settings for tests.
func InMemoryBadgerConfig() BadgerConfig {
	return BadgerConfig{InMemory: true}
}

// BadgerStore persists supernetworks in BadgerDB as JSON values under
// "super:<proteinRef>:<partitionID>" keys.
type BadgerStore struct {
	db *badger.DB
}

// OpenBadgerStore opens or creates the database described by the config.
// The caller must Close the store when done.
func OpenBadgerStore(cfg BadgerConfig) (*BadgerStore, error) {
	var opts badger.Options
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if cfg.Path == "" {
			return nil, fmt.Errorf("path is required for a persistent store")
		}
		if err := os.MkdirAll(cfg.Path, 0o750); err != nil {
			return nil, fmt.Errorf("create database directory %s: %w", cfg.Path, err)
		}
		opts = badger.DefaultOptions(cfg.Path)
	}
	opts = opts.WithSyncWrites(cfg.SyncWrites).WithLogger(nil)

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger database: %w", err)
	}
	return &BadgerStore{db: db}, nil
}

// Close closes the underlying database.
func (s *BadgerStore) Close() error {
	return s.db.Close()
}

func badgerKey(proteinRef string, partitionID uuid.UUID) []byte {
	return []byte(fmt.Sprintf("%s%s:%s", badgerKeyPrefix, proteinRef, partitionID))
}

func (s *BadgerStore) Lookup(proteinRef string, partitionID uuid.UUID) (*supernetwork.SuperNetwork, bool, error) {
	var sn *supernetwork.SuperNetwork
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(badgerKey(proteinRef, partitionID))
		if err != nil {
			return err
		}
		return item.Value(func(value []byte) error {
			sn = &supernetwork.SuperNetwork{}
			return json.Unmarshal(value, sn)
		})
	})
	if err == badger.ErrKeyNotFound {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("lookup %s/%s: %w", proteinRef, partitionID, err)
	}
	return sn, true, nil
}

func (s *BadgerStore) Deposit(sn *supernetwork.SuperNetwork) error {
	value, err := json.Marshal(sn)
	if err != nil {
		return fmt.Errorf("encode supernetwork for %s: %w", sn.ProteinRef, err)
	}
	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(badgerKey(sn.ProteinRef, sn.PartitionID), value)
	})
	if err != nil {
		return fmt.Errorf("deposit supernetwork for %s: %w", sn.ProteinRef, err)
	}
	return nil
}

func (s *BadgerStore) AllSuperNetworksFor(proteinRef string) ([]*supernetwork.SuperNetwork, error) {
	excluded := []byte(badgerKeyPrefix + proteinRef + ":")

	var out []*supernetwork.SuperNetwork
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(badgerKeyPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			item := it.Item()
			if bytes.HasPrefix(item.Key(), excluded) {
				continue
			}
			err := item.Value(func(value []byte) error {
				sn := &supernetwork.SuperNetwork{}
				if err := json.Unmarshal(value, sn); err != nil {
					return err
				}
				out = append(out, sn)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan supernetworks: %w", err)
	}
	return out, nil
}
