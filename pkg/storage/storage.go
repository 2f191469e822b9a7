package storage

import (
	"io"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/pebble"
	"github.com/cockroachdb/pebble/vfs"
	"go.uber.org/zap"
)

type Storage struct {
	// Cfg is the configuration for the storage provided to Open.
	Cfg Config
	// KV is the key-value store for the node.
	KV *pebble.DB
	// ReleaseLock is a function that releases the lock on the storage file system.
	ReleaseLock func() error
}

func (s *Storage) Close() error {
	return errors.CombineErrors(s.KV.Close(), s.ReleaseLock())
}

type Config struct {
	// Dirname defines the root directory the node will write its data to. Dirname
	// shouldn't be used by any other process while the node is running.
	Dirname string
	// MemBacked defines whether the node should use a memory-backed file system.
	MemBacked bool
	// Logger is the logger used by the node.
	Logger *zap.Logger
}

func Open(cfg Config) (Storage, error) {
	fs := openBaseFS(cfg)

	s := Storage{Cfg: cfg}

	// Acquire the lock on the storage directory. If any other wall node is using
	// the same directory we return an error to the client.
	releaser, err := acquireLock(cfg, fs)
	if err != nil {
		return s, err
	}
	// Allow the caller to release the lock when they finish using the storage.
	s.ReleaseLock = releaser.Close

	if s.KV, err = openKV(cfg, fs); err != nil {
		return s, errors.CombineErrors(err, s.ReleaseLock())
	}

	return s, nil
}

const (
	kvDirname    = "kv"
	lockFileName = "LOCK"
)

func openBaseFS(cfg Config) vfs.FS {
	if cfg.MemBacked {
		return vfs.NewMem()
	}
	return vfs.Default
}

const lockAlreadyAcquiredMsg = `
	The storage directory is locked by another process.

	Is there another wall node using the same directory?
	`

func acquireLock(cfg Config, fs vfs.FS) (io.Closer, error) {
	if err := fs.MkdirAll(cfg.Dirname, 0755); err != nil {
		return nil, err
	}
	fName := filepath.Join(cfg.Dirname, lockFileName)
	release, err := fs.Lock(fName)
	if err != nil {
		return release, errors.Wrap(err, lockAlreadyAcquiredMsg)
	}
	return release, nil
}

func openKV(cfg Config, fs vfs.FS) (*pebble.DB, error) {
	dirname := filepath.Join(cfg.Dirname, kvDirname)
	return pebble.Open(dirname, &pebble.Options{FS: fs})
}
