package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zstd"
	"go.trai.ch/quill/internal/core/domain"
	"go.trai.ch/quill/internal/core/tree"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

const (
	dirPerm  = 0o750
	filePerm = 0o644
	entryExt = ".tree"
)

// envelope is the on-disk shape of one entry.
type envelope struct {
	Key         string `yaml:"key"`
	Fingerprint string `yaml:"fingerprint"`
	Tree        string `yaml:"tree"`
}

// FileStore implements ports.CacheStore with one file per key below a directory.
// Entries are optionally zstd compressed.
type FileStore struct {
	dir     string
	encoder *zstd.Encoder
	decoder *zstd.Decoder
}

// NewFileStore creates a store rooted at dir. The directory is created on first write.
func NewFileStore(dir string, compress bool) (*FileStore, error) {
	s := &FileStore{dir: filepath.Clean(dir)}
	if !compress {
		return s, nil
	}

	enc, err := zstd.NewWriter(nil, zstd.WithEncoderConcurrency(1))
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrCacheCreateFailed.Error())
	}
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrCacheCreateFailed.Error())
	}
	s.encoder = enc
	s.decoder = dec
	return s, nil
}

// Dir returns the directory holding the entries.
func (s *FileStore) Dir() string {
	return s.dir
}

// Retrieve returns the tree stored under key if it was stored with fingerprint fp.
// Missing, stale and undecodable entries are misses.
func (s *FileStore) Retrieve(key domain.CacheKey, fp domain.Fingerprint) (*tree.RootNode, bool, error) {
	filename := s.filename(key)
	//nolint:gosec // Path is constructed from the store directory and a hashed key
	data, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, zerr.With(zerr.Wrap(err, domain.ErrCacheReadFailed.Error()), "path", filename)
	}

	if s.decoder != nil {
		data, err = s.decoder.DecodeAll(data, nil)
		if err != nil {
			return nil, false, nil
		}
	}

	var env envelope
	if err := yaml.Unmarshal(data, &env); err != nil {
		return nil, false, nil
	}
	if env.Key != key.String() || domain.Fingerprint(env.Fingerprint) != fp {
		return nil, false, nil
	}

	root, err := tree.Unmarshal([]byte(env.Tree))
	if err != nil {
		return nil, false, nil
	}
	return root, true, nil
}

// Store overwrites the entry under key. The file is replaced by rename so readers
// never observe a partial entry.
func (s *FileStore) Store(key domain.CacheKey, fp domain.Fingerprint, root *tree.RootNode) error {
	body, err := tree.Marshal(root)
	if err != nil {
		return zerr.Wrap(err, domain.ErrCacheEncodeFailed.Error())
	}

	data, err := yaml.Marshal(envelope{Key: key.String(), Fingerprint: string(fp), Tree: string(body)})
	if err != nil {
		return zerr.Wrap(err, domain.ErrCacheEncodeFailed.Error())
	}
	if s.encoder != nil {
		data = s.encoder.EncodeAll(data, make([]byte, 0, len(data)))
	}

	if err := os.MkdirAll(s.dir, dirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheCreateFailed.Error()), "dir", s.dir)
	}

	tmp, err := os.CreateTemp(s.dir, "entry-*")
	if err != nil {
		return zerr.Wrap(err, domain.ErrCacheWriteFailed.Error())
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return zerr.Wrap(err, domain.ErrCacheWriteFailed.Error())
	}
	if err := tmp.Close(); err != nil {
		return zerr.Wrap(err, domain.ErrCacheWriteFailed.Error())
	}
	if err := os.Chmod(tmp.Name(), filePerm); err != nil {
		return zerr.Wrap(err, domain.ErrCacheWriteFailed.Error())
	}
	if err := os.Rename(tmp.Name(), s.filename(key)); err != nil {
		return zerr.Wrap(err, domain.ErrCacheWriteFailed.Error())
	}
	return nil
}

// Close releases the zstd encoder and decoder. The store must not be used afterwards.
func (s *FileStore) Close() error {
	var err error
	if s.encoder != nil {
		err = s.encoder.Close()
		s.encoder = nil
	}
	if s.decoder != nil {
		s.decoder.Close()
		s.decoder = nil
	}
	if err != nil {
		return zerr.Wrap(err, "failed to close cache store")
	}
	return nil
}

func (s *FileStore) filename(key domain.CacheKey) string {
	hash := sha256.Sum256([]byte(key.String()))
	return filepath.Join(s.dir, hex.EncodeToString(hash[:])+entryExt)
}
