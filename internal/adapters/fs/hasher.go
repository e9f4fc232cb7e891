package fs

import (
	"fmt"
	"io"
	"os"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/quill/internal/core/domain"
	"go.trai.ch/quill/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Hasher = (*Hasher)(nil)

// Hasher computes xxhash64 content fingerprints.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// Fingerprint hashes data.
func (h *Hasher) Fingerprint(data []byte) domain.Fingerprint {
	return format(xxhash.Sum64(data))
}

// FingerprintFile hashes the content of the file at path without loading it whole.
func (h *Hasher) FingerprintFile(path string) (domain.Fingerprint, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrFileReadFailed.Error()), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to hash file content"), "path", path)
	}

	return format(hasher.Sum64()), nil
}

func format(sum uint64) domain.Fingerprint {
	return domain.Fingerprint(fmt.Sprintf("%016x", sum))
}
