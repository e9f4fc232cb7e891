package ports

import "go.trai.ch/quill/internal/core/domain"

// Hasher computes content fingerprints.
//
//go:generate mockgen -destination=mocks/hasher_mock.go -package=mocks -source=hasher.go
type Hasher interface {
	// Fingerprint hashes data.
	Fingerprint(data []byte) domain.Fingerprint

	// FingerprintFile hashes the content of the file at path.
	FingerprintFile(path string) (domain.Fingerprint, error)
}
