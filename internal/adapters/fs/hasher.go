package fs

import (
	"crypto/md5" //nolint:gosec // md5 is the descriptor contract's hash, not a security boundary
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/cespare/xxhash/v2"
	"github.com/defaultdata/defaultdata/internal/core/domain"
	"github.com/defaultdata/defaultdata/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Hasher = (*Hasher)(nil)

// Hasher computes resource file information: the size and md5 hash that go
// into the descriptor, and xxhash fingerprints for the package state.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// FileInfo computes the size in bytes and md5 content hash of one file.
func (h *Hasher) FileInfo(path string) (ports.FileInfo, error) {
	info, err := os.Stat(path)
	if err != nil {
		return ports.FileInfo{}, zerr.With(zerr.Wrap(err, domain.ErrPathStatFailed.Error()), "path", path)
	}

	f, err := os.Open(path) //nolint:gosec // Path comes from the scanned directory
	if err != nil {
		return ports.FileInfo{}, zerr.With(zerr.Wrap(err, domain.ErrFileOpenFailed.Error()), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	digest := md5.New() //nolint:gosec // See package import comment
	if _, err := io.Copy(digest, f); err != nil {
		return ports.FileInfo{}, zerr.With(zerr.Wrap(err, domain.ErrFileHashFailed.Error()), "path", path)
	}

	return ports.FileInfo{
		Bytes: info.Size(),
		Hash:  hex.EncodeToString(digest.Sum(nil)),
	}, nil
}

// Fingerprint computes a single xxhash over the given files, in order.
// Both the file name and its content contribute, so a rename changes the
// fingerprint as much as an edit does.
func (h *Hasher) Fingerprint(paths ...string) (string, error) {
	digest := xxhash.New()

	for _, path := range paths {
		_, _ = digest.WriteString(path)
		_, _ = digest.Write([]byte{0})

		if err := h.hashContent(path, digest); err != nil {
			return "", err
		}
		_, _ = digest.Write([]byte{0})
	}

	return fmt.Sprintf("%016x", digest.Sum64()), nil
}

func (h *Hasher) hashContent(path string, digest *xxhash.Digest) error {
	f, err := os.Open(path) //nolint:gosec // Path comes from the scanned directory
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrFileOpenFailed.Error()), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	if _, err := io.Copy(digest, f); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrFileHashFailed.Error()), "path", path)
	}
	return nil
}
