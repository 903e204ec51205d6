package ports

// FileInfo carries the size and content hash fields of a packaged resource.
type FileInfo struct {
	// Bytes is the file size in bytes.
	Bytes int64

	// Hash is the md5 content hash in hex, as the descriptor contract
	// requires.
	Hash string
}

// Hasher defines the interface for computing resource file information.
//
//go:generate mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Hasher interface {
	// FileInfo computes the size and md5 hash of one file.
	FileInfo(path string) (FileInfo, error)

	// Fingerprint computes a combined xxhash over the given files, used to
	// detect resources that changed between package runs.
	Fingerprint(paths ...string) (string, error)
}
