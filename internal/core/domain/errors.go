package domain

import "go.trai.ch/zerr"

var (
	// ErrDirectoryNotFound is returned when the data directory does not exist.
	ErrDirectoryNotFound = zerr.New("data directory not found")

	// ErrNotADirectory is returned when the data path exists but is not a directory.
	ErrNotADirectory = zerr.New("data path is not a directory")

	// ErrStructure is returned when the data directory violates the structure invariant.
	ErrStructure = zerr.New("data directory structure is invalid")

	// ErrMetadataParse is returned when a sidecar metadata file cannot be parsed.
	ErrMetadataParse = zerr.New("failed to parse sidecar metadata")

	// ErrWrite is returned when the descriptor cannot be written.
	ErrWrite = zerr.New("failed to write package descriptor")

	// ErrInvestigationNotFound is returned when a requested investigation has no files.
	ErrInvestigationNotFound = zerr.New("investigation not found")

	// ErrDirectoryReadFailed is returned when the data directory cannot be listed.
	ErrDirectoryReadFailed = zerr.New("failed to read data directory")

	// ErrFileOpenFailed is returned when a file cannot be opened.
	ErrFileOpenFailed = zerr.New("failed to open file")

	// ErrFileHashFailed is returned when hashing a file fails.
	ErrFileHashFailed = zerr.New("failed to hash file content")

	// ErrPathStatFailed is returned when stating a path fails.
	ErrPathStatFailed = zerr.New("failed to stat path")

	// ErrDescriptorMarshalFailed is returned when the descriptor cannot be serialized.
	ErrDescriptorMarshalFailed = zerr.New("failed to marshal package descriptor")

	// ErrStateReadFailed is returned when the package state file cannot be read.
	ErrStateReadFailed = zerr.New("failed to read package state")

	// ErrStateWriteFailed is returned when the package state file cannot be written.
	ErrStateWriteFailed = zerr.New("failed to write package state")
)
