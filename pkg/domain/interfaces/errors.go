package interfaces

import "github.com/m-mizutani/goerr/v2"

var (
	// ErrNotFound is returned by repositories when a requested record does
	// not exist
	ErrNotFound = goerr.New("record not found")

	// ErrConflict is returned at commit time when a staged support record
	// carries a stale version
	ErrConflict = goerr.New("version conflict")
)
