package memory

import "github.com/inno-lab/innovaid/pkg/domain/interfaces"

var (
	// ErrNotFound is returned when a requested record does not exist
	ErrNotFound = interfaces.ErrNotFound

	// ErrConflict is returned when a staged support record carries a stale
	// version at commit time
	ErrConflict = interfaces.ErrConflict
)
