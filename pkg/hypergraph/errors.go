package hypergraph

import (
	"errors"
)

// Common sentinel errors
var (
	ErrExportInconsistent = errors.New("exported offsets do not match pin count")
	ErrBadDump            = errors.New("invalid hypergraph dump file")
	ErrDumpChecksum       = errors.New("hypergraph dump checksum mismatch")
)
