package sqlgen

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for compilation failures. All of them are business
// validation from the caller's perspective: the request, not the system,
// is at fault, and none are retryable.
var (
	ErrUnknownMember          = errors.New("unknown member")
	ErrAmbiguousMember        = errors.New("ambiguous member")
	ErrNoBaseTable            = errors.New("query references no tables")
	ErrUnreachableTable       = errors.New("required table is unreachable from base table")
	ErrUnsupportedGranularity = errors.New("unsupported granularity")
	ErrUnknownDialect         = errors.New("unknown dialect")
	ErrUnknownSegment         = errors.New("unknown segment")
)

// AmbiguousMemberError lists every table that defines a bare member name.
type AmbiguousMemberError struct {
	Member     string
	Candidates []string
}

func (e *AmbiguousMemberError) Error() string {
	return fmt.Sprintf("ambiguous member %q: defined by tables %s",
		e.Member, strings.Join(e.Candidates, ", "))
}

func (e *AmbiguousMemberError) Unwrap() error { return ErrAmbiguousMember }

// UnreachableTableError names both endpoints of a failed join search.
type UnreachableTableError struct {
	BaseTable string
	Target    string
}

func (e *UnreachableTableError) Error() string {
	return fmt.Sprintf("no join path from %q to %q", e.BaseTable, e.Target)
}

func (e *UnreachableTableError) Unwrap() error { return ErrUnreachableTable }
