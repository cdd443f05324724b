package field

import "fmt"

// Access restricts which accessors a field can produce.
type Access uint8

const (
	ReadWrite Access = iota // getters and setters
	ReadOnly                // getters only
	WriteOnly               // setters only
)

// CanRead reports whether a field with this access yields readers.
func (a Access) CanRead() bool {
	return a != WriteOnly
}

// CanWrite reports whether a field with this access yields writers.
func (a Access) CanWrite() bool {
	return a != ReadOnly
}

func (a Access) String() string {
	switch a {
	case ReadWrite:
		return "read-write"
	case ReadOnly:
		return "read-only"
	case WriteOnly:
		return "write-only"
	default:
		return fmt.Sprintf("Access(%d)", uint8(a))
	}
}
