package history

import (
	"bytes"
	"time"
)

// Snapshot is an immutable serialized capture of the whole document.
// The zero Snapshot is absent.
type Snapshot struct {
	data []byte
	at   time.Time
}

// NewSnapshot copies data into a new Snapshot.
func NewSnapshot(data []byte) Snapshot {
	if len(data) == 0 {
		return Snapshot{}
	}
	return Snapshot{
		data: bytes.Clone(data),
		at:   time.Now(),
	}
}

// IsZero reports whether the snapshot is absent.
func (s Snapshot) IsZero() bool {
	return len(s.data) == 0
}

// Bytes returns a copy of the serialized document.
func (s Snapshot) Bytes() []byte {
	return bytes.Clone(s.data)
}

// String returns the serialized document.
func (s Snapshot) String() string {
	return string(s.data)
}

// Len returns the size of the serialized document in bytes.
func (s Snapshot) Len() int {
	return len(s.data)
}

// Time returns when the snapshot was taken.
func (s Snapshot) Time() time.Time {
	return s.at
}

// Equal reports whether both snapshots hold the same serialized document.
// Capture time is ignored.
func (s Snapshot) Equal(other Snapshot) bool {
	return bytes.Equal(s.data, other.data)
}
