package timesource

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrClockUnavailable is returned when the system clock reports an instant
// before the Unix epoch.
var ErrClockUnavailable = errors.New("system clock unavailable")

// Clock provides the current instant. Tests substitute a fixed clock.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now()
}

// DefaultClock returns the clock backed by the system wall time.
func DefaultClock() Clock {
	return realClock{}
}

// FixedClock always reports the same instant.
type FixedClock struct {
	Time time.Time
}

func (c FixedClock) Now() time.Time {
	return c.Time
}

type Unit int

const (
	Milliseconds Unit = iota
	Seconds
)

func (u Unit) String() string {
	switch u {
	case Milliseconds:
		return "ms"
	case Seconds:
		return "s"
	}
	return fmt.Sprintf("Unit(%d)", int(u))
}

func ParseUnit(s string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ms", "millis", "milliseconds", "":
		return Milliseconds, nil
	case "s", "sec", "seconds":
		return Seconds, nil
	}
	return Milliseconds, fmt.Errorf("unknown time unit %q", s)
}

// Snapshot is the decimal representation of one sampled instant.
type Snapshot string

// Len is the number of digits in the snapshot.
func (s Snapshot) Len() int {
	return len(s)
}

// Digit returns the digit at index i, and false when i is out of range.
func (s Snapshot) Digit(i int) (int, bool) {
	if i < 0 || i >= len(s) {
		return 0, false
	}
	c := s[i]
	if c < '0' || c > '9' {
		return 0, false
	}
	return int(c - '0'), true
}

// SnapshotOf formats the elapsed time between the Unix epoch and t.
func SnapshotOf(t time.Time, unit Unit) (Snapshot, error) {
	var value int64
	switch unit {
	case Seconds:
		value = t.Unix()
	default:
		value = t.UnixMilli()
	}
	if value < 0 {
		return "", fmt.Errorf("%w: %s is before the epoch", ErrClockUnavailable, t.Format(time.RFC3339))
	}
	return Snapshot(strconv.FormatInt(value, 10)), nil
}

// Source samples a Clock and formats it in the configured unit.
type Source struct {
	Clock Clock
	Unit  Unit
}

func New(unit Unit) *Source {
	return &Source{Clock: DefaultClock(), Unit: unit}
}

func (s *Source) Snapshot() (Snapshot, error) {
	clock := s.Clock
	if clock == nil {
		clock = DefaultClock()
	}
	return SnapshotOf(clock.Now(), s.Unit)
}
