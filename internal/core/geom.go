// Package core holds the types shared by the game and its terminal hosts.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// IntRange is a closed range of integers [Lo, Hi].
// An empty range has Lo > Hi.
type IntRange struct {
	Lo, Hi int
}

// Empty reports whether the range holds no integers.
func (r IntRange) Empty() bool {
	return r.Lo > r.Hi
}

// Len returns the number of integers in the range.
func (r IntRange) Len() int {
	if r.Empty() {
		return 0
	}
	return r.Hi - r.Lo + 1
}

// Contains reports whether v lies within the range.
func (r IntRange) Contains(v int) bool {
	return v >= r.Lo && v <= r.Hi
}

// Intersect returns the overlap of two ranges (possibly empty).
func (r IntRange) Intersect(o IntRange) IntRange {
	return IntRange{Lo: Max(r.Lo, o.Lo), Hi: Min(r.Hi, o.Hi)}
}
