// Package timegrid implements the day-grid computation engine: normalization of
// raw upload cells, column filtering, projection of request time intervals onto
// the canonical 48-slot day, and merging of explicit marks with directory-derived
// working-hour defaults.
//
// Everything in this package is a pure function over immutable snapshots; no
// state is held between calls.
package timegrid

import "fmt"

// SlotMinutes is the fixed grid granularity.
const SlotMinutes = 30

const slotsPerDay = 24 * 60 / SlotMinutes

// slots holds the canonical slot sequence "00:00" … "23:30", built once at
// process start. slotIndex is its membership set.
var (
	slots     [slotsPerDay]string
	slotIndex map[string]int
)

func init() {
	slotIndex = make(map[string]int, slotsPerDay)
	for i := 0; i < slotsPerDay; i++ {
		m := i * SlotMinutes
		slots[i] = fmt.Sprintf("%02d:%02d", m/60, m%60)
		slotIndex[slots[i]] = i
	}
}

// Slots returns the canonical slot sequence in fixed order.
// The returned slice is freshly allocated; callers may keep or modify it.
func Slots() []string {
	out := make([]string, slotsPerDay)
	copy(out, slots[:])
	return out
}

// IsSlot reports whether label is one of the 48 canonical slot labels.
func IsSlot(label string) bool {
	_, ok := slotIndex[label]
	return ok
}
