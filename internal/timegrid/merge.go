package timegrid

import "strings"

// MarkGrid maps vehicle plate → slot label → mark value (0/1). Sparse: an
// absent slot means unset.
type MarkGrid map[string]map[string]int

// DirectoryEntry is the per-plate reference data used for presentation and
// default working-hour generation.
type DirectoryEntry struct {
	ScheduleText string
	RegimeStart  string
	RegimeEnd    string
}

// MergeSchedule builds the effective schedule layer for one vehicle: the
// explicit marks, plus a default "on" for every regime slot that has no
// explicit entry. Explicit marks always win, including explicit zeros.
// Malformed or missing regime bounds silently contribute nothing.
func MergeSchedule(explicit map[string]int, regimeStart, regimeEnd string) map[string]int {
	out := make(map[string]int, len(explicit))
	for slot, v := range explicit {
		out[slot] = v
	}

	rs := strings.TrimSpace(regimeStart)
	re := strings.TrimSpace(regimeEnd)
	if rs == "" || re == "" {
		return out
	}
	for _, label := range WalkSlots(rs, re) {
		if _, exists := out[label]; !exists {
			out[label] = 1
		}
	}
	return out
}
