package timegrid

import "time"

// ColumnMap binds the engine's semantic field roles to the upload's column
// names. Exact labels are a deployment concern and come from configuration;
// the Final/Assigned pairs are resolved in priority order (Final first).
type ColumnMap struct {
	Date          string
	Start         string
	End           string
	RequestNumber string
	PlateFinal    string
	PlateAssigned string
	NameFinal     string
	NameAssigned  string
	ClassFinal    string
	ClassAssigned string
}

// PlanGrid maps vehicle plate → slot label → contributing request numbers.
// The grid is sparse: an absent plate or slot means no coverage. Request
// numbers are distinct, in first-seen order.
type PlanGrid map[string]map[string][]string

// Project computes the plan grid for one canonical day.
//
// A record participates only if its normalized submission date equals day, its
// plate resolves non-empty and both boundary times normalize. The half-open
// interval [start, end) is walked in 30-minute steps from the raw start time;
// end <= start means the interval crosses midnight. Step labels outside the
// canonical slot set are dropped, which truncates intervals past the second
// midnight and skips unaligned steps.
func Project(records []Record, day string, cols ColumnMap) PlanGrid {
	plan := make(PlanGrid)

	for _, r := range records {
		d, ok := NormalizeDate(r[cols.Date])
		if !ok || d != day {
			continue
		}
		plate, ok := Resolve(r[cols.PlateFinal], r[cols.PlateAssigned])
		if !ok {
			continue
		}
		start, okStart := NormalizeTime(r[cols.Start])
		end, okEnd := NormalizeTime(r[cols.End])
		if !okStart || !okEnd {
			continue
		}

		reqNo, _ := Resolve(r[cols.RequestNumber])

		for _, label := range WalkSlots(start, end) {
			if plan[plate] == nil {
				plan[plate] = make(map[string][]string)
			}
			// A covered slot is recorded even when the record carries no
			// request number; the number list just stays empty.
			if _, exists := plan[plate][label]; !exists {
				plan[plate][label] = nil
			}
			if reqNo != "" {
				plan[plate][label] = append(plan[plate][label], reqNo)
			}
		}
	}

	dedupePlan(plan)
	return plan
}

// dedupePlan removes duplicate request numbers per cell preserving first-seen
// order, then prunes cells whose list ended up empty and plates left without
// cells, keeping the grid sparse.
func dedupePlan(plan PlanGrid) {
	for plate, bySlot := range plan {
		for slot, nums := range bySlot {
			seen := make(map[string]struct{}, len(nums))
			uniq := nums[:0]
			for _, n := range nums {
				if n == "" {
					continue
				}
				if _, dup := seen[n]; dup {
					continue
				}
				seen[n] = struct{}{}
				uniq = append(uniq, n)
			}
			if len(uniq) > 0 {
				bySlot[slot] = uniq
			} else {
				delete(bySlot, slot)
			}
		}
		if len(bySlot) == 0 {
			delete(plan, plate)
		}
	}
}

// WalkSlots expands the half-open interval [start, end) into the sequence of
// 30-minute step labels that fall inside the canonical slot set. Both bounds
// are "HH:MM"; end <= start is treated as crossing midnight. Malformed bounds
// yield an empty walk, never an error.
func WalkSlots(start, end string) []string {
	st, errSt := time.Parse("15:04", start)
	en, errEn := time.Parse("15:04", end)
	if errSt != nil || errEn != nil {
		return nil
	}

	from := st.Hour()*60 + st.Minute()
	to := en.Hour()*60 + en.Minute()
	if to <= from {
		to += 24 * 60
	}

	var labels []string
	for m := from; m < to; m += SlotMinutes {
		label := formatMinutes(m % (24 * 60))
		if IsSlot(label) {
			labels = append(labels, label)
		}
	}
	return labels
}
