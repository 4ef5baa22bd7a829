package timegrid

import "sort"

// Vehicle is one roster line of the assembled grid: identity resolved from the
// filtered records joined with the directory.
type Vehicle struct {
	Name         string `json:"vehicle_name"`
	Plate        string `json:"vehicle_plate"`
	Class        string `json:"vehicle_class"`
	ScheduleText string `json:"schedule_text"`
	RegimeStart  string `json:"regime_start"`
	RegimeEnd    string `json:"regime_end"`
}

// Grid is the full assembled response for one day: the canonical slot list,
// the vehicle roster and the three layers.
type Grid struct {
	Day           string    `json:"day"`
	Slots         []string  `json:"slots"`
	Vehicles      []Vehicle `json:"vehicles"`
	Plan          PlanGrid  `json:"plan"`
	Schedule      MarkGrid  `json:"schedule"`
	Fact          MarkGrid  `json:"fact"`
	FilteredCount int       `json:"filtered_count"`
	TotalCount    int       `json:"total_count"`
}

// Assemble runs the whole pipeline for one day over immutable snapshots:
// filter the records, project the plan, derive the roster from the filtered
// set, join directory attributes, merge the effective schedule per vehicle and
// copy the fact layer unchanged.
func Assemble(records []Record, day string, spec FilterSpec,
	scheduleMarks, factMarks MarkGrid,
	directory map[string]DirectoryEntry, cols ColumnMap) *Grid {

	filtered := ApplyFilters(records, spec)
	plan := Project(filtered, day, cols)

	// Roster from the filtered records only: a vehicle appears when at least
	// one filtered record resolves to its plate. First record wins the
	// name/class attributes.
	byPlate := make(map[string]Vehicle)
	for _, r := range filtered {
		plate, ok := Resolve(r[cols.PlateFinal], r[cols.PlateAssigned])
		if !ok {
			continue
		}
		if _, exists := byPlate[plate]; exists {
			continue
		}
		name, _ := Resolve(r[cols.NameFinal], r[cols.NameAssigned])
		class, _ := Resolve(r[cols.ClassFinal], r[cols.ClassAssigned])
		byPlate[plate] = Vehicle{Name: name, Plate: plate, Class: class}
	}

	vehicles := make([]Vehicle, 0, len(byPlate))
	for _, v := range byPlate {
		vehicles = append(vehicles, v)
	}
	sort.Slice(vehicles, func(i, j int) bool { return vehicles[i].Plate < vehicles[j].Plate })

	// Directory join; plates absent from the directory keep empty defaults.
	schedule := make(MarkGrid, len(vehicles))
	for i := range vehicles {
		v := &vehicles[i]
		ref := directory[v.Plate]
		v.ScheduleText = ref.ScheduleText
		v.RegimeStart = ref.RegimeStart
		v.RegimeEnd = ref.RegimeEnd
		schedule[v.Plate] = MergeSchedule(scheduleMarks[v.Plate], ref.RegimeStart, ref.RegimeEnd)
	}

	if factMarks == nil {
		factMarks = make(MarkGrid)
	}

	return &Grid{
		Day:           day,
		Slots:         Slots(),
		Vehicles:      vehicles,
		Plan:          plan,
		Schedule:      schedule,
		Fact:          factMarks,
		FilteredCount: len(filtered),
		TotalCount:    len(records),
	}
}
