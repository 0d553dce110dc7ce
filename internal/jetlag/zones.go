package jetlag

import (
	"cmp"
	"slices"
)

// zoneOffsets is a fixed standard-time table. DST and fractional offsets
// are not modelled.
var zoneOffsets = map[string]int{
	"America/New_York":    -5,
	"America/Chicago":     -6,
	"America/Denver":      -7,
	"America/Los_Angeles": -8,
	"Europe/London":       0,
	"Europe/Paris":        1,
	"Asia/Dubai":          4,
	"Asia/Singapore":      8,
	"Asia/Tokyo":          9,
	"Asia/Shanghai":       8,
	"Australia/Sydney":    11,
}

// Zone is a named entry of the offset table.
type Zone struct {
	Name        string `json:"name"`
	OffsetHours int    `json:"offsetHours"`
}

// ZoneOffset returns the UTC offset in hours for name, or 0 for names that
// are not in the table.
func ZoneOffset(name string) int {
	return zoneOffsets[name]
}

// Zones lists the table ordered west to east, then by name.
func Zones() []Zone {
	zones := make([]Zone, 0, len(zoneOffsets))
	for name, off := range zoneOffsets {
		zones = append(zones, Zone{Name: name, OffsetHours: off})
	}
	slices.SortFunc(zones, func(a, b Zone) int {
		return cmp.Or(cmp.Compare(a.OffsetHours, b.OffsetHours), cmp.Compare(a.Name, b.Name))
	})
	return zones
}
