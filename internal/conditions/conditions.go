package conditions

import (
	"sort"
)

// Icon is the logical name of a condition image. The page resolves it to
// an asset URL, see render.Renderer.
type Icon string

const (
	IconSun          Icon = "sun"
	IconCloudy       Icon = "cloudy"
	IconOvercast     Icon = "overcast"
	IconRain         Icon = "rain"
	IconSnow         Icon = "snow"
	IconThunderstorm Icon = "thunderstorm"
)

// Icons lists every icon a table entry may reference.
var Icons = []Icon{IconSun, IconCloudy, IconOvercast, IconRain, IconSnow, IconThunderstorm}

// Valid reports whether i is one of the known icons.
func (i Icon) Valid() bool {
	for _, known := range Icons {
		if i == known {
			return true
		}
	}
	return false
}

// Entry describes a single WMO weather code.
type Entry struct {
	Code        int    `json:"code" example:"0"`
	Description string `json:"description" example:"Clear Sky"`
	Icon        Icon   `json:"icon" example:"sun"`
}

// Unknown is returned by Describe for codes the table does not list.
var Unknown = Entry{Code: -1, Description: "Unknown Conditions", Icon: IconOvercast}

// Table maps WMO weather codes to entries. It is never mutated after
// construction, so it is safe to share between requests.
type Table struct {
	entries map[int]Entry
	codes   []int
}

// NewTable builds a table from entries. A later entry for the same code
// replaces an earlier one.
func NewTable(entries ...Entry) *Table {
	t := &Table{entries: make(map[int]Entry, len(entries))}
	for _, e := range entries {
		t.entries[e.Code] = e
	}

	t.codes = make([]int, 0, len(t.entries))
	for code := range t.entries {
		t.codes = append(t.codes, code)
	}
	sort.Ints(t.codes)

	return t
}

// Lookup returns the entry for code and whether the table lists it.
func (t *Table) Lookup(code int) (Entry, bool) {
	e, ok := t.entries[code]
	return e, ok
}

// Describe returns the entry for code, or Unknown.
func (t *Table) Describe(code int) Entry {
	if e, ok := t.entries[code]; ok {
		return e
	}
	return Unknown
}

// Codes returns the listed codes in ascending order.
func (t *Table) Codes() []int {
	out := make([]int, len(t.codes))
	copy(out, t.codes)
	return out
}

// Entries returns all entries ordered by code.
func (t *Table) Entries() []Entry {
	out := make([]Entry, 0, len(t.codes))
	for _, code := range t.codes {
		out = append(out, t.entries[code])
	}
	return out
}

// Len returns the number of known codes.
func (t *Table) Len() int {
	return len(t.entries)
}

// Default returns the WMO 4677 table used by the forecast page.
// https://open-meteo.com/en/docs#weathervariables
func Default() *Table {
	return NewTable(
		Entry{Code: 0, Description: "Clear Sky", Icon: IconSun},
		Entry{Code: 1, Description: "Mostly Clear", Icon: IconSun},
		Entry{Code: 2, Description: "Partly Cloudy", Icon: IconCloudy},
		Entry{Code: 3, Description: "Overcast", Icon: IconOvercast},
		Entry{Code: 45, Description: "Fog", Icon: IconOvercast},
		Entry{Code: 48, Description: "Depositing Rime Fog", Icon: IconOvercast},
		Entry{Code: 51, Description: "Light Drizzle", Icon: IconRain},
		Entry{Code: 53, Description: "Moderate Drizzle", Icon: IconRain},
		Entry{Code: 55, Description: "Heavy Drizzle", Icon: IconRain},
		Entry{Code: 56, Description: "Light Freezing Drizzle", Icon: IconRain},
		Entry{Code: 57, Description: "Heavy Freezing Drizzle", Icon: IconRain},
		Entry{Code: 61, Description: "Light Rain", Icon: IconRain},
		Entry{Code: 63, Description: "Moderate Rain", Icon: IconRain},
		Entry{Code: 65, Description: "Heavy Rain", Icon: IconRain},
		Entry{Code: 66, Description: "Light Freezing Rain", Icon: IconRain},
		Entry{Code: 67, Description: "Heavy Freezing Rain", Icon: IconRain},
		Entry{Code: 71, Description: "Light Snowfall", Icon: IconSnow},
		Entry{Code: 73, Description: "Moderate Snowfall", Icon: IconSnow},
		Entry{Code: 75, Description: "Heavy Snowfall", Icon: IconSnow},
		Entry{Code: 77, Description: "Snow Grains", Icon: IconSnow},
		Entry{Code: 80, Description: "Light Rain Showers", Icon: IconRain},
		Entry{Code: 81, Description: "Moderate Rain Showers", Icon: IconRain},
		Entry{Code: 82, Description: "Violent Rain Showers", Icon: IconRain},
		Entry{Code: 85, Description: "Light Snow Showers", Icon: IconSnow},
		Entry{Code: 86, Description: "Heavy Snow Showers", Icon: IconSnow},
		Entry{Code: 95, Description: "Slight Thunderstorm", Icon: IconThunderstorm},
		Entry{Code: 96, Description: "Thunderstorm with Light Hail", Icon: IconThunderstorm},
		Entry{Code: 99, Description: "Thunderstorm with Heavy Hail", Icon: IconThunderstorm},
	)
}
