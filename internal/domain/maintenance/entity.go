package maintenance

type Track string

const (
	TrackControl Track = "control"
	TrackClean   Track = "clean"
	TrackReplace Track = "replace"
)

// Valid reports whether t is one of the three intervention tracks.
func (t Track) Valid() bool {
	switch t {
	case TrackControl, TrackClean, TrackReplace:
		return true
	}
	return false
}

// Item is one canonical maintenance task from the static catalog.
type Item struct {
	ID    int64  `json:"id" db:"id"`
	Name  string `json:"name" db:"name"`
	Group string `json:"group" db:"item_group"`
}

// IntervalRule schedules one item on one track every IntervalDays days.
// Rules are global: the same cadence applies to every vehicle of every category.
type IntervalRule struct {
	ID           int64  `json:"id" db:"id"`
	ItemName     string `json:"item_name" db:"item_name"`
	Track        Track  `json:"track" db:"track"`
	IntervalDays int    `json:"interval_days" db:"interval_days"`
}

// Exclusion removes an item from a whole category's schedule, in every track.
// Item names are matched case-insensitively.
type Exclusion struct {
	ID       int64  `json:"id" db:"id"`
	Category string `json:"category" db:"category"`
	ItemName string `json:"item_name" db:"item_name"`
}
