package maintenance

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrackValid(t *testing.T) {
	assert.True(t, TrackControl.Valid())
	assert.True(t, TrackClean.Valid())
	assert.True(t, TrackReplace.Valid())
	assert.False(t, Track("").Valid())
	assert.False(t, Track("repair").Valid())
}

func TestDefaultsAreConsistent(t *testing.T) {
	assert.Len(t, DefaultItems, 23)
	assert.Equal(t, 30, DefaultIntervalDays[TrackControl])
	assert.Equal(t, 90, DefaultIntervalDays[TrackClean])
	assert.Equal(t, 180, DefaultIntervalDays[TrackReplace])

	// Every excluded item must name a default item (case-insensitive), except
	// the legacy aliases the source data carries.
	known := make(map[string]struct{}, len(DefaultItems))
	for _, item := range DefaultItems {
		known[strings.ToLower(item)] = struct{}{}
	}
	aliases := map[string]struct{}{
		"etanchéité des circuits": {}, // legacy short form of the item name
	}
	for category, items := range DefaultExclusions {
		for _, item := range items {
			key := strings.ToLower(item)
			if _, alias := aliases[key]; alias {
				continue
			}
			_, ok := known[key]
			assert.True(t, ok, "category %s excludes unknown item %q", category, item)
		}
	}
}
