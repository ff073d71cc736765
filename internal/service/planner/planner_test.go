package planner

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"testing"
	"time"

	"fleetmaint-service/internal/domain/fleet"
	"fleetmaint-service/internal/domain/maintenance"
	"fleetmaint-service/internal/domain/planning"
	xerrors "fleetmaint-service/internal/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// ---- in-memory fakes ----

type fakeFleetRepo struct {
	vehicles []fleet.Vehicle
}

func (r *fakeFleetRepo) Upsert(_ context.Context, v *fleet.Vehicle) error {
	r.vehicles = append(r.vehicles, *v)
	return nil
}

func (r *fakeFleetRepo) FindByID(_ context.Context, id string) (*fleet.Vehicle, error) {
	for _, v := range r.vehicles {
		if v.VehicleID == id {
			return &v, nil
		}
	}
	return nil, xerrors.ErrNotFound
}

func (r *fakeFleetRepo) List(_ context.Context) ([]fleet.Vehicle, error) {
	return append([]fleet.Vehicle(nil), r.vehicles...), nil
}

func (r *fakeFleetRepo) Exists(_ context.Context, id string) (bool, error) {
	_, err := r.FindByID(context.Background(), id)
	return err == nil, nil
}

type fakePolicyRepo struct {
	items      map[string]struct{}
	rules      map[string][]maintenance.IntervalRule
	exclusions map[string]map[string]struct{}
}

func newFakePolicyRepo() *fakePolicyRepo {
	return &fakePolicyRepo{
		items:      make(map[string]struct{}),
		rules:      make(map[string][]maintenance.IntervalRule),
		exclusions: make(map[string]map[string]struct{}),
	}
}

func (r *fakePolicyRepo) EnsureItem(_ context.Context, name string) error {
	r.items[name] = struct{}{}
	return nil
}

func (r *fakePolicyRepo) EnsureRule(_ context.Context, rule *maintenance.IntervalRule) error {
	for _, existing := range r.rules[rule.ItemName] {
		if existing.Track == rule.Track {
			return nil
		}
	}
	r.rules[rule.ItemName] = append(r.rules[rule.ItemName], *rule)
	return nil
}

func (r *fakePolicyRepo) EnsureExclusion(_ context.Context, category, itemName string) error {
	if r.exclusions[category] == nil {
		r.exclusions[category] = make(map[string]struct{})
	}
	r.exclusions[category][strings.ToLower(itemName)] = struct{}{}
	return nil
}

func (r *fakePolicyRepo) RulesForItem(_ context.Context, itemName string) ([]maintenance.IntervalRule, error) {
	return append([]maintenance.IntervalRule(nil), r.rules[itemName]...), nil
}

func (r *fakePolicyRepo) ExcludedForCategory(_ context.Context, category string) (map[string]struct{}, error) {
	out := make(map[string]struct{})
	for name := range r.exclusions[category] {
		out[name] = struct{}{}
	}
	return out, nil
}

// fakePlanRepo keeps every year's entries and replaces only the target year,
// like the transactional store does.
type fakePlanRepo struct {
	entries []planning.Entry
}

func (r *fakePlanRepo) ReplaceYear(_ context.Context, year int, entries []planning.Entry) error {
	kept := r.entries[:0]
	for _, e := range r.entries {
		if e.DueDate.Year() != year {
			kept = append(kept, e)
		}
	}
	r.entries = append(kept, entries...)
	return nil
}

func (r *fakePlanRepo) ListYear(_ context.Context, year int) ([]planning.Entry, error) {
	var out []planning.Entry
	for _, e := range r.entries {
		if e.DueDate.Year() == year {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DueDate.Before(out[j].DueDate) })
	return out, nil
}

type fakeLocker struct {
	held     map[string]bool
	acquired []string
}

func (l *fakeLocker) Acquire(_ context.Context, key string) (func(), error) {
	if l.held[key] {
		return nil, fmt.Errorf("%w: %s", xerrors.ErrLocked, key)
	}
	l.acquired = append(l.acquired, key)
	return func() {}, nil
}

func newTestPlanner(vehicles ...fleet.Vehicle) (*Planner, *fakePlanRepo, *fakeLocker) {
	plans := &fakePlanRepo{}
	locker := &fakeLocker{held: make(map[string]bool)}
	p := NewPlanner(
		&fakeFleetRepo{vehicles: vehicles},
		newFakePolicyRepo(),
		plans,
		locker,
		zap.NewNop(),
	)
	return p, plans, locker
}

func entriesFor(entries []planning.Entry, item string, track maintenance.Track) []planning.Entry {
	var out []planning.Entry
	for _, e := range entries {
		if e.ItemName == item && e.Track == track {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DueDate.Before(out[j].DueDate) })
	return out
}

// ---- tests ----

func TestFirstOccurrenceOf30DayTrackIn2025(t *testing.T) {
	p, plans, _ := newTestPlanner(fleet.Vehicle{VehicleID: "V-01", Category: ""})

	_, err := p.GenerateYear(context.Background(), 2025)
	require.NoError(t, err)

	control := entriesFor(plans.entries, "Frein", maintenance.TrackControl)
	require.NotEmpty(t, control)

	// 2010-01-01 to 2025-01-01 is 5479 days; ceil(5479/30) = 183, so the
	// first in-year date is anchor + 183*30 days = 2025-01-12.
	want := Anchor.AddDate(0, 0, 183*30)
	assert.Equal(t, "2025-01-12", want.Format("2006-01-02"))
	assert.True(t, control[0].DueDate.Equal(want), "got %s", control[0].DueDate)

	// Twelve 30-day occurrences fit in 2025, none before the first.
	assert.Len(t, control, 12)
	for _, e := range control {
		assert.Equal(t, 2025, e.DueDate.Year())
		assert.False(t, e.DueDate.Before(want))
	}
}

func TestTrackCadenceCounts(t *testing.T) {
	p, plans, _ := newTestPlanner(fleet.Vehicle{VehicleID: "V-01", Category: ""})

	total, err := p.GenerateYear(context.Background(), 2025)
	require.NoError(t, err)

	assert.Len(t, entriesFor(plans.entries, "batterie", maintenance.TrackControl), 12)
	assert.Len(t, entriesFor(plans.entries, "batterie", maintenance.TrackClean), 4)
	assert.Len(t, entriesFor(plans.entries, "batterie", maintenance.TrackReplace), 2)

	// 23 default items, 18 occurrences each, one vehicle, no exclusions.
	assert.Equal(t, len(maintenance.DefaultItems)*18, total)
}

func TestExclusionEnforcement(t *testing.T) {
	p, plans, _ := newTestPlanner(
		fleet.Vehicle{VehicleID: "V-GEG", Category: "GEG"},
		fleet.Vehicle{VehicleID: "V-STD", Category: "CHANTIER"},
	)

	_, err := p.GenerateYear(context.Background(), 2025)
	require.NoError(t, err)

	for _, e := range plans.entries {
		if e.VehicleID == "V-GEG" {
			assert.NotEqual(t, "graissage général", strings.ToLower(e.ItemName),
				"excluded item scheduled for %s track %s", e.VehicleID, e.Track)
		}
	}

	var stdControl []planning.Entry
	for _, e := range entriesFor(plans.entries, "Graissage général", maintenance.TrackControl) {
		if e.VehicleID == "V-STD" {
			stdControl = append(stdControl, e)
		}
	}
	assert.Len(t, stdControl, 12)
}

func TestRegenerationIsIdempotent(t *testing.T) {
	p, plans, _ := newTestPlanner(
		fleet.Vehicle{VehicleID: "V-01", Category: "LEGER"},
		fleet.Vehicle{VehicleID: "V-02", Category: "GEG"},
	)

	n1, err := p.GenerateYear(context.Background(), 2025)
	require.NoError(t, err)
	first := keySet(plans.entries)

	n2, err := p.GenerateYear(context.Background(), 2025)
	require.NoError(t, err)
	second := keySet(plans.entries)

	assert.Equal(t, n1, n2)
	assert.Equal(t, first, second)
	assert.Len(t, plans.entries, n2)
}

func TestOtherYearsAreUntouched(t *testing.T) {
	p, plans, _ := newTestPlanner(fleet.Vehicle{VehicleID: "V-01", Category: ""})

	old := planning.Entry{
		VehicleID: "V-01",
		ItemName:  "Frein",
		Track:     maintenance.TrackControl,
		DueDate:   time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC),
		Status:    planning.StatusDone,
	}
	plans.entries = append(plans.entries, old)

	_, err := p.GenerateYear(context.Background(), 2025)
	require.NoError(t, err)

	prev, err := plans.ListYear(context.Background(), 2024)
	require.NoError(t, err)
	require.Len(t, prev, 1)
	assert.Equal(t, planning.StatusDone, prev[0].Status)
}

func TestGeneratedEntriesShape(t *testing.T) {
	p, plans, _ := newTestPlanner(fleet.Vehicle{VehicleID: "V-01", Category: ""})

	_, err := p.GenerateYear(context.Background(), 2025)
	require.NoError(t, err)

	for _, e := range plans.entries {
		assert.Equal(t, planning.StatusPending, e.Status)
		assert.True(t, e.ReferenceDate.Equal(Anchor))
		assert.Equal(t, "default", e.ReferenceSource)
		assert.True(t, e.Track.Valid())
	}
}

func TestConcurrentGenerationIsRejected(t *testing.T) {
	p, _, locker := newTestPlanner(fleet.Vehicle{VehicleID: "V-01"})
	locker.held["planning:generate:2025"] = true

	_, err := p.GenerateYear(context.Background(), 2025)
	assert.ErrorIs(t, err, xerrors.ErrLocked)
}

func keySet(entries []planning.Entry) map[string]struct{} {
	set := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		key := fmt.Sprintf("%s|%s|%s|%s",
			e.VehicleID, e.ItemName, e.DueDate.Format("2006-01-02"), e.Track)
		set[key] = struct{}{}
	}
	return set
}
