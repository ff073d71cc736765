// Package planner generates one year of scheduled maintenance occurrences
// per vehicle, per item, per intervention track.
package planner

import (
	"context"
	"fmt"
	"strings"
	"time"

	"fleetmaint-service/internal/domain/fleet"
	"fleetmaint-service/internal/domain/maintenance"
	"fleetmaint-service/internal/domain/planning"

	"go.uber.org/zap"
)

// Anchor is the fixed epoch every schedule walks from. Due dates are computed
// purely from this anchor and the interval; actual service history is not
// consulted, so a given item/track yields the same dates for every vehicle.
var Anchor = time.Date(2010, time.January, 1, 0, 0, 0, 0, time.UTC)

// Locker serializes generation runs for the same year.
type Locker interface {
	Acquire(ctx context.Context, key string) (func(), error)
}

type Planner struct {
	vehicles fleet.Repository
	policy   maintenance.Repository
	plans    planning.Repository
	locker   Locker
	logger   *zap.Logger
}

func NewPlanner(
	vehicles fleet.Repository,
	policy maintenance.Repository,
	plans planning.Repository,
	locker Locker,
	logger *zap.Logger,
) *Planner {
	return &Planner{
		vehicles: vehicles,
		policy:   policy,
		plans:    plans,
		locker:   locker,
		logger:   logger,
	}
}

// SeedDefaults makes sure the default item catalog, interval rules and
// category exclusions exist. Safe to run any number of times.
func (p *Planner) SeedDefaults(ctx context.Context) error {
	for _, item := range maintenance.DefaultItems {
		if err := p.policy.EnsureItem(ctx, item); err != nil {
			return fmt.Errorf("ensure item %q: %w", item, err)
		}
		for _, track := range []maintenance.Track{
			maintenance.TrackControl, maintenance.TrackClean, maintenance.TrackReplace,
		} {
			rule := &maintenance.IntervalRule{
				ItemName:     item,
				Track:        track,
				IntervalDays: maintenance.DefaultIntervalDays[track],
			}
			if err := p.policy.EnsureRule(ctx, rule); err != nil {
				return fmt.Errorf("ensure rule %q/%s: %w", item, track, err)
			}
		}
	}
	for category, items := range maintenance.DefaultExclusions {
		for _, item := range items {
			if err := p.policy.EnsureExclusion(ctx, category, item); err != nil {
				return fmt.Errorf("ensure exclusion %s/%q: %w", category, item, err)
			}
		}
	}
	return nil
}

// GenerateYear rebuilds the full schedule for one year and returns the number
// of entries created. The year's existing entries across all tracks are
// discarded first; entries outside the year are untouched. Output is
// deterministic for fixed catalog, exclusions and policy.
func (p *Planner) GenerateYear(ctx context.Context, year int) (int, error) {
	release, err := p.locker.Acquire(ctx, fmt.Sprintf("planning:generate:%d", year))
	if err != nil {
		return 0, err
	}
	defer release()

	if err := p.SeedDefaults(ctx); err != nil {
		return 0, err
	}

	vehicles, err := p.vehicles.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("list vehicles: %w", err)
	}

	yearStart := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	yearEnd := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)

	var entries []planning.Entry
	for _, v := range vehicles {
		excluded, err := p.policy.ExcludedForCategory(ctx, v.Category)
		if err != nil {
			return 0, fmt.Errorf("exclusions for %s: %w", v.Category, err)
		}
		for _, item := range maintenance.DefaultItems {
			if _, skip := excluded[strings.ToLower(item)]; skip {
				continue
			}
			rules, err := p.policy.RulesForItem(ctx, item)
			if err != nil {
				return 0, fmt.Errorf("rules for %q: %w", item, err)
			}
			for _, rule := range rules {
				entries = append(entries, occurrences(v.VehicleID, item, rule, yearStart, yearEnd)...)
			}
		}
	}

	if err := p.plans.ReplaceYear(ctx, year, entries); err != nil {
		return 0, fmt.Errorf("replace year %d: %w", year, err)
	}

	p.logger.Info("planning generated",
		zap.Int("year", year),
		zap.Int("vehicles", len(vehicles)),
		zap.Int("entries", len(entries)),
	)
	return len(entries), nil
}

// occurrences walks anchor + k*interval, k = 1, 2, ... and keeps the dates
// inside [yearStart, yearEnd]. The walk stops the first time it passes
// yearEnd.
func occurrences(vehicleID, item string, rule maintenance.IntervalRule, yearStart, yearEnd time.Time) []planning.Entry {
	if rule.IntervalDays <= 0 {
		return nil
	}
	var out []planning.Entry
	for k := 1; ; k++ {
		due := Anchor.AddDate(0, 0, k*rule.IntervalDays)
		if due.After(yearEnd) {
			break
		}
		if due.Before(yearStart) {
			continue
		}
		out = append(out, planning.Entry{
			VehicleID:       vehicleID,
			ItemName:        item,
			Track:           rule.Track,
			DueDate:         due,
			Status:          planning.StatusPending,
			ReferenceDate:   Anchor,
			ReferenceSource: "default",
		})
	}
	return out
}
