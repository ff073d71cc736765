// internal/repository/postgres/maintenance_repo.go
package postgres

import (
	"context"
	"fmt"

	"fleetmaint-service/internal/domain/maintenance"

	"github.com/jackc/pgx/v5/pgxpool"
)

type MaintenanceRepository struct {
	db *pgxpool.Pool
}

func NewMaintenanceRepository(db *pgxpool.Pool) *MaintenanceRepository {
	return &MaintenanceRepository{db: db}
}

func (r *MaintenanceRepository) EnsureItem(ctx context.Context, name string) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO maintenance_items (name) VALUES ($1) ON CONFLICT (name) DO NOTHING`,
		name,
	)
	if err != nil {
		return fmt.Errorf("failed to ensure item: %w", err)
	}
	return nil
}

// EnsureRule seeds the rule only when the item has no rule on that track yet,
// so configured override intervals survive reseeding.
func (r *MaintenanceRepository) EnsureRule(ctx context.Context, rule *maintenance.IntervalRule) error {
	query := `
		INSERT INTO interval_policies (item_name, track, interval_days)
		SELECT $1, $2, $3
		WHERE NOT EXISTS (
			SELECT 1 FROM interval_policies WHERE item_name = $1 AND track = $2
		)
	`
	if _, err := r.db.Exec(ctx, query, rule.ItemName, string(rule.Track), rule.IntervalDays); err != nil {
		return fmt.Errorf("failed to ensure interval rule: %w", err)
	}
	return nil
}

func (r *MaintenanceRepository) EnsureExclusion(ctx context.Context, category, itemName string) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO exclusions (category, item_name) VALUES ($1, $2)
		 ON CONFLICT (category, item_name) DO NOTHING`,
		category, itemName,
	)
	if err != nil {
		return fmt.Errorf("failed to ensure exclusion: %w", err)
	}
	return nil
}

func (r *MaintenanceRepository) RulesForItem(ctx context.Context, itemName string) ([]maintenance.IntervalRule, error) {
	query := `
		SELECT id, item_name, track, interval_days
		FROM interval_policies
		WHERE item_name = $1
		ORDER BY track, interval_days
	`
	rows, err := r.db.Query(ctx, query, itemName)
	if err != nil {
		return nil, fmt.Errorf("failed to list interval rules: %w", err)
	}
	defer rows.Close()

	var rules []maintenance.IntervalRule
	for rows.Next() {
		var rule maintenance.IntervalRule
		var track string
		if err := rows.Scan(&rule.ID, &rule.ItemName, &track, &rule.IntervalDays); err != nil {
			return nil, fmt.Errorf("failed to scan interval rule: %w", err)
		}
		rule.Track = maintenance.Track(track)
		rules = append(rules, rule)
	}
	return rules, rows.Err()
}

func (r *MaintenanceRepository) ExcludedForCategory(ctx context.Context, category string) (map[string]struct{}, error) {
	rows, err := r.db.Query(ctx,
		`SELECT lower(item_name) FROM exclusions WHERE category = $1`, category,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list exclusions: %w", err)
	}
	defer rows.Close()

	excluded := make(map[string]struct{})
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan exclusion: %w", err)
		}
		excluded[name] = struct{}{}
	}
	return excluded, rows.Err()
}
