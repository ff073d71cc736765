package maintenance

import "context"

type Repository interface {
	// Idempotent seeding: inserting something that already exists is a no-op.
	EnsureItem(ctx context.Context, name string) error
	EnsureRule(ctx context.Context, rule *IntervalRule) error
	EnsureExclusion(ctx context.Context, category, itemName string) error

	// RulesForItem returns every interval rule configured for the item,
	// default and override rows alike.
	RulesForItem(ctx context.Context, itemName string) ([]IntervalRule, error)

	// ExcludedForCategory returns the lowercased item names excluded for the
	// category, as a set.
	ExcludedForCategory(ctx context.Context, category string) (map[string]struct{}, error)
}
