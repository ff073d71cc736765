package importer

import "fleetmaint-service/internal/pkg/csvx"

// DerivationRule maps one predicate over a preventive-log row to a canonical
// item name. A row matching several rules yields several history records.
type DerivationRule struct {
	Item  string
	Match func(rec csvx.Record) bool
}

// DefaultDerivationRules reproduces the legacy marker-to-item mapping exactly.
var DefaultDerivationRules = []DerivationRule{
	{
		Item:  "Vidanger le carter moteur",
		Match: func(rec csvx.Record) bool { return rec.Str("entretien") == "VIDANGE,M" },
	},
	{Item: "Filtre à huile", Match: markerSet("f/h")},
	{Item: "Filtre carburant", Match: markerSet("f/g")},
	{Item: "Filtre à air", Match: markerSet("f/air")},
	{Item: "Filtre hydraulique", Match: markerSet("f/hyd")},
	{
		Item: "Graissage général",
		Match: func(rec csvx.Record) bool {
			if rec.Str("entretien") == "GR" {
				return true
			}
			f := rec.Float("gr")
			return f != nil && *f != 0
		},
	},
}

func markerSet(key string) func(csvx.Record) bool {
	return func(rec csvx.Record) bool { return rec.Str(key) == "*" }
}

// deriveItems applies the rule table to one row, in rule order.
func deriveItems(rules []DerivationRule, rec csvx.Record) []string {
	var items []string
	for _, r := range rules {
		if r.Match(rec) {
			items = append(items, r.Item)
		}
	}
	return items
}
