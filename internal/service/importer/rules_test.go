package importer

import (
	"testing"

	"fleetmaint-service/internal/pkg/csvx"

	"github.com/stretchr/testify/assert"
)

func TestDerivationRules(t *testing.T) {
	cases := []struct {
		name string
		rec  csvx.Record
		want []string
	}{
		{
			name: "oil change marker",
			rec:  csvx.Record{"entretien": "VIDANGE,M"},
			want: []string{"Vidanger le carter moteur"},
		},
		{
			name: "all filter markers",
			rec:  csvx.Record{"f/h": "*", "f/g": "*", "f/air": "*", "f/hyd": "*"},
			want: []string{"Filtre à huile", "Filtre carburant", "Filtre à air", "Filtre hydraulique"},
		},
		{
			name: "greasing by marker",
			rec:  csvx.Record{"entretien": "GR"},
			want: []string{"Graissage général"},
		},
		{
			name: "greasing by amount",
			rec:  csvx.Record{"gr": "1.5"},
			want: []string{"Graissage général"},
		},
		{
			name: "zero greasing amount is not greasing",
			rec:  csvx.Record{"gr": "0"},
			want: nil,
		},
		{
			name: "no markers",
			rec:  csvx.Record{"entretien": "AUTRE"},
			want: nil,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, deriveItems(DefaultDerivationRules, tc.rec))
		})
	}
}
