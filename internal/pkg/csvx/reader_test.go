package csvx

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeHeader(t *testing.T) {
	cases := map[string]string{
		"Compteur  Km/H": "compteur_km/h",
		"compteur_km/h":  "compteur_km/h",
		"  Matricule ":   "matricule",
		"Qté Vidange":    "qte_vidange",
		"code-barre":     "code_barre",
		"NB.SI":          "nb_si",
		"Année":          "annee",
		"":               "",
	}
	for in, want := range cases {
		assert.Equal(t, want, NormalizeHeader(in), "input %q", in)
	}
}

func TestCoercionIsTotal(t *testing.T) {
	rec := Record{
		"designation": "  Tracteur  ",
		"annee":       " 2014 ",
		"bad_int":     "12x",
		"compteur":    "1532.5",
		"bad_float":   "n/a",
		"date":        "05/03/2021",
		"bad_date":    "2021-03-05",
	}

	assert.Equal(t, "Tracteur", rec.Str("designation"))
	assert.Equal(t, "", rec.Str("missing"))

	assert.Equal(t, 2014, rec.Int("annee", 0))
	assert.Equal(t, 7, rec.Int("bad_int", 7))
	assert.Equal(t, 0, rec.Int("missing", 0))

	require.NotNil(t, rec.Float("compteur"))
	assert.InDelta(t, 1532.5, *rec.Float("compteur"), 1e-9)
	assert.Nil(t, rec.Float("bad_float"))
	assert.Nil(t, rec.Float("missing"))

	require.NotNil(t, rec.Date("date"))
	assert.Equal(t, "2021-03-05", rec.Date("date").Format("2006-01-02"))
	assert.Nil(t, rec.Date("bad_date"))
	assert.Nil(t, rec.Date("missing"))
}

func TestReaderDecodesWindows1252(t *testing.T) {
	// "Désignation" with 0xE9 for é, field value "Filtre à huile" with 0xE0.
	raw := []byte("Matricule;D\xe9signation\r\nV-01;Filtre \xe0 huile\r\n")

	r, err := NewReader(bytes.NewReader(raw))
	require.NoError(t, err)
	assert.Equal(t, []string{"matricule", "designation"}, r.Headers())

	rec, err := r.Read()
	require.NoError(t, err)
	assert.Equal(t, "V-01", rec.Str("matricule"))
	assert.Equal(t, "Filtre à huile", rec.Str("designation"))

	_, err = r.Read()
	assert.Equal(t, io.EOF, err)
}

func TestReaderToleratesShortAndLongRows(t *testing.T) {
	raw := []byte("a;b;c\n1;2\n1;2;3;4\n")

	r, err := NewReader(bytes.NewReader(raw))
	require.NoError(t, err)

	rec, err := r.Read()
	require.NoError(t, err)
	assert.Equal(t, "2", rec.Str("b"))
	assert.Equal(t, "", rec.Str("c"))

	rec, err = r.Read()
	require.NoError(t, err)
	assert.Equal(t, "3", rec.Str("c"))
}
