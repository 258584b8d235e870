package lookup

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/jalad-shrimali/mccmnc-countries/countries"
)

var fixture = []countries.Country{
	{
		Full:   "Germany",
		Code:   "de",
		Prefix: "+49",
		Carriers: map[string][]countries.MccMnc{
			"T-Mobile": {{Mcc: "262", Mnc: "01"}, {Mcc: "262", Mnc: "06"}},
			"Vodafone": {{Mcc: "262", Mnc: "02"}},
		},
	},
	{
		Full:     "Austria",
		Code:     "at",
		Prefix:   "+43",
		Carriers: map[string][]countries.MccMnc{"A1": {{Mcc: "232", Mnc: "01"}}},
	},
}

func TestLookupMccMnc(t *testing.T) {
	idx := Build(fixture, nil)

	m, err := idx.LookupMccMnc("262", "06")
	require.NoError(t, err)
	assert.Equal(t, "Germany", m.Country.Full)
	assert.Equal(t, "T-Mobile", m.Carrier)

	m, err = idx.LookupMccMnc(" 232", "01 ")
	require.NoError(t, err)
	assert.Equal(t, "A1", m.Carrier)

	_, err = idx.LookupMccMnc("262", "99")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLookupCodeAndName(t *testing.T) {
	idx := Build(fixture, nil)

	c, err := idx.LookupCode("DE")
	require.NoError(t, err)
	assert.Equal(t, "+49", c.Prefix)

	c, err = idx.LookupName("austria")
	require.NoError(t, err)
	assert.Equal(t, "at", c.Code)

	_, err = idx.LookupCode("fr")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = idx.LookupName("France")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestBuildReportsDuplicatePairs(t *testing.T) {
	cs := []countries.Country{
		{
			Full:   "Germany",
			Code:   "de",
			Prefix: "+49",
			Carriers: map[string][]countries.MccMnc{
				"Vodafone": {{Mcc: "262", Mnc: "02"}},
				"Arcor":    {{Mcc: "262", Mnc: "02"}},
			},
		},
	}

	core, logs := observer.New(zapcore.WarnLevel)
	idx := Build(cs, zap.New(core))

	m, err := idx.LookupMccMnc("262", "02")
	require.NoError(t, err)
	assert.Equal(t, "Arcor", m.Carrier)

	dups := logs.FilterMessage("duplicate mcc/mnc").All()
	require.Len(t, dups, 1)
	assert.Equal(t, "Vodafone", dups[0].ContextMap()["carrier"])
}

func TestCountriesSortedByName(t *testing.T) {
	got := Build(fixture, nil).Countries()
	require.Len(t, got, 2)
	assert.Equal(t, "Austria", got[0].Full)
	assert.Equal(t, "Germany", got[1].Full)
}

func TestNamesDifferingInCaseStayDistinct(t *testing.T) {
	cs := []countries.Country{
		{Full: "Congo", Code: "cg", Prefix: "+242"},
		{Full: "CONGO", Code: "cg", Prefix: "+243"},
		{Full: "Austria", Code: "at", Prefix: "+43"},
	}
	idx := Build(cs, nil)

	got := idx.Countries()
	require.Len(t, got, 3)
	assert.Equal(t, []string{"Austria", "CONGO", "Congo"}, []string{got[0].Full, got[1].Full, got[2].Full})

	c, err := idx.LookupName("CONGO")
	require.NoError(t, err)
	assert.Equal(t, "+243", c.Prefix)

	c, err = idx.LookupName("congo")
	require.NoError(t, err)
	assert.Equal(t, "+242", c.Prefix, "case-insensitive match takes the first in document order")

	c, err = idx.LookupCode("CG")
	require.NoError(t, err)
	assert.Equal(t, "+242", c.Prefix, "first country wins for codes as for names")
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), countries.OutputFile)
	require.NoError(t, countries.WriteFile(path, fixture))

	cs, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, fixture, cs)

	_, err = Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}
