package sheet

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jalad-shrimali/mccmnc-countries/countries"
)

var fixture = []countries.Country{
	{
		Full:   "Germany",
		Code:   "de",
		Prefix: "+49",
		Carriers: map[string][]countries.MccMnc{
			"Vodafone": {{Mcc: "262", Mnc: "02"}},
			"T-Mobile": {{Mcc: "262", Mnc: "01"}, {Mcc: "262", Mnc: "06"}},
		},
	},
	{
		Full:     "Austria",
		Code:     "at",
		Prefix:   "+43",
		Carriers: map[string][]countries.MccMnc{"A1": {{Mcc: "232", Mnc: "01"}}},
	},
}

func TestRows(t *testing.T) {
	assert.Equal(t, [][]string{
		{"Full", "Code", "Prefix", "Carrier", "MCC", "MNC"},
		{"Germany", "de", "+49", "T-Mobile", "262", "01"},
		{"Germany", "de", "+49", "T-Mobile", "262", "06"},
		{"Germany", "de", "+49", "Vodafone", "262", "02"},
		{"Austria", "at", "+43", "A1", "232", "01"},
	}, Rows(fixture))
}

func TestWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), OutputFile)
	require.NoError(t, Write(path, fixture))

	x, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer x.Close()

	assert.Equal(t, []string{"countries", "summary"}, x.GetSheetList())

	rows, err := x.GetRows("countries")
	require.NoError(t, err)
	assert.Equal(t, Rows(fixture), rows)

	summary, err := x.GetRows("summary")
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"networks_with_one_mccmnc", "networks_with_more_mccmnc"},
		{"2", "1"},
	}, summary)
}
