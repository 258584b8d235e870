// Package sheet renders a countries document as an xlsx workbook.
package sheet

import (
	"sort"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/jalad-shrimali/mccmnc-countries/countries"
)

// OutputFile differs from source.XLSXFile so an export is never picked up as input.
const OutputFile = "countries_report.xlsx"

var countriesHeader = []string{"Full", "Code", "Prefix", "Carrier", "MCC", "MNC"}

// Rows flattens cs into one row per identifier pair, countries in document
// order and carriers sorted by name.
func Rows(cs []countries.Country) [][]string {
	rows := [][]string{countriesHeader}
	for _, c := range cs {
		names := make([]string, 0, len(c.Carriers))
		for n := range c.Carriers {
			names = append(names, n)
		}
		sort.Strings(names)
		for _, n := range names {
			for _, p := range c.Carriers[n] {
				rows = append(rows, []string{c.Full, c.Code, c.Prefix, n, p.Mcc, p.Mnc})
			}
		}
	}
	return rows
}

// Write saves sheets "countries" and "summary" to path.
func Write(path string, cs []countries.Country) error {
	stats := countries.Count(cs)
	summary := [][]string{
		{"networks_with_one_mccmnc", "networks_with_more_mccmnc"},
		{strconv.Itoa(stats.SingleCarrier), strconv.Itoa(stats.MultiCarrier)},
	}

	x := excelize.NewFile()
	defer x.Close()

	add := func(name string, rows [][]string) error {
		idx, err := x.NewSheet(name)
		if err != nil {
			return err
		}
		for r, row := range rows {
			for c, v := range row {
				cell, err := excelize.CoordinatesToCellName(c+1, r+1)
				if err != nil {
					return err
				}
				if err := x.SetCellStr(name, cell, v); err != nil {
					return err
				}
			}
		}
		if name == "countries" {
			x.SetActiveSheet(idx)
		}
		return nil
	}
	if err := add("countries", Rows(cs)); err != nil {
		return err
	}
	if err := add("summary", summary); err != nil {
		return err
	}
	if err := x.DeleteSheet("Sheet1"); err != nil {
		return err
	}
	return x.SaveAs(path)
}
