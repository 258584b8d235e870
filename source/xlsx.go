package source

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jalad-shrimali/mccmnc-countries/countries"
)

// ReadXLSX reads the first sheet of a workbook laid out like countries.csv.
// excelize drops trailing empty cells, so rows shorter than the input layout
// are padded back out; longer rows are left for the aggregator to reject.
func ReadXLSX(ctx context.Context, path string) ([][]string, error) {
	x, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer x.Close()

	sheets := x.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}
	rows, err := x.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	for i, rec := range rows {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if len(rec) < countries.Fields {
			padded := make([]string, countries.Fields)
			copy(padded, rec)
			rows[i] = padded
		}
	}
	return rows, nil
}
