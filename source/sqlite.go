package source

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// Table is the table ReadSQLite expects; its columns follow the csv layout.
const Table = "mccmnc"

const selectRows = `
        SELECT mcc, mcc_int, mnc, mnc_int, iso, country, country_code, network
          FROM ` + Table + `
         ORDER BY rowid`

// ReadSQLite opens path read-only and returns the mccmnc table in rowid order.
// NULL columns come back as empty strings.
func ReadSQLite(ctx context.Context, path string) ([][]string, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?mode=ro", path))
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rs, err := db.QueryContext(ctx, selectRows)
	if err != nil {
		return nil, err
	}
	defer rs.Close()

	var rows [][]string
	for rs.Next() {
		var cols [8]sql.NullString
		if err := rs.Scan(&cols[0], &cols[1], &cols[2], &cols[3], &cols[4], &cols[5], &cols[6], &cols[7]); err != nil {
			return nil, err
		}
		rec := make([]string, len(cols))
		for i, c := range cols {
			rec[i] = c.String
		}
		rows = append(rows, rec)
	}
	return rows, rs.Err()
}
