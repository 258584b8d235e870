package source

import (
	"bytes"
	"context"
	"encoding/csv"
	"io"
	"os"
	"strings"
)

func readCSVFile(ctx context.Context, path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadCSV(ctx, f)
}

// lineCounter counts the physical lines read through it.
type lineCounter struct {
	r     io.Reader
	lines int
	last  byte
}

func (c *lineCounter) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	if n > 0 {
		c.lines += bytes.Count(p[:n], []byte{'\n'})
		c.last = p[n-1]
	}
	return n, err
}

func (c *lineCounter) total() int {
	if c.last != 0 && c.last != '\n' {
		return c.lines + 1
	}
	return c.lines
}

// ReadCSV reads comma separated rows. Field counts are not enforced here;
// short or long rows are passed through so the aggregator can reject them.
// Blank lines, which encoding/csv skips, come back as empty rows. Bare
// quotes inside unquoted fields are kept as text.
func ReadCSV(ctx context.Context, in io.Reader) ([][]string, error) {
	lc := &lineCounter{r: in}
	r := csv.NewReader(lc)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	var rows [][]string
	next := 1
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		start, _ := r.FieldPos(0)
		for ; next < start; next++ {
			rows = append(rows, []string{})
		}
		end, _ := r.FieldPos(len(rec) - 1)
		next = end + strings.Count(rec[len(rec)-1], "\n") + 1

		rows = append(rows, rec)
	}
	for ; next <= lc.total(); next++ {
		rows = append(rows, []string{})
	}
	return rows, nil
}
