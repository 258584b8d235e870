package countries

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"go.uber.org/zap"
)

/* ──────────── input layout (8 columns, keep order) ──────────── */

const (
	colMcc = iota
	_
	colMnc
	_
	colISO
	colName
	colCallingCode
	colCarrier

	// Fields is the number of columns every input row must carry.
	Fields
)

/* ──────────── placeholder rows ──────────── */

const (
	headerSentinel = "MCC"
	unknownCountry = "Unknown Country"
	missingISO     = "n/a"
)

var ErrMalformedRow = errors.New("malformed row")

func skip(rec []string) bool {
	return rec[colMcc] == headerSentinel ||
		rec[colName] == unknownCountry ||
		rec[colISO] == missingISO ||
		rec[colCarrier] == ""
}

// Aggregator builds a Document from input rows. Conflicts are reported on log.
type Aggregator struct {
	log *zap.Logger
}

func NewAggregator(log *zap.Logger) *Aggregator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Aggregator{log: log}
}

// Aggregate runs one pass over rows. A row without exactly eight fields, or
// with a field that is not valid UTF-8, aborts the pass with ErrMalformedRow;
// nothing partial is returned.
func (a *Aggregator) Aggregate(rows [][]string) (*Document, Stats, error) {
	doc := NewDocument()
	for i, rec := range rows {
		if len(rec) != Fields {
			return nil, Stats{}, fmt.Errorf("row %d: %w: want %d fields, got %d", i+1, ErrMalformedRow, Fields, len(rec))
		}
		for j, f := range rec {
			if !utf8.ValidString(f) {
				return nil, Stats{}, fmt.Errorf("row %d: %w: field %d is not valid utf-8", i+1, ErrMalformedRow, j+1)
			}
		}
		if skip(rec) {
			continue
		}

		name, iso, code := rec[colName], rec[colISO], rec[colCallingCode]
		prefix := "+" + code

		country, ok := doc.Get(name)
		if !ok {
			country = &Country{
				Full:     name,
				Code:     iso,
				Prefix:   prefix,
				Carriers: map[string][]MccMnc{},
			}
			doc.add(country)
		} else if country.Code != iso || country.Prefix != prefix {
			a.log.Warn("invalid: old country with iso "+iso,
				zap.Int("row", i+1),
				zap.Any("old", country),
				zap.Strings("new", rec),
				zap.String("code", code))
			continue
		}

		carrier := rec[colCarrier]
		country.Carriers[carrier] = append(country.Carriers[carrier], MccMnc{Mcc: rec[colMcc], Mnc: rec[colMnc]})
	}

	stats := Count(doc.Countries())
	a.log.Info("networks summary",
		zap.Int("networks_with_one_mccmnc", stats.SingleCarrier),
		zap.Int("networks_with_more_mccmnc", stats.MultiCarrier))
	return doc, stats, nil
}
