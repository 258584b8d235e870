// Package lookup indexes a countries.json document for queries by
// identifier pair, ISO code and country name.
package lookup

import (
	"errors"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/jalad-shrimali/mccmnc-countries/countries"
)

var ErrNotFound = errors.New("not found")

// Match is the owner of one MCC/MNC pair.
type Match struct {
	Country countries.Country
	Carrier string
}

// Index is keyed the way the converter keys countries: ByName by the exact
// full name, ByCode by lower-cased ISO code. Both keep the first country seen.
type Index struct {
	ByMccMnc map[string]Match
	ByCode   map[string]countries.Country
	ByName   map[string]countries.Country

	all []countries.Country
}

func key(mcc, mnc string) string { return mcc + "-" + mnc }

// Load reads a document previously written by the converter.
func Load(path string) ([]countries.Country, error) {
	return countries.ReadFile(path)
}

// Build indexes cs. A pair that appears more than once keeps its first owner
// and is reported as a duplicate.
func Build(cs []countries.Country, log *zap.Logger) *Index {
	if log == nil {
		log = zap.NewNop()
	}
	idx := &Index{
		ByMccMnc: make(map[string]Match),
		ByCode:   make(map[string]countries.Country),
		ByName:   make(map[string]countries.Country),
		all:      cs,
	}

	for _, c := range cs {
		code := strings.ToLower(c.Code)
		if _, ok := idx.ByCode[code]; !ok {
			idx.ByCode[code] = c
		}
		if _, ok := idx.ByName[c.Full]; !ok {
			idx.ByName[c.Full] = c
		}

		// carrier names sorted so the first owner of a duplicate is stable
		names := make([]string, 0, len(c.Carriers))
		for name := range c.Carriers {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			for _, p := range c.Carriers[name] {
				k := key(p.Mcc, p.Mnc)
				if prev, dup := idx.ByMccMnc[k]; dup {
					log.Warn("duplicate mcc/mnc",
						zap.String("mccmnc", k),
						zap.String("country", c.Full),
						zap.String("carrier", name),
						zap.String("owner", prev.Country.Full+"/"+prev.Carrier))
					continue
				}
				idx.ByMccMnc[k] = Match{Country: c, Carrier: name}
			}
		}
	}
	return idx
}

func (idx *Index) LookupMccMnc(mcc, mnc string) (Match, error) {
	m, ok := idx.ByMccMnc[key(strings.TrimSpace(mcc), strings.TrimSpace(mnc))]
	if !ok {
		return Match{}, ErrNotFound
	}
	return m, nil
}

// LookupCode matches the ISO code case-insensitively.
func (idx *Index) LookupCode(iso string) (countries.Country, error) {
	c, ok := idx.ByCode[strings.ToLower(strings.TrimSpace(iso))]
	if !ok {
		return countries.Country{}, ErrNotFound
	}
	return c, nil
}

// LookupName prefers an exact match and falls back to the first country,
// in document order, whose name matches case-insensitively.
func (idx *Index) LookupName(name string) (countries.Country, error) {
	name = strings.TrimSpace(name)
	if c, ok := idx.ByName[name]; ok {
		return c, nil
	}
	for _, c := range idx.all {
		if strings.EqualFold(c.Full, name) {
			return c, nil
		}
	}
	return countries.Country{}, ErrNotFound
}

// Countries returns every indexed country sorted by full name. Entries with
// the same name keep their document order.
func (idx *Index) Countries() []countries.Country {
	out := make([]countries.Country, len(idx.all))
	copy(out, idx.all)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Full < out[j].Full })
	return out
}
