// Package countries groups flat MCC/MNC rows into per-country carrier lists
// and writes them out as the countries.json document.
package countries

// MccMnc is one mobile country code / mobile network code combination.
type MccMnc struct {
	Mcc string `json:"mcc"`
	Mnc string `json:"mnc"`
}

// Country is one entry of the output document. Field order matches the
// sorted key order of the serialized object.
type Country struct {
	Carriers map[string][]MccMnc `json:"carriers"`
	Code     string              `json:"code"`
	Full     string              `json:"full"`
	Prefix   string              `json:"prefix"`
}

// Stats counts carriers by how many identifier pairs they own.
type Stats struct {
	SingleCarrier int
	MultiCarrier  int
}

// Document is the country mapping keyed by full name, kept in first-seen order.
type Document struct {
	order  []string
	byName map[string]*Country
}

func NewDocument() *Document {
	return &Document{byName: map[string]*Country{}}
}

func (d *Document) Get(name string) (*Country, bool) {
	c, ok := d.byName[name]
	return c, ok
}

func (d *Document) add(c *Country) {
	d.order = append(d.order, c.Full)
	d.byName[c.Full] = c
}

func (d *Document) Len() int { return len(d.order) }

// Countries returns the countries in insertion order.
func (d *Document) Countries() []Country {
	out := make([]Country, 0, len(d.order))
	for _, name := range d.order {
		out = append(out, *d.byName[name])
	}
	return out
}

// Count classifies every carrier of every country as single or multi.
func Count(cs []Country) Stats {
	var s Stats
	for _, c := range cs {
		for _, pairs := range c.Carriers {
			if len(pairs) > 1 {
				s.MultiCarrier++
			} else {
				s.SingleCarrier++
			}
		}
	}
	return s
}
