package market

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

var errNotObject = errors.New("assets: expected JSON object")

// Instruments is the symbol → Instrument mapping of a snapshot. It keeps the
// key order of the JSON object, which is the display order.
type Instruments struct {
	order    []string
	bySymbol map[string]Instrument
}

// NewInstruments builds an ordered set from the given instruments.
func NewInstruments(items ...Instrument) Instruments {
	var s Instruments
	for _, it := range items {
		s.Put(it)
	}
	return s
}

// Put adds or replaces an instrument. New symbols are appended to the order.
func (s *Instruments) Put(it Instrument) {
	if s.bySymbol == nil {
		s.bySymbol = make(map[string]Instrument)
	}
	if _, ok := s.bySymbol[it.Symbol]; !ok {
		s.order = append(s.order, it.Symbol)
	}
	s.bySymbol[it.Symbol] = it
}

// Get returns the instrument for a symbol.
func (s Instruments) Get(symbol string) (Instrument, bool) {
	it, ok := s.bySymbol[symbol]
	return it, ok
}

// Symbols returns the symbols in display order.
func (s Instruments) Symbols() []string {
	return append([]string(nil), s.order...)
}

// All returns the instruments in display order.
func (s Instruments) All() []Instrument {
	out := make([]Instrument, 0, len(s.order))
	for _, sym := range s.order {
		out = append(out, s.bySymbol[sym])
	}
	return out
}

// Len returns the number of instruments.
func (s Instruments) Len() int {
	return len(s.order)
}

// UnmarshalJSON decodes a JSON object while preserving key order.
func (s *Instruments) UnmarshalJSON(data []byte) error {
	*s = Instruments{}
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return errNotObject
	}

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("assets: unexpected key %v", tok)
		}
		var it Instrument
		if err := dec.Decode(&it); err != nil {
			return fmt.Errorf("assets[%s]: %w", key, err)
		}
		// the object key is authoritative
		it.Symbol = key
		s.Put(it)
	}

	_, err = dec.Token()
	return err
}

// MarshalJSON encodes the set as a JSON object in display order.
func (s Instruments) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, sym := range s.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(sym)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(s.bySymbol[sym])
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
