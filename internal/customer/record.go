// Package customer defines the customer record model and its JSON decoding.
//
// Records come from a static JSON document whose fields are loosely typed:
// an id may be a string or a number, and any field may be missing or null.
// Every field is therefore decoded into a [Field], which keeps the text shown
// in the results table and whether the value counts as present for matching.
package customer

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// Field is a single decoded record value.
type Field struct {
	text   string
	truthy bool
}

// Text returns a present, non-empty string field.
func Text(s string) Field {
	return Field{text: s, truthy: s != ""}
}

// String returns the display text of the field. Absent fields render empty.
func (f Field) String() string {
	return f.text
}

// Truthy reports whether the field holds a value that may be searched.
// Missing, null, empty, zero and false values are not searchable.
func (f Field) Truthy() bool {
	return f.truthy
}

// UnmarshalJSON accepts any JSON value and coerces it to text.
func (f *Field) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		*f = Field{}
		return nil
	}

	switch data[0] {
	case 'n':
		*f = Field{}
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = Text(s)
	case 't':
		*f = Field{text: "true", truthy: true}
	case 'f':
		*f = Field{text: "false"}
	case '{', '[':
		var buf bytes.Buffer
		if err := json.Compact(&buf, data); err != nil {
			return err
		}
		*f = Field{text: buf.String(), truthy: true}
	default:
		// Numbers keep their literal spelling so long ids survive intact.
		n, err := strconv.ParseFloat(string(data), 64)
		if errors.Is(err, strconv.ErrRange) {
			// Overflow is infinite and underflow is a tiny non-zero value.
			*f = Field{text: string(data), truthy: true}
			return nil
		}
		if err != nil {
			return fmt.Errorf("invalid number %q: %w", data, err)
		}
		*f = Field{text: string(data), truthy: n != 0}
	}
	return nil
}

// Record is one customer entry. Records are never modified after load.
type Record struct {
	ID      Field `json:"id"`
	Name    Field `json:"name"`
	NIC     Field `json:"nic"`
	Address Field `json:"address"`
}

// UnmarshalJSON decodes an object using exact, case-sensitive keys.
// Keys such as "ID" or "Name" are ignored and leave the field absent.
func (r *Record) UnmarshalJSON(data []byte) error {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}

	var rec Record
	fields := map[string]*Field{
		"id":      &rec.ID,
		"name":    &rec.Name,
		"nic":     &rec.NIC,
		"address": &rec.Address,
	}
	for key, f := range fields {
		value, ok := obj[key]
		if !ok {
			continue
		}
		if err := f.UnmarshalJSON(value); err != nil {
			return fmt.Errorf("field %s: %w", key, err)
		}
	}
	*r = rec
	return nil
}

// NewRecord builds a record from plain strings.
func NewRecord(id, name, nic, address string) Record {
	return Record{
		ID:      Text(id),
		Name:    Text(name),
		NIC:     Text(nic),
		Address: Text(address),
	}
}

// Columns returns the display text of the record in table column order.
func (r Record) Columns() []string {
	return []string{r.ID.String(), r.Name.String(), r.NIC.String(), r.Address.String()}
}

// Searched reports whether column i of [Record.Columns] takes part in
// matching. Only a truthy id, name or NIC does; address never does.
func (r Record) Searched(i int) bool {
	switch i {
	case 0:
		return r.ID.Truthy()
	case 1:
		return r.Name.Truthy()
	case 2:
		return r.NIC.Truthy()
	default:
		return false
	}
}

// ColumnTitles are the table headers matching [Record.Columns].
var ColumnTitles = []string{"ID", "Name", "NIC", "Address"}

// Dataset is the ordered, immutable collection of records loaded at startup.
type Dataset []Record

// Len returns the number of records.
func (d Dataset) Len() int {
	return len(d)
}

// Decode parses a JSON array of records.
//
// The top-level value must be an array and nothing but whitespace may follow
// it. Elements that are not objects do not fail the decode; they become
// records with every field absent.
func Decode(r io.Reader) (Dataset, error) {
	dec := json.NewDecoder(r)
	var raw []json.RawMessage
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("decoding record array: %w", err)
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return nil, fmt.Errorf("decoding record array: unexpected content after the array")
	}
	if raw == nil {
		return nil, fmt.Errorf("decoding record array: top-level value is null")
	}

	ds := make(Dataset, 0, len(raw))
	for i, elem := range raw {
		elem = bytes.TrimSpace(elem)
		if len(elem) == 0 || elem[0] != '{' {
			ds = append(ds, Record{})
			continue
		}
		var rec Record
		if err := json.Unmarshal(elem, &rec); err != nil {
			return nil, fmt.Errorf("decoding record %d: %w", i, err)
		}
		ds = append(ds, rec)
	}
	return ds, nil
}
