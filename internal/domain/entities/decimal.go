package entities

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// Decimal is a monetary/area amount.
//
// The backend serializes numeric columns either as JSON numbers or as numeric
// strings ("1500.00"); both decode into the same value.
type Decimal float64

func (d *Decimal) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*d = 0
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			*d = 0
			return nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return err
		}
		*d = Decimal(v)
		return nil
	}
	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*d = Decimal(v)
	return nil
}

func (d Decimal) Float64() float64 {
	return float64(d)
}
