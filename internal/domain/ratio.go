package domain

import (
	"encoding/json"
	"math"
	"strconv"
)

// Ratio is a performance ratio that may legitimately be NaN or infinite
// when the underlying returns are degenerate.
type Ratio float64

func (r Ratio) IsFinite() bool {
	f := float64(r)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func (r Ratio) String() string {
	return strconv.FormatFloat(float64(r), 'f', -1, 64)
}

// MarshalJSON writes non-finite values as "NaN", "+Inf" or "-Inf" since
// JSON has no representation for them.
func (r Ratio) MarshalJSON() ([]byte, error) {
	if !r.IsFinite() {
		return json.Marshal(r.String())
	}
	return json.Marshal(float64(r))
}

func (r *Ratio) UnmarshalJSON(b []byte) error {
	var f float64
	if err := json.Unmarshal(b, &f); err == nil {
		*r = Ratio(f)
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return err
	}
	*r = Ratio(f)
	return nil
}
