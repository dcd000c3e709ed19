package entity

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Ref identifies a customer or product record. On the wire it may be a string
// or a number; null means absent.
type Ref string

// IsZero reports whether the reference is absent
func (r Ref) IsZero() bool {
	return strings.TrimSpace(string(r)) == ""
}

func (r Ref) String() string {
	return string(r)
}

func (r *Ref) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" {
		*r = ""
		return nil
	}
	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*r = Ref(strings.TrimSpace(s))
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("invalid reference %s: %w", raw, err)
	}
	*r = numericRef(n)
	return nil
}

// numericRef writes whole numbers in integer form so 7, 7.0 and 7e0 all
// name record "7". Fractional ids keep their literal text.
func numericRef(n json.Number) Ref {
	if i, err := n.Int64(); err == nil {
		return Ref(strconv.FormatInt(i, 10))
	}
	f, err := n.Float64()
	if err == nil && f == math.Trunc(f) && math.Abs(f) < 1<<53 {
		return Ref(strconv.FormatInt(int64(f), 10))
	}
	return Ref(n.String())
}
