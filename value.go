package smig

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Value is a number or an equation. Equations are opaque formulas that may
// reference variables; only the renderer evaluates them.
//
// The zero Value is the number 0.
type Value struct {
	num  float64
	eq   string
	isEq bool
}

// Num returns a numeric Value.
func Num(f float64) Value {
	return Value{num: f}
}

// Equation returns a Value holding the equation s.
func Equation(s string) Value {
	return Value{eq: s, isEq: true}
}

// Float returns the number held by v. ok is false for equations.
func (v Value) Float() (f float64, ok bool) {
	if v.isEq {
		return 0, false
	}
	return v.num, true
}

// Equation returns the equation held by v. ok is false for numbers.
func (v Value) Equation() (eq string, ok bool) {
	return v.eq, v.isEq
}

// IsEquation reports whether v holds an equation.
func (v Value) IsEquation() bool { return v.isEq }

// String returns the equation text or the formatted number.
func (v Value) String() string {
	if v.isEq {
		return v.eq
	}
	return strconv.FormatFloat(v.num, 'g', -1, 64)
}

// MarshalJSON encodes a number as a JSON number and an equation as a string.
func (v Value) MarshalJSON() ([]byte, error) {
	if v.isEq {
		return json.Marshal(v.eq)
	}
	return json.Marshal(v.num)
}

// UnmarshalJSON accepts a JSON number or string.
func (v *Value) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = Equation(s)
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("smig: value must be a number or equation string: %s", data)
	}
	*v = Num(f)
	return nil
}

// Variables binds names used in equations to values. The renderer
// substitutes them when it evaluates equations.
type Variables map[string]Value
