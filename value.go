package gocalc

import (
	"math"
	"strconv"
	"strings"
)

type ValueType int

const (
	ValueInt ValueType = iota
	ValueFloat
)

// Value is the result of evaluating an expression: an int64 unless a
// division was involved, in which case it is a float64.
type Value struct {
	t ValueType
	i int64
	f float64
}

func IntValue(i int64) Value {
	return Value{t: ValueInt, i: i}
}

func FloatValue(f float64) Value {
	return Value{t: ValueFloat, f: f}
}

func (v Value) Type() ValueType {
	return v.t
}

func (v Value) IsFloat() bool {
	return v.t == ValueFloat
}

// Int returns the integer value, truncating a float.
func (v Value) Int() int64 {
	if v.t == ValueFloat {
		return int64(v.f)
	}
	return v.i
}

func (v Value) Float() float64 {
	if v.t == ValueFloat {
		return v.f
	}
	return float64(v.i)
}

// Equal reports whether v and o have the same type and value.
func (v Value) Equal(o Value) bool {
	if v.t != o.t {
		return false
	}
	if v.t == ValueFloat {
		return v.f == o.f || (math.IsNaN(v.f) && math.IsNaN(o.f))
	}
	return v.i == o.i
}

func (v Value) String() string {
	if v.t == ValueInt {
		return strconv.FormatInt(v.i, 10)
	}
	switch {
	case math.IsNaN(v.f):
		return "nan"
	case math.IsInf(v.f, 1):
		return "inf"
	case math.IsInf(v.f, -1):
		return "-inf"
	}
	abs := math.Abs(v.f)
	if abs >= 1e16 || (abs != 0 && abs < 1e-4) {
		return strconv.FormatFloat(v.f, 'e', -1, 64)
	}
	s := strconv.FormatFloat(v.f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
