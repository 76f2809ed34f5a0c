package model

import (
	"math"
	"strconv"
	"strings"
)

// Kind identifies what a Value holds.
type Kind uint8

// Value kinds.
const (
	KindMissing Kind = iota
	KindString
	KindNumber
	KindBool
	KindVerdict
)

// Value is a single dataset cell. The zero Value is missing.
type Value struct {
	str     string
	num     float64
	kind    Kind
	flag    bool
	verdict Verdict
}

// Missing returns an absent cell.
func Missing() Value {
	return Value{}
}

// String returns a text cell.
func String(s string) Value {
	return Value{kind: KindString, str: s}
}

// Number returns a numeric cell. NaN is stored as given but reports as missing.
func Number(f float64) Value {
	return Value{kind: KindNumber, num: f}
}

// Bool returns a boolean cell.
func Bool(b bool) Value {
	return Value{kind: KindBool, flag: b}
}

// VerdictValue wraps a verdict so it can be stored in a dataset column.
func VerdictValue(v Verdict) Value {
	return Value{kind: KindVerdict, verdict: v}
}

// Kind reports the stored kind.
func (v Value) Kind() Kind {
	return v.kind
}

// IsMissing reports whether the cell is absent. A NaN number counts as absent.
func (v Value) IsMissing() bool {
	switch v.kind {
	case KindMissing:
		return true
	case KindNumber:
		return math.IsNaN(v.num)
	default:
		return false
	}
}

// Float returns the numeric payload and whether the cell is a present number.
func (v Value) Float() (float64, bool) {
	if v.kind != KindNumber || math.IsNaN(v.num) {
		return 0, false
	}
	return v.num, true
}

// Text returns the string payload and whether the cell is a string.
func (v Value) Text() (string, bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.str, true
}

// Flag returns the boolean payload and whether the cell is a bool.
func (v Value) Flag() (bool, bool) {
	if v.kind != KindBool {
		return false, false
	}
	return v.flag, true
}

// Verdict returns the verdict payload and whether the cell holds one.
func (v Value) Verdict() (Verdict, bool) {
	if v.kind != KindVerdict {
		return VerdictMissing, false
	}
	return v.verdict, true
}

// String renders the cell as text. Missing cells render as the empty string.
func (v Value) String() string {
	switch v.kind {
	case KindString:
		return v.str
	case KindNumber:
		if math.IsNaN(v.num) {
			return ""
		}
		return FormatNumber(v.num)
	case KindBool:
		return strconv.FormatBool(v.flag)
	case KindVerdict:
		if v.verdict == VerdictMissing {
			return ""
		}
		return v.verdict.String()
	default:
		return ""
	}
}

// Equal compares two cells by kind and payload. Missing equals missing.
func (v Value) Equal(o Value) bool {
	if v.IsMissing() || o.IsMissing() {
		return v.IsMissing() && o.IsMissing()
	}
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindString:
		return v.str == o.str
	case KindNumber:
		return v.num == o.num
	case KindBool:
		return v.flag == o.flag
	case KindVerdict:
		return v.verdict == o.verdict
	default:
		return true
	}
}

// Key returns a canonical string usable as a map key. Two cells have the same
// key iff they are Equal.
func (v Value) Key() string {
	if v.IsMissing() {
		return "\x00"
	}
	var b strings.Builder
	b.WriteByte(byte('0' + v.kind))
	switch v.kind {
	case KindNumber:
		if v.num == 0 {
			// -0 and +0 compare equal
			b.WriteString("0")
		} else {
			b.WriteString(strconv.FormatFloat(v.num, 'g', -1, 64))
		}
	case KindVerdict:
		b.WriteString(strconv.Itoa(int(v.verdict)))
	default:
		b.WriteString(v.String())
	}
	return b.String()
}

// FormatNumber renders a float in its shortest round-trip decimal form.
func FormatNumber(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
