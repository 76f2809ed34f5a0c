package model

// Verdict is the outcome of checking one attribute of one record.
type Verdict uint8

// Verdict values. VerdictMissing means the attribute itself was absent and no
// verdict applies.
const (
	VerdictMissing Verdict = iota
	VerdictValid
	VerdictInvalid
	VerdictCantCheck
)

// VerdictOf maps a boolean outcome onto Valid or Invalid.
func VerdictOf(ok bool) Verdict {
	if ok {
		return VerdictValid
	}
	return VerdictInvalid
}

// String returns the text used in reports and exported datasets.
func (v Verdict) String() string {
	switch v {
	case VerdictValid:
		return "true"
	case VerdictInvalid:
		return "false"
	case VerdictCantCheck:
		return "CANT_CHECK"
	default:
		return "missing"
	}
}

// ParseVerdict is the inverse of Verdict.String. The empty string parses as
// VerdictMissing.
func ParseVerdict(s string) (Verdict, bool) {
	switch s {
	case "true", "True":
		return VerdictValid, true
	case "false", "False":
		return VerdictInvalid, true
	case "CANT_CHECK", "CANT CHECK":
		return VerdictCantCheck, true
	case "", "missing":
		return VerdictMissing, true
	default:
		return VerdictMissing, false
	}
}
