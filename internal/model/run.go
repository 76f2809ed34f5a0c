package model

import "time"

// VerdictCounts tallies verdicts for one checked attribute.
type VerdictCounts struct {
	Valid     int `json:"valid"`
	Invalid   int `json:"invalid"`
	CantCheck int `json:"cant_check"`
	Missing   int `json:"missing"`
}

// Add records one verdict.
func (c *VerdictCounts) Add(v Verdict) {
	switch v {
	case VerdictValid:
		c.Valid++
	case VerdictInvalid:
		c.Invalid++
	case VerdictCantCheck:
		c.CantCheck++
	default:
		c.Missing++
	}
}

// Total returns the number of verdicts recorded.
func (c VerdictCounts) Total() int {
	return c.Valid + c.Invalid + c.CantCheck + c.Missing
}

// AttributeQuality summarizes completeness and validity of one attribute.
type AttributeQuality struct {
	Verdicts  *VerdictCounts `json:"verdicts,omitempty"` // nil when the attribute has no validity check
	Attribute string         `json:"attribute"`
	Present   int            `json:"present"`
}

// RunSummary is the persisted outcome of one validation run.
type RunSummary struct {
	CreatedAt  time.Time          `json:"created_at"`
	ID         string             `json:"id"`
	Source     string             `json:"source"`
	Attributes []AttributeQuality `json:"attributes"`
	Rows       int                `json:"rows"`
	Duplicates int                `json:"duplicates"`
}
