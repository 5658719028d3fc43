package domain

import (
	"sort"
	"strings"
	"time"
)

// Per-region legal limits and permit workflow data.
// Loaded once at startup and read-only for the life of the process.
type JurisdictionRule struct {
	MaxWidthNoPermitFt    float64
	MaxHeightNoPermitFt   float64
	MaxLengthNoPermitFt   float64
	MaxWeightNoPermitLbs  int
	SuperloadWeightLbs    int
	SuperloadWidthFt      float64
	EscortRequiredWidthFt float64
	LawEnforcementWidthFt float64
	AvgProcessingHours    int
	SingleTripCostBase    float64
	TravelRestrictions    []string
	PermitPortal          string
	AnnualPermitAvailable bool
}

// Read-only lookup table of jurisdiction rules keyed by region code.
type JurisdictionRuleTable struct {
	rules map[string]JurisdictionRule
}

func NewJurisdictionRuleTable(rules map[string]JurisdictionRule) *JurisdictionRuleTable {
	m := make(map[string]JurisdictionRule, len(rules))
	for code, r := range rules {
		m[strings.ToUpper(strings.TrimSpace(code))] = r
	}
	return &JurisdictionRuleTable{rules: m}
}

// Rule returns the regulatory profile for a region code (case-insensitive).
func (t *JurisdictionRuleTable) Rule(region string) (JurisdictionRule, bool) {
	r, ok := t.rules[strings.ToUpper(strings.TrimSpace(region))]
	return r, ok
}

// Regions returns the covered region codes in sorted order.
func (t *JurisdictionRuleTable) Regions() []string {
	out := make([]string, 0, len(t.rules))
	for code := range t.rules {
		out = append(out, code)
	}
	sort.Strings(out)
	return out
}

type PermitType string

const (
	PermitNone      PermitType = "NONE"
	PermitStandard  PermitType = "STANDARD"
	PermitSuperload PermitType = "SUPERLOAD"
	// PermitUnknown marks a region missing from the rule table.
	// It is a first-class outcome, not an error: downstream aggregation
	// treats it as missing data rather than "no permit needed".
	PermitUnknown PermitType = "UNKNOWN"
)

// Requirements attached to a permit classification.
type PermitRequirements struct {
	EscortRequired         bool
	LawEnforcementRequired bool
	TravelRestrictions     []string
	Portal                 string
	EstProcessingHours     int
	BaseCost               float64
	// Message carries the informational text for NONE and UNKNOWN outcomes.
	Message string
}

// Result of classifying one load against one region's rules.
type PermitClassification struct {
	Region       string
	Type         PermitType
	Requirements PermitRequirements
}

// An issued permit tracked for renewal.
type Permit struct {
	PermitID   string
	Region     string
	Expiration time.Time
}

type AlertUrgency string

const (
	UrgencyCritical AlertUrgency = "CRITICAL"
	UrgencyWarning  AlertUrgency = "WARNING"
)

// Renewal alert for a permit nearing expiration.
type RenewalAlert struct {
	PermitID      string
	Region        string
	DaysRemaining int
	Urgency       AlertUrgency
}
