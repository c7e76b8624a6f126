// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"fmt"
	"time"
)

// StatusUnknown is the placeholder status for verification backends the
// matching step does not populate.
const StatusUnknown = "unknown"

// MappingKeywordBased is the only mapping type the matcher currently produces.
const MappingKeywordBased = "keyword_based"

// VerificationStatus records per-backend proof verification state for one
// mapping candidate. Only TLAPSStatus is populated by matching; TLC and
// Stateright are reserved for backends not wired into this pipeline.
type VerificationStatus struct {
	// TLAPSStatus is copied from the formal statement's proof status.
	TLAPSStatus string `json:"tlaps_status" yaml:"tlaps_status"`

	// TLCStatus is the model-checker status. Always "unknown" here.
	TLCStatus string `json:"tlc_status" yaml:"tlc_status"`

	// StaterightStatus is the Stateright backend status. Always "unknown" here.
	StaterightStatus string `json:"stateright_status" yaml:"stateright_status"`

	// LastVerified is when a backend last confirmed the proof, if ever.
	LastVerified *time.Time `json:"last_verified,omitempty" yaml:"last_verified,omitempty"`

	// Duration is how long the last verification run took, if known.
	Duration time.Duration `json:"duration,omitempty" yaml:"duration,omitempty"`

	// TotalObligations counts proof obligations for the statement.
	TotalObligations int `json:"total_obligations" yaml:"total_obligations"`

	// CompleteObligations counts discharged proof obligations.
	CompleteObligations int `json:"complete_obligations" yaml:"complete_obligations"`

	// Errors lists verification error messages.
	Errors []string `json:"errors,omitempty" yaml:"errors,omitempty"`
}

// NewVerificationStatus returns a VerificationStatus with all three backend
// fields set to the "unknown" placeholder.
func NewVerificationStatus() VerificationStatus {
	return VerificationStatus{
		TLAPSStatus:      StatusUnknown,
		TLCStatus:        StatusUnknown,
		StaterightStatus: StatusUnknown,
	}
}

// Mapping is one candidate correspondence between a whitepaper statement and
// a formal declaration. The relation is many-to-many: a prose statement may
// match zero, one, or several formal statements, and vice versa.
type Mapping struct {
	// WhitepaperID references a ProseStatement identifier.
	WhitepaperID string `json:"whitepaper_id" yaml:"whitepaper_id"`

	// TLAID references a FormalStatement identifier.
	TLAID string `json:"tla_id" yaml:"tla_id"`

	// Confidence is a heuristic score in [0,1]. The keyword matcher emits a
	// constant 0.7 for every match; it signals "match found", not a
	// calibrated probability.
	Confidence float64 `json:"confidence" yaml:"confidence"`

	// MappingType tags how the candidate was produced.
	MappingType string `json:"mapping_type" yaml:"mapping_type"`

	Verification VerificationStatus `json:"verification" yaml:"verification"`

	// FileLocation is the path of the module file declaring the formal side.
	FileLocation string `json:"file_location" yaml:"file_location"`

	// LineStart and LineEnd bound the formal declaration site,
	// (line, line+5) by convention.
	LineStart int `json:"line_start" yaml:"line_start"`
	LineEnd   int `json:"line_end" yaml:"line_end"`

	// CrossRefs lists related statement identifiers.
	CrossRefs []string `json:"cross_refs,omitempty" yaml:"cross_refs,omitempty"`

	// Notes is free text attached by the matcher.
	Notes string `json:"notes,omitempty" yaml:"notes,omitempty"`

	// GeneratedAt is when this candidate was produced.
	GeneratedAt time.Time `json:"generated_at" yaml:"generated_at"`

	// Checksum is reserved for content-hash change detection. Matching
	// leaves it unset.
	Checksum string `json:"checksum,omitempty" yaml:"checksum,omitempty"`
}

// LineRange renders the declaration site bounds as "start-end".
func (m Mapping) LineRange() string {
	return fmt.Sprintf("%d-%d", m.LineStart, m.LineEnd)
}

// Report is the immutable aggregate of one pipeline run. Every serialized
// view derives its numbers from one Report value so the views cannot diverge.
type Report struct {
	// GeneratedAt is when the run produced this report.
	GeneratedAt time.Time `json:"generated_at" yaml:"generated_at"`

	// TotalWhitepaperTheorems counts extracted prose statements.
	TotalWhitepaperTheorems int `json:"total_whitepaper_theorems" yaml:"total_whitepaper_theorems"`

	// TotalTLATheorems counts extracted formal statements.
	TotalTLATheorems int `json:"total_tla_theorems" yaml:"total_tla_theorems"`

	// MappedTheorems equals len(Mappings): it counts mapping candidates,
	// not uniquely covered prose statements.
	MappedTheorems int `json:"mapped_theorems" yaml:"mapped_theorems"`

	Mappings []Mapping `json:"mappings" yaml:"mappings"`

	// UnmappedWhitepaper and UnmappedTLA are declared for statements with no
	// match but are not populated by the current matcher.
	UnmappedWhitepaper []string `json:"unmapped_whitepaper" yaml:"unmapped_whitepaper"`
	UnmappedTLA        []string `json:"unmapped_tla" yaml:"unmapped_tla"`

	// CrossReferences maps statement identifiers to related identifiers.
	CrossReferences map[string][]string `json:"cross_references" yaml:"cross_references"`

	// Statistics holds free-form run metrics.
	Statistics map[string]any `json:"statistics" yaml:"statistics"`
}

// Coverage returns mapped theorems as a percentage of whitepaper theorems,
// 0 when no whitepaper theorems were extracted.
func (r *Report) Coverage() float64 {
	if r.TotalWhitepaperTheorems == 0 {
		return 0
	}
	return float64(r.MappedTheorems) / float64(r.TotalWhitepaperTheorems) * 100
}
