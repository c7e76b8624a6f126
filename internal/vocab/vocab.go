// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package vocab holds the lexical constants shared by the extractors and the
// matcher: the boundary keywords that terminate a statement body, and the
// domain-importance keyword set used to score term overlap. Both live here so
// the components agree on terminology without duplicating literals.
package vocab

// Boundary keywords. Prose and formal extraction use different surface
// syntax, but both stop a statement body at these markers.
const (
	KeywordTheorem    = "Theorem"
	KeywordLemma      = "Lemma"
	KeywordAssumption = "Assumption"
	KeywordProof      = "Proof"
)

// Formal-module markers, uppercase per TLA+ convention.
const (
	FormalTheorem   = "THEOREM"
	FormalLemma     = "LEMMA"
	FormalProof     = "PROOF"
	FormalQED       = "QED"
	FormalModuleEnd = "===="
)

// ModuleExtension is the file extension of formal specification modules.
const ModuleExtension = ".tla"

// ImportanceKeywords is the domain vocabulary the matcher intersects token
// sets against. Restricting matches to these terms biases the heuristic
// toward semantically meaningful overlap rather than incidental word sharing.
var ImportanceKeywords = map[string]bool{
	"safety":       true,
	"liveness":     true,
	"consensus":    true,
	"finalization": true,
	"finality":     true,
	"byzantine":    true,
	"fault":        true,
	"quorum":       true,
	"validator":    true,
	"validators":   true,
	"leader":       true,
	"block":        true,
	"blocks":       true,
	"vote":         true,
	"votes":        true,
	"certificate":  true,
	"notarization": true,
	"notarized":    true,
	"timeout":      true,
	"view":         true,
	"round":        true,
	"chain":        true,
	"fork":         true,
	"slot":         true,
	"stake":        true,
	"honest":       true,
	"adversary":    true,
	"partition":    true,
	"synchrony":    true,
	"termination":  true,
	"agreement":    true,
	"progress":     true,
}

// Important returns the subset of tokens present in ImportanceKeywords.
func Important(tokens map[string]bool) map[string]bool {
	out := make(map[string]bool)
	for tok := range tokens {
		if ImportanceKeywords[tok] {
			out[tok] = true
		}
	}
	return out
}
