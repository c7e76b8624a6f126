// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the theorem-mapper pipeline.
package types

// StatementKind categorizes an informally numbered whitepaper statement.
type StatementKind string

const (
	KindTheorem    StatementKind = "theorem"
	KindAssumption StatementKind = "assumption"
)

// ProofStatus captures the TLAPS proof state derived for a formal statement.
type ProofStatus string

const (
	ProofUnknown    ProofStatus = "unknown"
	ProofIncomplete ProofStatus = "incomplete"
	ProofComplete   ProofStatus = "complete"
)

// ProseStatement is one informally numbered statement ("Theorem N",
// "Assumption N") recovered from the whitepaper text. Instances are built
// once per extraction pass and never mutated afterwards.
type ProseStatement struct {
	// ID is the synthesized identifier, {kind}_{ordinal} (e.g. "theorem_7").
	ID string `json:"id" yaml:"id"`

	// Kind is the statement keyword that opened the match.
	Kind StatementKind `json:"kind" yaml:"kind"`

	// Title is the explicit parenthetical name, or a synthesized default
	// like "Theorem 7" when the whitepaper gives none.
	Title string `json:"title" yaml:"title"`

	// Text is the statement body with whitespace runs collapsed to single
	// spaces and surrounding whitespace trimmed.
	Text string `json:"text" yaml:"text"`

	// Section is the nearest preceding heading, or "unknown".
	Section string `json:"section" yaml:"section"`

	// Page is the page number where the statement begins, 0 if no page
	// marker precedes it.
	Page int `json:"page,omitempty" yaml:"page,omitempty"`

	// Dependencies lists identifiers of statements this one depends on.
	Dependencies []string `json:"dependencies,omitempty" yaml:"dependencies,omitempty"`
}

// FormalStatement is one THEOREM or LEMMA declaration recovered from a
// TLA+ module. Same lifecycle as ProseStatement: ephemeral, rebuilt per run.
type FormalStatement struct {
	// ID is {module}_{name} and must be unique across all modules;
	// collisions overwrite last-write-wins.
	ID string `json:"id" yaml:"id"`

	// Name is the declared theorem or lemma name.
	Name string `json:"name" yaml:"name"`

	// Body is the normalized declaration body after the "==".
	Body string `json:"body" yaml:"body"`

	// ProofStatus is derived per module file, not per declaration: every
	// statement in a file shares the file's status.
	ProofStatus ProofStatus `json:"proof_status" yaml:"proof_status"`

	// Module is the owning module name (file base name).
	Module string `json:"module" yaml:"module"`

	// Line is the 1-based line number of the declaration's first occurrence.
	Line int `json:"line" yaml:"line"`

	// Dependencies lists identifiers of statements this one depends on.
	Dependencies []string `json:"dependencies,omitempty" yaml:"dependencies,omitempty"`

	// Obligations lists proof-obligation identifiers for this statement.
	Obligations []string `json:"obligations,omitempty" yaml:"obligations,omitempty"`
}
