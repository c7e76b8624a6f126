package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/pdiddy/theorem-mapper/pkg/types"
)

func proseStatement(id string, kind types.StatementKind, text string) types.ProseStatement {
	return types.ProseStatement{ID: id, Kind: kind, Text: text}
}

func formalStatement(id, name, body string, status types.ProofStatus, line int) types.FormalStatement {
	return types.FormalStatement{
		ID: id, Name: name, Body: body,
		ProofStatus: status, Module: "Protocol", Line: line,
	}
}

func TestStatementsKeywordMatch(t *testing.T) {
	prose := map[string]types.ProseStatement{
		"theorem_1": proseStatement("theorem_1", types.KindTheorem,
			"Safety holds for all byzantine validators."),
	}
	formal := map[string]types.FormalStatement{
		"Protocol_Safety": formalStatement("Protocol_Safety", "Safety",
			"TypeOK /\\ NoByzantineMajority", types.ProofComplete, 12),
	}

	mappings := Statements(zap.NewNop(), prose, formal)
	require.Len(t, mappings, 1)

	m := mappings[0]
	assert.Equal(t, "theorem_1", m.WhitepaperID)
	assert.Equal(t, "Protocol_Safety", m.TLAID)
	assert.Equal(t, 0.7, m.Confidence)
	assert.Equal(t, types.MappingKeywordBased, m.MappingType)
	assert.Equal(t, "complete", m.Verification.TLAPSStatus)
	assert.Equal(t, types.StatusUnknown, m.Verification.TLCStatus)
	assert.Equal(t, types.StatusUnknown, m.Verification.StaterightStatus)
	assert.Equal(t, "Protocol.tla", m.FileLocation)
	assert.Equal(t, 12, m.LineStart)
	assert.Equal(t, 17, m.LineEnd)
	assert.Equal(t, "12-17", m.LineRange())
}

func TestStatementsNoMatchWithoutSharedKeyword(t *testing.T) {
	prose := map[string]types.ProseStatement{
		"assumption_1": proseStatement("assumption_1", types.KindAssumption,
			"Messages arrive within bounded delay."),
	}
	formal := map[string]types.FormalStatement{
		"Protocol_TypeOK": formalStatement("Protocol_TypeOK", "TypeOK",
			"Init /\\ Next", types.ProofUnknown, 1),
	}

	mappings := Statements(zap.NewNop(), prose, formal)
	assert.Empty(t, mappings)
}

func TestStatementsTheoremNameFallback(t *testing.T) {
	// No shared importance keyword, but a theorem-kind prose statement
	// matches a declaration whose name contains "theorem".
	prose := map[string]types.ProseStatement{
		"theorem_2": proseStatement("theorem_2", types.KindTheorem,
			"The protocol always makes a decision eventually."),
	}
	formal := map[string]types.FormalStatement{
		"Protocol_MainTheorem": formalStatement("Protocol_MainTheorem", "MainTheorem",
			"Init => []Inv", types.ProofIncomplete, 40),
	}

	mappings := Statements(zap.NewNop(), prose, formal)
	require.Len(t, mappings, 1)
	assert.Equal(t, 0.7, mappings[0].Confidence)
	assert.Equal(t, "incomplete", mappings[0].Verification.TLAPSStatus)
}

func TestStatementsFallbackSkipsAssumptions(t *testing.T) {
	prose := map[string]types.ProseStatement{
		"assumption_3": proseStatement("assumption_3", types.KindAssumption,
			"Clocks drift by at most delta."),
	}
	formal := map[string]types.FormalStatement{
		"Protocol_ClockTheorem": formalStatement("Protocol_ClockTheorem", "ClockTheorem",
			"Drift =< Delta", types.ProofUnknown, 7),
	}

	mappings := Statements(zap.NewNop(), prose, formal)
	assert.Empty(t, mappings)
}

func TestStatementsManyToMany(t *testing.T) {
	prose := map[string]types.ProseStatement{
		"theorem_1": proseStatement("theorem_1", types.KindTheorem,
			"Safety and liveness both hold."),
	}
	formal := map[string]types.FormalStatement{
		"A_Safety":   formalStatement("A_Safety", "Safety", "Inv1", types.ProofComplete, 1),
		"B_Liveness": formalStatement("B_Liveness", "Liveness", "Inv2", types.ProofUnknown, 1),
	}

	mappings := Statements(zap.NewNop(), prose, formal)
	// Both candidates are kept independently; no tie-breaking.
	require.Len(t, mappings, 2)
}

func TestStatementsOrderInsensitive(t *testing.T) {
	prose := map[string]types.ProseStatement{
		"theorem_1": proseStatement("theorem_1", types.KindTheorem, "Safety of consensus."),
		"theorem_2": proseStatement("theorem_2", types.KindTheorem, "Liveness of votes."),
	}
	formal := map[string]types.FormalStatement{
		"A_Safety":   formalStatement("A_Safety", "Safety", "consensus safety", types.ProofUnknown, 1),
		"B_Liveness": formalStatement("B_Liveness", "Liveness", "vote liveness", types.ProofUnknown, 1),
	}

	first := Statements(zap.NewNop(), prose, formal)

	// Rebuild the inputs in a different insertion order; the candidate set
	// must not change.
	prose2 := map[string]types.ProseStatement{}
	for _, k := range []string{"theorem_2", "theorem_1"} {
		prose2[k] = prose[k]
	}
	formal2 := map[string]types.FormalStatement{}
	for _, k := range []string{"B_Liveness", "A_Safety"} {
		formal2[k] = formal[k]
	}
	second := Statements(zap.NewNop(), prose2, formal2)

	require.Equal(t, len(first), len(second))
	pairs := func(ms []types.Mapping) map[[2]string]bool {
		out := map[[2]string]bool{}
		for _, m := range ms {
			out[[2]string{m.WhitepaperID, m.TLAID}] = true
		}
		return out
	}
	assert.Equal(t, pairs(first), pairs(second))
}

func TestTokenize(t *testing.T) {
	tokens := tokenize("Safety holds, for ALL byzantine-fault validators!")
	for _, want := range []string{"safety", "holds", "for", "all", "byzantine", "fault", "validators"} {
		assert.True(t, tokens[want], "missing token %q", want)
	}
	assert.False(t, tokens["byzantine-fault"], "punctuation must split tokens")
}
