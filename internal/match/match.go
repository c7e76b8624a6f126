// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package match computes heuristic correspondence candidates between
// whitepaper statements and formal declarations.
package match

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/pdiddy/theorem-mapper/internal/vocab"
	"github.com/pdiddy/theorem-mapper/pkg/types"
)

// keywordConfidence is the fixed score assigned to every keyword match. It
// signals that a heuristic match was found; it is not graded by overlap
// strength.
const keywordConfidence = 0.7

// tokenRe yields lowercase word tokens. Numbers and punctuation get no
// special handling: a token is whatever a word-boundary split produces.
var tokenRe = regexp.MustCompile(`\w+`)

// Statements compares every (prose, formal) pair and returns one Mapping per
// match. The relation is many-to-many with no tie-breaking: every matching
// formal statement yields its own candidate. Each pair is judged
// independently, so reordering the inputs changes only list order, never the
// candidate multiset.
func Statements(logger *zap.Logger, prose map[string]types.ProseStatement, formal map[string]types.FormalStatement) []types.Mapping {
	now := time.Now().UTC()
	var mappings []types.Mapping

	for _, pid := range sortedKeys(prose) {
		p := prose[pid]
		pTokens := vocab.Important(tokenize(p.Text))

		for _, fid := range sortedKeys(formal) {
			f := formal[fid]

			// The declared name carries most of the semantic signal in a
			// TLA+ declaration (bodies are operator applications), so it
			// contributes tokens alongside the body.
			shared := intersect(pTokens, vocab.Important(tokenize(f.Name+" "+f.Body)))
			note := ""
			switch {
			case len(shared) > 0:
				note = fmt.Sprintf("shared keywords: %s", strings.Join(shared, ", "))
			case p.Kind == types.KindTheorem && strings.Contains(strings.ToLower(f.Name), "theorem"):
				note = "declaration name contains 'theorem'"
			default:
				continue
			}

			verification := types.NewVerificationStatus()
			verification.TLAPSStatus = string(f.ProofStatus)

			mappings = append(mappings, types.Mapping{
				WhitepaperID: p.ID,
				TLAID:        f.ID,
				Confidence:   keywordConfidence,
				MappingType:  types.MappingKeywordBased,
				Verification: verification,
				FileLocation: f.Module + vocab.ModuleExtension,
				LineStart:    f.Line,
				LineEnd:      f.Line + 5,
				Notes:        note,
				GeneratedAt:  now,
			})
		}
	}

	logger.Info("computed mapping candidates", zap.Int("count", len(mappings)))
	return mappings
}

// tokenize returns the set of lowercase word tokens in s.
func tokenize(s string) map[string]bool {
	tokens := make(map[string]bool)
	for _, tok := range tokenRe.FindAllString(strings.ToLower(s), -1) {
		tokens[tok] = true
	}
	return tokens
}

// intersect returns the sorted elements common to a and b.
func intersect(a, b map[string]bool) []string {
	var out []string
	for tok := range a {
		if b[tok] {
			out = append(out, tok)
		}
	}
	sort.Strings(out)
	return out
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
