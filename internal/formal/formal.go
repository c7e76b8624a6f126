// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package formal recovers THEOREM and LEMMA declarations from TLA+
// specification and proof modules.
package formal

import (
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/pdiddy/theorem-mapper/internal/vocab"
	"github.com/pdiddy/theorem-mapper/pkg/types"
)

var (
	// declRe matches the start of a declaration: THEOREM Name == or
	// LEMMA Name ==.
	declRe = regexp.MustCompile(`\b(THEOREM|LEMMA)\s+(\w+)\s*==`)

	// terminatorRe marks where a declaration body ends: the next
	// proof-family keyword or the module-end marker.
	terminatorRe = regexp.MustCompile(`\bPROOF\b|\bLEMMA\b|\bTHEOREM\b|====`)

	spaceRe = regexp.MustCompile(`\s+`)
)

// ExtractModules walks specsDir and proofsDir recursively, parses every
// module file found, and returns all declarations keyed by
// {module}_{name}. A name reused across modules, or a theorem and lemma
// sharing a name within one, overwrites last-write-wins. Unreadable files
// are skipped with a warning; extraction continues over the rest.
func ExtractModules(logger *zap.Logger, specsDir, proofsDir string) (map[string]types.FormalStatement, error) {
	statements := make(map[string]types.FormalStatement)

	for _, root := range []string{specsDir, proofsDir} {
		files, err := discover(root)
		if err != nil {
			logger.Warn("skipping unreadable module directory",
				zap.String("dir", root), zap.Error(err))
			continue
		}
		logger.Info("found module files", zap.String("dir", root), zap.Int("count", len(files)))

		for _, path := range files {
			data, err := os.ReadFile(path)
			if err != nil {
				logger.Warn("skipping unreadable module file",
					zap.String("path", path), zap.Error(err))
				continue
			}
			for _, st := range parseModule(path, string(data)) {
				statements[st.ID] = st
			}
		}
	}

	logger.Info("extracted formal statements", zap.Int("count", len(statements)))
	return statements, nil
}

// discover returns all module files under root, recursively.
func discover(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), vocab.ModuleExtension) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

// parseModule extracts every declaration from one module's text. Proof
// status is derived once per file and shared by all of its declarations:
// the scan does not anchor PROOF/QED markers to a specific declaration's
// own proof block.
func parseModule(path, text string) []types.FormalStatement {
	module := strings.TrimSuffix(filepath.Base(path), vocab.ModuleExtension)
	status := fileProofStatus(text)

	var statements []types.FormalStatement
	decls := declRe.FindAllStringSubmatchIndex(text, -1)
	for i, d := range decls {
		name := text[d[4]:d[5]]

		bodyEnd := len(text)
		if i+1 < len(decls) {
			bodyEnd = decls[i+1][0]
		}
		tail := text[d[1]:bodyEnd]
		if loc := terminatorRe.FindStringIndex(tail); loc != nil {
			tail = tail[:loc[0]]
		}

		statements = append(statements, types.FormalStatement{
			ID:          module + "_" + name,
			Name:        name,
			Body:        strings.TrimSpace(spaceRe.ReplaceAllString(tail, " ")),
			ProofStatus: status,
			Module:      module,
			Line:        strings.Count(text[:d[0]], "\n") + 1,
		})
	}
	return statements
}

// fileProofStatus derives the proof status for a whole module file:
// complete when both a proof-start and proof-completion marker occur
// anywhere in it, incomplete when only a proof-start marker does.
func fileProofStatus(text string) types.ProofStatus {
	hasProof := strings.Contains(text, vocab.FormalProof)
	hasQED := strings.Contains(text, vocab.FormalQED)
	switch {
	case hasProof && hasQED:
		return types.ProofComplete
	case hasProof:
		return types.ProofIncomplete
	default:
		return types.ProofUnknown
	}
}
