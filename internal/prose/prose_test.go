package prose

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"github.com/pdiddy/theorem-mapper/pkg/types"
)

func TestParseWellFormedTheorems(t *testing.T) {
	text := `Theorem 1. Safety holds for all byzantine validators.

Theorem 2. Liveness holds under partial synchrony.

Theorem 3. Finalization is irreversible.`

	statements := parse(text)
	if len(statements) != 3 {
		t.Fatalf("got %d statements, want 3", len(statements))
	}
	for _, id := range []string{"theorem_1", "theorem_2", "theorem_3"} {
		if _, ok := statements[id]; !ok {
			t.Errorf("missing statement %q", id)
		}
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name        string
		text        string
		wantID      string
		wantKind    types.StatementKind
		wantTitle   string
		wantText    string
		wantSection string
	}{
		{
			name:        "plain theorem",
			text:        "Theorem 1. Safety holds for all byzantine validators.",
			wantID:      "theorem_1",
			wantKind:    types.KindTheorem,
			wantTitle:   "Theorem 1",
			wantText:    "Safety holds for all byzantine validators.",
			wantSection: "unknown",
		},
		{
			name:      "parenthetical title",
			text:      "Theorem 5 (Safety). No two honest validators finalize conflicting blocks.",
			wantID:    "theorem_5",
			wantKind:  types.KindTheorem,
			wantTitle: "Safety",
			wantText:  "No two honest validators finalize conflicting blocks.",

			wantSection: "unknown",
		},
		{
			name:        "assumption with colon",
			text:        "Assumption 2: The network is partially synchronous.",
			wantID:      "assumption_2",
			wantKind:    types.KindAssumption,
			wantTitle:   "Assumption 2",
			wantText:    "The network is partially synchronous.",
			wantSection: "unknown",
		},
		{
			name:        "case insensitive keyword",
			text:        "THEOREM 4. Votes are never equivocated.",
			wantID:      "theorem_4",
			wantKind:    types.KindTheorem,
			wantTitle:   "Theorem 4",
			wantText:    "Votes are never equivocated.",
			wantSection: "unknown",
		},
		{
			name:        "body stops at blank line",
			text:        "Theorem 7. The leader rotates every round.\n\nUnrelated prose follows here.",
			wantID:      "theorem_7",
			wantKind:    types.KindTheorem,
			wantTitle:   "Theorem 7",
			wantText:    "The leader rotates every round.",
			wantSection: "unknown",
		},
		{
			name:        "body stops at proof keyword",
			text:        "Theorem 8. Quorum intersection is non-empty. Proof. By counting.",
			wantID:      "theorem_8",
			wantKind:    types.KindTheorem,
			wantTitle:   "Theorem 8",
			wantText:    "Quorum intersection is non-empty.",
			wantSection: "unknown",
		},
		{
			name:        "body stops at heading marker",
			text:        "Theorem 9. Forks are detected.\n# Evaluation\nMore text.",
			wantID:      "theorem_9",
			wantKind:    types.KindTheorem,
			wantTitle:   "Theorem 9",
			wantText:    "Forks are detected.",
			wantSection: "unknown",
		},
		{
			name:        "whitespace collapsed",
			text:        "Theorem 10. The   chain\n   grows\tmonotonically.",
			wantID:      "theorem_10",
			wantKind:    types.KindTheorem,
			wantTitle:   "Theorem 10",
			wantText:    "The chain grows monotonically.",
			wantSection: "unknown",
		},
		{
			name:        "section from preceding heading",
			text:        "## Safety Analysis\n\nText.\n\nTheorem 11. Safety holds.",
			wantID:      "theorem_11",
			wantKind:    types.KindTheorem,
			wantTitle:   "Theorem 11",
			wantText:    "Safety holds.",
			wantSection: "Safety Analysis",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			statements := parse(tt.text)
			st, ok := statements[tt.wantID]
			if !ok {
				t.Fatalf("statement %q not found in %v", tt.wantID, statements)
			}
			if st.Kind != tt.wantKind {
				t.Errorf("Kind = %q, want %q", st.Kind, tt.wantKind)
			}
			if st.Title != tt.wantTitle {
				t.Errorf("Title = %q, want %q", st.Title, tt.wantTitle)
			}
			if st.Text != tt.wantText {
				t.Errorf("Text = %q, want %q", st.Text, tt.wantText)
			}
			if st.Section != tt.wantSection {
				t.Errorf("Section = %q, want %q", st.Section, tt.wantSection)
			}
		})
	}
}

func TestParseBodyStopsAtNextStatement(t *testing.T) {
	text := "Theorem 1. Safety holds. Theorem 2. Liveness holds."
	statements := parse(text)

	if len(statements) != 2 {
		t.Fatalf("got %d statements, want 2", len(statements))
	}
	if got := statements["theorem_1"].Text; got != "Safety holds." {
		t.Errorf("theorem_1 body = %q, want %q", got, "Safety holds.")
	}
	if got := statements["theorem_2"].Text; got != "Liveness holds." {
		t.Errorf("theorem_2 body = %q, want %q", got, "Liveness holds.")
	}
}

func TestParseDuplicateOrdinalLastWins(t *testing.T) {
	text := "Theorem 1. First version.\n\nTheorem 1. Second version."
	statements := parse(text)

	if len(statements) != 1 {
		t.Fatalf("got %d statements, want 1", len(statements))
	}
	if got := statements["theorem_1"].Text; got != "Second version." {
		t.Errorf("body = %q, want the later occurrence", got)
	}
}

func TestParsePageMarker(t *testing.T) {
	text := "<!-- page 3 -->\nSome prose.\n\nTheorem 1. Safety holds."
	statements := parse(text)

	if got := statements["theorem_1"].Page; got != 3 {
		t.Errorf("Page = %d, want 3", got)
	}
}

func TestExtractStatementsMissingFile(t *testing.T) {
	statements, err := ExtractStatements(zap.NewNop(), filepath.Join(t.TempDir(), "missing.md"))
	if err != nil {
		t.Fatalf("ExtractStatements returned error for missing file: %v", err)
	}
	if len(statements) != 0 {
		t.Errorf("got %d statements, want 0", len(statements))
	}
}

func TestExtractStatementsReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "whitepaper.md")
	if err := os.WriteFile(path, []byte("Theorem 1. Safety holds."), 0o644); err != nil {
		t.Fatal(err)
	}

	statements, err := ExtractStatements(zap.NewNop(), path)
	if err != nil {
		t.Fatalf("ExtractStatements: %v", err)
	}
	if len(statements) != 1 {
		t.Fatalf("got %d statements, want 1", len(statements))
	}
}
