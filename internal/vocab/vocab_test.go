package vocab

import "testing"

func TestImportant(t *testing.T) {
	tokens := map[string]bool{
		"safety":    true,
		"the":       true,
		"byzantine": true,
		"and":       true,
	}

	got := Important(tokens)
	if len(got) != 2 {
		t.Fatalf("got %d important tokens, want 2: %v", len(got), got)
	}
	if !got["safety"] || !got["byzantine"] {
		t.Errorf("expected safety and byzantine, got %v", got)
	}
	if got["the"] {
		t.Error("incidental words must not be importance keywords")
	}
}
