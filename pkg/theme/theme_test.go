package theme

import "testing"

func TestTokensForKnownCollege(t *testing.T) {
	tokens := TokensFor("University of Michigan")
	if tokens.Primary != "45 95% 50%" {
		t.Fatalf("unexpected primary %q", tokens.Primary)
	}
	if tokens.Secondary != "220 75% 30%" {
		t.Fatalf("unexpected secondary %q", tokens.Secondary)
	}
}

func TestTokensForUnknownFallsBack(t *testing.T) {
	fallback := TokensFor(DefaultCollege)
	if got := TokensFor("Hogwarts"); got != fallback {
		t.Fatalf("unknown college should fall back to default, got %+v", got)
	}
	if got := TokensFor(""); got != fallback {
		t.Fatalf("empty college should fall back to default, got %+v", got)
	}
}

func TestCollegesOrderAndCoverage(t *testing.T) {
	names := Colleges()
	if len(names) == 0 {
		t.Fatal("expected college names")
	}
	if names[len(names)-1] != DefaultCollege {
		t.Fatalf("expected %q last, got %q", DefaultCollege, names[len(names)-1])
	}
	for _, name := range names {
		if _, ok := palettes[name]; !ok {
			t.Fatalf("college %q missing palette", name)
		}
	}

	// Returned slice must be a copy.
	names[0] = "mutated"
	if Colleges()[0] == "mutated" {
		t.Fatal("Colleges should return a defensive copy")
	}
}
