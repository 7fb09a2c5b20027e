package bank

import "testing"

func TestLookupKnownModule(t *testing.T) {
	questions := Lookup("Physics", "Mechanics")
	if len(questions) != 2 {
		t.Fatalf("Expected 2 Mechanics questions, got %d", len(questions))
	}
	if questions[0].Answer != "F = ma" {
		t.Errorf("Expected answer 'F = ma', got %q", questions[0].Answer)
	}
}

func TestLookupUnknownModule(t *testing.T) {
	cases := []struct {
		name    string
		subject string
		module  string
	}{
		{"unknown subject", "History", "Mechanics"},
		{"unknown module", "Physics", "Optics"},
		{"both unknown", "History", "Renaissance"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			questions := Lookup(tc.subject, tc.module)
			if len(questions) != 0 {
				t.Errorf("Expected empty list, got %d questions", len(questions))
			}
		})
	}
}

func TestLookupReturnsCopy(t *testing.T) {
	first := Lookup("Maths", "Algebra")
	first[0].Question = "mutated"
	second := Lookup("Maths", "Algebra")
	if second[0].Question == "mutated" {
		t.Error("Lookup must not expose the bank's backing slice")
	}
}
