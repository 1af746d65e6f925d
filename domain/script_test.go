package domain

import "testing"

func TestPersonalizeScript(t *testing.T) {
	fields := map[string]string{
		"firstName": "John",
		"company":   "Acme",
	}

	got := PersonalizeScript("Hi {{firstName}}, welcome to {{company}}!", fields)
	want := "Hi John, welcome to Acme!"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestPersonalizeScriptRepeatedPlaceholder(t *testing.T) {
	got := PersonalizeScript("{{firstName}} {{firstName}}", map[string]string{"firstName": "Jane"})
	if got != "Jane Jane" {
		t.Fatalf("expected every occurrence replaced, got %q", got)
	}
}

func TestPersonalizeScriptUnknownPlaceholderUntouched(t *testing.T) {
	script := "Hi {{firstName}}, your code is {{discountCode}}"
	got := PersonalizeScript(script, map[string]string{"firstName": "John"})
	want := "Hi John, your code is {{discountCode}}"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestPersonalizeScriptEmptyValueSubstitutesEmpty(t *testing.T) {
	got := PersonalizeScript("Hello {{company}}!", map[string]string{"company": ""})
	if got != "Hello !" {
		t.Fatalf("got %q", got)
	}
}

func TestPersonalizeScriptIdempotentOnSecondPass(t *testing.T) {
	fields := map[string]string{"firstName": "John"}
	once := PersonalizeScript("Hi {{firstName}}, bye {{lastName}}", fields)
	twice := PersonalizeScript(once, fields)
	if once != twice {
		t.Fatalf("second pass changed output: %q vs %q", once, twice)
	}
}

func TestGenerationStatusTransitions(t *testing.T) {
	if !StatusPending.Advances(StatusProcessing) {
		t.Error("pending should advance to processing")
	}
	if !StatusProcessing.Advances(StatusCompleted) {
		t.Error("processing should advance to completed")
	}
	if StatusCompleted.Advances(StatusProcessing) {
		t.Error("completed must never regress to processing")
	}
	if StatusFailed.Advances(StatusPending) {
		t.Error("failed must never regress to pending")
	}
	if !StatusCompleted.IsTerminal() || !StatusFailed.IsTerminal() {
		t.Error("completed and failed are terminal")
	}
	if StatusPending.IsTerminal() || StatusProcessing.IsTerminal() {
		t.Error("pending and processing are not terminal")
	}
	if GenerationStatus("archived").IsKnown() {
		t.Error("unexpected status string must not be known")
	}
}
