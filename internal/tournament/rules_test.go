package tournament

import (
	"encoding/json"
	"reflect"
	"testing"
)

func decodeRules(t *testing.T, payload string) RulesInput {
	t.Helper()
	var ri RulesInput
	if err := json.Unmarshal([]byte(payload), &ri); err != nil {
		t.Fatalf("unmarshal %q: %v", payload, err)
	}
	return ri
}

func TestRulesFreeTextMultiLine(t *testing.T) {
	ri := decodeRules(t, `"No cheating\n\n  Respect the referee  \nBe on time"`)

	want := RuleList{
		{Title: "Rule 1", Description: "No cheating"},
		{Title: "Rule 2", Description: "Respect the referee"},
		{Title: "Rule 3", Description: "Be on time"},
	}
	if !reflect.DeepEqual(ri.Rules, want) {
		t.Fatalf("got %+v, want %+v", ri.Rules, want)
	}
}

func TestRulesFreeTextSingleLine(t *testing.T) {
	ri := decodeRules(t, `"Play fair"`)

	want := RuleList{{Title: "General Rule", Description: "Play fair"}}
	if !reflect.DeepEqual(ri.Rules, want) {
		t.Fatalf("got %+v, want %+v", ri.Rules, want)
	}
}

func TestRulesFreeTextWhitespaceOnly(t *testing.T) {
	ri := decodeRules(t, `"  \n \n"`)
	if len(ri.Rules) != 0 {
		t.Fatalf("expected empty rules, got %+v", ri.Rules)
	}
	if !ri.Set {
		t.Fatalf("present field must be marked set")
	}
}

func TestRulesKeyedObject(t *testing.T) {
	ri := decodeRules(t, `{"entry": "Teams of five", "conduct": "No toxicity", "age": 16}`)

	want := RuleList{
		{Title: "age", Description: "16"},
		{Title: "conduct", Description: "No toxicity"},
		{Title: "entry", Description: "Teams of five"},
	}
	if !reflect.DeepEqual(ri.Rules, want) {
		t.Fatalf("got %+v, want %+v", ri.Rules, want)
	}
}

func TestRulesKeyedObjectDeterministicOrder(t *testing.T) {
	const payload = `{"zeta": "z", "alpha": "a", "mid": "m"}`
	first := decodeRules(t, payload)
	for i := 0; i < 10; i++ {
		if again := decodeRules(t, payload); !reflect.DeepEqual(again.Rules, first.Rules) {
			t.Fatalf("order changed between decodes: %+v vs %+v", again.Rules, first.Rules)
		}
	}
	if first.Rules[0].Title != "alpha" {
		t.Fatalf("expected key-sorted order, got %+v", first.Rules)
	}
}

func TestRulesStructuredList(t *testing.T) {
	ri := decodeRules(t, `[{"title": "Check-in", "description": "Arrive 30 minutes early"}, "Bring your own gear"]`)

	want := RuleList{
		{Title: "Check-in", Description: "Arrive 30 minutes early"},
		{Title: "Rule 2", Description: "Bring your own gear"},
	}
	if !reflect.DeepEqual(ri.Rules, want) {
		t.Fatalf("got %+v, want %+v", ri.Rules, want)
	}
}

func TestRulesExplicitNullResets(t *testing.T) {
	ri := decodeRules(t, `null`)
	if !ri.Set {
		t.Fatalf("explicit null must count as present")
	}
	if len(ri.Rules) != 0 {
		t.Fatalf("explicit null must reset to empty, got %+v", ri.Rules)
	}
}

func TestRulesAbsentFieldPreserved(t *testing.T) {
	var req UpdateTournamentRequest
	if err := json.Unmarshal([]byte(`{"title": "Renamed Cup"}`), &req); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if req.Rules.Set {
		t.Fatalf("absent rules field must not be marked set, got %+v", req.Rules)
	}

	var reset UpdateTournamentRequest
	if err := json.Unmarshal([]byte(`{"rules": null}`), &reset); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !reset.Rules.Set || len(reset.Rules.Rules) != 0 {
		t.Fatalf("explicit null must mark rules set and empty, got %+v", reset.Rules)
	}
}

func TestRulesNormalizationStable(t *testing.T) {
	ri := decodeRules(t, `"No cheating\nBe on time"`)

	// Feeding the canonical list back through the decoder must not change it.
	encoded, err := json.Marshal(ri.Rules)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	again := decodeRules(t, string(encoded))
	if !reflect.DeepEqual(again.Rules, ri.Rules) {
		t.Fatalf("normalization not stable: %+v vs %+v", again.Rules, ri.Rules)
	}
}

func TestRulesRejectsInvalidPayload(t *testing.T) {
	var ri RulesInput
	if err := json.Unmarshal([]byte(`42`), &ri); err == nil {
		t.Fatalf("expected error for numeric rules payload")
	}
}
