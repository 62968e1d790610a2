package tournament

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// RulesInput accepts the three authoring shapes for tournament rules and
// normalizes them to the canonical ordered RuleList:
//
//   - free text: one rule per non-empty line titled "Rule N"; a single line
//     becomes one rule titled "General Rule"
//   - keyed object: one rule per key, {title: key, description: value},
//     ordered by key
//   - structured list: passed through; bare strings in a list are
//     auto-numbered
//
// Set distinguishes "field present" (including explicit null, which resets
// to an empty list) from "field absent" (existing rules preserved).
type RulesInput struct {
	Set   bool
	Rules RuleList
}

// UnmarshalJSON implements the tagged-union decode at the API boundary.
func (ri *RulesInput) UnmarshalJSON(data []byte) error {
	ri.Set = true
	ri.Rules = RuleList{}

	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		return nil
	}

	switch {
	case strings.HasPrefix(trimmed, "["):
		var raw []json.RawMessage
		if err := json.Unmarshal(data, &raw); err != nil {
			return fmt.Errorf("rules: invalid list: %w", err)
		}
		for i, item := range raw {
			rule, err := decodeListItem(item, i)
			if err != nil {
				return err
			}
			ri.Rules = append(ri.Rules, rule)
		}
	case strings.HasPrefix(trimmed, "{"):
		var keyed map[string]interface{}
		if err := json.Unmarshal(data, &keyed); err != nil {
			return fmt.Errorf("rules: invalid object: %w", err)
		}
		keys := make([]string, 0, len(keyed))
		for k := range keyed {
			keys = append(keys, k)
		}
		// Map order is not stable in Go; sort so the stored sequence is
		// deterministic.
		sort.Strings(keys)
		for _, k := range keys {
			ri.Rules = append(ri.Rules, Rule{
				Title:       k,
				Description: stringify(keyed[k]),
			})
		}
	default:
		var text string
		if err := json.Unmarshal(data, &text); err != nil {
			return fmt.Errorf("rules: expected text, object, or list")
		}
		ri.Rules = normalizeFreeText(text)
	}
	return nil
}

func decodeListItem(item json.RawMessage, index int) (Rule, error) {
	var structured Rule
	if err := json.Unmarshal(item, &structured); err == nil && (structured.Title != "" || structured.Description != "") {
		return structured, nil
	}
	var text string
	if err := json.Unmarshal(item, &text); err == nil {
		return Rule{
			Title:       fmt.Sprintf("Rule %d", index+1),
			Description: text,
		}, nil
	}
	return Rule{}, fmt.Errorf("rules: list entry %d is neither a rule object nor text", index+1)
}

// normalizeFreeText converts authored free text into the canonical list.
func normalizeFreeText(text string) RuleList {
	lines := make([]string, 0)
	for _, line := range strings.Split(text, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}

	rules := RuleList{}
	switch len(lines) {
	case 0:
	case 1:
		rules = append(rules, Rule{Title: "General Rule", Description: lines[0]})
	default:
		for i, line := range lines {
			rules = append(rules, Rule{
				Title:       fmt.Sprintf("Rule %d", i+1),
				Description: line,
			})
		}
	}
	return rules
}

func stringify(v interface{}) string {
	switch val := v.(type) {
	case string:
		return val
	case nil:
		return ""
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		b, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprintf("%v", val)
		}
		return string(b)
	}
}
