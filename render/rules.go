// Package render turns an assembled dataset model into the plain-text
// catalog document.
package render

import (
	"fmt"
	"strings"

	"cardcatalog/dataset"
	"cardcatalog/norm"
)

const protectionPrefix = "Protection from "

// CombineRules merges consecutive rules sharing the same rule number
// into a single rule. Rules without a number, or without a run partner,
// pass through unchanged.
func CombineRules(rules []dataset.Rule) ([]dataset.Rule, error) {
	var combined []dataset.Rule

	for i := 0; i < len(rules); {
		j := i + 1
		if rules[i].Number != "" {
			for j < len(rules) && rules[j].Number == rules[i].Number {
				j++
			}
		}

		if j-i == 1 {
			combined = append(combined, rules[i])
			i = j
			continue
		}

		var texts, reminders []string
		for _, rule := range rules[i:j] {
			if rule.Text != "" {
				texts = append(texts, rule.Text)
			}
			if rule.Reminder != "" {
				reminders = append(reminders, rule.Reminder)
			}
		}

		text, err := combineRuleText(texts)
		if err != nil {
			return nil, err
		}
		reminder, err := combineRuleText(reminders)
		if err != nil {
			return nil, err
		}

		combined = append(combined, dataset.Rule{
			Number:   rules[i].Number,
			Text:     text,
			Reminder: reminder,
		})
		i = j
	}

	return combined, nil
}

// combineRuleText merges the text fragments of rules sharing a rule
// number. Consecutive "Protection from X" sentences collapse into a
// single combined sentence; everything else joins with ", " under a
// single leading capital.
func combineRuleText(parts []string) (string, error) {
	if len(parts) == 0 {
		return "", nil
	}

	var fragments []string

	for i := 0; i < len(parts); {
		if !strings.HasPrefix(parts[i], protectionPrefix) {
			fragments = append(fragments, parts[i])
			i++
			continue
		}

		j := i + 1
		for j < len(parts) && strings.HasPrefix(parts[j], protectionPrefix) {
			j++
		}

		if j-i == 1 {
			fragments = append(fragments, parts[i])
		} else {
			joined, err := joinProtection(parts[i:j])
			if err != nil {
				return "", err
			}
			fragments = append(fragments, joined)
		}
		i = j
	}

	for i, fragment := range fragments {
		fragments[i] = norm.Uncapitalize(fragment)
	}

	return norm.Capitalize(strings.Join(fragments, ", ")), nil
}

// joinProtection collapses two or three "Protection from X" sentences
// into one. The trailing period moves to the end of the combined
// sentence.
func joinProtection(sentences []string) (string, error) {
	stripped := make([]string, len(sentences))
	for i, sentence := range sentences {
		stripped[i] = sentence[len(protectionPrefix):]
		if i < len(sentences)-1 {
			stripped[i] = strings.TrimSuffix(stripped[i], ".")
		}
	}

	switch len(stripped) {
	case 2:
		return protectionPrefix + stripped[0] + " and " + stripped[1], nil
	case 3:
		return protectionPrefix + stripped[0] + ", " + stripped[1] + " and " + stripped[2], nil
	default:
		return "", fmt.Errorf("can't combine %d protection abilities into one sentence", len(sentences))
	}
}
