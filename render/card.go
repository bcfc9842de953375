package render

import (
	"fmt"
	"sort"
	"strings"

	"cardcatalog/dataset"
)

// faceSeparator sits between the two faces of a split or double-faced
// card.
const faceSeparator = "----"

// RenderCard produces the full text block for one card: every face,
// a blank line, then the set/rarity history line.
func RenderCard(model *dataset.Model, card *dataset.Card) (string, error) {
	var sb strings.Builder

	face, err := renderFace(card)
	if err != nil {
		return "", err
	}
	sb.WriteString(face)

	if card.SecondFace != nil {
		second, err := renderFace(card.SecondFace)
		if err != nil {
			return "", err
		}
		sb.WriteString("\n" + faceSeparator + "\n")
		sb.WriteString(second)
	}

	meta, err := renderCardMeta(model, card.Name)
	if err != nil {
		return "", err
	}
	sb.WriteString("\n\n")
	sb.WriteString(meta)

	return sb.String(), nil
}

// renderFace renders one card face, one line per present field, with
// no trailing newline.
func renderFace(card *dataset.Card) (string, error) {
	lines := []string{card.Name}

	if card.Cost != "" {
		lines = append(lines, card.Cost)
	}
	if card.Color != "" {
		lines = append(lines, "("+card.Color+")")
	}
	if typeLine := renderTypeLine(card.Types); typeLine != "" {
		lines = append(lines, typeLine)
	}
	if card.Power != "" {
		lines = append(lines, card.Power+"/"+card.Toughness)
	}

	if len(card.Rules) > 0 {
		rules, err := CombineRules(card.Rules)
		if err != nil {
			return "", fmt.Errorf("%s: %w", card.Name, err)
		}
		for _, rule := range rules {
			lines = append(lines, renderRule(rule))
		}
	}

	return strings.Join(lines, "\n"), nil
}

// renderTypeLine joins supertypes and card types with spaces, then
// appends the subtypes behind " - ".
func renderTypeLine(types []dataset.TypeEntry) string {
	var leading, trailing []string

	for _, entry := range types {
		if entry.Kind == dataset.TypeKindSuper || entry.Kind == dataset.TypeKindCard {
			leading = append(leading, entry.Name)
		} else {
			trailing = append(trailing, entry.Name)
		}
	}

	line := strings.Join(leading, " ")
	if len(trailing) > 0 {
		line += " - " + strings.Join(trailing, " ")
	}

	return line
}

func renderRule(rule dataset.Rule) string {
	switch {
	case rule.Reminder == "":
		return rule.Text
	case rule.Text == "":
		return "(" + rule.Reminder + ")"
	default:
		return rule.Text + " (" + rule.Reminder + ")"
	}
}

// renderCardMeta renders the print history of a card: one fragment per
// set appearance, ordered by set release, with consecutive repeats
// collapsed into a count.
func renderCardMeta(model *dataset.Model, name string) (string, error) {
	instances := model.InstancesByCardName[name]

	for _, instance := range instances {
		if _, found := model.SetInfoByName[instance.SetName]; !found {
			return "", fmt.Errorf("%s is printed in unknown set %q", name, instance.SetName)
		}
	}

	sorted := make([]dataset.PrintInstance, len(instances))
	copy(sorted, instances)
	sort.SliceStable(sorted, func(i, j int) bool {
		return model.SetInfoByName[sorted[i].SetName].Order < model.SetInfoByName[sorted[j].SetName].Order
	})

	values := make([]string, len(sorted))
	for i, instance := range sorted {
		values[i] = model.SetInfoByName[instance.SetName].Code + " " + instance.Rarity
	}

	var fragments []string
	for i := 0; i < len(values); {
		j := i + 1
		for j < len(values) && values[j] == values[i] {
			j++
		}
		if j-i > 1 {
			fragments = append(fragments, fmt.Sprintf("%s (x%d)", values[i], j-i))
		} else {
			fragments = append(fragments, values[i])
		}
		i = j
	}

	return strings.Join(fragments, ", "), nil
}
