package render

import (
	"sort"
	"strings"

	"cardcatalog/dataset"
)

// Widths of the set index columns.
const (
	setCodeWidth = 7
	setDateWidth = 10
)

// RenderCatalog produces the final document: the set index, a blank
// line, then every card block followed by a blank line.
func RenderCatalog(model *dataset.Model) (string, error) {
	var sb strings.Builder

	sb.WriteString(renderSetIndex(model))
	sb.WriteString("\n\n")

	for _, card := range model.Cards {
		block, err := RenderCard(model, card)
		if err != nil {
			return "", err
		}
		sb.WriteString(block)
		sb.WriteString("\n\n")
	}

	return sb.String(), nil
}

// renderSetIndex renders one fixed-width line per set, sorted by set
// code.
func renderSetIndex(model *dataset.Model) string {
	sets := make([]dataset.SetInfo, 0, len(model.SetInfoByName))
	for _, info := range model.SetInfoByName {
		sets = append(sets, info)
	}
	sort.SliceStable(sets, func(i, j int) bool {
		return sets[i].Code < sets[j].Code
	})

	lines := make([]string, 0, len(sets))
	for _, set := range sets {
		lines = append(lines, pad(set.Code, setCodeWidth)+"  "+pad(set.ReleaseDate, setDateWidth)+"  "+set.Name)
	}

	return strings.Join(lines, "\n")
}

// pad right-pads s with spaces to the given width, truncating longer
// values.
func pad(s string, width int) string {
	if len(s) > width {
		return s[:width]
	}
	return s + strings.Repeat(" ", width-len(s))
}
