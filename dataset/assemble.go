package dataset

import (
	"sort"

	"cardcatalog/log"
)

// Assemble cross-links the three parsed collections into a Model:
// cards sorted by name, sets ranked by release date, print instances
// grouped by card name. The model is not mutated after this returns.
func Assemble(cards []*Card, sets []SetInfo, meta []MetaEntry) *Model {
	sort.SliceStable(cards, func(i, j int) bool {
		return cards[i].Name < cards[j].Name
	})

	// Release dates are pre-formatted sortable strings
	sort.SliceStable(sets, func(i, j int) bool {
		return sets[i].ReleaseDate < sets[j].ReleaseDate
	})

	infoByName := make(map[string]SetInfo, len(sets))
	for i, set := range sets {
		set.Order = i
		if _, found := infoByName[set.Name]; found {
			// Last-write-wins on duplicate set names
			log.Debugf("Duplicate set name %s, keeping the later entry", set.Name)
		}
		infoByName[set.Name] = set
	}

	instancesByCardName := make(map[string][]PrintInstance, len(meta))
	for _, entry := range meta {
		instancesByCardName[entry.CardName] = append(instancesByCardName[entry.CardName], entry.Instances...)
	}

	return &Model{
		Cards:               cards,
		SetInfoByName:       infoByName,
		InstancesByCardName: instancesByCardName,
	}
}
