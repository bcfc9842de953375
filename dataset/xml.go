package dataset

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"cardcatalog/log"
	"cardcatalog/norm"
)

// cardList is the root element of cards.xml.
type cardList struct {
	XMLName xml.Name  `xml:"cardlist"`
	Cards   []xmlCard `xml:"card"`
}

type xmlCard struct {
	Name      string    `xml:"name"`
	Cost      string    `xml:"cost"`
	Color     string    `xml:"color"`
	Power     string    `xml:"power"`
	Toughness string    `xml:"toughness"`
	Types     []xmlType `xml:"typelist>type"`
	Rules     []xmlRule `xml:"rulelist>rule"`
	// Second face of a split or double-faced card, same shape as card
	Multi *xmlCard `xml:"multi"`
}

type xmlType struct {
	Kind string `xml:"type,attr"`
	Name string `xml:",chardata"`
}

type xmlRule struct {
	Number   string `xml:"number,attr"`
	Reminder string `xml:"reminder,attr"`
	Text     string `xml:",chardata"`
}

// setList is the root element of setinfo.xml.
type setList struct {
	XMLName xml.Name `xml:"setlist"`
	Sets    []xmlSet `xml:"set"`
}

type xmlSet struct {
	Code        string `xml:"code"`
	Name        string `xml:"name"`
	ReleaseDate string `xml:"releasedate"`
}

// cardMeta is the root element of meta.xml.
type cardMeta struct {
	XMLName xml.Name      `xml:"cardmeta"`
	Cards   []xmlMetaCard `xml:"card"`
}

type xmlMetaCard struct {
	Name      string        `xml:"name,attr"`
	Instances []xmlInstance `xml:"instance"`
}

type xmlInstance struct {
	Set    string `xml:"set,attr"`
	Rarity string `xml:"rarity,attr"`
}

// ParseCards reads cards.xml and maps every card, including second
// faces, into the domain model. Names and rule text are transliterated
// to ASCII; missing optional elements and attributes stay empty.
func ParseCards(file io.Reader) ([]*Card, error) {
	data, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}

	var doc cardList
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("couldn't parse card list: %w", err)
	}

	cards := make([]*Card, 0, len(doc.Cards))
	for _, entry := range doc.Cards {
		cards = append(cards, mapCard(entry, false))
	}

	log.Debugf("Parsed %d cards", len(cards))

	return cards, nil
}

func mapCard(entry xmlCard, nested bool) *Card {
	card := &Card{
		Name:      norm.Transliterate(strings.TrimSpace(entry.Name)),
		Cost:      strings.TrimSpace(entry.Cost),
		Color:     strings.TrimSpace(entry.Color),
		Power:     strings.TrimSpace(entry.Power),
		Toughness: strings.TrimSpace(entry.Toughness),
	}

	for _, t := range entry.Types {
		card.Types = append(card.Types, TypeEntry{
			Name: norm.Transliterate(strings.TrimSpace(t.Name)),
			Kind: t.Kind,
		})
	}

	for _, r := range entry.Rules {
		card.Rules = append(card.Rules, Rule{
			Number:   r.Number,
			Text:     norm.Transliterate(strings.TrimSpace(r.Text)),
			Reminder: r.Reminder,
		})
	}

	if entry.Multi != nil {
		if nested {
			// Only one level of faces is supported
			log.Warnf("Ignoring nested face inside the second face of %s", card.Name)
		} else {
			card.SecondFace = mapCard(*entry.Multi, true)
		}
	}

	return card
}

// ParseSetInfo reads setinfo.xml. Set names are transliterated; codes
// and release dates are kept verbatim. Order is assigned later by
// Assemble.
func ParseSetInfo(file io.Reader) ([]SetInfo, error) {
	data, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}

	var doc setList
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("couldn't parse set list: %w", err)
	}

	sets := make([]SetInfo, 0, len(doc.Sets))
	for _, entry := range doc.Sets {
		sets = append(sets, SetInfo{
			Code:        strings.TrimSpace(entry.Code),
			Name:        norm.Transliterate(strings.TrimSpace(entry.Name)),
			ReleaseDate: strings.TrimSpace(entry.ReleaseDate),
		})
	}

	log.Debugf("Parsed %d sets", len(sets))

	return sets, nil
}

// ParseMeta reads meta.xml, one entry per card with its (set, rarity)
// print instances.
func ParseMeta(file io.Reader) ([]MetaEntry, error) {
	data, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}

	var doc cardMeta
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("couldn't parse card meta: %w", err)
	}

	entries := make([]MetaEntry, 0, len(doc.Cards))
	for _, entry := range doc.Cards {
		meta := MetaEntry{CardName: norm.Transliterate(entry.Name)}
		for _, instance := range entry.Instances {
			meta.Instances = append(meta.Instances, PrintInstance{
				SetName: norm.Transliterate(instance.Set),
				Rarity:  instance.Rarity,
			})
		}
		entries = append(entries, meta)
	}

	log.Debugf("Parsed print instances for %d cards", len(entries))

	return entries, nil
}
