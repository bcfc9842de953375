package render

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cardcatalog/dataset"
)

func TestCombineRulesProtection(t *testing.T) {
	combined, err := CombineRules([]dataset.Rule{
		{Number: "23", Text: "Protection from black."},
		{Number: "23", Text: "Protection from white."},
	})
	assert.Nil(t, err)
	assert.Equal(t, []dataset.Rule{
		{Number: "23", Text: "Protection from black and white."},
	}, combined)

	combined, err = CombineRules([]dataset.Rule{
		{Number: "23", Text: "Protection from artifacts."},
		{Number: "23", Text: "Protection from black."},
		{Number: "23", Text: "Protection from red."},
	})
	assert.Nil(t, err)
	assert.Equal(t, []dataset.Rule{
		{Number: "23", Text: "Protection from artifacts, black and red."},
	}, combined)
}

func TestCombineRulesKeywords(t *testing.T) {
	combined, err := CombineRules([]dataset.Rule{
		{Number: "7", Text: "First strike"},
		{Number: "7", Text: "Vigilance"},
	})
	assert.Nil(t, err)
	assert.Equal(t, []dataset.Rule{
		{Number: "7", Text: "First strike, vigilance"},
	}, combined)
}

func TestCombineRulesReminders(t *testing.T) {
	combined, err := CombineRules([]dataset.Rule{
		{Number: "7", Text: "Flying", Reminder: "This creature can't be blocked except by creatures with flying or reach."},
		{Number: "7", Text: "Haste", Reminder: "This creature can attack as soon as it comes under your control."},
	})
	assert.Nil(t, err)
	assert.Equal(t, []dataset.Rule{
		{
			Number:   "7",
			Text:     "Flying, haste",
			Reminder: "This creature can't be blocked except by creatures with flying or reach., this creature can attack as soon as it comes under your control.",
		},
	}, combined)
}

func TestCombineRulesPassThrough(t *testing.T) {
	rules := []dataset.Rule{
		{Text: "Flying"},
		{Text: "When this creature dies, draw a card."},
		{Number: "1", Text: "Trample"},
	}
	combined, err := CombineRules(rules)
	assert.Nil(t, err)
	assert.Equal(t, rules, combined)
}

func TestCombineRulesUnsupportedProtectionRun(t *testing.T) {
	_, err := CombineRules([]dataset.Rule{
		{Number: "23", Text: "Protection from white."},
		{Number: "23", Text: "Protection from blue."},
		{Number: "23", Text: "Protection from black."},
		{Number: "23", Text: "Protection from red."},
	})
	assert.Error(t, err)
}

func TestCombineRuleTextEmpty(t *testing.T) {
	text, err := combineRuleText(nil)
	assert.Nil(t, err)
	assert.Equal(t, "", text)
}

func TestCombineRuleTextMixed(t *testing.T) {
	text, err := combineRuleText([]string{
		"First strike",
		"Protection from black.",
		"Protection from white.",
	})
	assert.Nil(t, err)
	assert.Equal(t, "First strike, protection from black and white.", text)
}

func TestCombineRuleTextSingleProtection(t *testing.T) {
	text, err := combineRuleText([]string{
		"Protection from red.",
		"First strike",
	})
	assert.Nil(t, err)
	assert.Equal(t, "Protection from red., first strike", text)
}
