// Package cardcatalog converts a card dataset stored as three XML
// documents (cards.xml, setinfo.xml, meta.xml) into a single
// plain-text catalog: a set index followed by every card with its
// rule text and print history.
package cardcatalog

import (
	"fmt"
	"os"
	"path/filepath"

	"cardcatalog/dataset"
	"cardcatalog/log"
	"cardcatalog/render"
)

// Input file names expected inside the dataset directory.
const (
	CardsFile   = "cards.xml"
	SetInfoFile = "setinfo.xml"
	MetaFile    = "meta.xml"
)

// Convert parses the three dataset documents found in inputDir,
// assembles the model and renders the catalog document.
func Convert(inputDir string) (string, error) {
	cards, err := parseCardsFile(filepath.Join(inputDir, CardsFile))
	if err != nil {
		return "", err
	}

	sets, err := parseSetInfoFile(filepath.Join(inputDir, SetInfoFile))
	if err != nil {
		return "", err
	}

	meta, err := parseMetaFile(filepath.Join(inputDir, MetaFile))
	if err != nil {
		return "", err
	}

	model := dataset.Assemble(cards, sets, meta)

	log.Infow(
		"Assembled dataset",
		"cards", len(model.Cards),
		"sets", len(model.SetInfoByName),
	)

	document, err := render.RenderCatalog(model)
	if err != nil {
		return "", fmt.Errorf("couldn't render the catalog: %w", err)
	}

	return document, nil
}

// Run converts the dataset in inputDir and writes the catalog to
// outputFile, overwriting any existing file.
func Run(inputDir, outputFile string) error {
	document, err := Convert(inputDir)
	if err != nil {
		return err
	}

	if err := os.WriteFile(outputFile, []byte(document), 0o644); err != nil {
		return fmt.Errorf("couldn't write %s: %w", outputFile, err)
	}

	log.Infof("Wrote %d bytes to %s", len(document), outputFile)

	return nil
}

func parseCardsFile(path string) ([]*dataset.Card, error) {
	log.Infof("Parsing %s", path)

	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer closeFile(file)

	return dataset.ParseCards(file)
}

func parseSetInfoFile(path string) ([]dataset.SetInfo, error) {
	log.Infof("Parsing %s", path)

	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer closeFile(file)

	return dataset.ParseSetInfo(file)
}

func parseMetaFile(path string) ([]dataset.MetaEntry, error) {
	log.Infof("Parsing %s", path)

	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer closeFile(file)

	return dataset.ParseMeta(file)
}

func closeFile(file *os.File) {
	if err := file.Close(); err != nil {
		log.Error(err)
	}
}
