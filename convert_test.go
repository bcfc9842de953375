package cardcatalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"cardcatalog/log"
)

func init() {
	logger := zap.NewExample()
	log.SetLogger(logger.Sugar())
}

const testCardsXML = `<?xml version="1.0" encoding="UTF-8"?>
<cardlist>
  <card>
    <name>Giant Spider</name>
    <cost>3G</cost>
    <color>Green</color>
    <power>2</power>
    <toughness>4</toughness>
    <typelist>
      <type type="card">Creature</type>
      <type type="sub">Spider</type>
    </typelist>
    <rulelist>
      <rule reminder="This creature can block creatures with flying.">Reach</rule>
    </rulelist>
  </card>
  <card>
    <name>Æther Burst</name>
    <cost>1U</cost>
    <color>Blue</color>
    <typelist>
      <type type="card">Instant</type>
    </typelist>
    <rulelist>
      <rule>Return target creature to its owner’s hand.</rule>
    </rulelist>
  </card>
</cardlist>`

const testSetInfoXML = `<?xml version="1.0" encoding="UTF-8"?>
<setlist>
  <set>
    <code>M11</code>
    <name>Magic 2011</name>
    <releasedate>2010-07-16</releasedate>
  </set>
  <set>
    <code>M10</code>
    <name>Magic 2010</name>
    <releasedate>2009-07-17</releasedate>
  </set>
</setlist>`

const testMetaXML = `<?xml version="1.0" encoding="UTF-8"?>
<cardmeta>
  <card name="Giant Spider">
    <instance set="Magic 2010" rarity="common"/>
    <instance set="Magic 2010" rarity="common"/>
    <instance set="Magic 2011" rarity="rare"/>
  </card>
  <card name="Æther Burst">
    <instance set="Magic 2011" rarity="uncommon"/>
  </card>
</cardmeta>`

const expectedCatalog = `M10      2009-07-17  Magic 2010
M11      2010-07-16  Magic 2011

AEther Burst
1U
(Blue)
Instant
Return target creature to its owner's hand.

M11 uncommon

Giant Spider
3G
(Green)
Creature - Spider
2/4
Reach (This creature can block creatures with flying.)

M10 common (x2), M11 rare

`

func writeTestDataset(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	files := map[string]string{
		CardsFile:   testCardsXML,
		SetInfoFile: testSetInfoXML,
		MetaFile:    testMetaXML,
	}
	for name, content := range files {
		err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644)
		assert.Nil(t, err)
	}

	return dir
}

func TestConvert(t *testing.T) {
	dir := writeTestDataset(t)

	document, err := Convert(dir)
	assert.Nil(t, err)
	assert.Equal(t, expectedCatalog, document)
}

func TestConvertDeterministic(t *testing.T) {
	dir := writeTestDataset(t)

	first, err := Convert(dir)
	assert.Nil(t, err)
	second, err := Convert(dir)
	assert.Nil(t, err)
	assert.Equal(t, first, second)
}

func TestConvertMissingFile(t *testing.T) {
	dir := writeTestDataset(t)
	assert.Nil(t, os.Remove(filepath.Join(dir, MetaFile)))

	_, err := Convert(dir)
	assert.Error(t, err)
}

func TestConvertUnknownSetReference(t *testing.T) {
	dir := writeTestDataset(t)
	err := os.WriteFile(filepath.Join(dir, MetaFile), []byte(`<cardmeta>
  <card name="Giant Spider">
    <instance set="Unknown Set" rarity="common"/>
  </card>
</cardmeta>`), 0o644)
	assert.Nil(t, err)

	_, err = Convert(dir)
	assert.Error(t, err)
}

func TestRun(t *testing.T) {
	dir := writeTestDataset(t)
	output := filepath.Join(t.TempDir(), "catalog.txt")

	err := Run(dir, output)
	assert.Nil(t, err)

	content, err := os.ReadFile(output)
	assert.Nil(t, err)
	assert.Equal(t, expectedCatalog, string(content))
}

func TestRunOverwritesOutput(t *testing.T) {
	dir := writeTestDataset(t)
	output := filepath.Join(t.TempDir(), "catalog.txt")
	assert.Nil(t, os.WriteFile(output, []byte("stale content"), 0o644))

	err := Run(dir, output)
	assert.Nil(t, err)

	content, err := os.ReadFile(output)
	assert.Nil(t, err)
	assert.Equal(t, expectedCatalog, string(content))
}
