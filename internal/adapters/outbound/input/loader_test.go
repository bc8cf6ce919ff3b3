package input_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bewertigo/bewertigo/internal/adapters/outbound/input"
	"github.com/bewertigo/bewertigo/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixtureDir = "../../../../testdata/audits"

func TestFileLoader_JSONFixture(t *testing.T) {
	in, err := input.New().Load(filepath.Join(fixtureDir, "plachutta.json"))
	require.NoError(t, err)

	assert.Equal(t, "Plachutta Wollzeile", in.Business.Name)
	assert.Equal(t, 1542, in.Business.TotalReviews)
	require.NotNil(t, in.Performance)
	require.NotNil(t, in.Performance.DesktopLCP())
	assert.InDelta(t, 1.5, *in.Performance.DesktopLCP(), 0.0001)
	assert.False(t, in.ClickToCall.Present())
	require.NotNil(t, in.Social)
	assert.Equal(t, domain.SourceWebsite, in.Social.Instagram.Source)
	assert.Len(t, in.Competitors, 3)
	assert.Equal(t, "Wien", in.City)
}

func TestFileLoader_NoWebsiteFixture(t *testing.T) {
	in, err := input.New().Load(filepath.Join(fixtureDir, "kaffeehaus-no-website.json"))
	require.NoError(t, err)

	assert.False(t, in.Business.HasWebsite())
	assert.Nil(t, in.Performance)
	assert.Nil(t, in.ClickToCall)
	assert.Nil(t, in.Social)
	assert.Empty(t, in.Competitors)
}

func TestFileLoader_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audit.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
business:
  name: Salon Luise
  phone: "+43 316 123"
  rating: 4.7
  total_reviews: 64
social:
  instagram:
    handle: salonluise
    source: search
category: beauty salon
city: Graz
`), 0644))

	in, err := input.New().Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Salon Luise", in.Business.Name)
	assert.Equal(t, domain.SourceSearch, in.Social.Instagram.Source)
	assert.Equal(t, "beauty salon", in.Category)
}

func TestFileLoader_MissingFile(t *testing.T) {
	_, err := input.New().Load(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading")
}

func TestDecode_RejectsUnknownFields(t *testing.T) {
	_, err := input.Decode(strings.NewReader(`{"business":{"name":"x","stars":4}}`), input.FormatJSON)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing json")

	_, err = input.Decode(strings.NewReader("business:\n  name: x\n  stars: 4\n"), input.FormatYAML)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing yaml")
}

func TestDecode_ValidatesInput(t *testing.T) {
	_, err := input.Decode(strings.NewReader(`{"business":{"name":"x","rating":7}}`), input.FormatJSON)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDecode_EmptyYAML(t *testing.T) {
	_, err := input.Decode(strings.NewReader(""), input.FormatYAML)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty document")
}

func TestFormatFor(t *testing.T) {
	assert.Equal(t, input.FormatYAML, input.FormatFor("a.YAML"))
	assert.Equal(t, input.FormatYAML, input.FormatFor("a.yml"))
	assert.Equal(t, input.FormatJSON, input.FormatFor("a.json"))
	assert.Equal(t, input.FormatJSON, input.FormatFor("a"))
}
