package menu

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentAsMap(t *testing.T) {
	doc := testDocument()
	m := doc.AsMap()

	require.Len(t, m, 2)
	require.Contains(t, m, "Mensa Am Adenauerring")
	require.Contains(t, m, "Mensa Schloss Gottesaue")

	lines := m["Mensa Am Adenauerring"]
	require.Len(t, lines, 2)
	assert.Equal(t, "Seitan-Gyros", lines["Linie 1"][0].Name)
	assert.Equal(t, "3,20 €", lines["Linie 1"][0].Price)
}

func TestMensaAsMapNilMeals(t *testing.T) {
	m := &Mensa{Name: "Mensa Moltke", Lines: []Line{{Name: "Wahlessen 1"}}}
	lines := m.AsMap()

	// nil meal slices become empty lists so JSON renders [] instead of null
	require.NotNil(t, lines["Wahlessen 1"])
	assert.Empty(t, lines["Wahlessen 1"])
}

func TestDocumentMensaLookup(t *testing.T) {
	doc := testDocument()

	m, ok := doc.Mensa("Mensa Schloss Gottesaue")
	require.True(t, ok)
	assert.Equal(t, "Mensa Schloss Gottesaue", m.Name)

	_, ok = doc.Mensa("Mensa Stuttgart")
	assert.False(t, ok)
}

func TestMensaText(t *testing.T) {
	doc := testDocument()
	m, _ := doc.Mensa("Mensa Am Adenauerring")

	out := m.Text()
	assert.Contains(t, out, "Linie 1")
	assert.Contains(t, out, "Linie 3")
	assert.Contains(t, out, "Seitan-Gyros (mit Tzatziki)")
	assert.Contains(t, out, "vegan")
	assert.Contains(t, out, "3,20 €")

	// lines render in presentation order
	assert.Less(t, strings.Index(out, "Linie 1"), strings.Index(out, "Linie 3"))
}

func TestMensaTextOmitsEmptyLines(t *testing.T) {
	m := &Mensa{
		Name: "Mensa Am Adenauerring",
		Lines: []Line{
			{Name: "Linie 1"},
			{Name: "Linie 2", Meals: []Meal{{Name: "Pasta", Price: "2,20 €"}}},
		},
	}

	out := m.Text()
	assert.NotContains(t, out, "Linie 1")
	assert.Contains(t, out, "Linie 2")
}

func TestPageFooter(t *testing.T) {
	out := Page("content", "mensa.example.org")
	assert.Contains(t, out, "content")
	assert.Contains(t, out, "http://mensa.example.org/help")
}

func TestErrorPage(t *testing.T) {
	out := ErrorPage("unknown name")
	assert.Contains(t, out, "ERROR: unknown name")
}

func TestUsage(t *testing.T) {
	text := UsageText("mensa.example.org")
	assert.Contains(t, text, "$ curl mensa.example.org/A/3")
	assert.Contains(t, text, "format=json")

	html := UsageHTML("mensa.example.org")
	assert.True(t, strings.HasPrefix(html, "<pre>"))
	assert.Contains(t, html, "$ curl mensa.example.org/Gottesaue")
}
