package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frcl/mensad/pkg/errors"
)

const sampleMarkup = `<!DOCTYPE html>
<html><body>
<div id="canteen_place_1"><h1>Mensa Am Adenauerring</h1></div>
<div id="canteen_place_2"><h1>Mensa Schloss Gottesaue</h1></div>
<div id="fragment-c1-1">
<table>
<tr>
<td class="mensatype">Linie 1</td>
<td>
<table>
<tr class="mt-1">
<td class="first"><b>Seitan-Gyros</b> <span>mit Tzatziki</span></td>
<td><img class="mealicon_2" src="/img/vegan_2.gif"><img class="mealicon_2" src="/img/vegan_2.gif"><img class="mealicon_2" src="/img/bio_2.gif"></td>
<td><span class="bgp price_1">3,20 &euro;</span></td>
</tr>
<tr class="mt-2">
<td class="first"><b>Rinderbraten</b></td>
<td><img class="mealicon_2" src="/img/r_2.gif"><img class="mealicon_2" src="/img/unknown.gif"></td>
<td><span class="bgp price_1">4,50 &euro;</span></td>
</tr>
</table>
</td>
</tr>
<tr>
<td class="mensatype">Linie 3</td>
<td>
<table>
<tr class="mt-7">
<td class="first"><b>Backfisch</b> <span>mit Remoulade</span></td>
<td><img class="mealicon_2" src="/img/m_2.gif"></td>
<td><span class="bgp price_1">2,95 &euro;</span></td>
</tr>
</table>
</td>
</tr>
</table>
</div>
<div id="fragment-c2-1">
<table>
<tr>
<td class="mensatype">Wahlessen</td>
<td>
<table>
<tr class="mt-3">
<td class="first"><b>Gem&uuml;sepfanne</b></td>
<td></td>
<td><span class="bgp price_1">2,60 &euro;</span></td>
</tr>
</table>
</td>
</tr>
</table>
</div>
</body></html>`

func TestMenuExtractsStructure(t *testing.T) {
	doc, err := Menu(sampleMarkup)
	require.NoError(t, err)
	require.Len(t, doc.Mensen, 2)

	adenauer, ok := doc.Mensa("Mensa Am Adenauerring")
	require.True(t, ok)
	require.Len(t, adenauer.Lines, 2)
	assert.Equal(t, []string{"Linie 1", "Linie 3"}, adenauer.LineNames())

	linie1 := adenauer.Lines[0]
	require.Len(t, linie1.Meals, 2)

	gyros := linie1.Meals[0]
	assert.Equal(t, "Seitan-Gyros", gyros.Name)
	assert.Equal(t, "mit Tzatziki", gyros.Note)
	assert.Equal(t, "3,20 €", gyros.Price)
	// duplicate vegan icon collapses, unknown icons are ignored
	assert.Equal(t, []string{"vegan", "bio"}, gyros.Tags)

	braten := linie1.Meals[1]
	assert.Equal(t, "Rinderbraten", braten.Name)
	assert.Empty(t, braten.Note)
	assert.Equal(t, []string{"rind"}, braten.Tags)

	gottesaue, ok := doc.Mensa("Mensa Schloss Gottesaue")
	require.True(t, ok)
	require.Len(t, gottesaue.Lines, 1)
	assert.Equal(t, "Wahlessen", gottesaue.Lines[0].Name)
	assert.Equal(t, []string{}, gottesaue.Lines[0].Meals[0].Tags)
}

func TestMenuPreservesMealOrder(t *testing.T) {
	doc, err := Menu(sampleMarkup)
	require.NoError(t, err)

	adenauer, _ := doc.Mensa("Mensa Am Adenauerring")
	names := []string{}
	for _, meal := range adenauer.Lines[0].Meals {
		names = append(names, meal.Name)
	}
	assert.Equal(t, []string{"Seitan-Gyros", "Rinderbraten"}, names)
}

func TestMenuWithoutMarkersIsParseError(t *testing.T) {
	tests := []struct {
		name   string
		markup string
	}{
		{"empty document", ""},
		{"unrelated markup", "<html><body><p>maintenance</p></body></html>"},
		{"anchors without fragments", `<div id="canteen_place_1"><h1>Mensa Am Adenauerring</h1></div>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Menu(tt.markup)
			require.Error(t, err)
			assert.Equal(t, errors.ErrCodeParse, errors.CodeOf(err))
		})
	}
}

func TestFragmentIndex(t *testing.T) {
	tests := []struct {
		id   string
		want string
	}{
		{"fragment-c1-1", "1"},
		{"fragment-c2-1", "2"},
		{"fragment-c12-1", "12"},
	}

	for _, tt := range tests {
		if got := fragmentIndex(tt.id); got != tt.want {
			t.Errorf("fragmentIndex(%q) = %q, want %q", tt.id, got, tt.want)
		}
	}
}
