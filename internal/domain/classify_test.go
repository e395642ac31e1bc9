package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		text string
		want GlyphKind
	}{
		{"stratovolcano", "Stratovolcano", GlyphStrato},
		{"plural stratovolcanoes", "Stratovolcanoes", GlyphStrato},
		{"shield", "Shield volcano", GlyphShield},
		{"caldera", "Caldera", GlyphCaldera},
		{"bare cone", "Cone", GlyphCone},
		{"pyroclastic cone", "Pyroclastic cone", GlyphCone},
		{"cones without leading space", "Cones", GlyphGeneric},
		{"maars category", "Maars / Tuff rings", GlyphMaarTuff},
		{"tuff ring", "Tuff ring", GlyphMaarTuff},
		{"crater system", "Crater System", GlyphCraterSystem},
		{"crater rows", "Crater rows", GlyphCraterSystem},
		{"submarine", "Submarine volcano", GlyphSubmarine},
		{"subglacial", "Subglacial volcano", GlyphSubglacial},
		{"volcanic field", "Volcanic field", GlyphField},
		{"other", "Other / Unknown", GlyphOther},
		{testUnknown, testUnknown, GlyphOther},
		{"lava dome", "Lava dome", GlyphLavaDome},
		{"lava cone type", "Lava cone", GlyphCone},
		{"lavacone fragment", "Shieldless lava cone", GlyphShield},
		{"fissure vent", "Fissure vent", GlyphFissureVent},
		{"explosion crater", "Explosion crater", GlyphExplosionCrater},
		{"single maar", "Maar", GlyphMaarTuff},
		{"complex", "Complex volcano", GlyphComplex},
		{"compound", "Compound volcano", GlyphComplex},
		{"empty", "", GlyphGeneric},
		{"unrelated", "Volcanic vent", GlyphGeneric},
		{"unicode upper case", "STRATOVOLCANO", GlyphStrato},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.text))
		})
	}
}

// Each case contains the keywords of two rules; the earlier rule must win.
func TestClassify_RuleOrder(t *testing.T) {
	tests := []struct {
		text string
		want GlyphKind
	}{
		{"shield stratovolcano", GlyphStrato},
		{"caldera shield", GlyphShield},
		{"caldera cone", GlyphCaldera},
		{"pyroclastic cone maars", GlyphCone},
		{"maars crater rows", GlyphMaarTuff},
		{"crater rows submarine", GlyphCraterSystem},
		{"submarine subglacial", GlyphSubmarine},
		{"subglacial field", GlyphSubglacial},
		{"field other", GlyphField},
		{"other lava dome", GlyphOther},
		{"lava dome fissure vent", GlyphLavaDome},
		{"fissure vent explosion crater", GlyphFissureVent},
		{"explosion crater maar", GlyphExplosionCrater},
		{"maar complex", GlyphMaarTuff},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.text))
		})
	}
}

func TestClassify_TotalAndDeterministic(t *testing.T) {
	inputs := []string{"", " ", "???", "Stratovolcano", "Lava dome", "日本の火山"}
	for _, in := range inputs {
		k := Classify(in)
		assert.True(t, k.Valid(), "input %q gave %q", in, k)
		assert.Equal(t, k, Classify(in))
	}
}

func TestClassifyVolcano(t *testing.T) {
	t.Run("category preferred", func(t *testing.T) {
		v := Volcano{Category: "Shield", Type: "Stratovolcano"}
		assert.Equal(t, GlyphShield, ClassifyVolcano(v))
	})
	t.Run("type used when category empty", func(t *testing.T) {
		v := Volcano{Type: "Lava dome"}
		assert.Equal(t, GlyphLavaDome, ClassifyVolcano(v))
	})
	t.Run("texts are not merged", func(t *testing.T) {
		v := Volcano{Category: "Volcanic vent", Type: "Stratovolcano"}
		assert.Equal(t, GlyphGeneric, ClassifyVolcano(v))
	})
}

func TestAllGlyphKinds(t *testing.T) {
	kinds := AllGlyphKinds()
	assert.Len(t, kinds, 16)
	seen := map[GlyphKind]bool{}
	for _, k := range kinds {
		assert.True(t, k.Valid())
		assert.False(t, seen[k], "duplicate %q", k)
		seen[k] = true
	}
	assert.False(t, GlyphKind("volcano").Valid())
}
