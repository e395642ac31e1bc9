package domain

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// GlyphKind names one of the sixteen detail glyph shapes.
type GlyphKind string

const (
	GlyphStrato          GlyphKind = "strato"
	GlyphShield          GlyphKind = "shield"
	GlyphCaldera         GlyphKind = "caldera"
	GlyphCone            GlyphKind = "cone"
	GlyphMaarTuff        GlyphKind = "maar_tuff"
	GlyphCraterSystem    GlyphKind = "crater_system"
	GlyphSubmarine       GlyphKind = "submarine"
	GlyphSubglacial      GlyphKind = "subglacial"
	GlyphField           GlyphKind = "field"
	GlyphOther           GlyphKind = "other"
	GlyphLavaDome        GlyphKind = "lava_dome"
	GlyphLavaCone        GlyphKind = "lava_cone"
	GlyphFissureVent     GlyphKind = "fissure_vent"
	GlyphExplosionCrater GlyphKind = "explosion_crater"
	GlyphComplex         GlyphKind = "complex"
	GlyphGeneric         GlyphKind = "generic"
)

var allGlyphKinds = []GlyphKind{
	GlyphStrato, GlyphShield, GlyphCaldera, GlyphCone,
	GlyphMaarTuff, GlyphCraterSystem, GlyphSubmarine, GlyphSubglacial,
	GlyphField, GlyphOther, GlyphLavaDome, GlyphLavaCone,
	GlyphFissureVent, GlyphExplosionCrater, GlyphComplex, GlyphGeneric,
}

// AllGlyphKinds returns every kind in a fixed order.
func AllGlyphKinds() []GlyphKind {
	out := make([]GlyphKind, len(allGlyphKinds))
	copy(out, allGlyphKinds)
	return out
}

// Valid reports whether k is one of the sixteen kinds.
func (k GlyphKind) Valid() bool {
	for _, known := range allGlyphKinds {
		if k == known {
			return true
		}
	}
	return false
}

type classifierRule struct {
	match func(text string) bool
	kind  GlyphKind
}

func containsAny(subs ...string) func(string) bool {
	return func(text string) bool {
		for _, s := range subs {
			if strings.Contains(text, s) {
				return true
			}
		}
		return false
	}
}

// classifierRules is evaluated top to bottom and the first match wins. The
// first block matches coarse TypeCategory labels, the second finer Type labels.
// "maars" sits above "maar" and "stratovolcano" above "shield" on purpose.
var classifierRules = []classifierRule{
	{containsAny("stratovolcano"), GlyphStrato},
	{containsAny("shield"), GlyphShield},
	{containsAny("caldera"), GlyphCaldera},
	{func(t string) bool { return t == "cone" || strings.Contains(t, " cone") }, GlyphCone},
	{containsAny("maars", "tuff ring"), GlyphMaarTuff},
	{containsAny("crater system", "crater rows"), GlyphCraterSystem},
	{containsAny("submarine"), GlyphSubmarine},
	{containsAny("subglacial"), GlyphSubglacial},
	{containsAny("field"), GlyphField},
	{containsAny("other", "unknown"), GlyphOther},

	{containsAny("lava dome"), GlyphLavaDome},
	{containsAny("lava cone"), GlyphLavaCone},
	{containsAny("fissure vent"), GlyphFissureVent},
	{containsAny("explosion crater"), GlyphExplosionCrater},
	{containsAny("maar"), GlyphMaarTuff},
	{containsAny("complex", "compound"), GlyphComplex},
}

// Classify maps free category or type text to a glyph kind. It is total:
// any input, including the empty string, yields a kind, GlyphGeneric when no
// rule matches.
func Classify(text string) GlyphKind {
	t := cases.Lower(language.Und).String(text)
	for _, rule := range classifierRules {
		if rule.match(t) {
			return rule.kind
		}
	}
	return GlyphGeneric
}

// ClassificationText returns the text that drives a record's glyph: the
// category when present, otherwise the type. The two are never merged.
func ClassificationText(v Volcano) string {
	if v.Category != "" {
		return v.Category
	}
	return v.Type
}

// ClassifyVolcano classifies a record by its category, falling back to its type.
func ClassifyVolcano(v Volcano) GlyphKind {
	return Classify(ClassificationText(v))
}
