package vgccalc

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// Usage stat exports concatenate item and ability names ("lifeorb",
// "sheerforce"). These map the concatenated spellings back to the
// hyphenated ones the rest of the engine compares against.
var itemAliases = map[string]string{
	"lifeorb":        "life-orb",
	"choiceband":     "choice-band",
	"choicespecs":    "choice-specs",
	"choicescarf":    "choice-scarf",
	"assaultvest":    "assault-vest",
	"rockyhelmet":    "rocky-helmet",
	"blacksludge":    "black-sludge",
	"flameorb":       "flame-orb",
	"toxicorb":       "toxic-orb",
	"boosterenergy":  "booster-energy",
	"focussash":      "focus-sash",
	"sitrusberry":    "sitrus-berry",
	"lumberry":       "lum-berry",
	"clearamulet":    "clear-amulet",
	"covertcloak":    "covert-cloak",
	"safetygoggles":  "safety-goggles",
	"expertbelt":     "expert-belt",
	"airballoon":     "air-balloon",
	"heavydutyboots": "heavy-duty-boots",
	"loadeddice":     "loaded-dice",
	"weaknesspolicy": "weakness-policy",
}

var abilityAliases = map[string]string{
	"sheerforce":      "sheer-force",
	"hugepower":       "huge-power",
	"purepower":       "pure-power",
	"gorillatactics":  "gorilla-tactics",
	"quarkdrive":      "quark-drive",
	"orichalcumpulse": "orichalcum-pulse",
	"hadronengine":    "hadron-engine",
	"supremeoverlord": "supreme-overlord",
	"rockypayload":    "rocky-payload",
	"strongjaw":       "strong-jaw",
	"toughclaws":      "tough-claws",
	"ironfist":        "iron-fist",
	"sandforce":       "sand-force",
	"purifyingsalt":   "purifying-salt",
	"magicguard":      "magic-guard",
	"poisonheal":      "poison-heal",
	"icebody":         "ice-body",
	"galewings":       "gale-wings",
	"solidrock":       "solid-rock",
}

// NormalizeName squeezes any user-facing name into the lowercase
// hyphenated form the data tables use.
func NormalizeName(name string) string {
	if name == "" {
		return ""
	}

	n := strings.ToLower(strings.TrimSpace(name))
	n = strings.ReplaceAll(n, " ", "-")
	n = strings.ReplaceAll(n, "_", "-")
	n = strings.ReplaceAll(n, "'", "")
	n = strings.ReplaceAll(n, ".", "")

	return n
}

// NormalizeItem is NormalizeName plus the concatenated usage-export
// spellings.
func NormalizeItem(item string) string {
	normalized := NormalizeName(item)
	if alias, ok := itemAliases[strings.ReplaceAll(normalized, "-", "")]; ok {
		return alias
	}

	return normalized
}

// NormalizeAbility is NormalizeName plus the concatenated usage-export
// spellings.
func NormalizeAbility(ability string) string {
	normalized := NormalizeName(ability)
	if alias, ok := abilityAliases[strings.ReplaceAll(normalized, "-", "")]; ok {
		return alias
	}

	return normalized
}

// DisplayName renders a normalized hyphenated name for humans.
func DisplayName(name string) string {
	return titleCaser.String(strings.ReplaceAll(name, "-", " "))
}

// NormalizeStatName maps common stat spellings and abbreviations to the
// canonical STAT_* keys. Unknown names map to the empty string.
func NormalizeStatName(name string) string {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "hp", "health":
		return STAT_HP
	case "atk", "attack":
		return STAT_ATTACK
	case "def", "defense", "defence":
		return STAT_DEFENSE
	case "spa", "spatk", "sp-atk", "special-attack", "special_attack":
		return STAT_SPATTACK
	case "spd", "spdef", "sp-def", "special-defense", "special_defense":
		return STAT_SPDEF
	case "spe", "speed":
		return STAT_SPEED
	}

	return ""
}
