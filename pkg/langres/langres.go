/*
Package langres is the static registry mapping a base language code to
the locations of its lexical resources: the bundled dictionary pack and
the hunspell-style affix/dictionary pair consumed by the spell-checker.

A code missing from the table means the language is unsupported; callers
degrade silently rather than erroring.
*/
package langres

import "strings"

// Fallback is the designated substitute language used when a requested
// language's resources are unavailable and the word's script allows it.
const Fallback = "en"

// Resource describes where a language's lexical data lives.
type Resource struct {
	Label    string
	PackURL  string
	AffURL   string
	DicURL   string
	Locale   string
	Alphabet string
}

const (
	packBase  = "https://cdn.jsdelivr.net/gh/GendByteMaster/lexiserve-data@main/packs"
	spellBase = "https://cdn.jsdelivr.net/gh/LibreOffice/dictionaries@master"
)

// latin is the shared spell-checker alphabet for plain Latin-script
// languages; accented languages extend it below.
const latin = "abcdefghijklmnopqrstuvwxyz'-"

var resources = map[string]Resource{
	"en": {
		Label:    "English",
		PackURL:  packBase + "/en.json",
		AffURL:   spellBase + "/en/en_US.aff",
		DicURL:   spellBase + "/en/en_US.dic",
		Locale:   "en-US",
		Alphabet: latin,
	},
	"es": {
		Label:    "Spanish",
		PackURL:  packBase + "/es.json",
		AffURL:   spellBase + "/es/es_ES.aff",
		DicURL:   spellBase + "/es/es_ES.dic",
		Locale:   "es-ES",
		Alphabet: latin + "áéíóúüñ",
	},
	"fr": {
		Label:    "French",
		PackURL:  packBase + "/fr.json",
		AffURL:   spellBase + "/fr_FR/fr.aff",
		DicURL:   spellBase + "/fr_FR/fr.dic",
		Locale:   "fr-FR",
		Alphabet: latin + "àâæçéèêëîïôœùûüÿ",
	},
	"de": {
		Label:    "German",
		PackURL:  packBase + "/de.json",
		AffURL:   spellBase + "/de/de_DE_frami.aff",
		DicURL:   spellBase + "/de/de_DE_frami.dic",
		Locale:   "de-DE",
		Alphabet: latin + "äöüß",
	},
	"it": {
		Label:    "Italian",
		PackURL:  packBase + "/it.json",
		AffURL:   spellBase + "/it_IT/it_IT.aff",
		DicURL:   spellBase + "/it_IT/it_IT.dic",
		Locale:   "it-IT",
		Alphabet: latin + "àèéìòù",
	},
	"pt": {
		Label:    "Portuguese",
		PackURL:  packBase + "/pt.json",
		AffURL:   spellBase + "/pt_PT/pt_PT.aff",
		DicURL:   spellBase + "/pt_PT/pt_PT.dic",
		Locale:   "pt-PT",
		Alphabet: latin + "áâãàçéêíóôõú",
	},
	"nl": {
		Label:    "Dutch",
		PackURL:  packBase + "/nl.json",
		AffURL:   spellBase + "/nl_NL/nl_NL.aff",
		DicURL:   spellBase + "/nl_NL/nl_NL.dic",
		Locale:   "nl-NL",
		Alphabet: latin + "éëïö",
	},
	"ru": {
		Label:    "Russian",
		PackURL:  packBase + "/ru.json",
		AffURL:   spellBase + "/ru_RU/ru_RU.aff",
		DicURL:   spellBase + "/ru_RU/ru_RU.dic",
		Locale:   "ru-RU",
		Alphabet: "абвгдеёжзийклмнопрстуфхцчшщъыьэюя-",
	},
	"pl": {
		Label:    "Polish",
		PackURL:  packBase + "/pl.json",
		AffURL:   spellBase + "/pl_PL/pl_PL.aff",
		DicURL:   spellBase + "/pl_PL/pl_PL.dic",
		Locale:   "pl-PL",
		Alphabet: latin + "ąćęłńóśźż",
	},
	"sv": {
		Label:    "Swedish",
		PackURL:  packBase + "/sv.json",
		AffURL:   spellBase + "/sv_SE/sv_SE.aff",
		DicURL:   spellBase + "/sv_SE/sv_SE.dic",
		Locale:   "sv-SE",
		Alphabet: latin + "åäö",
	},
}

// NormalizeTag canonicalizes a language tag: trim, lowercase,
// underscore to hyphen. The subtag structure is preserved.
func NormalizeTag(tag string) string {
	tag = strings.TrimSpace(strings.ToLower(tag))
	return strings.ReplaceAll(tag, "_", "-")
}

// BaseCode normalizes a language tag and returns the base subtag before
// the first hyphen.
func BaseCode(tag string) string {
	tag = NormalizeTag(tag)
	if i := strings.IndexByte(tag, '-'); i >= 0 {
		tag = tag[:i]
	}
	return tag
}

// Lookup returns the resource descriptor for a language tag, resolving
// through its base code.
func Lookup(tag string) (Resource, bool) {
	res, ok := resources[BaseCode(tag)]
	return res, ok
}

// Supported reports whether a language tag resolves to a known resource.
func Supported(tag string) bool {
	_, ok := Lookup(tag)
	return ok
}

// Codes returns the supported base codes, for diagnostics.
func Codes() []string {
	out := make([]string, 0, len(resources))
	for code := range resources {
		out = append(out, code)
	}
	return out
}
