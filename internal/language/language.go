package language

import (
	"fmt"
	"strings"

	"sublink/internal/textutil"
)

type entry struct {
	code2   string   // ISO 639-1 (2-letter)
	code3   string   // ISO 639-2 primary (3-letter)
	alt3    string   // ISO 639-2 alternate (e.g. "fre" vs "fra")
	display string   // Human-readable name
	words   []string // Names and aliases (e.g. "english", "deutsch")
}

var languages = []entry{
	{"en", "eng", "", "English", []string{"english"}},
	{"es", "spa", "", "Spanish", []string{"spanish", "español", "castellano", "castilian", "latino", "latin american spanish", "spanish latin america", "es la", "es mx", "es es"}},
	{"fr", "fra", "fre", "French", []string{"french", "français", "canadian french", "québécois", "fr ca", "fr fr"}},
	{"de", "deu", "ger", "German", []string{"german", "deutsch", "de de", "de at", "de ch"}},
	{"it", "ita", "", "Italian", []string{"italian", "italiano"}},
	{"pt", "por", "", "Portuguese", []string{"portuguese", "português", "brazilian", "brazilian portuguese", "portuguese brazilian", "portuguese brazil", "pt br", "pt pt", "ptbr", "pob"}},
	{"ja", "jpn", "", "Japanese", []string{"japanese", "日本語", "nihongo"}},
	{"ko", "kor", "", "Korean", []string{"korean", "한국어"}},
	{"zh", "zho", "chi", "Chinese", []string{"chinese", "中文", "mandarin", "cantonese", "simplified chinese", "traditional chinese", "chinese simplified", "chinese traditional", "zh cn", "zh tw", "zh hk", "zh hans", "zh hant", "chs", "cht"}},
	{"ru", "rus", "", "Russian", []string{"russian", "русский"}},
	{"ar", "ara", "", "Arabic", []string{"arabic", "العربية"}},
	{"hi", "hin", "", "Hindi", []string{"hindi"}},
	{"nl", "nld", "dut", "Dutch", []string{"dutch", "nederlands", "flemish", "vlaams"}},
	{"pl", "pol", "", "Polish", []string{"polish", "polski"}},
	{"sv", "swe", "", "Swedish", []string{"swedish", "svenska"}},
	{"da", "dan", "", "Danish", []string{"danish", "dansk"}},
	{"no", "nor", "", "Norwegian", []string{"norwegian", "norsk", "bokmål", "nynorsk", "nob", "nno", "nb"}},
	{"fi", "fin", "", "Finnish", []string{"finnish", "suomi"}},
	{"cs", "ces", "cze", "Czech", []string{"czech", "čeština"}},
	{"el", "ell", "gre", "Greek", []string{"greek", "ελληνικά"}},
	{"he", "heb", "", "Hebrew", []string{"hebrew", "עברית", "iw"}},
	{"hu", "hun", "", "Hungarian", []string{"hungarian", "magyar"}},
	{"tr", "tur", "", "Turkish", []string{"turkish", "türkçe"}},
	{"th", "tha", "", "Thai", []string{"thai"}},
	{"vi", "vie", "", "Vietnamese", []string{"vietnamese", "tiếng việt"}},
	{"id", "ind", "", "Indonesian", []string{"indonesian", "bahasa indonesia"}},
	{"ms", "msa", "may", "Malay", []string{"malay", "bahasa melayu"}},
	{"ro", "ron", "rum", "Romanian", []string{"romanian", "română"}},
	{"uk", "ukr", "", "Ukrainian", []string{"ukrainian", "українська"}},
	{"bg", "bul", "", "Bulgarian", []string{"bulgarian", "български"}},
	{"hr", "hrv", "", "Croatian", []string{"croatian", "hrvatski"}},
	{"sr", "srp", "", "Serbian", []string{"serbian", "srpski", "српски"}},
	{"sk", "slk", "slo", "Slovak", []string{"slovak", "slovenčina"}},
	{"sl", "slv", "", "Slovenian", []string{"slovenian", "slovene", "slovenščina"}},
	{"et", "est", "", "Estonian", []string{"estonian", "eesti"}},
	{"lv", "lav", "", "Latvian", []string{"latvian", "latviešu"}},
	{"lt", "lit", "", "Lithuanian", []string{"lithuanian", "lietuvių"}},
	{"fa", "fas", "per", "Persian", []string{"persian", "farsi"}},
	{"ca", "cat", "", "Catalan", []string{"catalan", "català"}},
	{"is", "isl", "ice", "Icelandic", []string{"icelandic", "íslenska"}},
	{"ga", "gle", "", "Irish", []string{"irish", "gaeilge"}},
	{"sq", "sqi", "alb", "Albanian", []string{"albanian", "shqip"}},
	{"mk", "mkd", "mac", "Macedonian", []string{"macedonian", "македонски"}},
	{"bs", "bos", "", "Bosnian", []string{"bosnian", "bosanski"}},
	{"eu", "eus", "baq", "Basque", []string{"basque", "euskara"}},
	{"gl", "glg", "", "Galician", []string{"galician", "galego"}},
	{"ta", "tam", "", "Tamil", []string{"tamil"}},
	{"bn", "ben", "", "Bengali", []string{"bengali", "bangla"}},
	{"ur", "urd", "", "Urdu", []string{"urdu"}},
	{"tl", "tgl", "", "Tagalog", []string{"tagalog", "filipino", "fil"}},
}

// qualifiers are trailing label words that describe a subtitle track rather
// than its language ("English SDH", "eng.forced"). They are dropped when the
// full label does not resolve.
var qualifiers = map[string]struct{}{
	"sdh":       {},
	"forced":    {},
	"cc":        {},
	"hi":        {},
	"full":      {},
	"sub":       {},
	"subs":      {},
	"subtitles": {},
	"default":   {},
	"signs":     {},
	"songs":     {},
}

// index maps every normalized code, name and alias to its entry. Built at
// init time; a key claimed by two entries is a table bug and panics.
var index map[string]*entry

func init() {
	index = make(map[string]*entry, len(languages)*8)
	for i := range languages {
		e := &languages[i]
		keys := append([]string{e.code2, e.code3, e.alt3, e.display}, e.words...)
		for _, key := range keys {
			key = textutil.NormalizeLabel(key)
			if key == "" {
				continue
			}
			if prev, ok := index[key]; ok && prev != e {
				panic(fmt.Sprintf("language: alias %q maps to both %s and %s", key, prev.code2, e.code2))
			}
			index[key] = e
		}
	}
}

func lookup(label string) *entry {
	key := textutil.NormalizeLabel(label)
	if key == "" {
		return nil
	}
	return index[key]
}

// Resolve maps a free-text language label to its ISO 639-1 code.
// It reports false for labels that are not in the table; unknown codes are
// never passed through.
func Resolve(label string) (string, bool) {
	key := textutil.NormalizeLabel(label)
	if key == "" {
		return "", false
	}
	if e, ok := index[key]; ok {
		return e.code2, true
	}
	words := strings.Fields(key)
	for len(words) > 1 {
		if _, ok := qualifiers[words[len(words)-1]]; !ok {
			break
		}
		words = words[:len(words)-1]
		if e, ok := index[strings.Join(words, " ")]; ok {
			return e.code2, true
		}
	}
	return "", false
}

// ToISO3 converts any recognized language code to ISO 639-2 (3-letter).
// Returns "und" for unrecognized input.
func ToISO3(code string) string {
	if e := lookup(code); e != nil {
		return e.code3
	}
	return "und"
}

// DisplayName returns a human-readable language name for any recognized code.
// Returns "Unknown" for empty input, or the uppercased code for unrecognized input.
func DisplayName(code string) string {
	if strings.TrimSpace(code) == "" {
		return "Unknown"
	}
	if e := lookup(code); e != nil {
		return e.display
	}
	return strings.ToUpper(strings.TrimSpace(code))
}

// Codes returns every ISO 639-1 code the table knows, in table order.
func Codes() []string {
	codes := make([]string, 0, len(languages))
	for _, e := range languages {
		codes = append(codes, e.code2)
	}
	return codes
}
