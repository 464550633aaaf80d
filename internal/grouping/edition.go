package grouping

import (
	"regexp"
	"strings"
)

// editionDef defines an edition type with patterns for detection and stripping.
// detectPattern matches a whole label; stripSuffix matches the edition at the
// end of a title that has no " - " separator.
type editionDef struct {
	label         string
	detectPattern string
	stripSuffix   string
}

var editionDefs = []editionDef{
	{"Director's Cut", `DIRECTOR['’]?S?\s*(CUT|EDITION|VERSION)?`, `DIRECTOR['’]?S\s*(CUT|EDITION|VERSION)`},
	{"Extended Edition", `EXTENDED\s*(CUT|EDITION|VERSION)?`, `EXTENDED\s*(CUT|EDITION|VERSION)`},
	{"Unrated", `UNRATED\s*(CUT|EDITION|VERSION)?`, `UNRATED\s*(CUT|EDITION|VERSION)?`},
	{"Uncut", `UNCUT\s*(EDITION|VERSION)?`, `UNCUT\s*(EDITION|VERSION)?`},
	{"Theatrical", `THEATRICAL\s*(CUT|EDITION|VERSION|RELEASE)?`, `THEATRICAL\s*(CUT|EDITION|VERSION|RELEASE)`},
	{"Remastered", `REMASTERED\s*(EDITION|VERSION)?`, `REMASTERED\s*(EDITION|VERSION)?`},
	{"Special Edition", `SPECIAL\s*EDITION`, `SPECIAL\s*EDITION`},
	{"Anniversary Edition", `(\d+\s*(TH|ST|ND|RD)?\s*)?ANNIVERSARY\s*(EDITION)?`, `\d+\s*(TH|ST|ND|RD)?\s*ANNIVERSARY\s*EDITION`},
	{"Ultimate Edition", `ULTIMATE\s*(CUT|EDITION)`, `ULTIMATE\s*(CUT|EDITION)`},
	{"Definitive Edition", `DEFINITIVE\s*(CUT|EDITION)`, `DEFINITIVE\s*(CUT|EDITION)`},
	{"Final Cut", `FINAL\s*CUT`, ``},
	{"Redux", `REDUX`, `REDUX`},
	{"IMAX", `IMAX\s*(EDITION)?`, `IMAX\s*(EDITION)?`},
}

type editionPattern struct {
	pattern *regexp.Regexp
	label   string
}

var (
	editionDetectPatterns []editionPattern
	editionStripPatterns  []editionPattern
)

func init() {
	for _, def := range editionDefs {
		editionDetectPatterns = append(editionDetectPatterns, editionPattern{
			pattern: regexp.MustCompile(`(?i)^(` + def.detectPattern + `)$`),
			label:   def.label,
		})
		if def.stripSuffix != "" {
			editionStripPatterns = append(editionStripPatterns, editionPattern{
				pattern: regexp.MustCompile(`(?i)[\s._:-]+(` + def.stripSuffix + `)\s*$`),
				label:   def.label,
			})
		}
	}
}

// KnownEdition maps a version label to its canonical edition name, e.g.
// "directors cut" to "Director's Cut". Unknown labels report false.
func KnownEdition(label string) (string, bool) {
	normalized := strings.Join(strings.Fields(strings.NewReplacer("_", " ", ".", " ").Replace(label)), " ")
	if normalized == "" {
		return "", false
	}
	for _, ep := range editionDetectPatterns {
		if ep.pattern.MatchString(normalized) {
			return ep.label, true
		}
	}
	return "", false
}

// stripEditionSuffix removes an edition phrase glued to the end of a title
// ("Blade Runner Final Cut" style names written without a separator).
// It never strips the whole title.
func stripEditionSuffix(title string) (string, string) {
	for _, ep := range editionStripPatterns {
		loc := ep.pattern.FindStringIndex(title)
		if loc == nil || loc[0] == 0 {
			continue
		}
		rest := strings.TrimSpace(title[:loc[0]])
		if rest == "" {
			continue
		}
		return rest, ep.label
	}
	return title, ""
}
