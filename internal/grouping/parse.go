package grouping

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"sublink/internal/textutil"
)

// VideoExtensions lists the recognized video file extensions (lowercase, with dot).
var VideoExtensions = []string{".mkv", ".mp4", ".m4v", ".avi", ".mov", ".webm"}

// VideoFile is the parsed form of one video filename.
type VideoFile struct {
	Path     string
	Name     string
	Base     string // filename without extension; link names derive from it
	Ext      string
	Title    string
	TitleKey string // folded title used for comparisons
	Version  string
	Episode  string // canonical SxxEyy, empty outside series naming
	Quality  string
}

var (
	episodePattern = regexp.MustCompile(`(?i)(?:^|[^a-z0-9])s(\d{1,3})[ ._-]?e(\d{1,4})(?:[ ._-]?-?e(\d{1,4}))?(?:[^a-z0-9]|$)`)
	crossPattern   = regexp.MustCompile(`(?i)(?:^|[^a-z0-9])(\d{1,2})x(\d{2,3})(?:[^a-z0-9]|$)`)
	editionBrace   = regexp.MustCompile(`(?i)\s*\{edition-([^}]+)\}`)
	trailingSquare = regexp.MustCompile(`\s*\[([^\[\]]*)\]\s*$`)
	qualityToken   = regexp.MustCompile(`(?i)^(?:\d{3,4}[pi]|[48]k|uhd|fhd|hdr|hdr10\+?|dovi|dolby ?vision|sdr|remux|blu-?ray|bdrip|brrip|web-?dl|web-?rip|webrip|hdtv|dvd|dvdrip|x26[45]|h\.?26[45]|hevc|avc|av1|xvid|10-?bit|8-?bit|aac|ac3|eac3|dts|dts-hd|truehd|atmos|flac|proper|repack)$`)
	tokenSplit     = regexp.MustCompile(`[\s._]+`)
)

// IsVideo reports whether name carries a recognized video extension.
func IsVideo(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, candidate := range VideoExtensions {
		if ext == candidate {
			return true
		}
	}
	return false
}

// ParseVideo splits a video path into title, version, episode and quality
// parts. Parsing never fails; unparseable names leave everything in Title.
func ParseVideo(path string) VideoFile {
	name := filepath.Base(path)
	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	video := VideoFile{Path: path, Name: name, Base: base, Ext: ext}

	if loc, episode := findEpisode(base); loc != nil {
		video.Episode = episode
		video.Title = cleanTitle(base[:loc[0]])
		video.Quality = cleanTitle(base[loc[1]:])
	} else {
		video.Title, video.Version, video.Quality = splitMovie(base)
	}
	video.TitleKey = textutil.NormalizeLabel(video.Title)
	return video
}

// EpisodeMarker returns the canonical SxxEyy marker found in text, or "" when
// text carries none. "Show.s1e5" and "Show 1x05" both yield "S01E05".
func EpisodeMarker(text string) string {
	_, episode := findEpisode(text)
	return episode
}

func findEpisode(stem string) ([]int, string) {
	if m := episodePattern.FindStringSubmatchIndex(stem); m != nil {
		season, _ := strconv.Atoi(stem[m[2]:m[3]])
		first, _ := strconv.Atoi(stem[m[4]:m[5]])
		episode := fmt.Sprintf("S%02dE%02d", season, first)
		if m[6] >= 0 {
			last, _ := strconv.Atoi(stem[m[6]:m[7]])
			episode += fmt.Sprintf("-E%02d", last)
		}
		return markerBounds(stem, m[0], m[1]), episode
	}
	if m := crossPattern.FindStringSubmatchIndex(stem); m != nil {
		season, _ := strconv.Atoi(stem[m[2]:m[3]])
		first, _ := strconv.Atoi(stem[m[4]:m[5]])
		return markerBounds(stem, m[0], m[1]), fmt.Sprintf("S%02dE%02d", season, first)
	}
	return nil, ""
}

// markerBounds trims the boundary characters the episode patterns consume so
// the title keeps its own punctuation.
func markerBounds(stem string, start, end int) []int {
	if start < len(stem) && !isAlnum(stem[start]) {
		start++
	}
	if end > start && end <= len(stem) && end > 0 && !isAlnum(stem[end-1]) {
		end--
	}
	return []int{start, end}
}

func isAlnum(b byte) bool {
	return (b >= '0' && b <= '9') || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func splitMovie(stem string) (title, version, quality string) {
	var qualities []string
	addQuality := func(value string) {
		if value = strings.TrimSpace(value); value != "" {
			qualities = append([]string{value}, qualities...)
		}
	}
	setVersion := func(value string) bool {
		value = strings.TrimSpace(value)
		if value == "" || version != "" {
			return false
		}
		if label, ok := KnownEdition(value); ok {
			value = label
		}
		version = value
		return true
	}

	rest := stem
	if m := editionBrace.FindStringSubmatchIndex(rest); m != nil {
		setVersion(rest[m[2]:m[3]])
		rest = rest[:m[0]] + rest[m[1]:]
	}

	for {
		m := trailingSquare.FindStringSubmatchIndex(rest)
		if m == nil || m[0] == 0 {
			break
		}
		inner := rest[m[2]:m[3]]
		if _, ok := KnownEdition(inner); !ok || !setVersion(inner) {
			addQuality(inner)
		}
		rest = strings.TrimSpace(rest[:m[0]])
	}

	for range 2 {
		idx := strings.LastIndex(rest, " - ")
		if idx <= 0 {
			break
		}
		suffix := strings.TrimSpace(rest[idx+3:])
		if isQuality(suffix) {
			addQuality(suffix)
			rest = strings.TrimSpace(rest[:idx])
			continue
		}
		if setVersion(suffix) {
			rest = strings.TrimSpace(rest[:idx])
		}
		break
	}

	if head, tail, ok := splitTrailingQuality(rest); ok {
		addQuality(tail)
		rest = head
	}

	if version == "" {
		var label string
		if rest, label = stripEditionSuffix(rest); label != "" {
			version = label
		}
	}

	return cleanTitle(rest), version, strings.Join(qualities, " ")
}

// splitTrailingQuality cuts "Title 1080p BluRay" at the first quality word
// when every word after it is a quality word too.
func splitTrailingQuality(value string) (string, string, bool) {
	locs := tokenSplit.FindAllStringIndex(value, -1)
	starts := []int{0}
	for _, loc := range locs {
		starts = append(starts, loc[1])
	}
	for _, start := range starts[1:] {
		if isQuality(value[start:]) {
			head := strings.TrimSpace(value[:start])
			if head == "" {
				return value, "", false
			}
			return head, strings.TrimSpace(value[start:]), true
		}
	}
	return value, "", false
}

func isQuality(value string) bool {
	tokens := tokenSplit.Split(strings.Trim(value, " ._-[]()"), -1)
	seen := 0
	for _, token := range tokens {
		token = strings.Trim(token, "[]()")
		if token == "" {
			continue
		}
		if !qualityToken.MatchString(token) {
			return false
		}
		seen++
	}
	return seen > 0
}

func cleanTitle(value string) string {
	value = strings.Trim(value, " ._-")
	return strings.Join(strings.Fields(value), " ")
}
