package linker

import (
	"path/filepath"
	"strings"

	"sublink/internal/grouping"
	"sublink/internal/subtitles"
	"sublink/internal/textutil"
)

// Assignment links one subtitle to one video for one language.
type Assignment struct {
	Video    grouping.VideoFile
	Language string
	Source   string
	LinkName string
	LinkPath string
}

// shared marks a candidate that belongs to no particular video.
const shared = -1

// Plan assigns subtitles to every video of a linkable group. A subtitle whose
// path below the group directory names one video (its base name, or its
// episode marker in a series) belongs to that video alone. For each video and
// language the first subtitle belonging to the video wins; when it has none
// for a language, the first shared subtitle is used. Later candidates are
// ignored, and a language already present as "<video-base>.<code>.<ext>" is
// left alone. Assignments follow the candidate order within each video.
func Plan(group grouping.MovieGroup, candidates []subtitles.Candidate) []Assignment {
	if !group.Linkable() {
		return nil
	}

	owners := make([]int, len(candidates))
	for i, candidate := range candidates {
		owners[i] = owner(group, candidate)
	}

	var assignments []Assignment
	for v, video := range group.Videos {
		dir := filepath.Dir(video.Path)
		chosen := make(map[string]int)
		for _, candidate := range candidates {
			// a sidecar already named the way the server expects settles its language
			if candidate.Language != "" && filepath.Clean(candidate.Path) == filepath.Join(dir, LinkName(video, candidate)) {
				chosen[candidate.Language] = shared
			}
		}
		for _, want := range []int{v, shared} {
			for i, candidate := range candidates {
				if candidate.Language == "" || owners[i] != want {
					continue
				}
				if _, ok := chosen[candidate.Language]; !ok {
					chosen[candidate.Language] = i
				}
			}
		}

		for i, candidate := range candidates {
			if pick, ok := chosen[candidate.Language]; !ok || pick != i {
				continue
			}
			name := LinkName(video, candidate)
			assignments = append(assignments, Assignment{
				Video:    video,
				Language: candidate.Language,
				Source:   candidate.Path,
				LinkName: name,
				LinkPath: filepath.Join(dir, name),
			})
		}
	}
	return assignments
}

// owner returns the index of the video a candidate's location names, or
// shared. The most specific match wins; equally good matches for different
// videos leave the candidate shared.
func owner(group grouping.MovieGroup, candidate subtitles.Candidate) int {
	if len(group.Videos) < 2 {
		return shared
	}
	rel, err := filepath.Rel(group.Dir, candidate.Path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return shared
	}
	rel = strings.TrimSuffix(rel, filepath.Ext(rel))
	text := " " + textutil.NormalizeLabel(rel) + " "

	var markers []string
	if group.Mode == grouping.Series {
		for _, segment := range strings.Split(rel, string(filepath.Separator)) {
			if marker := grouping.EpisodeMarker(segment); marker != "" {
				markers = append(markers, marker)
			}
		}
	}

	best, bestScore, tied := shared, 0, false
	for i, video := range group.Videos {
		score := 0
		if key := textutil.NormalizeLabel(video.Base); key != "" && strings.Contains(text, " "+key+" ") {
			score = len(key)
		}
		if score == 0 && video.Episode != "" {
			for _, marker := range markers {
				if marker == video.Episode {
					score = len(marker)
					break
				}
			}
		}
		switch {
		case score == 0:
		case score > bestScore:
			best, bestScore, tied = i, score, false
		case score == bestScore:
			tied = true
		}
	}
	if tied {
		return shared
	}
	return best
}

// LinkName builds `<video-base>.<code>.<ext>` with a lowercase extension.
func LinkName(video grouping.VideoFile, candidate subtitles.Candidate) string {
	return video.Base + "." + candidate.Language + strings.ToLower(candidate.Ext)
}
