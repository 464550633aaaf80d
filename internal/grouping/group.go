package grouping

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// ErrNoVideos is returned by Group when a directory holds no video files.
var ErrNoVideos = errors.New("no video files found")

// Mode is the grouping outcome for a directory.
type Mode int

const (
	Unclassifiable Mode = iota
	Single
	MultiVersion
	Series
)

func (m Mode) String() string {
	switch m {
	case Single:
		return "single"
	case MultiVersion:
		return "multi-version"
	case Series:
		return "series"
	default:
		return "unclassifiable"
	}
}

// MovieGroup is the classified set of videos found directly in Dir.
// Videos are ordered by filename. Reason explains an Unclassifiable mode.
type MovieGroup struct {
	Dir    string
	Mode   Mode
	Videos []VideoFile
	Reason string
}

// Linkable reports whether subtitles may be linked for the group.
func (g MovieGroup) Linkable() bool {
	return g.Mode != Unclassifiable && len(g.Videos) > 0
}

// Group lists dir without recursing, keeps regular files with a video
// extension, and classifies them. Subdirectories and their videos are
// ignored.
func Group(dir string) (MovieGroup, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return MovieGroup{Dir: dir}, fmt.Errorf("list videos in %s: %w", dir, err)
	}

	var videos []VideoFile
	for _, entry := range entries {
		if !entry.Type().IsRegular() || !IsVideo(entry.Name()) {
			continue
		}
		videos = append(videos, ParseVideo(filepath.Join(dir, entry.Name())))
	}
	if len(videos) == 0 {
		return MovieGroup{Dir: dir}, ErrNoVideos
	}
	return Classify(dir, videos), nil
}

// Classify decides the grouping mode for already parsed videos.
func Classify(dir string, videos []VideoFile) MovieGroup {
	sorted := make([]VideoFile, len(videos))
	copy(sorted, videos)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })

	group := MovieGroup{Dir: dir, Videos: sorted}
	switch {
	case len(sorted) == 0:
		group.Reason = ErrNoVideos.Error()
	case len(sorted) == 1:
		group.Mode = Single
	default:
		group.Mode, group.Reason = classifyMany(sorted)
	}
	return group
}

func classifyMany(videos []VideoFile) (Mode, string) {
	bases := make(map[string]string, len(videos))
	for _, v := range videos {
		if other, ok := bases[v.Base]; ok {
			return Unclassifiable, fmt.Sprintf("%s and %s share the same base name", other, v.Name)
		}
		bases[v.Base] = v.Name
	}

	marked := 0
	for _, v := range videos {
		if v.Episode != "" {
			marked++
		}
	}
	switch {
	case marked == len(videos):
		return classifySeries(videos)
	case marked > 0:
		return Unclassifiable, fmt.Sprintf("%d of %d videos carry an episode marker", marked, len(videos))
	}

	first := videos[0]
	for _, v := range videos[1:] {
		if v.TitleKey != first.TitleKey {
			return Unclassifiable, fmt.Sprintf("title portions differ: %q vs %q", first.Title, v.Title)
		}
	}
	return MultiVersion, ""
}

func classifySeries(videos []VideoFile) (Mode, string) {
	seen := make(map[string]string, len(videos))
	for _, v := range videos {
		if other, ok := seen[v.Episode]; ok {
			return Unclassifiable, fmt.Sprintf("episode %s appears in both %s and %s", v.Episode, other, v.Name)
		}
		seen[v.Episode] = v.Name
	}
	return Series, ""
}
