package grouping_test

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"sublink/internal/grouping"
	"sublink/internal/testsupport"
)

func names(group grouping.MovieGroup) []string {
	out := make([]string, 0, len(group.Videos))
	for _, v := range group.Videos {
		out = append(out, v.Name)
	}
	return out
}

func mustGroup(t *testing.T, dir string) grouping.MovieGroup {
	t.Helper()
	group, err := grouping.Group(dir)
	if err != nil {
		t.Fatalf("Group(%s): %v", dir, err)
	}
	return group
}

func TestGroupSingle(t *testing.T) {
	dir := testsupport.Tree(t, t.TempDir(), "Movie (2010).mkv", "Subs/2_English.srt", "poster.jpg")

	group := mustGroup(t, dir)
	if group.Mode != grouping.Single {
		t.Fatalf("expected single, got %s", group.Mode)
	}
	if group.Dir != dir {
		t.Fatalf("group dir = %q, want %q", group.Dir, dir)
	}
	if got := names(group); !slices.Equal(got, []string{"Movie (2010).mkv"}) {
		t.Fatalf("unexpected videos %v", got)
	}
	if !group.Linkable() {
		t.Fatal("single group should be linkable")
	}
}

func TestGroupMultiVersionOrdersByFilename(t *testing.T) {
	dir := testsupport.Tree(t, t.TempDir(),
		"Movie (2010) - Theatrical.mkv",
		"Movie (2010) - Director's Cut.mkv",
	)

	group := mustGroup(t, dir)
	if group.Mode != grouping.MultiVersion {
		t.Fatalf("expected multi-version, got %s (%s)", group.Mode, group.Reason)
	}
	if group.Reason != "" {
		t.Fatalf("unexpected reason %q", group.Reason)
	}
	want := []string{"Movie (2010) - Director's Cut.mkv", "Movie (2010) - Theatrical.mkv"}
	if got := names(group); !slices.Equal(got, want) {
		t.Fatalf("videos = %v, want %v", got, want)
	}
}

func TestGroupFreeFormVersionsIgnoreFolderName(t *testing.T) {
	parent := t.TempDir()
	files := []string{"Movie - Version A.mkv", "Movie - Version B.mkv"}

	for _, folder := range []string{"Movie", "downloads"} {
		dir := testsupport.Tree(t, filepath.Join(parent, folder), files...)
		group := mustGroup(t, dir)
		if group.Mode != grouping.MultiVersion {
			t.Fatalf("%s: expected multi-version, got %s (%s)", folder, group.Mode, group.Reason)
		}
	}
}

func TestGroupUnclassifiable(t *testing.T) {
	tests := []struct {
		name   string
		files  []string
		reason string
	}{
		{"different titles", []string{"Alpha (2001).mkv", "Beta (2002).mkv"}, "title portions differ"},
		{"duplicate episode", []string{"Show S01E01 1080p.mkv", "Show S01E01 720p.mkv"}, "S01E01"},
		{"mixed markers", []string{"Show S01E01.mkv", "Show.mkv"}, "episode marker"},
		{"shared base name", []string{"Movie.mkv", "Movie.mp4"}, "same base name"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			group := mustGroup(t, testsupport.Tree(t, t.TempDir(), tt.files...))
			if group.Mode != grouping.Unclassifiable {
				t.Fatalf("expected unclassifiable, got %s", group.Mode)
			}
			if !strings.Contains(group.Reason, tt.reason) {
				t.Fatalf("reason %q does not mention %q", group.Reason, tt.reason)
			}
			if group.Linkable() {
				t.Fatal("unclassifiable group must not be linkable")
			}
		})
	}
}

func TestGroupSeries(t *testing.T) {
	dir := testsupport.Tree(t, t.TempDir(), "Show S01E02.mkv", "Show S01E01.mkv", "Show S01E03 720p.mp4")

	group := mustGroup(t, dir)
	if group.Mode != grouping.Series {
		t.Fatalf("expected series, got %s (%s)", group.Mode, group.Reason)
	}
	want := []string{"Show S01E01.mkv", "Show S01E02.mkv", "Show S01E03 720p.mp4"}
	if got := names(group); !slices.Equal(got, want) {
		t.Fatalf("videos = %v, want %v", got, want)
	}
}

func TestGroupNoVideos(t *testing.T) {
	dir := testsupport.Tree(t, t.TempDir(), "2_English.srt", "Nested/Movie.mkv")

	if _, err := grouping.Group(dir); !errors.Is(err, grouping.ErrNoVideos) {
		t.Fatalf("expected ErrNoVideos, got %v", err)
	}
}

func TestGroupIgnoresSubdirectoryVideos(t *testing.T) {
	dir := testsupport.Tree(t, t.TempDir(),
		"Movie (2010).mkv",
		"Extras/Trailer.mkv",
		"Featurettes/Making Of.mp4",
	)

	group := mustGroup(t, dir)

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	flat := 0
	for _, e := range entries {
		if e.Type().IsRegular() && grouping.IsVideo(e.Name()) {
			flat++
		}
	}
	if len(group.Videos) != flat {
		t.Fatalf("grouped %d videos, flat listing has %d", len(group.Videos), flat)
	}
	if group.Mode != grouping.Single {
		t.Fatalf("expected single, got %s", group.Mode)
	}
}

func TestGroupIgnoresSymlinkedVideos(t *testing.T) {
	dir := testsupport.Tree(t, t.TempDir(), "Movie (2010).mkv")
	testsupport.Symlink(t, filepath.Join(dir, "Movie (2010).mkv"), filepath.Join(dir, "Other (1999).mkv"))

	if group := mustGroup(t, dir); group.Mode != grouping.Single {
		t.Fatalf("expected single, got %s (%s)", group.Mode, group.Reason)
	}
}

func TestGroupMissingDirectory(t *testing.T) {
	_, err := grouping.Group(filepath.Join(t.TempDir(), "missing"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected ErrNotExist, got %v", err)
	}
	if errors.Is(err, grouping.ErrNoVideos) {
		t.Fatal("missing directory must not report ErrNoVideos")
	}
}

func TestModeString(t *testing.T) {
	tests := map[grouping.Mode]string{
		grouping.Single:         "single",
		grouping.MultiVersion:   "multi-version",
		grouping.Series:         "series",
		grouping.Unclassifiable: "unclassifiable",
	}
	for mode, want := range tests {
		if got := mode.String(); got != want {
			t.Fatalf("Mode(%d).String() = %q, want %q", int(mode), got, want)
		}
	}
}
