package ledger

import (
	"database/sql"
	"fmt"
	"time"
)

// Link is one symlink created by a sublink run.
type Link struct {
	ID         int64     `json:"id"`
	RunID      string    `json:"run_id"`
	Directory  string    `json:"directory"`
	VideoPath  string    `json:"video_path"`
	Language   string    `json:"language"`
	SourcePath string    `json:"source_path"`
	LinkPath   string    `json:"link_path"`
	CreatedAt  time.Time `json:"created_at"`
}

const linkColumns = "id, run_id, directory, video_path, language, source_path, link_path, created_at"

func scanLink(scanner interface{ Scan(dest ...any) error }) (Link, error) {
	var (
		link       Link
		createdRaw sql.NullString
	)
	if err := scanner.Scan(
		&link.ID,
		&link.RunID,
		&link.Directory,
		&link.VideoPath,
		&link.Language,
		&link.SourcePath,
		&link.LinkPath,
		&createdRaw,
	); err != nil {
		return Link{}, fmt.Errorf("scan link: %w", err)
	}
	if createdRaw.Valid {
		if ts, err := time.Parse(time.RFC3339Nano, createdRaw.String); err == nil {
			link.CreatedAt = ts
		}
	}
	return link, nil
}
