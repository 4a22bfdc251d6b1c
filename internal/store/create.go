package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/goliatone/go-slug"
	"github.com/rogersnm/folio/internal/markdown"
	"github.com/rogersnm/folio/internal/model"
)

// CreatePost writes a new post skeleton and returns its slug. The file name
// is derived from the title. An empty category puts the post in the root.
func (s *Store) CreatePost(category, title string, date time.Time) (string, error) {
	if strings.TrimSpace(title) == "" {
		return "", fmt.Errorf("post title is required")
	}
	name, err := slug.Normalize(title)
	if err != nil || name == "" {
		return "", fmt.Errorf("cannot derive a file name from %q", title)
	}

	postSlug, dir := name, s.Root
	if category != "" {
		if !validSlug(category) || strings.Contains(category, "/") {
			return "", fmt.Errorf("invalid category %q", category)
		}
		postSlug, dir = category+"/"+name, filepath.Join(s.Root, category)
	}

	meta := model.FrontMatter{Title: title, Date: model.DateValue(date.Format(model.DateLayout))}
	data, err := markdown.Marshal(meta, "")
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating directory %s: %w", dir, err)
	}

	path := filepath.Join(dir, name+ext)
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		if os.IsExist(err) {
			return "", fmt.Errorf("post %s already exists", postSlug)
		}
		return "", fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()
	if _, err := f.Write(data); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	s.log.Info("created post", "slug", postSlug, "path", path)
	return postSlug, nil
}
