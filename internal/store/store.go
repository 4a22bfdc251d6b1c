package store

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"time"

	"github.com/rogersnm/folio/internal/markdown"
	"github.com/rogersnm/folio/internal/model"
	"golang.org/x/sync/errgroup"
)

const ext = ".md"

var (
	ErrNotFound         = errors.New("not found")
	ErrMalformedContent = errors.New("malformed content")
)

// Store reads posts from a content root. Root-level files are uncategorized
// posts and each subdirectory is a category. Nothing is cached: every call
// rescans the directory.
type Store struct {
	Root string
	log  *slog.Logger
}

func New(root string) *Store {
	return &Store{Root: root, log: slog.New(slog.DiscardHandler)}
}

func (s *Store) WithLogger(l *slog.Logger) *Store {
	if l != nil {
		s.log = l
	}
	return s
}

// entry is one markdown file found while scanning the root. root is set for
// files directly in the content root, whatever their category string says.
type entry struct {
	slug     string
	category string
	path     string
	root     bool
}

// document is a parsed entry.
type document struct {
	entry
	meta      model.FrontMatter
	body      string
	published time.Time
}

func (d *document) metadata() model.PostMetadata {
	return model.PostMetadata{
		Slug:     d.slug,
		Title:    d.meta.Title,
		Date:     string(d.meta.Date),
		Category: d.category,
	}
}

// scan enumerates root files and one level of category directories in
// directory order. A missing root yields no entries.
func (s *Store) scan() ([]entry, error) {
	entries, err := os.ReadDir(s.Root)
	if err != nil {
		if os.IsNotExist(err) {
			s.log.Debug("content root missing", "root", s.Root)
			return nil, nil
		}
		return nil, fmt.Errorf("reading %s: %w", s.Root, err)
	}

	var found []entry
	for _, e := range entries {
		if e.IsDir() {
			dir := filepath.Join(s.Root, e.Name())
			files, err := os.ReadDir(dir)
			if err != nil {
				return nil, fmt.Errorf("reading %s: %w", dir, err)
			}
			for _, f := range files {
				if f.IsDir() || !strings.HasSuffix(f.Name(), ext) {
					continue
				}
				found = append(found, entry{
					slug:     e.Name() + "/" + strings.TrimSuffix(f.Name(), ext),
					category: e.Name(),
					path:     filepath.Join(dir, f.Name()),
				})
			}
			continue
		}
		if !strings.HasSuffix(e.Name(), ext) {
			continue
		}
		found = append(found, entry{
			slug:     strings.TrimSuffix(e.Name(), ext),
			category: model.Uncategorized,
			path:     filepath.Join(s.Root, e.Name()),
			root:     true,
		})
	}
	s.log.Debug("scanned content root", "root", s.Root, "posts", len(found))
	return found, nil
}

// ReadEntity parses the front matter and body of the file at path.
func ReadEntity[T any](path string) (T, string, error) {
	var zero T
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return zero, "", fmt.Errorf("%s: %w", path, ErrNotFound)
		}
		return zero, "", fmt.Errorf("reading %s: %w", path, err)
	}
	meta, body, err := markdown.Parse[T](bytes.NewReader(data))
	if err != nil {
		return zero, "", fmt.Errorf("%s: %w: %w", path, ErrMalformedContent, err)
	}
	return meta, body, nil
}

func (s *Store) read(e entry) (*document, error) {
	meta, body, err := ReadEntity[model.FrontMatter](e.path)
	if err != nil {
		return nil, err
	}
	if err := meta.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w: %w", e.path, ErrMalformedContent, err)
	}
	published, err := meta.Date.Time()
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", e.path, ErrMalformedContent, err)
	}
	s.log.Debug("parsed post", "slug", e.slug, "date", string(meta.Date))
	return &document{entry: e, meta: meta, body: body, published: published}, nil
}

// readAll parses every scanned file, keeping directory order. Files are read
// in parallel; the first failure fails the whole call.
func (s *Store) readAll() ([]*document, error) {
	entries, err := s.scan()
	if err != nil {
		return nil, err
	}

	docs := make([]*document, len(entries))
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, e := range entries {
		g.Go(func() error {
			d, err := s.read(e)
			if err != nil {
				return err
			}
			docs[i] = d
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return docs, nil
}

// newestFirst sorts by date descending; equal dates keep directory order.
func newestFirst(docs []*document) {
	sort.SliceStable(docs, func(i, j int) bool {
		return docs[i].published.After(docs[j].published)
	})
}

// Path resolves a slug to its file, failing with ErrNotFound when the slug
// is malformed or has no file. Other stat failures are returned as is.
func (s *Store) Path(slug string) (string, error) {
	if !validSlug(slug) {
		return "", fmt.Errorf("post %q: %w", slug, ErrNotFound)
	}
	path := filepath.Join(s.Root, filepath.FromSlash(slug)+ext)
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("post %q: %w", slug, ErrNotFound)
		}
		return "", fmt.Errorf("post %q: %w", slug, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("post %q: %w", slug, ErrNotFound)
	}
	return path, nil
}

// validSlug accepts "name" and "category/name" only.
func validSlug(slug string) bool {
	if slug == "" || strings.ContainsAny(slug, `\`) || filepath.IsAbs(slug) {
		return false
	}
	parts := strings.Split(slug, "/")
	if len(parts) > 2 {
		return false
	}
	for _, p := range parts {
		if p == "" || p == "." || p == ".." {
			return false
		}
	}
	return true
}
