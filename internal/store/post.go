package store

import (
	"fmt"
	"strings"

	"github.com/rogersnm/folio/internal/markdown"
	"github.com/rogersnm/folio/internal/model"
)

// ListSlugs returns every post slug in directory order.
func (s *Store) ListSlugs() ([]string, error) {
	entries, err := s.scan()
	if err != nil {
		return nil, err
	}
	slugs := make([]string, len(entries))
	for i, e := range entries {
		slugs[i] = e.slug
	}
	return slugs, nil
}

// LoadPost reads one post and renders its body to HTML.
func (s *Store) LoadPost(slug string) (*model.Post, error) {
	path, err := s.Path(slug)
	if err != nil {
		return nil, err
	}
	d, err := s.read(entry{
		slug:     slug,
		category: model.CategoryFromSlug(slug),
		path:     path,
		root:     !strings.Contains(slug, "/"),
	})
	if err != nil {
		return nil, err
	}
	html, err := markdown.ToHTML(d.body)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &model.Post{
		Slug:     slug,
		Title:    d.meta.Title,
		Date:     string(d.meta.Date),
		Content:  d.body,
		HTML:     html,
		Category: d.category,
	}, nil
}

// ListPostSummaries returns metadata for every post, newest first.
func (s *Store) ListPostSummaries() ([]model.PostMetadata, error) {
	docs, err := s.readAll()
	if err != nil {
		return nil, err
	}
	newestFirst(docs)

	posts := make([]model.PostMetadata, len(docs))
	for i, d := range docs {
		posts[i] = d.metadata()
	}
	return posts, nil
}

// ListPostCards returns a card for every post, newest first. The card image
// is the first image referenced in the body.
func (s *Store) ListPostCards() ([]model.PostCard, error) {
	docs, err := s.readAll()
	if err != nil {
		return nil, err
	}
	newestFirst(docs)

	cards := make([]model.PostCard, len(docs))
	for i, d := range docs {
		image, _ := markdown.FirstImage(d.body)
		cards[i] = model.PostCard{
			Slug:     d.slug,
			Title:    d.meta.Title,
			Date:     string(d.meta.Date),
			Category: d.category,
			Image:    image,
			Links:    d.meta.Links,
		}
	}
	return cards, nil
}
