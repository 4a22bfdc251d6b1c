package store

import (
	"sort"
	"time"

	"github.com/rogersnm/folio/internal/model"
)

// ListCategories aggregates posts by directory, ordered by each category's
// most recent post. Root-level posts belong to no category.
func (s *Store) ListCategories() ([]model.CategoryInfo, error) {
	docs, err := s.readAll()
	if err != nil {
		return nil, err
	}

	type group struct {
		info   model.CategoryInfo
		latest time.Time
	}
	var groups []*group
	index := map[string]*group{}
	for _, d := range docs {
		if d.root {
			continue
		}
		g, ok := index[d.category]
		if !ok {
			g = &group{info: model.CategoryInfo{
				Name: model.Capitalize(d.category),
				Slug: d.category,
			}}
			index[d.category] = g
			groups = append(groups, g)
		}
		g.info.PostCount++
		if g.info.PostCount == 1 || d.published.After(g.latest) {
			g.latest = d.published
			g.info.LatestDate = string(d.meta.Date)
		}
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].latest.After(groups[j].latest)
	})
	categories := make([]model.CategoryInfo, len(groups))
	for i, g := range groups {
		categories[i] = g.info
	}
	return categories, nil
}

// PostsInCategory returns the summaries of one category directory, newest
// first. An empty category selects the posts in the content root.
func (s *Store) PostsInCategory(category string) ([]model.PostMetadata, error) {
	docs, err := s.readAll()
	if err != nil {
		return nil, err
	}
	newestFirst(docs)

	var posts []model.PostMetadata
	for _, d := range docs {
		if inCategory(d.entry, category) {
			posts = append(posts, d.metadata())
		}
	}
	return posts, nil
}

func inCategory(e entry, category string) bool {
	if category == "" {
		return e.root
	}
	return !e.root && e.category == category
}
