package store

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rogersnm/folio/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	return New(t.TempDir())
}

func writeFile(t *testing.T, s *Store, rel, content string) {
	t.Helper()
	path := filepath.Join(s.Root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func writePost(t *testing.T, s *Store, rel, title, date, body string) {
	t.Helper()
	writeFile(t, s, rel, "---\ntitle: "+title+"\ndate: "+date+"\n---\n\n"+body+"\n")
}

// exampleSite is tech/a (2024-01-01), tech/b (2024-06-01) and root c (2024-03-01).
func exampleSite(t *testing.T) *Store {
	s := newTestStore(t)
	writePost(t, s, "tech/a.md", "A", "2024-01-01", "first")
	writePost(t, s, "tech/b.md", "B", "2024-06-01", "second")
	writePost(t, s, "c.md", "C", "2024-03-01", "third")
	return s
}

func summarySlugs(posts []model.PostMetadata) []string {
	slugs := make([]string, len(posts))
	for i, p := range posts {
		slugs[i] = p.Slug
	}
	return slugs
}

// --- Slugs ---

func TestListSlugs(t *testing.T) {
	s := exampleSite(t)
	writeFile(t, s, "notes.txt", "ignored")
	writeFile(t, s, "tech/readme.txt", "ignored")

	slugs, err := s.ListSlugs()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"c", "tech/a", "tech/b"}, slugs)
}

func TestListSlugs_MissingRoot(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "nope"))
	slugs, err := s.ListSlugs()
	require.NoError(t, err)
	assert.Empty(t, slugs)
}

func TestListSlugs_SkipsNestedDirs(t *testing.T) {
	s := newTestStore(t)
	writePost(t, s, "tech/deep/x.md", "X", "2024-01-01", "")

	slugs, err := s.ListSlugs()
	require.NoError(t, err)
	assert.Empty(t, slugs)
}

func TestEverySlugLoads(t *testing.T) {
	s := exampleSite(t)
	slugs, err := s.ListSlugs()
	require.NoError(t, err)
	for _, slug := range slugs {
		_, err := s.LoadPost(slug)
		assert.NoError(t, err, slug)
	}
}

// --- LoadPost ---

func TestLoadPost_Categorized(t *testing.T) {
	s := newTestStore(t)
	writePost(t, s, "tech/intro.md", "Intro", "2024-02-03", "# Hello\n\nSome *text*.")

	p, err := s.LoadPost("tech/intro")
	require.NoError(t, err)
	assert.Equal(t, "tech/intro", p.Slug)
	assert.Equal(t, "Intro", p.Title)
	assert.Equal(t, "2024-02-03", p.Date)
	assert.Equal(t, "tech", p.Category)
	assert.Equal(t, "# Hello\n\nSome *text*.", strings.TrimSpace(p.Content))
	assert.True(t, strings.HasSuffix(p.Content, "Some *text*.\n"), "content should be kept as written: %q", p.Content)
	assert.Contains(t, p.HTML, "Hello</h1>")
	assert.Contains(t, p.HTML, "<em>text</em>")
}

func TestLoadPost_Root(t *testing.T) {
	s := newTestStore(t)
	writePost(t, s, "intro.md", "Intro", "2024-02-03", "body")

	p, err := s.LoadPost("intro")
	require.NoError(t, err)
	assert.Equal(t, model.Uncategorized, p.Category)
}

func TestLoadPost_NotFound(t *testing.T) {
	s := exampleSite(t)
	_, err := s.LoadPost("tech/missing")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestLoadPost_MissingRoot(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "nope"))
	_, err := s.LoadPost("anything")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestLoadPost_RejectsTraversal(t *testing.T) {
	s := exampleSite(t)
	writePost(t, New(filepath.Dir(s.Root)), "secret.md", "S", "2024-01-01", "")

	for _, slug := range []string{"../secret", "tech/../c", "/etc/passwd", "a/b/c", "", "tech/"} {
		_, err := s.LoadPost(slug)
		assert.True(t, errors.Is(err, ErrNotFound), slug)
	}
}

func TestLoadPost_MissingTitle(t *testing.T) {
	s := newTestStore(t)
	writeFile(t, s, "x.md", "---\ndate: 2024-01-01\n---\nbody\n")

	_, err := s.LoadPost("x")
	assert.True(t, errors.Is(err, ErrMalformedContent))
}

func TestLoadPost_NoFrontMatter(t *testing.T) {
	s := newTestStore(t)
	writeFile(t, s, "x.md", "just text\n")

	_, err := s.LoadPost("x")
	assert.True(t, errors.Is(err, ErrMalformedContent))
}

func TestLoadPost_BadDate(t *testing.T) {
	s := newTestStore(t)
	writePost(t, s, "x.md", "X", "not-a-date", "")

	_, err := s.LoadPost("x")
	assert.True(t, errors.Is(err, ErrMalformedContent))
	assert.Contains(t, err.Error(), "x.md")
}

func TestLoadPost_BrokenYAML(t *testing.T) {
	s := newTestStore(t)
	writeFile(t, s, "x.md", "---\n{{nope\n---\n")

	_, err := s.LoadPost("x")
	assert.True(t, errors.Is(err, ErrMalformedContent))
}

// --- Summaries ---

func TestListPostSummaries_Example(t *testing.T) {
	s := exampleSite(t)
	posts, err := s.ListPostSummaries()
	require.NoError(t, err)
	assert.Equal(t, []string{"tech/b", "c", "tech/a"}, summarySlugs(posts))
	assert.Equal(t, model.PostMetadata{Slug: "c", Title: "C", Date: "2024-03-01", Category: model.Uncategorized}, posts[1])
}

func TestListPostSummaries_StableForEqualDates(t *testing.T) {
	s := newTestStore(t)
	writePost(t, s, "a.md", "A", "2024-01-01", "")
	writePost(t, s, "b.md", "B", "2024-01-01", "")
	writePost(t, s, "c.md", "C", "2024-01-01", "")
	writePost(t, s, "d.md", "D", "2025-01-01", "")

	for range 5 {
		posts, err := s.ListPostSummaries()
		require.NoError(t, err)
		assert.Equal(t, []string{"d", "a", "b", "c"}, summarySlugs(posts))
	}
}

func TestListPostSummaries_MixedDateForms(t *testing.T) {
	s := newTestStore(t)
	writePost(t, s, "a.md", "A", `"2024-05-01"`, "")
	writePost(t, s, "b.md", "B", "2024-05-01T12:00:00Z", "")

	posts, err := s.ListPostSummaries()
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a"}, summarySlugs(posts))
	assert.Equal(t, "2024-05-01", posts[1].Date)
}

func TestListPostSummaries_Descending(t *testing.T) {
	s := newTestStore(t)
	dates := []string{"2023-07-14", "2021-01-01", "2024-12-31", "2022-02-02", "2024-01-15"}
	for i, d := range dates {
		writePost(t, s, "p"+string(rune('a'+i))+".md", "P", d, "")
	}

	posts, err := s.ListPostSummaries()
	require.NoError(t, err)
	require.Len(t, posts, len(dates))
	for i := 1; i < len(posts); i++ {
		prev, _ := model.ParseDate(posts[i-1].Date)
		cur, _ := model.ParseDate(posts[i].Date)
		assert.False(t, cur.After(prev))
	}
}

func TestListPostSummaries_OneBadFileFailsAll(t *testing.T) {
	s := exampleSite(t)
	writeFile(t, s, "tech/broken.md", "---\ntitle: Broken\n---\n")

	posts, err := s.ListPostSummaries()
	assert.True(t, errors.Is(err, ErrMalformedContent))
	assert.Nil(t, posts)
}

func TestListPostSummaries_MissingRoot(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "nope"))
	posts, err := s.ListPostSummaries()
	require.NoError(t, err)
	assert.Empty(t, posts)
}

// --- Cards ---

func TestListPostCards_FirstImageOnly(t *testing.T) {
	s := newTestStore(t)
	writePost(t, s, "travel/rome.md", "Rome", "2024-04-01", "![forum](/img/forum.jpg)\n\ntext\n\n![colosseum](/img/colosseum.jpg)")
	writePost(t, s, "travel/paris.md", "Paris", "2024-03-01", "no images")

	cards, err := s.ListPostCards()
	require.NoError(t, err)
	require.Len(t, cards, 2)
	assert.Equal(t, "travel/rome", cards[0].Slug)
	assert.Equal(t, "/img/forum.jpg", cards[0].Image)
	assert.Equal(t, "", cards[1].Image)
	assert.Nil(t, cards[1].Links)
}

func TestListPostCards_Links(t *testing.T) {
	s := newTestStore(t)
	writeFile(t, s, "watch.md", `---
title: Watch list
date: 2024-02-01
links:
  - url: https://www.youtube.com/watch?v=abc123
    title: Conference talk
  - url: https://example.com/read
    title: Article
---
`)

	cards, err := s.ListPostCards()
	require.NoError(t, err)
	require.Len(t, cards, 1)
	assert.True(t, cards[0].IsLinkCollection())
	assert.Equal(t, []model.Link{
		{URL: "https://www.youtube.com/watch?v=abc123", Title: "Conference talk"},
		{URL: "https://example.com/read", Title: "Article"},
	}, cards[0].Links)
	assert.Equal(t, model.Uncategorized, cards[0].Category)
}

func TestListPostCards_LinksPassThrough(t *testing.T) {
	s := newTestStore(t)
	writePost(t, s, "tech/a.md", "A", "2024-01-01", "first")
	writeFile(t, s, "links.md", `---
title: Elsewhere
date: 2024-02-01
links:
  - url: /about
    title: About
  - url: https://example.com/untitled
  - title: no url
---
`)

	cards, err := s.ListPostCards()
	require.NoError(t, err)
	require.Len(t, cards, 2)
	assert.Equal(t, []model.Link{
		{URL: "/about", Title: "About"},
		{URL: "https://example.com/untitled"},
		{Title: "no url"},
	}, cards[0].Links)

	posts, err := s.ListPostSummaries()
	require.NoError(t, err)
	assert.Equal(t, []string{"links", "tech/a"}, summarySlugs(posts))

	cats, err := s.ListCategories()
	require.NoError(t, err)
	assert.Len(t, cats, 1)
}

func TestListPostCards_MissingRoot(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "nope"))
	cards, err := s.ListPostCards()
	require.NoError(t, err)
	assert.Empty(t, cards)
}

// --- Categories ---

func TestListCategories_Example(t *testing.T) {
	s := exampleSite(t)
	cats, err := s.ListCategories()
	require.NoError(t, err)
	assert.Equal(t, []model.CategoryInfo{
		{Name: "Tech", Slug: "tech", PostCount: 2, LatestDate: "2024-06-01"},
	}, cats)
}

func TestListCategories_OrderedByLatestPost(t *testing.T) {
	s := newTestStore(t)
	writePost(t, s, "art/a.md", "A", "2023-01-01", "")
	writePost(t, s, "music/m1.md", "M1", "2022-01-01", "")
	writePost(t, s, "music/m2.md", "M2", "2024-08-01", "")
	writePost(t, s, "tech/t.md", "T", "2024-01-01", "")
	writePost(t, s, "root.md", "R", "2025-01-01", "")

	cats, err := s.ListCategories()
	require.NoError(t, err)
	require.Len(t, cats, 3)
	assert.Equal(t, "music", cats[0].Slug)
	assert.Equal(t, "Music", cats[0].Name)
	assert.Equal(t, 2, cats[0].PostCount)
	assert.Equal(t, "2024-08-01", cats[0].LatestDate)
	assert.Equal(t, "tech", cats[1].Slug)
	assert.Equal(t, "art", cats[2].Slug)
}

func TestListCategories_EmptyDirIgnored(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, os.MkdirAll(filepath.Join(s.Root, "drafts"), 0755))

	cats, err := s.ListCategories()
	require.NoError(t, err)
	assert.Empty(t, cats)
}

func TestListCategories_MissingRoot(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "nope"))
	cats, err := s.ListCategories()
	require.NoError(t, err)
	assert.Empty(t, cats)
}

func TestPostsInCategory(t *testing.T) {
	s := exampleSite(t)
	posts, err := s.PostsInCategory("tech")
	require.NoError(t, err)
	assert.Equal(t, []string{"tech/b", "tech/a"}, summarySlugs(posts))

	posts, err = s.PostsInCategory("")
	require.NoError(t, err)
	assert.Equal(t, []string{"c"}, summarySlugs(posts))

	posts, err = s.PostsInCategory("none")
	require.NoError(t, err)
	assert.Empty(t, posts)
}

func TestCategories_DirectoryNamedLikeRootSentinel(t *testing.T) {
	s := newTestStore(t)
	writePost(t, s, model.Uncategorized+"/x.md", "X", "2024-05-01", "in a directory")
	writePost(t, s, "root.md", "Root", "2024-06-01", "at the root")

	cats, err := s.ListCategories()
	require.NoError(t, err)
	assert.Equal(t, []model.CategoryInfo{
		{Name: model.Capitalize(model.Uncategorized), Slug: model.Uncategorized, PostCount: 1, LatestDate: "2024-05-01"},
	}, cats)

	posts, err := s.PostsInCategory(model.Uncategorized)
	require.NoError(t, err)
	assert.Equal(t, []string{model.Uncategorized + "/x"}, summarySlugs(posts))

	posts, err = s.PostsInCategory("")
	require.NoError(t, err)
	assert.Equal(t, []string{"root"}, summarySlugs(posts))
}

// --- CreatePost ---

func TestCreatePost(t *testing.T) {
	s := newTestStore(t)
	date := time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC)

	slug, err := s.CreatePost("tech", "Hello World", date)
	require.NoError(t, err)
	assert.Equal(t, "tech", model.CategoryFromSlug(slug))

	p, err := s.LoadPost(slug)
	require.NoError(t, err)
	assert.Equal(t, "Hello World", p.Title)
	assert.Equal(t, "2024-09-01", p.Date)
	assert.Equal(t, "", p.Content)
}

func TestCreatePost_Root(t *testing.T) {
	s := newTestStore(t)
	slug, err := s.CreatePost("", "Root Post", time.Now())
	require.NoError(t, err)
	assert.Equal(t, model.Uncategorized, model.CategoryFromSlug(slug))

	slugs, err := s.ListSlugs()
	require.NoError(t, err)
	assert.Equal(t, []string{slug}, slugs)
}

func TestCreatePost_RefusesOverwrite(t *testing.T) {
	s := newTestStore(t)
	_, err := s.CreatePost("tech", "Same", time.Now())
	require.NoError(t, err)

	_, err = s.CreatePost("tech", "Same", time.Now())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestCreatePost_InvalidInput(t *testing.T) {
	s := newTestStore(t)
	_, err := s.CreatePost("tech", "  ", time.Now())
	assert.Error(t, err)

	_, err = s.CreatePost("../outside", "Title", time.Now())
	assert.Error(t, err)

	_, err = s.CreatePost("a/b", "Title", time.Now())
	assert.Error(t, err)
}

// --- Path ---

func TestPath(t *testing.T) {
	s := exampleSite(t)
	path, err := s.Path("tech/a")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(s.Root, "tech", "a.md"), path)

	_, err = s.Path("tech")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestPath_StatFailureIsNotNotFound(t *testing.T) {
	root := filepath.Join(t.TempDir(), "posts")
	require.NoError(t, os.WriteFile(root, []byte("not a directory"), 0644))
	s := New(root)

	_, err := s.Path("intro")
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrNotFound))

	_, err = s.LoadPost("intro")
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrNotFound))
}
