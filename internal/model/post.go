package model

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Uncategorized is the category of posts stored directly in the content root.
const Uncategorized = "all"

type Post struct {
	Slug     string `json:"slug"`
	Title    string `json:"title"`
	Date     string `json:"date"`
	Content  string `json:"content"`
	HTML     string `json:"html"`
	Category string `json:"category"`
}

type PostMetadata struct {
	Slug     string `json:"slug"`
	Title    string `json:"title"`
	Date     string `json:"date"`
	Category string `json:"category"`
}

// PostCard is the grid projection of a post. A card carrying Links is a
// link collection rather than a standalone article.
type PostCard struct {
	Slug     string `json:"slug"`
	Title    string `json:"title"`
	Date     string `json:"date"`
	Category string `json:"category"`
	Image    string `json:"image,omitempty"`
	Links    []Link `json:"links,omitempty"`
}

func (c *PostCard) IsLinkCollection() bool {
	return len(c.Links) > 0
}

type CategoryInfo struct {
	Name       string `json:"name"`
	Slug       string `json:"slug"`
	PostCount  int    `json:"postCount"`
	LatestDate string `json:"latestDate"`
}

// CategoryFromSlug returns the segment before the first separator, or
// Uncategorized for root-level slugs.
func CategoryFromSlug(slug string) string {
	if i := strings.Index(slug, "/"); i >= 0 {
		return slug[:i]
	}
	return Uncategorized
}

// CategoryDisplay is the label shown for a post's category.
func CategoryDisplay(category string) string {
	if category == Uncategorized {
		return "General"
	}
	return Capitalize(category)
}

// Capitalize upper-cases the first character and leaves the rest untouched.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
