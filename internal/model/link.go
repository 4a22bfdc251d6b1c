package model

import (
	"net/url"
	"regexp"
	"strings"
)

type LinkKind string

const (
	LinkYouTube   LinkKind = "youtube"
	LinkInstagram LinkKind = "instagram"
	LinkWikipedia LinkKind = "wikipedia"
	LinkGeneric   LinkKind = "generic"
)

var youtubeID = regexp.MustCompile(`(?:youtube\.com/watch\?v=|youtu\.be/)([a-zA-Z0-9_-]+)`)

// Link is one outbound entry of a link collection post. Entries are taken
// from front matter as written; relative URLs and empty titles are allowed.
type Link struct {
	URL   string `yaml:"url" json:"url"`
	Title string `yaml:"title" json:"title"`
}

func (l Link) Kind() LinkKind {
	switch {
	case strings.Contains(l.URL, "youtube.com"), strings.Contains(l.URL, "youtu.be"):
		return LinkYouTube
	case strings.Contains(l.URL, "instagram.com"):
		return LinkInstagram
	case strings.Contains(l.URL, "wikipedia.org"):
		return LinkWikipedia
	default:
		return LinkGeneric
	}
}

// YouTubeID returns the video id of watch and short links.
func (l Link) YouTubeID() (string, bool) {
	m := youtubeID.FindStringSubmatch(l.URL)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// Thumbnail returns a preview image URL, or "" when the link has none.
func (l Link) Thumbnail() string {
	id, ok := l.YouTubeID()
	if !ok {
		return ""
	}
	return "https://img.youtube.com/vi/" + id + "/maxresdefault.jpg"
}

func (l Link) EmbedURL() string {
	id, ok := l.YouTubeID()
	if !ok {
		return ""
	}
	return "https://www.youtube.com/embed/" + id
}

func (l Link) Host() string {
	u, err := url.Parse(l.URL)
	if err != nil {
		return ""
	}
	return u.Hostname()
}
