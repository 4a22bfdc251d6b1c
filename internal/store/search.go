package store

import (
	"strconv"
	"strings"

	"github.com/rogersnm/folio/internal/model"
)

type TileKind string

const (
	TilePost  TileKind = "post"
	TileLink  TileKind = "link"
	TileVideo TileKind = "youtube"
)

// Tile is one cell of the post grid: a post, or a single entry of a link
// collection post.
type Tile struct {
	Key  string
	Kind TileKind
	Post *model.PostCard
	Link *model.Link
	// Date of the post the tile came from.
	Date string
}

// Search returns the tiles of all cards that match query.
func (s *Store) Search(query string) ([]Tile, error) {
	cards, err := s.ListPostCards()
	if err != nil {
		return nil, err
	}
	return Tiles(cards, query), nil
}

// Tiles expands cards into tiles, keeping card order. Link collections
// contribute one tile per link, matched on the link title; other posts are
// matched on title or category. A blank query matches everything.
func Tiles(cards []model.PostCard, query string) []Tile {
	q := strings.ToLower(strings.TrimSpace(query))
	var tiles []Tile
	for i := range cards {
		c := &cards[i]
		if c.IsLinkCollection() {
			for idx := range c.Links {
				l := &c.Links[idx]
				if q != "" && !matchesQuery(q, l.Title) {
					continue
				}
				kind := TileLink
				if l.Kind() == model.LinkYouTube {
					kind = TileVideo
				}
				tiles = append(tiles, Tile{
					Key:  c.Slug + "-link-" + strconv.Itoa(idx),
					Kind: kind,
					Link: l,
					Date: c.Date,
				})
			}
			continue
		}
		if q != "" && !matchesQuery(q, c.Title) && !matchesQuery(q, c.Category) {
			continue
		}
		tiles = append(tiles, Tile{Key: c.Slug, Kind: TilePost, Post: c, Date: c.Date})
	}
	return tiles
}

func matchesQuery(q, text string) bool {
	return strings.Contains(strings.ToLower(text), q)
}
