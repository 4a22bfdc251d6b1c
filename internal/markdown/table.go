package markdown

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/rogersnm/folio/internal/model"
)

var (
	headerRowStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	cellStyle      = lipgloss.NewStyle()
)

// DateFunc turns a stored date string into its display form.
type DateFunc func(date string) string

func RenderPostTable(posts []model.PostMetadata, date DateFunc) string {
	if len(posts) == 0 {
		return "No posts found."
	}
	rows := make([][]string, len(posts))
	for i, p := range posts {
		rows[i] = []string{p.Slug, p.Title, model.CategoryDisplay(p.Category), date(p.Date)}
	}
	return renderTable([]string{"Slug", "Title", "Category", "Date"}, rows)
}

func RenderCardTable(cards []model.PostCard, date DateFunc) string {
	if len(cards) == 0 {
		return "No posts found."
	}
	rows := make([][]string, len(cards))
	for i, c := range cards {
		extra := c.Image
		if c.IsLinkCollection() {
			extra = strconv.Itoa(len(c.Links)) + " links"
		}
		rows[i] = []string{c.Slug, c.Title, model.CategoryDisplay(c.Category), date(c.Date), extra}
	}
	return renderTable([]string{"Slug", "Title", "Category", "Date", "Image / Links"}, rows)
}

func RenderCategoryTable(categories []model.CategoryInfo, count func(n int) string, date DateFunc) string {
	if len(categories) == 0 {
		return "No categories found."
	}
	rows := make([][]string, len(categories))
	for i, c := range categories {
		rows[i] = []string{c.Slug, c.Name, count(c.PostCount), date(c.LatestDate)}
	}
	return renderTable([]string{"Slug", "Name", "Posts", "Latest"}, rows)
}

func renderTable(headers []string, rows [][]string) string {
	t := table.New().
		Headers(headers...).
		Rows(rows...).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("8"))).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerRowStyle
			}
			return cellStyle
		})
	return t.Render()
}
