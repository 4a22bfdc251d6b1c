package model

import (
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"
)

// DateLayout is the layout used when folio writes a date.
const DateLayout = "2006-01-02"

var dateLayouts = []string{
	DateLayout,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04:05 -0700",
	"2006-01-02 15:04",
}

// ParseDate parses a front-matter date string.
func ParseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}

// DateValue holds a front-matter date exactly as written, whether the YAML
// scalar was quoted or a bare timestamp.
type DateValue string

func (d *DateValue) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: date must be a scalar", value.Line)
	}
	*d = DateValue(value.Value)
	return nil
}

func (d DateValue) Time() (time.Time, error) {
	return ParseDate(string(d))
}

// FrontMatter is the metadata block at the top of a post file.
type FrontMatter struct {
	Title string    `yaml:"title"`
	Date  DateValue `yaml:"date"`
	Links []Link    `yaml:"links,omitempty"`
}

// Validate checks the fields every post needs. Links are not checked.
func (fm *FrontMatter) Validate() error {
	return validation.ValidateStruct(fm,
		validation.Field(&fm.Title, validation.Required),
		validation.Field(&fm.Date, validation.Required, validation.By(parseableDate)),
	)
}

func parseableDate(value any) error {
	d, _ := value.(DateValue)
	if d == "" {
		return nil
	}
	if _, err := d.Time(); err != nil {
		return validation.NewError("validation_date_invalid", "must be a valid date")
	}
	return nil
}
