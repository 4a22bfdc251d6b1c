// Package datefmt renders post dates the way the site config asks for,
// with month names in the configured locale.
package datefmt

import (
	"fmt"
	"time"

	"github.com/goodsign/monday"
	"github.com/rogersnm/folio/internal/config"
	"github.com/rogersnm/folio/internal/model"
	"golang.org/x/text/language"
)

type Formatter struct {
	locale monday.Locale
	layout string
}

func New(f config.DateFormat) (*Formatter, error) {
	tag := language.AmericanEnglish
	if f.Locale != "" {
		var err error
		tag, err = language.Parse(f.Locale)
		if err != nil {
			return nil, fmt.Errorf("invalid date locale %q: %w", f.Locale, err)
		}
	}
	base, _ := tag.Base()
	region, _ := tag.Region()

	layout, err := layoutFor(base.String(), region.String(), f.Options)
	if err != nil {
		return nil, err
	}
	return &Formatter{
		locale: monday.Locale(base.String() + "_" + region.String()),
		layout: layout,
	}, nil
}

func (f *Formatter) Format(t time.Time) string {
	return monday.Format(t, f.layout, f.locale)
}

// FormatString formats a front-matter date, returning it unchanged when it
// cannot be parsed.
func (f *Formatter) FormatString(date string) string {
	t, err := model.ParseDate(date)
	if err != nil {
		return date
	}
	return f.Format(t)
}

func layoutFor(lang, region string, opts config.DateOptions) (string, error) {
	year, err := pick("year", opts.Year, map[string]string{"numeric": "2006", "2-digit": "06"})
	if err != nil {
		return "", err
	}
	month, err := pick("month", opts.Month, map[string]string{
		"numeric": "1", "2-digit": "01", "short": "Jan", "long": "January",
	})
	if err != nil {
		return "", err
	}
	day, err := pick("day", opts.Day, map[string]string{"numeric": "2", "2-digit": "02"})
	if err != nil {
		return "", err
	}

	numeric := month != "Jan" && month != "January"
	switch {
	case lang == "en" && region == "US":
		if numeric {
			return month + "/" + day + "/" + year, nil
		}
		return month + " " + day + ", " + year, nil
	case lang == "de":
		if numeric {
			return day + "." + month + "." + year, nil
		}
		return day + ". " + month + " " + year, nil
	case numeric:
		return day + "/" + month + "/" + year, nil
	default:
		return day + " " + month + " " + year, nil
	}
}

func pick(field, value string, layouts map[string]string) (string, error) {
	if value == "" {
		value = "numeric"
	}
	l, ok := layouts[value]
	if !ok {
		return "", fmt.Errorf("unsupported %s option %q", field, value)
	}
	return l, nil
}
