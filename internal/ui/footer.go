package ui

import (
	"time"

	"github.com/infratech/site/internal/navigation"
)

type FooterTemplateData struct {
	Brand   string
	Tagline string
	Year    int
	Links   []HeaderLinkTemplateData
}

func NewFooterTemplateData(brand, tagline string, tree *navigation.Tree, now time.Time) FooterTemplateData {
	entries := tree.Entries()

	links := make([]HeaderLinkTemplateData, 0, len(entries)+1)
	for _, e := range entries {
		links = append(links, HeaderLinkTemplateData{Name: e.Name, Path: e.Path})
	}

	links = append(links, HeaderLinkTemplateData{Name: "Contact", Path: navigation.ContactPath})

	return FooterTemplateData{
		Brand:   brand,
		Tagline: tagline,
		Year:    now.Year(),
		Links:   links,
	}
}
