package ui

import (
	"github.com/infratech/site/internal/navigation"
	"github.com/infratech/site/internal/route"
)

const (
	HeaderEventsURL = "/header/events"
	LogoURL         = "/static/images/logo.svg"
)

type HeaderLinkTemplateData struct {
	Name string
	Path string
}

type HeaderEntryTemplateData struct {
	Name        string
	Path        string
	HasChildren bool
	// Highlighted is set when the entry matches the current page or is the
	// expanded dropdown.
	Highlighted bool
	Expanded    bool
	Children    []HeaderLinkTemplateData
}

type HeaderTemplateData struct {
	Brand     string
	LogoURL   string
	EventsURL string
	Path      string
	State     navigation.State
	Entries   []HeaderEntryTemplateData

	// ScrollThreshold lets the client post scroll offsets only when they
	// cross it.
	ScrollThreshold int
}

// NewHeaderTemplateData derives everything the header template renders from
// the tree, the header state and the current path.
func NewHeaderTemplateData(brand string, tree *navigation.Tree, state navigation.State, path string) HeaderTemplateData {
	pathname := route.Pathname(path)

	entries := tree.Entries()

	data := HeaderTemplateData{
		Brand:     brand,
		LogoURL:   LogoURL,
		EventsURL: HeaderEventsURL,
		Path:      path,
		State:     state,
		Entries:   make([]HeaderEntryTemplateData, 0, len(entries)),

		ScrollThreshold: navigation.ScrollThreshold,
	}

	for _, e := range entries {
		expanded := e.HasChildren() && state.ActiveDropdown == e.Name

		entry := HeaderEntryTemplateData{
			Name:        e.Name,
			Path:        e.Path,
			HasChildren: e.HasChildren(),
			Highlighted: pathname == e.Path || state.ActiveDropdown == e.Name,
			Expanded:    expanded,
		}

		if expanded {
			entry.Children = make([]HeaderLinkTemplateData, 0, len(e.Children))
			for _, c := range e.Children {
				entry.Children = append(entry.Children, HeaderLinkTemplateData{Name: c.Name, Path: c.Path})
			}
		}

		data.Entries = append(data.Entries, entry)
	}

	return data
}
