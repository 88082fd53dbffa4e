package ui

import (
	"bytes"
	"strconv"
	"strings"
	"testing"

	"github.com/infratech/site/internal/navigation"
	"github.com/pkg/errors"
	"golang.org/x/net/html"
)

func TestNewHeaderTemplateData(t *testing.T) {
	data := NewHeaderTemplateData("Infra Tech", navigation.DefaultTree, navigation.State{
		DrawerOpen:     true,
		ActiveDropdown: "Services",
	}, "/about?ref=home")

	if e, g := navigation.DefaultTree.Len(), len(data.Entries); e != g {
		t.Fatalf("len(data.Entries): expected '%v', got '%v'", e, g)
	}

	highlighted := map[string]bool{}
	for _, e := range data.Entries {
		highlighted[e.Name] = e.Highlighted

		if e.Name != "Services" && len(e.Children) > 0 {
			t.Errorf("entry '%s': children should only be listed when expanded", e.Name)
		}
	}

	expected := map[string]bool{
		"Home":     false,
		"About Us": true,
		"Services": true,
		"Mission":  false,
	}

	for name, e := range expected {
		if g := highlighted[name]; e != g {
			t.Errorf("entry '%s' highlighted: expected '%v', got '%v'", name, e, g)
		}
	}

	services := data.Entries[2]
	if !services.Expanded {
		t.Error("entry 'Services' should be expanded")
	}

	if e, g := 6, len(services.Children); e != g {
		t.Errorf("len(services.Children): expected '%v', got '%v'", e, g)
	}
}

func TestHeaderTemplate(t *testing.T) {
	tmpl, err := Templates(nil)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	type testCase struct {
		Name           string
		State          navigation.State
		ExpectDrawer   bool
		ExpectChildren int
		ExpectScrolled bool
	}

	testCases := []testCase{
		{
			Name:  "closed",
			State: navigation.State{ActiveDropdown: "Services"},
		},
		{
			Name:         "open",
			State:        navigation.State{DrawerOpen: true},
			ExpectDrawer: true,
		},
		{
			Name:           "open with dropdown",
			State:          navigation.State{DrawerOpen: true, ActiveDropdown: "Services", Scrolled: true},
			ExpectDrawer:   true,
			ExpectChildren: 6,
			ExpectScrolled: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			var buff bytes.Buffer

			data := NewHeaderTemplateData("Infra Tech", navigation.DefaultTree, tc.State, "/")

			if err := tmpl.ExecuteTemplate(&buff, "header", data); err != nil {
				t.Fatalf("%+v", errors.WithStack(err))
			}

			doc, err := html.Parse(&buff)
			if err != nil {
				t.Fatalf("%+v", errors.WithStack(err))
			}

			drawers := findAll(doc, hasAttr("data-testid", "drawer"))
			if e, g := tc.ExpectDrawer, len(drawers) == 1; e != g {
				t.Errorf("drawer rendered: expected '%v', got '%v'", e, g)
			}

			backdrops := findAll(doc, hasAttr("data-testid", "backdrop"))
			if e, g := tc.ExpectDrawer, len(backdrops) == 1; e != g {
				t.Errorf("backdrop rendered: expected '%v', got '%v'", e, g)
			}

			children := findAll(doc, hasClass("drawer__child"))
			if e, g := tc.ExpectChildren, len(children); e != g {
				t.Errorf("children rendered: expected '%v', got '%v'", e, g)
			}

			navs := findAll(doc, hasAttr("id", "site-header"))
			if len(navs) != 1 {
				t.Fatalf("expected exactly one header, got %d", len(navs))
			}

			if e, g := tc.ExpectScrolled, hasClass("site-header--scrolled")(navs[0]); e != g {
				t.Errorf("scrolled class: expected '%v', got '%v'", e, g)
			}

			if e, g := strconv.Itoa(navigation.ScrollThreshold), attr(navs[0], "data-scroll-threshold"); e != g {
				t.Errorf("scroll threshold: expected '%v', got '%v'", e, g)
			}

			inputs := findAll(doc, hasAttr("name", "dropdown"))
			if len(inputs) != 1 {
				t.Fatalf("expected exactly one dropdown input, got %d", len(inputs))
			}

			if e, g := tc.State.ActiveDropdown, attr(inputs[0], "value"); e != g {
				t.Errorf("dropdown input: expected '%v', got '%v'", e, g)
			}
		})
	}
}

func TestSlug(t *testing.T) {
	testCases := map[string]string{
		"Retail & E-Commerce": "retail-e-commerce",
		"About Us":            "about-us",
		"  Cloud Computing ":  "cloud-computing",
	}

	for input, expected := range testCases {
		if g := Slug(input); expected != g {
			t.Errorf("Slug(%q): expected '%v', got '%v'", input, expected, g)
		}
	}
}

func findAll(n *html.Node, match func(n *html.Node) bool) []*html.Node {
	var found []*html.Node

	if n.Type == html.ElementNode && match(n) {
		found = append(found, n)
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		found = append(found, findAll(c, match)...)
	}

	return found
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}

	return ""
}

func hasAttr(key, value string) func(n *html.Node) bool {
	return func(n *html.Node) bool {
		return attr(n, key) == value
	}
}

func hasClass(class string) func(n *html.Node) bool {
	return func(n *html.Node) bool {
		for _, c := range strings.Fields(attr(n, "class")) {
			if c == class {
				return true
			}
		}

		return false
	}
}
