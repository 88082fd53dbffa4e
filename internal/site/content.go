package site

import (
	"os"

	"github.com/goccy/go-yaml"
	"github.com/pkg/errors"
)

type Link struct {
	Label string `yaml:"label"`
	Path  string `yaml:"path"`
}

type Hero struct {
	Badge       string `yaml:"badge"`
	Title       string `yaml:"title"`
	Highlight   string `yaml:"highlight"`
	Subtitle    string `yaml:"subtitle"`
	Description string `yaml:"description"`
	Primary     Link   `yaml:"primary"`
	Secondary   Link   `yaml:"secondary"`
}

type ServiceCard struct {
	Icon        string `yaml:"icon"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Path        string `yaml:"path"`
}

type Expertise struct {
	Title    string        `yaml:"title"`
	Subtitle string        `yaml:"subtitle"`
	Cards    []ServiceCard `yaml:"cards"`
}

type Stat struct {
	Value  int    `yaml:"value"`
	Suffix string `yaml:"suffix"`
	Label  string `yaml:"label"`
}

type WhyUs struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Reasons     []string `yaml:"reasons"`
	Stats       []Stat   `yaml:"stats"`
	Action      Link     `yaml:"action"`
}

type CallToAction struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Action      Link   `yaml:"action"`
}

// ServiceSection is a block of the services page, reachable through its
// anchor.
type ServiceSection struct {
	Anchor      string `yaml:"anchor"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

type Page struct {
	Title string   `yaml:"title"`
	Intro string   `yaml:"intro"`
	Body  []string `yaml:"body"`
}

type Content struct {
	Tagline      string           `yaml:"tagline"`
	Hero         Hero             `yaml:"hero"`
	Expertise    Expertise        `yaml:"expertise"`
	WhyUs        WhyUs            `yaml:"whyUs"`
	CallToAction CallToAction     `yaml:"callToAction"`
	Services     []ServiceSection `yaml:"services"`
	About        Page             `yaml:"about"`
	Mission      Page             `yaml:"mission"`
	Contact      Page             `yaml:"contact"`
}

func (c *Content) Validate() error {
	if c.Hero.Title == "" {
		return errors.New("hero title is required")
	}

	if len(c.Expertise.Cards) == 0 {
		return errors.New("at least one service card is required")
	}

	anchors := make(map[string]struct{}, len(c.Services))
	for _, s := range c.Services {
		if s.Anchor == "" {
			return errors.Errorf("service section '%s' has no anchor", s.Title)
		}

		if _, exists := anchors[s.Anchor]; exists {
			return errors.Errorf("duplicate service anchor '%s'", s.Anchor)
		}

		anchors[s.Anchor] = struct{}{}
	}

	return nil
}

// LoadContent reads a content file. Sections missing from the file keep the
// values of DefaultContent.
func LoadContent(path string) (*Content, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	content := DefaultContent()

	if err := yaml.Unmarshal(data, content); err != nil {
		return nil, errors.Wrapf(err, "could not parse content file '%s'", path)
	}

	if err := content.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid content file '%s'", path)
	}

	return content, nil
}
