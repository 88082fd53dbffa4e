package config

import (
	"time"

	"github.com/goccy/go-yaml"
)

const defaultShutdownTimeout = 5 * time.Second

type Site struct {
	Title   InterpolatedString `yaml:"title"`
	Content InterpolatedString `yaml:"content"`
}

func NewDefaultSiteConfig() Site {
	return Site{
		Title:   "${SITE_TITLE:-Infra Tech Solution}",
		Content: "${SITE_CONTENT_FILE:-}",
	}
}

func NewSiteConfigCommentMap() yaml.CommentMap {
	return yaml.CommentMap{
		"":         []*yaml.Comment{yaml.HeadComment(" Site configuration")},
		".title":   []*yaml.Comment{yaml.HeadComment(" Name displayed in page titles")},
		".content": []*yaml.Comment{yaml.HeadComment(" Optional YAML file replacing the built-in homepage content")},
	}
}
