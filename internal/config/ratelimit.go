package config

import "github.com/goccy/go-yaml"

type RateLimit struct {
	Enabled InterpolatedBool  `yaml:"enabled"`
	Rate    InterpolatedFloat `yaml:"rate"`
	Burst   InterpolatedInt   `yaml:"burst"`
}

func NewDefaultRateLimitConfig() RateLimit {
	return RateLimit{
		Enabled: true,
		Rate:    20,
		Burst:   40,
	}
}

func NewRateLimitConfigCommentMap() yaml.CommentMap {
	return yaml.CommentMap{
		"":         []*yaml.Comment{yaml.HeadComment(" Header events rate limiting, per client address")},
		".enabled": []*yaml.Comment{yaml.HeadComment(" Enable rate limiting")},
		".rate":    []*yaml.Comment{yaml.HeadComment(" Sustained events per second")},
		".burst":   []*yaml.Comment{yaml.HeadComment(" Maximum burst of events")},
	}
}
