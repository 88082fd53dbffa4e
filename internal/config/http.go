package config

import "github.com/goccy/go-yaml"

type HTTP struct {
	Address         InterpolatedString    `yaml:"address"`
	ShutdownTimeout *InterpolatedDuration `yaml:"shutdownTimeout"`
	TrustProxy      InterpolatedBool      `yaml:"trustProxy"`
}

func NewDefaultHTTPConfig() HTTP {
	return HTTP{
		Address:         "${SITE_HTTP_ADDRESS:-:8080}",
		ShutdownTimeout: NewInterpolatedDuration(defaultShutdownTimeout),
		TrustProxy:      false,
	}
}

func NewHTTPConfigCommentMap() yaml.CommentMap {
	return yaml.CommentMap{
		"":                 []*yaml.Comment{yaml.HeadComment(" Webserver configuration")},
		".address":         []*yaml.Comment{yaml.HeadComment(" Webserver's listening address")},
		".shutdownTimeout": []*yaml.Comment{yaml.HeadComment(" Maximum time allowed to in-flight requests on shutdown")},
		".trustProxy":      []*yaml.Comment{yaml.HeadComment(" Use the X-Forwarded-For/X-Real-IP headers as client address", " Only enable behind a reverse proxy overwriting these headers")},
	}
}
