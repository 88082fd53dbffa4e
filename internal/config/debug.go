package config

import "github.com/goccy/go-yaml"

type Debug struct {
	Metrics InterpolatedBool `yaml:"metrics"`
	Pprof   InterpolatedBool `yaml:"pprof"`
}

func NewDefaultDebugConfig() Debug {
	return Debug{
		Metrics: true,
		Pprof:   false,
	}
}

func NewDebugConfigCommentMap() yaml.CommentMap {
	return yaml.CommentMap{
		"":         []*yaml.Comment{yaml.HeadComment(" Debug endpoints")},
		".metrics": []*yaml.Comment{yaml.HeadComment(" Expose prometheus metrics on /metrics")},
		".pprof":   []*yaml.Comment{yaml.HeadComment(" Expose profiling endpoints on /debug/pprof")},
	}
}
