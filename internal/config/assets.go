package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/infratech/site/pkg/assets"
	"github.com/infratech/site/pkg/assets/local"
	"github.com/infratech/site/pkg/assets/s3"
	"github.com/pkg/errors"
)

type Assets struct {
	Type    InterpolatedString `yaml:"type"`
	Options *InterpolatedMap   `yaml:"options"`
}

func NewDefaultAssetsConfig() Assets {
	return Assets{
		Type: InterpolatedString(fmt.Sprintf("${SITE_ASSETS_TYPE:-%s}", assets.TypeEmbedded)),
		Options: &InterpolatedMap{
			Data: map[string]any{
				"dir": "${SITE_ASSETS_DIR:-./static}",
			},
		},
	}
}

func NewAssetsConfigCommentMap() yaml.CommentMap {
	return yaml.CommentMap{
		"":      []*yaml.Comment{yaml.HeadComment(" Static assets configuration")},
		".type": []*yaml.Comment{yaml.HeadComment(" Assets backend type", fmt.Sprintf(" Available: %v", assets.Registered()))},
		".options": []*yaml.Comment{
			yaml.HeadComment(" Backend options"),
			getAssetsOptionComment("Local backend", local.Options{}),
			getAssetsOptionComment("S3 backend", s3.Options{}),
		},
	}
}

func getAssetsOptionComment(message string, opts any) *yaml.Comment {
	rawOpts, err := yaml.Marshal(opts)
	if err != nil {
		panic(errors.WithStack(err))
	}

	comments := []string{message, "options:"}
	comments = append(comments, slices.Collect(func(yield func(string) bool) {
		for _, str := range strings.Split(strings.TrimSpace(string(rawOpts)), "\n") {
			if !yield("  " + str) {
				return
			}
		}
	})...)

	return yaml.FootComment(comments...)
}
