package setup

import (
	"context"
	"log/slog"

	"github.com/infratech/site/internal/config"
	"github.com/infratech/site/internal/site"
	"github.com/pkg/errors"
)

func NewContentFromConfig(ctx context.Context, conf *config.Config) (*site.Content, error) {
	path := conf.Site.Content.String()
	if path == "" {
		return site.DefaultContent(), nil
	}

	content, err := site.LoadContent(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	slog.InfoContext(ctx, "homepage content loaded", slog.String("file", path))

	return content, nil
}
