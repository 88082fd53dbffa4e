package setup

import (
	"context"
	"io/fs"
	"log/slog"

	"github.com/infratech/site/internal/config"
	"github.com/infratech/site/internal/site"
	"github.com/infratech/site/pkg/assets"
	"github.com/pkg/errors"
)

func NewAssetsFromConfig(ctx context.Context, conf *config.Config) (fs.FS, error) {
	var options any
	if conf.Assets.Options != nil {
		options = conf.Assets.Options.Data
	}

	typ := assets.Type(conf.Assets.Type)

	fsys, err := assets.New(typ, options, site.StaticFS())
	if err != nil {
		return nil, errors.Wrapf(err, "could not create assets backend '%s'", typ)
	}

	slog.DebugContext(ctx, "assets backend ready", slog.String("type", string(typ)))

	return fsys, nil
}
