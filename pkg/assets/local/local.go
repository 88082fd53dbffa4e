package local

import (
	"io/fs"
	"os"

	"github.com/go-viper/mapstructure/v2"
	"github.com/infratech/site/pkg/assets"
	"github.com/laher/mergefs"
	"github.com/pkg/errors"
)

const Type assets.Type = "local"

func init() {
	assets.Register(Type, CreateFromOptions)
}

type Options struct {
	Dir string `mapstructure:"dir" yaml:"dir"`
}

// CreateFromOptions serves files from a local directory. Files missing from
// the directory are looked up in the embedded assets.
func CreateFromOptions(options any, embedded fs.FS) (fs.FS, error) {
	opts := Options{}

	if err := mapstructure.Decode(options, &opts); err != nil {
		return nil, errors.Wrapf(err, "could not parse '%s' assets options", Type)
	}

	if opts.Dir == "" {
		return nil, errors.Errorf("'%s' assets backend: missing 'dir' option", Type)
	}

	info, err := os.Stat(opts.Dir)
	if err != nil {
		return nil, errors.Wrapf(err, "'%s' assets backend", Type)
	}

	if !info.IsDir() {
		return nil, errors.Errorf("'%s' assets backend: '%s' is not a directory", Type, opts.Dir)
	}

	return mergefs.Merge(os.DirFS(opts.Dir), embedded), nil
}
