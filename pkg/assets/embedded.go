package assets

import "io/fs"

const TypeEmbedded Type = "embed"

func init() {
	Register(TypeEmbedded, func(options any, embedded fs.FS) (fs.FS, error) {
		return embedded, nil
	})
}
