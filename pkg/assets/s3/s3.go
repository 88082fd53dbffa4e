package s3

import (
	"context"
	"io/fs"
	"log/slog"
	"path"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/infratech/site/pkg/assets"
	"github.com/infratech/site/pkg/assets/cor"
	"github.com/infratech/site/pkg/log"
	"github.com/laher/mergefs"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/pkg/errors"
)

const Type assets.Type = "s3"

func init() {
	assets.Register(Type, CreateFromOptions)
}

type Options struct {
	Endpoint        string `mapstructure:"endpoint" yaml:"endpoint"`
	AccessKeyID     string `mapstructure:"accessKeyId" yaml:"accessKeyId"`
	SecretAccessKey string `mapstructure:"secretAccessKey" yaml:"secretAccessKey"`
	Region          string `mapstructure:"region" yaml:"region"`
	Bucket          string `mapstructure:"bucket" yaml:"bucket"`
	Prefix          string `mapstructure:"prefix" yaml:"prefix"`
	Secure          bool   `mapstructure:"secure" yaml:"secure"`

	// Cache keeps objects up to CacheMaxSize bytes in memory once read.
	Cache        bool  `mapstructure:"cache" yaml:"cache"`
	CacheMaxSize int64 `mapstructure:"cacheMaxSize" yaml:"cacheMaxSize"`
}

const defaultCacheMaxSize = 1 << 20

// CreateFromOptions serves files from an S3 bucket. Objects missing from the
// bucket are looked up in the embedded assets.
func CreateFromOptions(options any, embedded fs.FS) (fs.FS, error) {
	opts := Options{
		Cache:        true,
		CacheMaxSize: defaultCacheMaxSize,
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &opts,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "could not create '%s' assets options decoder", Type)
	}

	if err := decoder.Decode(options); err != nil {
		return nil, errors.Wrapf(err, "could not parse '%s' assets options", Type)
	}

	if opts.Endpoint == "" || opts.Bucket == "" {
		return nil, errors.Errorf("'%s' assets backend: 'endpoint' and 'bucket' options are required", Type)
	}

	client, err := minio.New(opts.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(opts.AccessKeyID, opts.SecretAccessKey, ""),
		Secure: opts.Secure,
		Region: opts.Region,
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	scheme := "http"
	if opts.Secure {
		scheme = "https"
	}

	slog.Info("serving assets from s3",
		log.ScrubbedURL("endpoint", scheme+"://"+opts.Endpoint),
		slog.String("bucket", opts.Bucket),
		slog.String("prefix", opts.Prefix),
	)

	var fsys fs.FS = NewFileSystem(client, opts.Bucket, opts.Prefix)

	if opts.Cache {
		fsys = cor.New(fsys, opts.CacheMaxSize)
	}

	if embedded == nil {
		return fsys, nil
	}

	return mergefs.Merge(fsys, embedded), nil
}

// FileSystem exposes the objects of a bucket as a read-only fs.FS.
type FileSystem struct {
	client *minio.Client
	bucket string
	prefix string
}

// Open implements fs.FS.
func (f *FileSystem) Open(name string) (fs.File, error) {
	if !fs.ValidPath(name) {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrInvalid}
	}

	if name == "." {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}

	ctx := context.Background()

	key := f.key(name)

	obj, err := f.client.GetObject(ctx, f.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, &fs.PathError{Op: "open", Path: name, Err: translateError(err)}
	}

	info, err := obj.Stat()
	if err != nil {
		obj.Close()
		return nil, &fs.PathError{Op: "open", Path: name, Err: translateError(err)}
	}

	return &File{
		Object: obj,
		info:   info,
	}, nil
}

// Stat implements fs.StatFS.
func (f *FileSystem) Stat(name string) (fs.FileInfo, error) {
	if !fs.ValidPath(name) {
		return nil, &fs.PathError{Op: "stat", Path: name, Err: fs.ErrInvalid}
	}

	info, err := f.client.StatObject(context.Background(), f.bucket, f.key(name), minio.StatObjectOptions{})
	if err != nil {
		return nil, &fs.PathError{Op: "stat", Path: name, Err: translateError(err)}
	}

	return &fileInfo{info}, nil
}

func (f *FileSystem) key(name string) string {
	return strings.TrimPrefix(path.Join(f.prefix, name), "/")
}

func NewFileSystem(client *minio.Client, bucket, prefix string) *FileSystem {
	return &FileSystem{
		client: client,
		bucket: bucket,
		prefix: strings.Trim(prefix, "/"),
	}
}

func translateError(err error) error {
	switch minio.ToErrorResponse(err).Code {
	case "NoSuchKey", "NoSuchBucket", "NotFound":
		return fs.ErrNotExist
	case "AccessDenied":
		return fs.ErrPermission
	default:
		return errors.WithStack(err)
	}
}

var (
	_ fs.FS     = &FileSystem{}
	_ fs.StatFS = &FileSystem{}
)
