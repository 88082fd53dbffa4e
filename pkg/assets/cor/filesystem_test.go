package cor

import (
	"io"
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/pkg/errors"
)

type countingFS struct {
	fs.FS
	opens map[string]int
}

func (c *countingFS) Open(name string) (fs.File, error) {
	c.opens[name]++
	return c.FS.Open(name)
}

func TestFileSystem(t *testing.T) {
	backend := &countingFS{
		FS: fstest.MapFS{
			"styles.css":        {Data: []byte("body{}")},
			"images/banner.png": {Data: make([]byte, 2048)},
		},
		opens: map[string]int{},
	}

	fsys := New(backend, 1024)

	for range 3 {
		file, err := fsys.Open("styles.css")
		if err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}

		data, err := io.ReadAll(file)
		if err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}

		if e, g := "body{}", string(data); e != g {
			t.Errorf("data: expected '%v', got '%v'", e, g)
		}

		if err := file.Close(); err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}
	}

	if e, g := 1, backend.opens["styles.css"]; e != g {
		t.Errorf("backend opens of 'styles.css': expected '%v', got '%v'", e, g)
	}

	// Files over the size limit always come from the backend
	for range 2 {
		file, err := fsys.Open("images/banner.png")
		if err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}
		file.Close()
	}

	if e, g := 2, backend.opens["images/banner.png"]; e != g {
		t.Errorf("backend opens of 'images/banner.png': expected '%v', got '%v'", e, g)
	}

	if _, err := fsys.Open("missing.js"); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected fs.ErrNotExist, got '%v'", err)
	}
}

func TestFileSeek(t *testing.T) {
	fsys := New(fstest.MapFS{"app.js": {Data: []byte("console.log(1)")}}, 1024)

	file, err := fsys.Open("app.js")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	seeker, ok := file.(io.Seeker)
	if !ok {
		t.Fatal("cached files should implement io.Seeker")
	}

	size, err := seeker.Seek(0, io.SeekEnd)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := int64(14), size; e != g {
		t.Errorf("size: expected '%v', got '%v'", e, g)
	}

	info, err := file.Stat()
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := "app.js", info.Name(); e != g {
		t.Errorf("info.Name(): expected '%v', got '%v'", e, g)
	}
}
