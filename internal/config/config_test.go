package config

import (
	"bytes"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/infratech/site/pkg/assets"
	"github.com/pkg/errors"
)

func TestLoadFile(t *testing.T) {
	getEnv = func(key string) string {
		return map[string]string{
			"TEST_S3_ENDPOINT": "minio:9000",
		}[key]
	}
	defer func() {
		getEnv = os.Getenv
	}()

	conf := NewDefaultConfig()

	if err := LoadFile("testdata/config/site.yml", conf); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := -4, int(conf.Logger.Level); e != g {
		t.Errorf("conf.Logger.Level: expected '%v', got '%v'", e, g)
	}

	if e, g := LoggerFormatJSON, conf.Logger.Format.String(); e != g {
		t.Errorf("conf.Logger.Format: expected '%v', got '%v'", e, g)
	}

	if e, g := ":9090", conf.HTTP.Address.String(); e != g {
		t.Errorf("conf.HTTP.Address: expected '%v', got '%v'", e, g)
	}

	if e, g := 10*time.Second, time.Duration(*conf.HTTP.ShutdownTimeout); e != g {
		t.Errorf("conf.HTTP.ShutdownTimeout: expected '%v', got '%v'", e, g)
	}

	if e, g := "./content.yml", conf.Site.Content.String(); e != g {
		t.Errorf("conf.Site.Content: expected '%v', got '%v'", e, g)
	}

	if e, g := "s3", conf.Assets.Type.String(); e != g {
		t.Errorf("conf.Assets.Type: expected '%v', got '%v'", e, g)
	}

	if e, g := "minio:9000", conf.Assets.Options.Data["endpoint"]; e != g {
		t.Errorf("conf.Assets.Options.Data[\"endpoint\"]: expected '%v', got '%v'", e, g)
	}

	if e, g := false, bool(conf.RateLimit.Enabled); e != g {
		t.Errorf("conf.RateLimit.Enabled: expected '%v', got '%v'", e, g)
	}

	// Sections absent from the file keep their defaults
	if e, g := 40, int(conf.RateLimit.Burst); e != g {
		t.Errorf("conf.RateLimit.Burst: expected '%v', got '%v'", e, g)
	}

	if e, g := true, bool(conf.Debug.Pprof); e != g {
		t.Errorf("conf.Debug.Pprof: expected '%v', got '%v'", e, g)
	}
}

func TestInterpolateDefaults(t *testing.T) {
	getEnv = func(key string) string {
		return map[string]string{
			"SITE_HTTP_ADDRESS": "127.0.0.1:3000",
		}[key]
	}
	defer func() {
		getEnv = os.Getenv
	}()

	conf := NewDefaultConfig()

	if err := Interpolate(conf); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := "127.0.0.1:3000", conf.HTTP.Address.String(); e != g {
		t.Errorf("conf.HTTP.Address: expected '%v', got '%v'", e, g)
	}

	if e, g := string(assets.TypeEmbedded), conf.Assets.Type.String(); e != g {
		t.Errorf("conf.Assets.Type: expected '%v', got '%v'", e, g)
	}

	if e, g := "Infra Tech Solution", conf.Site.Title.String(); e != g {
		t.Errorf("conf.Site.Title: expected '%v', got '%v'", e, g)
	}

	if e, g := "", conf.Site.Content.String(); e != g {
		t.Errorf("conf.Site.Content: expected '%v', got '%v'", e, g)
	}

	if e, g := defaultShutdownTimeout, time.Duration(*conf.HTTP.ShutdownTimeout); e != g {
		t.Errorf("conf.HTTP.ShutdownTimeout: expected '%v', got '%v'", e, g)
	}

	if e, g := false, bool(conf.HTTP.TrustProxy); e != g {
		t.Errorf("conf.HTTP.TrustProxy: expected '%v', got '%v'", e, g)
	}
}

func TestDumpComments(t *testing.T) {
	var buff bytes.Buffer

	if err := Dump(&buff, NewDefaultConfig()); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	dumped := buff.String()

	for _, expected := range []string{"Webserver configuration", "Static assets configuration", "rateLimit:", "trustProxy: false"} {
		if !strings.Contains(dumped, expected) {
			t.Errorf("dump: expected to contain '%s'", expected)
		}
	}
}
