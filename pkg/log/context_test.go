package log

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestContextHandler(t *testing.T) {
	var buff bytes.Buffer

	logger := slog.New(ContextHandler{
		Handler: slog.NewTextHandler(&buff, &slog.HandlerOptions{}),
	})

	ctx := WithAttrs(context.Background(), slog.String("header", "abc"))
	ctx = WithAttrs(ctx, slog.String("event", "open"))

	logger.InfoContext(ctx, "dispatched")

	output := buff.String()

	for _, expected := range []string{"header=abc", "event=open", "msg=dispatched"} {
		if !strings.Contains(output, expected) {
			t.Errorf("output: expected to contain '%s', got '%s'", expected, output)
		}
	}
}
