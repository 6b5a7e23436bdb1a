//go:build unix

package appshell

import (
	"context"
	"io"
	"syscall"
	"testing"
	"time"
)

func TestExecSignalExit130(t *testing.T) {
	code := Exec(func(ctx context.Context, _ []string, _, _ io.Writer) int {
		_ = syscall.Kill(syscall.Getpid(), syscall.SIGTERM)
		select {
		case <-ctx.Done():
		case <-time.After(5 * time.Second):
			t.Error("context not canceled by SIGTERM")
		}
		return 0
	}, nil, io.Discard, io.Discard)
	if code != 130 {
		t.Fatalf("want 130 after SIGTERM, got %d", code)
	}
}
