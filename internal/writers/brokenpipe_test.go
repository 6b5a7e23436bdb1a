package writers

import (
	"errors"
	"fmt"
	"io"
	"net"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsBrokenPipe(t *testing.T) {
	cases := []struct {
		err  error
		want bool
	}{
		{nil, false},
		{syscall.EPIPE, true},
		{fmt.Errorf("write stdout: %w", syscall.EPIPE), true},
		{syscall.ECONNRESET, true},
		{io.ErrClosedPipe, true},
		{fmt.Errorf("write: %w", net.ErrClosed), true},
		{errors.New("disk full"), false},
	}
	for _, c := range cases {
		if got := IsBrokenPipe(c.err); got != c.want {
			t.Errorf("IsBrokenPipe(%v) = %v, want %v", c.err, got, c.want)
		}
	}
}

func TestIgnoreBrokenPipe(t *testing.T) {
	assert.NoError(t, IgnoreBrokenPipe(syscall.EPIPE))
	assert.NoError(t, IgnoreBrokenPipe(nil))
	full := errors.New("disk full")
	assert.Same(t, full, IgnoreBrokenPipe(full))
}
