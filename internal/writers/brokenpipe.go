package writers

import (
	"errors"
	"io"
	"net"
	"syscall"
)

// IsBrokenPipe reports whether err means the reader went away: a pipe
// closed by `head`, or a socket the peer already shut.
func IsBrokenPipe(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, syscall.EPIPE) ||
		errors.Is(err, syscall.ECONNRESET) ||
		errors.Is(err, io.ErrClosedPipe) ||
		errors.Is(err, net.ErrClosed)
}

// IgnoreBrokenPipe drops a broken-pipe error and returns any other.
func IgnoreBrokenPipe(err error) error {
	if IsBrokenPipe(err) {
		return nil
	}
	return err
}
