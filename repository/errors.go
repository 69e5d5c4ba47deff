package repository

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"syscall"
)

var (
	ErrDocumentExists     = errors.New("document already exists")
	ErrDocumentNotFound   = errors.New("document not found")
	ErrBackendUnavailable = errors.New("document store unavailable")
)

// classify wraps connectivity failures with ErrBackendUnavailable and leaves other errors
// untouched.
func classify(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrDocumentExists) || errors.Is(err, ErrDocumentNotFound) {
		return err
	}
	if isUnavailable(err) {
		return fmt.Errorf("%s: %w: %v", op, ErrBackendUnavailable, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}

func isUnavailable(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return true
	}
	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, net.ErrClosed) {
		return true
	}
	if errors.Is(err, syscall.ECONNREFUSED) || errors.Is(err, syscall.ECONNRESET) || errors.Is(err, syscall.EPIPE) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}
