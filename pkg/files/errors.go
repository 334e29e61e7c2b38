package files

import (
	"errors"
	"fmt"
	"strings"
)

type Op string

const (
	OpList     Op = "list"
	OpDownload Op = "download"
	OpDelete   Op = "delete"
	OpStats    Op = "stats"
)

var (
	ErrList     = errors.New("list failed")
	ErrDownload = errors.New("download failed")
	ErrDelete   = errors.New("delete failed")
	ErrStats    = errors.New("stats failed")
)

func (op Op) sentinel() error {
	switch op {
	case OpList:
		return ErrList
	case OpDownload:
		return ErrDownload
	case OpDelete:
		return ErrDelete
	case OpStats:
		return ErrStats
	default:
		return nil
	}
}

// RemoteError is returned by every failed store operation.
// StatusCode is zero when the request never got a response.
type RemoteError struct {
	Op         Op
	Path       string
	StatusCode int
	Status     string
	Err        error
}

func (e *RemoteError) Error() string {
	var sb strings.Builder
	sb.WriteString(string(e.Op))
	if e.Path != "" {
		sb.WriteString(" ")
		sb.WriteString(fmt.Sprintf("%q", e.Path))
	}
	sb.WriteString(": ")
	sb.WriteString(e.Reason())
	return sb.String()
}

// Reason is the short user-facing cause, e.g. "HTTP 404: Not Found".
func (e *RemoteError) Reason() string {
	if e.StatusCode != 0 {
		if e.Status == "" {
			return fmt.Sprintf("HTTP %d", e.StatusCode)
		}
		return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Status)
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

func (e *RemoteError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if s := e.Op.sentinel(); s != nil {
		errs = append(errs, s)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

// Reason extracts the user-facing cause of err.
func Reason(err error) string {
	if err == nil {
		return ""
	}
	var remoteErr *RemoteError
	if errors.As(err, &remoteErr) {
		return remoteErr.Reason()
	}
	return err.Error()
}
