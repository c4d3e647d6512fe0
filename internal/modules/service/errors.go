package service

import (
	"errors"
	"fmt"
)

// ErrEmptyName rejects create/rename intents whose name trims to empty,
// before any remote call is made.
var ErrEmptyName = errors.New("name must not be empty")

// RemoteError wraps a failed backend call. Write distinguishes mutations from
// reads; the message is surfaced to the user through the status channel.
type RemoteError struct {
	Write bool
	Err   error
}

func (e *RemoteError) Error() string {
	if e.Write {
		return fmt.Sprintf("remote write failed: %v", e.Err)
	}
	return fmt.Sprintf("remote read failed: %v", e.Err)
}

func (e *RemoteError) Unwrap() error { return e.Err }

func remoteRead(err error) error  { return &RemoteError{Err: err} }
func remoteWrite(err error) error { return &RemoteError{Write: true, Err: err} }
