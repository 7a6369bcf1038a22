package types

import (
	"context"
	"io"

	_ftp "github.com/jlaffaye/ftp"
)

// Mode represents which of the two FTPS flavors a client speaks.
type Mode int

const (
	// ModeExplicit upgrades a plaintext control channel with AUTH TLS.
	ModeExplicit Mode = iota
	// ModeImplicit negotiates TLS immediately upon connection.
	ModeImplicit
)

// String returns "explicit" or "implicit".
func (m Mode) String() string {
	if m == ModeImplicit {
		return "implicit"
	}
	return "explicit"
}

// Transport is the capability set shared by the explicit and implicit FTPS strategies.
type Transport interface {
	Connect(ctx context.Context) error
	Get(ctx context.Context, w io.Writer, remotePath string) error
	Put(ctx context.Context, r io.Reader, remotePath string) error
	Rename(ctx context.Context, from, to string) error
	Delete(ctx context.Context, path string) error
	List(ctx context.Context, path string) ([]string, error)
	Close() error
}

// Session is the subset of a stateful FTP control-channel session used by the explicit transport.
// It mirrors *ftp.ServerConn from github.com/jlaffaye/ftp, with Retr returning an io.ReadCloser.
type Session interface {
	Login(user, password string) error
	Type(transferType _ftp.TransferType) error
	Retr(path string) (io.ReadCloser, error)
	Stor(path string, r io.Reader) error
	Rename(from, to string) error
	Delete(path string) error
	NameList(path string) ([]string, error)
	Quit() error
}

// Engine hands out fresh transfer handles. Every handle must be closed by the caller.
type Engine interface {
	Open() (Handle, error)
}

// Handle is a single-use URL transfer request.
type Handle interface {
	// Apply sets the full option set for the next Perform.
	Apply(opts TransferOptions) error
	// Perform executes the request and returns the captured response body (when requested).
	Perform(ctx context.Context) (string, error)
	// Close releases the handle.
	Close() error
}
