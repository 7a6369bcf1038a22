package explicit

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"net"
	"time"

	_ftp "github.com/jlaffaye/ftp"
	"github.com/sirupsen/logrus"

	"github.com/c2fo/ftps/types"
)

// State is the connection state of an explicit transport.
type State int

const (
	// StateDisconnected - no session is held
	StateDisconnected State = iota
	// StateConnecting - dial, login and mode setup are in progress
	StateConnecting
	// StateConnected - the session is logged in and ready
	StateConnected
)

func (s State) String() string {
	switch s {
	case StateConnecting:
		return "connecting"
	case StateConnected:
		return "connected"
	default:
		return "disconnected"
	}
}

var errActiveMode = errors.New("active mode is not supported, data connections are always passive")

// Config holds everything needed to open an explicit FTPS session.
type Config struct {
	Host     string
	Port     int
	User     string
	Password string
	Passive  bool
	Binary   bool

	TLSConfig   *tls.Config
	DialTimeout time.Duration
	DisableEPSV bool
	DebugWriter io.Writer
	DialFunc    func(network, address string) (net.Conn, error)

	// SessionGetter replaces dialing, ie: to supply an already dialed session.
	SessionGetter func(ctx context.Context) (types.Session, error)

	Logger logrus.FieldLogger
}

// Transport is the explicit FTPS strategy: one long-lived control-channel session.
type Transport struct {
	cfg     Config
	session types.Session
	state   State
	log     logrus.FieldLogger
}

// New returns a disconnected Transport.
func New(cfg Config) *Transport {
	log := cfg.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Transport{
		cfg: cfg,
		log: log.WithField("mode", types.ModeExplicit.String()),
	}
}

// State returns the current connection state.
func (t *Transport) State() State {
	return t.state
}

// Connect dials, logs in and sets the transfer mode. Any failing step closes the partial session and leaves
// the transport disconnected.
func (t *Transport) Connect(ctx context.Context) error {
	if t.state == StateConnected {
		return nil
	}
	log := t.log.WithFields(logrus.Fields{
		"function": "Connect",
		"addr":     hostPort(t.cfg),
	})
	t.state = StateConnecting

	getter := t.cfg.SessionGetter
	if getter == nil {
		getter = func(ctx context.Context) (types.Session, error) { return dialSession(ctx, t.cfg) }
	}
	session, err := getter(ctx)
	if err != nil {
		t.state = StateDisconnected
		return fmt.Errorf("%w: explicit secure FTP connection to %s failed: %w", types.ErrConnection, hostPort(t.cfg), err)
	}

	if err := session.Login(t.cfg.User, t.cfg.Password); err != nil {
		t.rollback(session, log)
		return fmt.Errorf("%w: explicit secure FTP login failed for user %s: %w", types.ErrAuth, t.cfg.User, err)
	}

	if err := t.setMode(session); err != nil {
		t.rollback(session, log)
		return fmt.Errorf("%w: explicit secure FTP mode setup failed: %w", types.ErrMode, err)
	}

	t.session = session
	t.state = StateConnected
	log.Info("explicit FTPS session established")
	return nil
}

func (t *Transport) setMode(session types.Session) error {
	if !t.cfg.Passive {
		return errActiveMode
	}
	transferType := _ftp.TransferTypeBinary
	if !t.cfg.Binary {
		transferType = _ftp.TransferTypeASCII
	}
	return session.Type(transferType)
}

func (t *Transport) rollback(session types.Session, log logrus.FieldLogger) {
	if err := session.Quit(); err != nil {
		log.WithError(err).Debug("quit during rollback failed")
	}
	t.session = nil
	t.state = StateDisconnected
}

func (t *Transport) connected() (types.Session, error) {
	if t.state != StateConnected || t.session == nil {
		return nil, fmt.Errorf("%w: not connected", types.ErrConnection)
	}
	return t.session, nil
}

// Get downloads remotePath into w.
func (t *Transport) Get(_ context.Context, w io.Writer, remotePath string) (rerr error) {
	session, err := t.connected()
	if err != nil {
		return err
	}
	resp, err := session.Retr(remotePath)
	if err != nil {
		return fmt.Errorf("%w: %w", types.ErrTransfer, err)
	}
	defer func() {
		if cerr := resp.Close(); cerr != nil && rerr == nil {
			rerr = fmt.Errorf("%w: %w", types.ErrTransfer, cerr)
		}
	}()
	if _, err := io.Copy(w, resp); err != nil {
		return fmt.Errorf("%w: %w", types.ErrTransfer, err)
	}
	return nil
}

// Put uploads r to remotePath.
func (t *Transport) Put(_ context.Context, r io.Reader, remotePath string) error {
	session, err := t.connected()
	if err != nil {
		return err
	}
	if err := session.Stor(remotePath, r); err != nil {
		return fmt.Errorf("%w: %w", types.ErrTransfer, err)
	}
	return nil
}

// Rename renames from to to.
func (t *Transport) Rename(_ context.Context, from, to string) error {
	session, err := t.connected()
	if err != nil {
		return err
	}
	if err := session.Rename(from, to); err != nil {
		return fmt.Errorf("%w: %w", types.ErrTransfer, err)
	}
	return nil
}

// Delete removes path.
func (t *Transport) Delete(_ context.Context, path string) error {
	session, err := t.connected()
	if err != nil {
		return err
	}
	if err := session.Delete(path); err != nil {
		return fmt.Errorf("%w: %w", types.ErrTransfer, err)
	}
	return nil
}

// List returns the names in path as reported by NLST.
func (t *Transport) List(_ context.Context, path string) ([]string, error) {
	session, err := t.connected()
	if err != nil {
		return nil, err
	}
	names, err := session.NameList(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", types.ErrTransfer, err)
	}
	return names, nil
}

// Close quits the session, if any. It is safe to call more than once.
func (t *Transport) Close() error {
	if t.session == nil {
		t.state = StateDisconnected
		return nil
	}
	err := t.session.Quit()
	t.session = nil
	t.state = StateDisconnected
	return err
}
