package transfer

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"net"
	"strconv"
	"sync/atomic"
	"time"

	_ftp "github.com/jlaffaye/ftp"
	"github.com/sirupsen/logrus"

	"github.com/c2fo/ftps/types"
)

const (
	defaultFTPPort  = 21
	defaultFTPSPort = 990

	anonymousUser     = "anonymous"
	anonymousPassword = "ftp@example.com"
)

// Conn is the subset of *ftp.ServerConn the engine drives, with Retr returning an io.ReadCloser.
type Conn interface {
	Login(user, password string) error
	Type(transferType _ftp.TransferType) error
	Retr(path string) (io.ReadCloser, error)
	Stor(path string, r io.Reader) error
	List(path string) ([]*_ftp.Entry, error)
	NameList(path string) ([]string, error)
	Rename(from, to string) error
	Delete(path string) error
	MakeDir(path string) error
	RemoveDir(path string) error
	ChangeDir(path string) error
	NoOp() error
	Quit() error
}

type serverConn struct {
	*_ftp.ServerConn
}

func (c serverConn) Retr(path string) (io.ReadCloser, error) {
	resp, err := c.ServerConn.Retr(path)
	if err != nil {
		return nil, err
	}
	return resp, nil
}

var dialConn = func(addr string, opts ..._ftp.DialOption) (Conn, error) {
	c, err := _ftp.Dial(addr, opts...)
	if err != nil {
		return nil, err
	}
	return serverConn{c}, nil
}

// Config holds engine-wide settings shared by every handle.
type Config struct {
	// TLSConfig is cloned for every request. ServerName and verification fields are set per request.
	TLSConfig   *tls.Config
	DialTimeout time.Duration
	DisableEPSV bool
	// DebugWriter captures FTP command details.
	DebugWriter io.Writer
	// DialFunc replaces the default TCP dialer, ie: a SOCKS5 proxy dialer.
	DialFunc func(network, address string) (net.Conn, error)
	Logger   logrus.FieldLogger
}

// Engine opens transfer handles. It is safe to share between handles.
type Engine struct {
	cfg  Config
	open atomic.Int64
}

// NewEngine returns an Engine using cfg.
func NewEngine(cfg Config) *Engine {
	if cfg.Logger == nil {
		cfg.Logger = logrus.StandardLogger()
	}
	return &Engine{cfg: cfg}
}

// Open returns a new single-use handle. The caller must Close it.
func (e *Engine) Open() (types.Handle, error) {
	if e == nil {
		return nil, errors.New("non-nil transfer.Engine pointer is required")
	}
	e.open.Add(1)
	return &handle{engine: e}, nil
}

// OpenHandles returns the number of handles opened but not yet closed.
func (e *Engine) OpenHandles() int64 {
	return e.open.Load()
}

func (e *Engine) release() {
	e.open.Add(-1)
}

func (e *Engine) dialOptions(ctx context.Context) []_ftp.DialOption {
	dialOptions := []_ftp.DialOption{
		_ftp.DialWithContext(ctx),
		_ftp.DialWithDisabledEPSV(e.cfg.DisableEPSV),
	}
	if e.cfg.DialTimeout > 0 {
		dialOptions = append(dialOptions, _ftp.DialWithTimeout(e.cfg.DialTimeout))
	}
	if e.cfg.DebugWriter != nil {
		dialOptions = append(dialOptions, _ftp.DialWithDebugOutput(e.cfg.DebugWriter))
	}
	if e.cfg.DialFunc != nil {
		dialOptions = append(dialOptions, _ftp.DialWithDialFunc(e.cfg.DialFunc))
	}
	return dialOptions
}

// connect dials, upgrades and logs in according to the request.
func (e *Engine) connect(ctx context.Context, req *request) (Conn, error) {
	host := req.url.Hostname()
	port := req.url.Port()
	if port == "" {
		port = strconv.Itoa(defaultFTPPort)
		if req.url.Scheme == schemeFTPS {
			port = strconv.Itoa(defaultFTPSPort)
		}
	}
	addr := net.JoinHostPort(host, port)
	tlsCfg := tlsConfigFor(e.cfg.TLSConfig, host, req.verifyPeer, req.verifyHost)

	log := e.cfg.Logger.WithFields(logrus.Fields{
		"function": "connect",
		"addr":     addr,
		"scheme":   req.url.Scheme,
	})

	var conn Conn
	var err error
	switch {
	case req.url.Scheme == schemeFTPS:
		conn, err = dialConn(addr, append(e.dialOptions(ctx), _ftp.DialWithTLS(tlsCfg))...)
	case req.ftpSSL == types.FTPSSLNone:
		conn, err = dialConn(addr, e.dialOptions(ctx)...)
	case req.ftpSSL == types.FTPSSLTry:
		conn, err = dialConn(addr, append(e.dialOptions(ctx), _ftp.DialWithExplicitTLS(tlsCfg))...)
		if err != nil {
			log.WithError(err).Debug("AUTH TLS refused, falling back to plaintext")
			conn, err = dialConn(addr, e.dialOptions(ctx)...)
		}
	default:
		conn, err = dialConn(addr, append(e.dialOptions(ctx), _ftp.DialWithExplicitTLS(tlsCfg))...)
	}
	if err != nil {
		return nil, fmt.Errorf("could not connect to %s: %w", addr, err)
	}

	user, password := req.user, req.password
	if user == "" {
		user, password = anonymousUser, anonymousPassword
	}
	if err := conn.Login(user, password); err != nil {
		_ = conn.Quit()
		return nil, fmt.Errorf("login denied for user %s: %w", user, err)
	}

	transferType := _ftp.TransferTypeBinary
	if req.text {
		transferType = _ftp.TransferTypeASCII
	}
	if err := conn.Type(transferType); err != nil {
		_ = conn.Quit()
		return nil, fmt.Errorf("could not set transfer type %s: %w", transferType, err)
	}

	log.Debug("connected")
	return conn, nil
}
