package explicit

import (
	"context"
	"crypto/tls"
	"io"
	"net"
	"strconv"

	_ftp "github.com/jlaffaye/ftp"

	"github.com/c2fo/ftps/types"
)

// serverConn adapts *ftp.ServerConn to types.Session.
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

var dialFunc = _ftp.Dial

// dialSession opens an AUTH TLS upgraded control connection. It does not log in.
func dialSession(ctx context.Context, cfg Config) (types.Session, error) {
	c, err := dialFunc(hostPort(cfg), fetchDialOptions(ctx, cfg)...)
	if err != nil {
		return nil, err
	}
	return serverConn{c}, nil
}

func hostPort(cfg Config) string {
	return net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port))
}

func fetchTLSConfig(cfg Config) *tls.Config {
	if cfg.TLSConfig != nil {
		return cfg.TLSConfig
	}
	return &tls.Config{
		MinVersion:         tls.VersionTLS12,
		ClientSessionCache: tls.NewLRUClientSessionCache(0),
		ServerName:         cfg.Host,
	}
}

func fetchDialOptions(ctx context.Context, cfg Config) []_ftp.DialOption {
	dialOptions := []_ftp.DialOption{
		_ftp.DialWithContext(ctx),
		_ftp.DialWithDisabledEPSV(cfg.DisableEPSV),
		_ftp.DialWithExplicitTLS(fetchTLSConfig(cfg)),
	}
	if cfg.DialTimeout > 0 {
		dialOptions = append(dialOptions, _ftp.DialWithTimeout(cfg.DialTimeout))
	}
	if cfg.DebugWriter != nil {
		dialOptions = append(dialOptions, _ftp.DialWithDebugOutput(cfg.DebugWriter))
	}
	if cfg.DialFunc != nil {
		dialOptions = append(dialOptions, _ftp.DialWithDialFunc(cfg.DialFunc))
	}
	return dialOptions
}
