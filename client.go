package ftps

import (
	"context"
	"fmt"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"

	"github.com/c2fo/ftps/explicit"
	"github.com/c2fo/ftps/implicit"
	"github.com/c2fo/ftps/options"
	"github.com/c2fo/ftps/transfer"
	"github.com/c2fo/ftps/types"
	"github.com/c2fo/ftps/utils"
)

// Client is a FTPS client speaking either explicit or implicit FTPS. The mode is fixed for the life of the Client.
// A Client is not safe for concurrent use.
type Client struct {
	host     string
	user     string
	password string
	options  Options
	mode     types.Mode

	session   types.Session
	engine    types.Engine
	transport types.Transport
	connected bool
	log       logrus.FieldLogger
}

// NewClient returns a connected Client. On failure no Client is returned.
func NewClient(ctx context.Context, host, user, password string, opts ...options.NewClientOption[Client]) (*Client, error) {
	if host == "" {
		return nil, fmt.Errorf("%w: non-empty host is required", ErrConnection)
	}

	c := &Client{
		host: host,
		user: user,
	}
	options.ApplyOptions(c, opts...)

	c.password = fetchPassword(password, c.options)
	c.mode = fetchMode(c.options)
	c.log = fetchLogger(c.options).WithFields(logrus.Fields{
		"host": host,
		"mode": c.mode.String(),
	})

	if c.transport == nil {
		t, err := c.newTransport()
		if err != nil {
			return nil, err
		}
		c.transport = t
	}

	if err := c.Connect(ctx); err != nil {
		return nil, err
	}
	return c, nil
}

// newTransport builds the transport for the configured mode.
func (c *Client) newTransport() (types.Transport, error) {
	tlsCfg, err := fetchTLSConfig(c.host, c.options)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConnection, err)
	}
	dialFunc, err := fetchDialFunc(c.options)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConnection, err)
	}
	logger := fetchLogger(c.options)

	if c.mode == types.ModeImplicit {
		engine := c.engine
		if engine == nil {
			engine = transfer.NewEngine(transfer.Config{
				TLSConfig:   tlsCfg,
				DialTimeout: c.options.DialTimeout,
				DisableEPSV: isDisableEPSV(c.options),
				DebugWriter: c.options.DebugWriter,
				DialFunc:    dialFunc,
				Logger:      logger,
			})
		}
		return implicit.New(implicit.Config{
			Host:               c.host,
			Port:               fetchPort(c.options),
			User:               c.user,
			Password:           c.password,
			Binary:             isBinary(c.options),
			InsecureSkipVerify: isInsecureSkipVerify(c.options),
			Engine:             engine,
			Logger:             logger,
		}), nil
	}

	cfg := explicit.Config{
		Host:        c.host,
		Port:        fetchPort(c.options),
		User:        c.user,
		Password:    c.password,
		Passive:     isPassive(c.options),
		Binary:      isBinary(c.options),
		TLSConfig:   tlsCfg,
		DialTimeout: c.options.DialTimeout,
		DisableEPSV: isDisableEPSV(c.options),
		DebugWriter: c.options.DebugWriter,
		DialFunc:    dialFunc,
		Logger:      logger,
	}
	if c.session != nil {
		session := c.session
		cfg.SessionGetter = func(context.Context) (types.Session, error) { return session, nil }
	}
	return explicit.New(cfg), nil
}

// Mode returns the FTPS mode chosen at construction.
func (c *Client) Mode() types.Mode {
	return c.mode
}

// Connected reports whether the last Connect succeeded and Close has not been called since.
func (c *Client) Connected() bool {
	return c.connected
}

// Connect opens the transport. In explicit mode this dials, logs in and sets the transfer mode. In implicit mode
// it verifies the credentials with a listing of "/".
func (c *Client) Connect(ctx context.Context) error {
	if err := c.transport.Connect(ctx); err != nil {
		c.connected = false
		c.log.WithField("function", "Connect").WithError(err).Error("connect failed")
		return err
	}
	c.connected = true
	return nil
}

// Close releases the transport. It is safe to call more than once.
func (c *Client) Close() error {
	c.connected = false
	if err := c.transport.Close(); err != nil {
		return utils.WrapCloseError(err)
	}
	return nil
}

// Get downloads remotePath to localPath, creating or truncating the local file. It returns false with a nil error
// when either path is empty or the local file can not be created.
func (c *Client) Get(ctx context.Context, localPath, remotePath string) (ok bool, rerr error) {
	if localPath == "" || remotePath == "" {
		return false, nil
	}
	log := c.log.WithFields(logrus.Fields{
		"function": "Get",
		"local":    localPath,
		"remote":   remotePath,
	})

	f, err := createLocal(localPath)
	if err != nil {
		log.WithError(utils.WrapOpenLocalError(err)).Warn("could not open local file")
		return false, nil
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			ok = false
			rerr = multierror.Append(rerr, utils.WrapCloseError(cerr)).ErrorOrNil()
		}
	}()

	if err := c.transport.Get(ctx, f, remotePath); err != nil {
		return false, utils.WrapGetError(err)
	}
	return true, nil
}

// Put uploads localPath to remotePath. It returns false with a nil error when either path is empty or the local
// file can not be opened.
func (c *Client) Put(ctx context.Context, localPath, remotePath string) (bool, error) {
	if localPath == "" || remotePath == "" {
		return false, nil
	}
	log := c.log.WithFields(logrus.Fields{
		"function": "Put",
		"local":    localPath,
		"remote":   remotePath,
	})

	f, err := openLocal(localPath)
	if err != nil {
		log.WithError(utils.WrapOpenLocalError(err)).Warn("could not open local file")
		return false, nil
	}
	defer func() { _ = f.Close() }()

	if err := c.transport.Put(ctx, f, remotePath); err != nil {
		return false, utils.WrapPutError(err)
	}
	return true, nil
}

// Rename renames oldPath to newPath on the server. It returns false with a nil error when either path is empty.
func (c *Client) Rename(ctx context.Context, oldPath, newPath string) (bool, error) {
	if oldPath == "" || newPath == "" {
		return false, nil
	}
	if err := c.transport.Rename(ctx, oldPath, newPath); err != nil {
		return false, utils.WrapRenameError(err)
	}
	return true, nil
}

// Delete removes path on the server. It returns false with a nil error when path is empty.
func (c *Client) Delete(ctx context.Context, path string) (bool, error) {
	if path == "" {
		return false, nil
	}
	if err := c.transport.Delete(ctx, path); err != nil {
		return false, utils.WrapDeleteError(err)
	}
	return true, nil
}

// Dir lists the names in the remote directory path. "pub" and "pub/" are equivalent. An empty directory yields an
// empty, non-nil slice; an empty path yields nil with a nil error.
func (c *Client) Dir(ctx context.Context, path string) ([]string, error) {
	if path == "" {
		return nil, nil
	}
	names, err := c.transport.List(ctx, utils.EnsureTrailingSlash(path))
	if err != nil {
		return nil, utils.WrapListError(err)
	}
	if names == nil {
		names = []string{}
	}
	return names, nil
}

func createLocal(p string) (*os.File, error) {
	expanded, err := utils.ExpandLocalPath(p)
	if err != nil {
		return nil, err
	}
	return os.Create(expanded) //nolint:gosec
}

func openLocal(p string) (*os.File, error) {
	expanded, err := utils.ExpandLocalPath(p)
	if err != nil {
		return nil, err
	}
	return os.Open(expanded) //nolint:gosec
}
