package implicit

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/url"
	"strconv"

	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"

	"github.com/c2fo/ftps/transfer"
	"github.com/c2fo/ftps/types"
	"github.com/c2fo/ftps/utils"
)

const scheme = "ftps"

// Config holds everything needed to issue implicit FTPS requests.
type Config struct {
	Host     string
	Port     int
	User     string
	Password string
	Binary   bool

	// InsecureSkipVerify disables certificate and hostname verification for every request.
	InsecureSkipVerify bool

	// Engine performs the requests. Defaults to a transfer.Engine with default settings.
	Engine types.Engine

	Logger logrus.FieldLogger
}

// Transport is the implicit FTPS strategy: every operation is one independent, self-authenticating transfer
// engine request. No connection is held between operations.
type Transport struct {
	cfg   Config
	base  types.TransferOptions
	ready bool
	log   logrus.FieldLogger
}

// New returns an unconnected Transport.
func New(cfg Config) *Transport {
	log := cfg.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}
	if cfg.Engine == nil {
		cfg.Engine = transfer.NewEngine(transfer.Config{Logger: log})
	}
	return &Transport{
		cfg: cfg,
		log: log.WithField("mode", types.ModeImplicit.String()),
	}
}

// Connect builds the base option set and verifies it with a listing of "/".
func (t *Transport) Connect(ctx context.Context) error {
	t.base = t.defaultOptions()
	t.ready = true

	if _, err := t.List(ctx, "/"); err != nil {
		t.base = types.TransferOptions{}
		t.ready = false
		return fmt.Errorf("%w: implicit secure FTP login failed: %w", types.ErrConnection, err)
	}

	t.log.WithFields(logrus.Fields{
		"function": "Connect",
		"url":      t.targetURL(""),
	}).Info("implicit FTPS login verified")
	return nil
}

// defaultOptions returns the option set shared by every request.
func (t *Transport) defaultOptions() types.TransferOptions {
	return types.NewTransferOptions(map[types.OptionKey]any{
		types.OptUserPwd:        t.cfg.User + ":" + t.cfg.Password,
		types.OptSSLVerifyPeer:  !t.cfg.InsecureSkipVerify,
		types.OptSSLVerifyHost:  !t.cfg.InsecureSkipVerify,
		types.OptFTPSSL:         types.FTPSSLTry,
		types.OptFTPSSLAuth:     types.FTPAuthTLS,
		types.OptReturnTransfer: true,
	})
}

// transferModeOptions selects binary or text transfer semantics.
func (t *Transport) transferModeOptions() types.TransferOptions {
	if t.cfg.Binary {
		return types.NewTransferOptions(map[types.OptionKey]any{types.OptBinaryTransfer: true})
	}
	return types.NewTransferOptions(map[types.OptionKey]any{types.OptTransferText: true})
}

// targetURL returns ftps://host:port with p appended as a fully qualified path.
func (t *Transport) targetURL(p string) string {
	u := url.URL{
		Scheme: scheme,
		Host:   net.JoinHostPort(t.cfg.Host, strconv.Itoa(t.cfg.Port)),
	}
	if p != "" {
		u.Path = utils.EnsureLeadingSlash(p)
	}
	return u.String()
}

// executeTransferRequest merges call over the base options and runs them on a fresh handle. The handle is
// closed on every return path.
func (t *Transport) executeTransferRequest(ctx context.Context, call types.TransferOptions) (body string, rerr error) {
	if !t.ready {
		return "", fmt.Errorf("%w: not connected", types.ErrConnection)
	}
	opts := t.base.Merge(call)

	h, err := t.cfg.Engine.Open()
	if err != nil {
		return "", fmt.Errorf("%w: could not open transfer handle: %w", types.ErrTransfer, err)
	}
	defer func() {
		if cerr := h.Close(); cerr != nil {
			rerr = multierror.Append(rerr, fmt.Errorf("%w: could not close transfer handle: %w", types.ErrTransfer, cerr))
		}
	}()

	if err := h.Apply(opts); err != nil {
		return "", fmt.Errorf("%w: %w", types.ErrTransfer, err)
	}

	body, err = h.Perform(ctx)
	if err != nil && err.Error() != "" {
		t.log.WithFields(logrus.Fields{
			"function": "executeTransferRequest",
			"options":  opts.String(),
		}).WithError(err).Warn("transfer request failed")
		return "", fmt.Errorf("%w: %w", types.ErrTransfer, err)
	}
	return body, nil
}

// Get downloads remotePath into w.
func (t *Transport) Get(ctx context.Context, w io.Writer, remotePath string) error {
	call := t.transferModeOptions().
		With(types.OptURL, t.targetURL(remotePath)).
		With(types.OptFile, w)
	_, err := t.executeTransferRequest(ctx, call)
	return err
}

// Put uploads r to remotePath.
func (t *Transport) Put(ctx context.Context, r io.Reader, remotePath string) error {
	call := t.transferModeOptions().
		With(types.OptURL, t.targetURL(remotePath)).
		With(types.OptInFile, r).
		With(types.OptUpload, true)
	_, err := t.executeTransferRequest(ctx, call)
	return err
}

// Rename issues RNFR/RNTO as post-transfer commands against the base URL.
func (t *Transport) Rename(ctx context.Context, from, to string) error {
	call := types.NewTransferOptions(map[types.OptionKey]any{
		types.OptURL:       t.targetURL(""),
		types.OptPostQuote: []string{"RNFR " + from, "RNTO " + to},
	})
	_, err := t.executeTransferRequest(ctx, call)
	return err
}

// Delete issues DELE as a pre-transfer command against the base URL.
func (t *Transport) Delete(ctx context.Context, path string) error {
	call := types.NewTransferOptions(map[types.OptionKey]any{
		types.OptURL:   t.targetURL(""),
		types.OptQuote: []string{"DELE " + path},
	})
	_, err := t.executeTransferRequest(ctx, call)
	return err
}

// List returns the names in path from a names-only listing.
func (t *Transport) List(ctx context.Context, path string) ([]string, error) {
	call := types.NewTransferOptions(map[types.OptionKey]any{
		types.OptURL:      t.targetURL(utils.EnsureTrailingSlash(path)),
		types.OptListOnly: true,
	})
	body, err := t.executeTransferRequest(ctx, call)
	if err != nil {
		return nil, err
	}
	return utils.SplitLines(body), nil
}

// Close forgets the base option set. There is no connection to release.
func (t *Transport) Close() error {
	t.base = types.TransferOptions{}
	t.ready = false
	return nil
}
