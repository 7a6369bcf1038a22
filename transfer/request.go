package transfer

import (
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/c2fo/ftps/types"
)

const (
	schemeFTP  = "ftp"
	schemeFTPS = "ftps"
)

// request is the typed view of an applied option set.
type request struct {
	url            *url.URL
	user           string
	password       string
	verifyPeer     bool
	verifyHost     bool
	ftpSSL         types.FTPSSL
	returnTransfer bool
	text           bool
	out            io.Writer
	in             io.Reader
	upload         bool
	listOnly       bool
	quote          []string
	postQuote      []string
}

// isListing reports whether the URL addresses a directory.
func (r *request) isListing() bool {
	return r.url.Path == "" || strings.HasSuffix(r.url.Path, "/")
}

func wrongType(key types.OptionKey, want string, got any) error {
	return fmt.Errorf("option %s: expected %s, got %T", key, want, got)
}

// parseRequest validates every option in opts and returns the typed request.
func parseRequest(opts types.TransferOptions) (*request, error) {
	req := &request{
		verifyPeer: true,
		verifyHost: true,
	}

	for _, key := range opts.Keys() {
		value, _ := opts.Get(key)
		switch key {
		case types.OptURL:
			raw, ok := value.(string)
			if !ok {
				return nil, wrongType(key, "string", value)
			}
			u, err := url.Parse(raw)
			if err != nil {
				return nil, fmt.Errorf("option %s: %w", key, err)
			}
			if u.Scheme != schemeFTP && u.Scheme != schemeFTPS {
				return nil, fmt.Errorf("option %s: unsupported protocol scheme %q", key, u.Scheme)
			}
			if u.Hostname() == "" {
				return nil, fmt.Errorf("option %s: host is required", key)
			}
			req.url = u
		case types.OptUserPwd:
			raw, ok := value.(string)
			if !ok {
				return nil, wrongType(key, "string", value)
			}
			req.user, req.password, _ = strings.Cut(raw, ":")
		case types.OptFTPSSL:
			level, ok := value.(types.FTPSSL)
			if !ok {
				return nil, wrongType(key, "types.FTPSSL", value)
			}
			req.ftpSSL = level
		case types.OptFTPSSLAuth:
			auth, ok := value.(types.FTPAuth)
			if !ok {
				return nil, wrongType(key, "types.FTPAuth", value)
			}
			if auth == types.FTPAuthSSL {
				return nil, fmt.Errorf("option %s: AUTH SSL is not supported", key)
			}
		case types.OptFile:
			w, ok := value.(io.Writer)
			if !ok {
				return nil, wrongType(key, "io.Writer", value)
			}
			req.out = w
		case types.OptInFile:
			r, ok := value.(io.Reader)
			if !ok {
				return nil, wrongType(key, "io.Reader", value)
			}
			req.in = r
		case types.OptQuote, types.OptPostQuote:
			cmds, ok := value.([]string)
			if !ok {
				return nil, wrongType(key, "[]string", value)
			}
			if key == types.OptQuote {
				req.quote = append([]string(nil), cmds...)
			} else {
				req.postQuote = append([]string(nil), cmds...)
			}
		default:
			b, ok := value.(bool)
			if !ok {
				return nil, wrongType(key, "bool", value)
			}
			if err := req.setFlag(key, b); err != nil {
				return nil, err
			}
		}
	}

	if req.url == nil {
		return nil, errors.New("option URL is required")
	}
	if req.upload && req.in == nil {
		return nil, errors.New("option UPLOAD requires INFILE")
	}
	if req.upload && req.isListing() {
		return nil, fmt.Errorf("can not upload to directory URL %s", req.url.Redacted())
	}
	return req, nil
}

func (r *request) setFlag(key types.OptionKey, b bool) error {
	switch key {
	case types.OptSSLVerifyPeer:
		r.verifyPeer = b
	case types.OptSSLVerifyHost:
		r.verifyHost = b
	case types.OptReturnTransfer:
		r.returnTransfer = b
	case types.OptBinaryTransfer:
		r.text = !b
	case types.OptTransferText:
		r.text = b
	case types.OptUpload:
		r.upload = b
	case types.OptListOnly:
		r.listOnly = b
	default:
		return fmt.Errorf("unknown option %s", key)
	}
	return nil
}
