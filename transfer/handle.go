package transfer

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	_ftp "github.com/jlaffaye/ftp"
	"github.com/sirupsen/logrus"

	"github.com/c2fo/ftps/types"
)

var errHandleClosed = errors.New("transfer handle is closed")

type handle struct {
	engine *Engine
	req    *request
	closed bool
}

// Apply validates opts and replaces any previously applied option set.
func (h *handle) Apply(opts types.TransferOptions) error {
	if h.closed {
		return errHandleClosed
	}
	req, err := parseRequest(opts)
	if err != nil {
		return err
	}
	h.req = req
	return nil
}

// Perform runs the applied request: connect, quote commands, transfer, post-quote commands.
func (h *handle) Perform(ctx context.Context) (string, error) {
	if h.closed {
		return "", errHandleClosed
	}
	if h.req == nil {
		return "", errors.New("no options have been applied")
	}
	req := h.req
	log := h.engine.cfg.Logger.WithFields(logrus.Fields{
		"function": "Perform",
		"url":      req.url.Redacted(),
	})

	conn, err := h.engine.connect(ctx, req)
	if err != nil {
		return "", err
	}
	defer func() {
		if qerr := conn.Quit(); qerr != nil {
			log.WithError(qerr).Debug("quit failed")
		}
	}()

	if err := runQuotes(conn, req.quote, log); err != nil {
		return "", err
	}

	var body bytes.Buffer
	var sink io.Writer = io.Discard
	switch {
	case req.out != nil:
		sink = req.out
	case req.returnTransfer:
		sink = &body
	}

	switch {
	case req.upload:
		if err := conn.Stor(req.url.Path, req.in); err != nil {
			return "", fmt.Errorf("upload to %s failed: %w", req.url.Path, err)
		}
	case req.isListing():
		if err := list(conn, req, sink); err != nil {
			return "", err
		}
	default:
		if err := retrieve(conn, req.url.Path, sink); err != nil {
			return "", err
		}
	}

	if err := runQuotes(conn, req.postQuote, log); err != nil {
		return "", err
	}

	log.Debug("request complete")
	return body.String(), nil
}

// Close releases the handle. Subsequent calls are no-ops.
func (h *handle) Close() error {
	if h.closed {
		return nil
	}
	h.closed = true
	h.req = nil
	h.engine.release()
	return nil
}

func list(conn Conn, req *request, w io.Writer) error {
	dir := req.url.Path
	if dir == "" {
		dir = "."
	}

	if req.listOnly {
		names, err := conn.NameList(dir)
		if err != nil {
			return fmt.Errorf("listing %s failed: %w", dir, err)
		}
		for _, name := range names {
			if _, err := io.WriteString(w, name+"\r\n"); err != nil {
				return err
			}
		}
		return nil
	}

	entries, err := conn.List(dir)
	if err != nil {
		return fmt.Errorf("listing %s failed: %w", dir, err)
	}
	for _, e := range entries {
		if _, err := io.WriteString(w, formatEntry(e)+"\r\n"); err != nil {
			return err
		}
	}
	return nil
}

func formatEntry(e *_ftp.Entry) string {
	kind := "-"
	switch e.Type {
	case _ftp.EntryTypeFolder:
		kind = "d"
	case _ftp.EntryTypeLink:
		kind = "l"
	}
	return strings.Join([]string{
		kind,
		fmt.Sprintf("%12d", e.Size),
		e.Time.UTC().Format("2006-01-02T15:04:05Z"),
		e.Name,
	}, " ")
}

func retrieve(conn Conn, path string, w io.Writer) (rerr error) {
	resp, err := conn.Retr(path)
	if err != nil {
		return fmt.Errorf("download of %s failed: %w", path, err)
	}
	defer func() {
		if cerr := resp.Close(); cerr != nil && rerr == nil {
			rerr = fmt.Errorf("download of %s failed: %w", path, cerr)
		}
	}()

	if _, err := io.Copy(w, resp); err != nil {
		return fmt.Errorf("download of %s failed: %w", path, err)
	}
	return nil
}
