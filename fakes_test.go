package ftps

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"path"
	"sort"
	"strings"

	_ftp "github.com/jlaffaye/ftp"

	"github.com/c2fo/ftps/types"
)

var errNoSuchFile = errors.New("550 No such file or directory")

// memFS is a flat in-memory remote filesystem keyed by absolute path.
type memFS map[string][]byte

func (m memFS) names(dir string) []string {
	dir = strings.TrimSuffix(dir, "/")
	if dir == "" {
		dir = "/"
	}
	var names []string
	for p := range m {
		if path.Dir(p) == dir {
			names = append(names, path.Base(p))
		}
	}
	sort.Strings(names)
	return names
}

func (m memFS) rename(from, to string) error {
	b, ok := m[from]
	if !ok {
		return errNoSuchFile
	}
	delete(m, from)
	m[to] = b
	return nil
}

func (m memFS) remove(p string) error {
	if _, ok := m[p]; !ok {
		return errNoSuchFile
	}
	delete(m, p)
	return nil
}

// memSession is a types.Session backed by memFS.
type memSession struct {
	user, password string
	files          memFS
}

func newMemSession(user, password string) *memSession {
	return &memSession{user: user, password: password, files: memFS{}}
}

func (m *memSession) Login(user, password string) error {
	if user != m.user || password != m.password {
		return errors.New("530 Login incorrect")
	}
	return nil
}

func (m *memSession) Type(_ftp.TransferType) error { return nil }

func (m *memSession) Retr(p string) (io.ReadCloser, error) {
	b, ok := m.files[p]
	if !ok {
		return nil, errNoSuchFile
	}
	return io.NopCloser(bytes.NewReader(b)), nil
}

func (m *memSession) Stor(p string, r io.Reader) error {
	b, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	m.files[p] = b
	return nil
}

func (m *memSession) Rename(from, to string) error { return m.files.rename(from, to) }

func (m *memSession) Delete(p string) error { return m.files.remove(p) }

func (m *memSession) NameList(p string) ([]string, error) { return m.files.names(p), nil }

func (m *memSession) Quit() error { return nil }

// memEngine is a types.Engine that interprets the option set against memFS.
type memEngine struct {
	userPwd string
	files   memFS
}

func newMemEngine(userPwd string) *memEngine {
	return &memEngine{userPwd: userPwd, files: memFS{}}
}

func (e *memEngine) Open() (types.Handle, error) {
	return &memHandle{engine: e}, nil
}

type memHandle struct {
	engine *memEngine
	opts   types.TransferOptions
}

func (h *memHandle) Apply(opts types.TransferOptions) error {
	h.opts = opts
	return nil
}

func (h *memHandle) get(key types.OptionKey) any {
	v, _ := h.opts.Get(key)
	return v
}

func (h *memHandle) Perform(context.Context) (string, error) {
	if h.get(types.OptUserPwd) != h.engine.userPwd {
		return "", errors.New("530 Login incorrect")
	}
	raw, _ := h.get(types.OptURL).(string)
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	files := h.engine.files

	if quote, ok := h.get(types.OptQuote).([]string); ok {
		if err := h.run(quote); err != nil {
			return "", err
		}
	}

	var body bytes.Buffer
	switch {
	case h.get(types.OptUpload) == true:
		b, err := io.ReadAll(h.get(types.OptInFile).(io.Reader))
		if err != nil {
			return "", err
		}
		files[u.Path] = b
	case u.Path == "" || strings.HasSuffix(u.Path, "/"):
		for _, name := range files.names(u.Path) {
			fmt.Fprintf(&body, "%s\r\n", name)
		}
	default:
		b, ok := files[u.Path]
		if !ok {
			return "", errNoSuchFile
		}
		if w, ok := h.get(types.OptFile).(io.Writer); ok {
			if _, err := w.Write(b); err != nil {
				return "", err
			}
		} else {
			body.Write(b)
		}
	}

	if post, ok := h.get(types.OptPostQuote).([]string); ok {
		if err := h.run(post); err != nil {
			return "", err
		}
	}
	return body.String(), nil
}

func (h *memHandle) run(cmds []string) error {
	var from string
	for _, cmd := range cmds {
		verb, arg, _ := strings.Cut(cmd, " ")
		switch verb {
		case "DELE":
			if err := h.engine.files.remove(arg); err != nil {
				return err
			}
		case "RNFR":
			from = arg
		case "RNTO":
			if err := h.engine.files.rename(from, arg); err != nil {
				return err
			}
		default:
			return fmt.Errorf("500 %s not understood", verb)
		}
	}
	return nil
}

func (h *memHandle) Close() error { return nil }
