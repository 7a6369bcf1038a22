package transfer

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	fs "github.com/dsoprea/go-utility/v2/filesystem"
	_ftp "github.com/jlaffaye/ftp"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/suite"

	"github.com/c2fo/ftps/types"
)

type engineSuite struct {
	suite.Suite
	conn     *fakeConn
	dials    []dial
	dialErrs []error
	engine   *Engine
	original func(addr string, opts ..._ftp.DialOption) (Conn, error)
}

type dial struct {
	addr    string
	options int
}

func TestEngine(t *testing.T) {
	suite.Run(t, new(engineSuite))
}

func (s *engineSuite) SetupTest() {
	s.conn = newFakeConn()
	s.dials = nil
	s.dialErrs = nil
	s.original = dialConn
	dialConn = func(addr string, opts ..._ftp.DialOption) (Conn, error) {
		s.dials = append(s.dials, dial{addr: addr, options: len(opts)})
		if len(s.dialErrs) > 0 {
			err := s.dialErrs[0]
			s.dialErrs = s.dialErrs[1:]
			if err != nil {
				return nil, err
			}
		}
		return s.conn, nil
	}
	logger, _ := test.NewNullLogger()
	s.engine = NewEngine(Config{Logger: logger})
}

func (s *engineSuite) TearDownTest() {
	dialConn = s.original
}

func (s *engineSuite) perform(opts map[types.OptionKey]any) (string, error) {
	h, err := s.engine.Open()
	s.Require().NoError(err)
	defer func() { s.NoError(h.Close()) }()
	if err := h.Apply(types.NewTransferOptions(opts)); err != nil {
		return "", err
	}
	return h.Perform(context.Background())
}

func (s *engineSuite) TestListOnly() {
	s.conn.names = []string{"a.txt", "b.txt"}
	body, err := s.perform(map[types.OptionKey]any{
		types.OptURL:            "ftps://ftp.acme.com/pub/",
		types.OptListOnly:       true,
		types.OptReturnTransfer: true,
	})
	s.NoError(err)
	s.Equal("a.txt\r\nb.txt\r\n", body)

	s.Require().Len(s.dials, 1)
	s.Equal("ftp.acme.com:990", s.dials[0].addr, "implicit default port")
	s.Equal(3, s.dials[0].options, "base options plus implicit TLS")
	s.Equal([]string{"LOGIN anonymous", "TYPE I", "NLST /pub/", "QUIT"}, s.conn.calls)
}

func (s *engineSuite) TestLongListing() {
	mod := time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)
	s.conn.entries = []*_ftp.Entry{
		{Name: "docs", Type: _ftp.EntryTypeFolder, Time: mod},
		{Name: "a.txt", Type: _ftp.EntryTypeFile, Size: 42, Time: mod},
	}
	body, err := s.perform(map[types.OptionKey]any{
		types.OptURL:            "ftps://bob:x@ftp.acme.com:2990",
		types.OptUserPwd:        "bob:s3cr3t",
		types.OptReturnTransfer: true,
	})
	s.NoError(err)
	s.Equal(
		"d            0 2024-03-01T12:30:00Z docs\r\n"+
			"-           42 2024-03-01T12:30:00Z a.txt\r\n",
		body,
	)
	s.Equal("ftp.acme.com:2990", s.dials[0].addr)
	s.Equal([]string{"LOGIN bob", "TYPE I", "LIST .", "QUIT"}, s.conn.calls, "empty path lists the login directory")
}

func (s *engineSuite) TestDownloadToWriter() {
	s.conn.put("/pub/a.txt", "hello world!")
	out := fs.NewSeekableBuffer()
	body, err := s.perform(map[types.OptionKey]any{
		types.OptURL:            "ftps://ftp.acme.com/pub/a.txt",
		types.OptFile:           out,
		types.OptTransferText:   true,
		types.OptReturnTransfer: true,
	})
	s.NoError(err)
	s.Empty(body, "FILE takes precedence over the returned body")
	s.Equal("hello world!", string(out.Bytes()))
	s.Contains(s.conn.calls, "TYPE A")
}

func (s *engineSuite) TestDownloadReturnTransfer() {
	s.conn.put("/pub/a.txt", "hello world!")
	body, err := s.perform(map[types.OptionKey]any{
		types.OptURL:            "ftps://ftp.acme.com/pub/a.txt",
		types.OptReturnTransfer: true,
	})
	s.NoError(err)
	s.Equal("hello world!", body)

	body, err = s.perform(map[types.OptionKey]any{
		types.OptURL: "ftps://ftp.acme.com/pub/a.txt",
	})
	s.NoError(err)
	s.Empty(body, "discarded without RETURNTRANSFER")
}

func (s *engineSuite) TestDownloadFailures() {
	_, err := s.perform(map[types.OptionKey]any{
		types.OptURL: "ftps://ftp.acme.com/pub/missing.txt",
	})
	s.ErrorContains(err, "download of /pub/missing.txt failed")

	s.conn.put("/pub/a.txt", "hello")
	s.conn.retrCloseErr = errors.New("426 transfer aborted")
	_, err = s.perform(map[types.OptionKey]any{
		types.OptURL: "ftps://ftp.acme.com/pub/a.txt",
	})
	s.ErrorIs(err, s.conn.retrCloseErr)
}

func (s *engineSuite) TestUpload() {
	_, err := s.perform(map[types.OptionKey]any{
		types.OptURL:      "ftps://ftp.acme.com/pub/new.txt",
		types.OptInFile:   strings.NewReader("contents"),
		types.OptUpload:   true,
		types.OptUserPwd:  "bob:s3cr3t",
		types.OptFTPSSL:   types.FTPSSLTry,
		types.OptListOnly: false,
	})
	s.NoError(err)
	s.Equal("contents", s.conn.get("/pub/new.txt"))

	s.conn.storErr = errors.New("553 Could not create file")
	_, err = s.perform(map[types.OptionKey]any{
		types.OptURL:    "ftps://ftp.acme.com/pub/new.txt",
		types.OptInFile: strings.NewReader("contents"),
		types.OptUpload: true,
	})
	s.ErrorIs(err, s.conn.storErr)
}

func (s *engineSuite) TestQuoteOrdering() {
	s.conn.put("/old.txt", "x")
	_, err := s.perform(map[types.OptionKey]any{
		types.OptURL:       "ftps://ftp.acme.com",
		types.OptListOnly:  true,
		types.OptQuote:     []string{"DELE /gone.txt"},
		types.OptPostQuote: []string{"RNFR /old.txt", "RNTO /new.txt"},
	})
	s.NoError(err)
	s.Equal([]string{
		"LOGIN anonymous",
		"TYPE I",
		"DELE /gone.txt",
		"NLST .",
		"RNFR /old.txt RNTO /new.txt",
		"QUIT",
	}, s.conn.calls)
}

func (s *engineSuite) TestExplicitSchemes() {
	tests := []struct {
		description string
		level       any
		dialErrs    []error
		expected    []dial
		wantErr     bool
	}{
		{
			description: "plain when SSL is off",
			level:       types.FTPSSLNone,
			expected:    []dial{{"ftp.acme.com:21", 2}},
		},
		{
			description: "try falls back to plaintext",
			level:       types.FTPSSLTry,
			dialErrs:    []error{errors.New("534 AUTH TLS refused"), nil},
			expected:    []dial{{"ftp.acme.com:21", 3}, {"ftp.acme.com:21", 2}},
		},
		{
			description: "all requires TLS",
			level:       types.FTPSSLAll,
			dialErrs:    []error{errors.New("534 AUTH TLS refused")},
			expected:    []dial{{"ftp.acme.com:21", 3}},
			wantErr:     true,
		},
	}

	for _, tt := range tests {
		s.Run(tt.description, func() {
			s.dials = nil
			s.dialErrs = tt.dialErrs
			s.conn.calls = nil
			_, err := s.perform(map[types.OptionKey]any{
				types.OptURL:      "ftp://ftp.acme.com/",
				types.OptFTPSSL:   tt.level,
				types.OptListOnly: true,
			})
			if tt.wantErr {
				s.ErrorContains(err, "could not connect to ftp.acme.com:21")
			} else {
				s.NoError(err)
			}
			s.Equal(tt.expected, s.dials)
		})
	}
}

func (s *engineSuite) TestLoginAndTypeFailures() {
	s.conn.loginErr = errors.New("530 Login incorrect")
	_, err := s.perform(map[types.OptionKey]any{
		types.OptURL:     "ftps://ftp.acme.com/",
		types.OptUserPwd: "bob:wrong",
	})
	s.ErrorIs(err, s.conn.loginErr)
	s.ErrorContains(err, "login denied for user bob")
	s.Equal([]string{"LOGIN bob", "QUIT"}, s.conn.calls)

	s.conn.calls = nil
	s.conn.loginErr = nil
	s.conn.typeErr = errors.New("504 Command not implemented for that parameter")
	_, err = s.perform(map[types.OptionKey]any{
		types.OptURL:          "ftps://ftp.acme.com/",
		types.OptTransferText: true,
	})
	s.ErrorIs(err, s.conn.typeErr)
	s.Equal([]string{"LOGIN anonymous", "TYPE A", "QUIT"}, s.conn.calls)
}

func (s *engineSuite) TestHandleLifecycle() {
	h, err := s.engine.Open()
	s.NoError(err)
	s.Equal(int64(1), s.engine.OpenHandles())

	_, err = h.Perform(context.Background())
	s.EqualError(err, "no options have been applied")

	s.Error(h.Apply(types.NewTransferOptions(map[types.OptionKey]any{types.OptURL: 42})))

	s.NoError(h.Close())
	s.NoError(h.Close())
	s.Equal(int64(0), s.engine.OpenHandles(), "double close releases once")

	s.ErrorIs(h.Apply(types.TransferOptions{}), errHandleClosed)
	_, err = h.Perform(context.Background())
	s.ErrorIs(err, errHandleClosed)

	var nilEngine *Engine
	_, err = nilEngine.Open()
	s.Error(err)
}

func (s *engineSuite) TestDialOptions() {
	tests := []struct {
		description string
		cfg         Config
		expected    int
	}{
		{"check defaults", Config{}, 2},
		{"timeout is set", Config{DialTimeout: time.Second}, 3},
		{"all options set", Config{DialTimeout: time.Second, DebugWriter: &bytes.Buffer{}, DialFunc: nil}, 4},
	}
	for _, tt := range tests {
		s.Len(NewEngine(tt.cfg).dialOptions(context.Background()), tt.expected, tt.description)
	}
}

// fakeConn is an in-memory Conn that records each command it receives.
type fakeConn struct {
	files        map[string]*fs.SeekableBuffer
	names        []string
	entries      []*_ftp.Entry
	calls        []string
	loginErr     error
	typeErr      error
	storErr      error
	opErr        error
	retrCloseErr error
}

func newFakeConn() *fakeConn {
	return &fakeConn{files: map[string]*fs.SeekableBuffer{}}
}

func (f *fakeConn) put(path, contents string) {
	buf := fs.NewSeekableBuffer()
	_, _ = buf.Write([]byte(contents))
	f.files[path] = buf
}

func (f *fakeConn) get(path string) string {
	buf, ok := f.files[path]
	if !ok {
		return ""
	}
	return string(buf.Bytes())
}

func (f *fakeConn) record(format string, a ...any) {
	f.calls = append(f.calls, fmt.Sprintf(format, a...))
}

func (f *fakeConn) Login(user, _ string) error {
	f.record("LOGIN %s", user)
	return f.loginErr
}

func (f *fakeConn) Type(transferType _ftp.TransferType) error {
	f.record("TYPE %s", transferType)
	return f.typeErr
}

func (f *fakeConn) Retr(path string) (io.ReadCloser, error) {
	f.record("RETR %s", path)
	buf, ok := f.files[path]
	if !ok {
		return nil, errors.New("550 No such file")
	}
	return &closeErrReader{Reader: bytes.NewReader(buf.Bytes()), err: f.retrCloseErr}, nil
}

func (f *fakeConn) Stor(path string, r io.Reader) error {
	f.record("STOR %s", path)
	if f.storErr != nil {
		return f.storErr
	}
	buf := fs.NewSeekableBuffer()
	if _, err := io.Copy(buf, r); err != nil {
		return err
	}
	f.files[path] = buf
	return nil
}

func (f *fakeConn) List(path string) ([]*_ftp.Entry, error) {
	f.record("LIST %s", path)
	return f.entries, f.opErr
}

func (f *fakeConn) NameList(path string) ([]string, error) {
	f.record("NLST %s", path)
	return f.names, f.opErr
}

func (f *fakeConn) Rename(from, to string) error {
	f.record("RNFR %s RNTO %s", from, to)
	return f.opErr
}

func (f *fakeConn) Delete(path string) error {
	f.record("DELE %s", path)
	return f.opErr
}

func (f *fakeConn) MakeDir(path string) error {
	f.record("MKD %s", path)
	return f.opErr
}

func (f *fakeConn) RemoveDir(path string) error {
	f.record("RMD %s", path)
	return f.opErr
}

func (f *fakeConn) ChangeDir(path string) error {
	f.record("CWD %s", path)
	return f.opErr
}

func (f *fakeConn) NoOp() error {
	f.record("NOOP")
	return f.opErr
}

func (f *fakeConn) Quit() error {
	f.record("QUIT")
	return nil
}

type closeErrReader struct {
	io.Reader
	err error
}

func (r *closeErrReader) Close() error {
	return r.err
}
