package implicit

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/c2fo/ftps/mocks"
	"github.com/c2fo/ftps/types"
)

type transportSuite struct {
	suite.Suite
	engine *mocks.Engine
	handle *mocks.Handle
}

func TestTransport(t *testing.T) {
	suite.Run(t, new(transportSuite))
}

func (s *transportSuite) SetupTest() {
	s.engine = mocks.NewEngine(s.T())
	s.handle = mocks.NewHandle(s.T())
}

func (s *transportSuite) newTransport(binary, insecure bool) *Transport {
	logger, _ := test.NewNullLogger()
	return New(Config{
		Host:               "ftp.acme.com",
		Port:               990,
		User:               "bob",
		Password:           "s3cr3t",
		Binary:             binary,
		InsecureSkipVerify: insecure,
		Engine:             s.engine,
		Logger:             logger,
	})
}

// expectRequest expects one Open/Apply/Perform/Close cycle and captures the applied options.
func (s *transportSuite) expectRequest(body string, performErr error, applied *types.TransferOptions) {
	s.engine.EXPECT().Open().Return(s.handle, nil).Once()
	s.handle.EXPECT().Apply(mock.Anything).
		Run(func(opts types.TransferOptions) {
			if applied != nil {
				*applied = opts
			}
		}).
		Return(nil).Once()
	s.handle.EXPECT().Perform(mock.Anything).Return(body, performErr).Once()
	s.handle.EXPECT().Close().Return(nil).Once()
}

func (s *transportSuite) connected(binary bool) *Transport {
	s.expectRequest("a.txt\r\n", nil, nil)
	tr := s.newTransport(binary, false)
	s.Require().NoError(tr.Connect(context.Background()))
	return tr
}

func get(opts types.TransferOptions, key types.OptionKey) any {
	v, _ := opts.Get(key)
	return v
}

func (s *transportSuite) TestTargetURL() {
	tr := s.newTransport(true, false)
	tests := []struct {
		path     string
		expected string
	}{
		{"", "ftps://ftp.acme.com:990"},
		{"/", "ftps://ftp.acme.com:990/"},
		{"pub/a.txt", "ftps://ftp.acme.com:990/pub/a.txt"},
		{"/pub/a.txt", "ftps://ftp.acme.com:990/pub/a.txt"},
		{"/pub/a b.txt", "ftps://ftp.acme.com:990/pub/a%20b.txt"},
	}
	for _, tt := range tests {
		s.Equal(tt.expected, tr.targetURL(tt.path), tt.path)
	}
}

func (s *transportSuite) TestDefaultOptions() {
	opts := s.newTransport(true, false).defaultOptions()
	s.Equal("bob:s3cr3t", get(opts, types.OptUserPwd))
	s.Equal(true, get(opts, types.OptSSLVerifyPeer))
	s.Equal(true, get(opts, types.OptSSLVerifyHost))
	s.Equal(types.FTPSSLTry, get(opts, types.OptFTPSSL))
	s.Equal(types.FTPAuthTLS, get(opts, types.OptFTPSSLAuth))
	s.Equal(true, get(opts, types.OptReturnTransfer))

	insecure := s.newTransport(true, true).defaultOptions()
	s.Equal(false, get(insecure, types.OptSSLVerifyPeer), "verification disabled only on request")
	s.Equal(false, get(insecure, types.OptSSLVerifyHost))
}

func (s *transportSuite) TestTransferModeOptions() {
	binary := s.newTransport(true, false).transferModeOptions()
	s.Equal(true, get(binary, types.OptBinaryTransfer))
	s.Equal(1, binary.Len())

	text := s.newTransport(false, false).transferModeOptions()
	s.Equal(true, get(text, types.OptTransferText))
	s.Equal(1, text.Len())
}

func (s *transportSuite) TestConnectSmokeTest() {
	var applied types.TransferOptions
	s.expectRequest("a.txt\r\n", nil, &applied)

	tr := s.newTransport(true, false)
	s.NoError(tr.Connect(context.Background()))

	s.Equal("ftps://ftp.acme.com:990/", get(applied, types.OptURL), "exactly one listing of /")
	s.Equal(true, get(applied, types.OptListOnly))
	s.Equal("bob:s3cr3t", get(applied, types.OptUserPwd), "credentials ride on every request")
	s.engine.AssertNumberOfCalls(s.T(), "Open", 1)
}

func (s *transportSuite) TestConnectFailure() {
	loginErr := errors.New("Access denied: 530")
	s.expectRequest("", loginErr, nil)

	tr := s.newTransport(true, false)
	err := tr.Connect(context.Background())
	s.ErrorIs(err, types.ErrConnection)
	s.ErrorIs(err, loginErr)
	s.Contains(err.Error(), "implicit secure FTP login failed")
	s.False(tr.ready, "no persistent state after a failed connect")

	// no handle is opened once connect has failed
	_, err = tr.List(context.Background(), "/")
	s.ErrorIs(err, types.ErrConnection)
}

func (s *transportSuite) TestGet() {
	tr := s.connected(true)
	var applied types.TransferOptions
	s.expectRequest("", nil, &applied)

	buf := &bytes.Buffer{}
	s.NoError(tr.Get(context.Background(), buf, "pub/a.txt"))
	s.Equal("ftps://ftp.acme.com:990/pub/a.txt", get(applied, types.OptURL))
	s.Same(buf, get(applied, types.OptFile))
	s.Equal(true, get(applied, types.OptBinaryTransfer))
	s.Equal(true, get(applied, types.OptReturnTransfer), "defaults still present")
}

func (s *transportSuite) TestGetTransferError() {
	tr := s.connected(true)
	s.expectRequest("", errors.New("RETR response: 550"), nil)

	err := tr.Get(context.Background(), &bytes.Buffer{}, "/missing.txt")
	s.ErrorIs(err, types.ErrTransfer)
	s.Contains(err.Error(), "RETR response: 550")
}

func (s *transportSuite) TestPut() {
	tr := s.connected(false)
	var applied types.TransferOptions
	s.expectRequest("", nil, &applied)

	r := strings.NewReader("contents")
	s.NoError(tr.Put(context.Background(), r, "/pub/a.txt"))
	s.Equal("ftps://ftp.acme.com:990/pub/a.txt", get(applied, types.OptURL))
	s.Same(r, get(applied, types.OptInFile))
	s.Equal(true, get(applied, types.OptUpload))
	s.Equal(true, get(applied, types.OptTransferText))
}

func (s *transportSuite) TestRename() {
	tr := s.connected(true)
	var applied types.TransferOptions
	s.expectRequest("", nil, &applied)

	s.NoError(tr.Rename(context.Background(), "old.txt", "new.txt"))
	s.Equal("ftps://ftp.acme.com:990", get(applied, types.OptURL), "base URL")
	s.Equal([]string{"RNFR old.txt", "RNTO new.txt"}, get(applied, types.OptPostQuote))
}

func (s *transportSuite) TestDelete() {
	tr := s.connected(true)
	var applied types.TransferOptions
	s.expectRequest("", nil, &applied)

	s.NoError(tr.Delete(context.Background(), "/pub/a.txt"))
	s.Equal("ftps://ftp.acme.com:990", get(applied, types.OptURL))
	s.Equal([]string{"DELE /pub/a.txt"}, get(applied, types.OptQuote))
}

func (s *transportSuite) TestList() {
	tr := s.connected(true)
	ctx := context.Background()

	var applied types.TransferOptions
	s.expectRequest("a.txt\r\nb.txt\r\n", nil, &applied)
	names, err := tr.List(ctx, "/pub")
	s.NoError(err)
	s.Equal([]string{"a.txt", "b.txt"}, names)
	s.Equal("ftps://ftp.acme.com:990/pub/", get(applied, types.OptURL), "trailing separator added")

	s.expectRequest("a.txt\nb.txt\n", nil, nil)
	names, err = tr.List(ctx, "/pub/")
	s.NoError(err)
	s.Equal([]string{"a.txt", "b.txt"}, names, "LF endings split identically")
}

func (s *transportSuite) TestExecuteTransferRequestFailures() {
	tr := s.connected(true)
	ctx := context.Background()
	call := types.NewTransferOptions(map[types.OptionKey]any{types.OptURL: tr.targetURL("/")})

	// open failure - nothing to close
	s.engine.EXPECT().Open().Return(nil, errors.New("out of handles")).Once()
	_, err := tr.executeTransferRequest(ctx, call)
	s.ErrorIs(err, types.ErrTransfer)

	// apply failure - handle still closed
	s.engine.EXPECT().Open().Return(s.handle, nil).Once()
	s.handle.EXPECT().Apply(mock.Anything).Return(errors.New("bad option")).Once()
	s.handle.EXPECT().Close().Return(nil).Once()
	_, err = tr.executeTransferRequest(ctx, call)
	s.ErrorIs(err, types.ErrTransfer)

	// close failure is reported alongside success
	s.engine.EXPECT().Open().Return(s.handle, nil).Once()
	s.handle.EXPECT().Apply(mock.Anything).Return(nil).Once()
	s.handle.EXPECT().Perform(mock.Anything).Return("ok", nil).Once()
	s.handle.EXPECT().Close().Return(errors.New("close failed")).Once()
	_, err = tr.executeTransferRequest(ctx, call)
	s.ErrorIs(err, types.ErrTransfer)
	s.Contains(err.Error(), "close failed")
}

func (s *transportSuite) TestMergeDoesNotLeakBetweenCalls() {
	tr := s.connected(true)
	ctx := context.Background()

	s.expectRequest("", nil, nil)
	s.NoError(tr.Delete(ctx, "/a.txt"))

	var applied types.TransferOptions
	s.expectRequest("", nil, &applied)
	_, err := tr.List(ctx, "/")
	s.NoError(err)
	_, found := applied.Get(types.OptQuote)
	s.False(found, "quote from a previous call must not carry over")
}

func (s *transportSuite) TestClose() {
	tr := s.connected(true)
	s.NoError(tr.Close())
	s.NoError(tr.Close())
	s.ErrorIs(tr.Delete(context.Background(), "/a.txt"), types.ErrConnection)
}

// countingEngine tracks handles so leaks across failing calls are detectable.
type countingEngine struct {
	opened, closed int
	perform        func() (string, error)
}

func (e *countingEngine) Open() (types.Handle, error) {
	e.opened++
	return &countingHandle{engine: e}, nil
}

type countingHandle struct {
	engine *countingEngine
}

func (h *countingHandle) Apply(types.TransferOptions) error { return nil }

func (h *countingHandle) Perform(context.Context) (string, error) { return h.engine.perform() }

func (h *countingHandle) Close() error {
	h.engine.closed++
	return nil
}

func TestHandleReleasedOnEveryPath(t *testing.T) {
	engine := &countingEngine{perform: func() (string, error) { return "/\r\n", nil }}
	logger, _ := test.NewNullLogger()
	tr := New(Config{Host: "h", Port: 990, Engine: engine, Logger: logger, Binary: true})
	if err := tr.Connect(context.Background()); err != nil {
		t.Fatalf("connect: %v", err)
	}

	engine.perform = func() (string, error) { return "", errors.New("425 Can't open data connection") }
	for i := 0; i < 50; i++ {
		if err := tr.Get(context.Background(), &bytes.Buffer{}, "/a.txt"); !errors.Is(err, types.ErrTransfer) {
			t.Fatalf("expected transfer error, got %v", err)
		}
	}

	engine.perform = func() (string, error) { panic("engine blew up") }
	func() {
		defer func() { _ = recover() }()
		_ = tr.Delete(context.Background(), "/a.txt")
	}()

	if engine.opened != engine.closed {
		t.Fatalf("leaked handles: opened %d, closed %d", engine.opened, engine.closed)
	}
	if engine.opened != 52 {
		t.Fatalf("expected 52 handles, got %d", engine.opened)
	}
}
