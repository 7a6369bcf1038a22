package ftps

import (
	"github.com/sirupsen/logrus"

	"github.com/c2fo/ftps/options"
	"github.com/c2fo/ftps/types"
)

const (
	optionNamePort      = "port"
	optionNameImplicit  = "implicit"
	optionNamePassive   = "passive"
	optionNameBinary    = "binary"
	optionNameOptions   = "options"
	optionNameLogger    = "logger"
	optionNameSession   = "session"
	optionNameEngine    = "engine"
	optionNameTransport = "transport"
)

// WithPort returns portOpt implementation of NewClientOption
//
// WithPort sets the server port. It overrides Options.Port.
func WithPort(port int) options.NewClientOption[Client] {
	return &portOpt{port: port}
}

type portOpt struct {
	port int
}

func (o *portOpt) Apply(c *Client) {
	c.options.Port = o.port
}

func (o *portOpt) NewClientOptionName() string {
	return optionNamePort
}

// WithImplicit returns implicitOpt implementation of NewClientOption
//
// WithImplicit selects implicit FTPS when true and explicit FTPS when false.
func WithImplicit(implicit bool) options.NewClientOption[Client] {
	return &implicitOpt{implicit: implicit}
}

type implicitOpt struct {
	implicit bool
}

func (o *implicitOpt) Apply(c *Client) {
	c.options.Mode = modeExplicit
	if o.implicit {
		c.options.Mode = modeImplicit
	}
}

func (o *implicitOpt) NewClientOptionName() string {
	return optionNameImplicit
}

// WithPassive returns passiveOpt implementation of NewClientOption
func WithPassive(passive bool) options.NewClientOption[Client] {
	return &passiveOpt{passive: passive}
}

type passiveOpt struct {
	passive bool
}

func (o *passiveOpt) Apply(c *Client) {
	c.options.Passive = &o.passive
}

func (o *passiveOpt) NewClientOptionName() string {
	return optionNamePassive
}

// WithBinary returns binaryOpt implementation of NewClientOption
//
// WithBinary selects binary (true) or ASCII (false) transfers.
func WithBinary(binary bool) options.NewClientOption[Client] {
	return &binaryOpt{binary: binary}
}

type binaryOpt struct {
	binary bool
}

func (o *binaryOpt) Apply(c *Client) {
	c.options.Binary = &o.binary
}

func (o *binaryOpt) NewClientOptionName() string {
	return optionNameBinary
}

// WithOptions returns optionsOpt implementation of NewClientOption
//
// WithOptions replaces the whole Options struct, so it should come before any option that sets a single field.
func WithOptions(opts Options) options.NewClientOption[Client] {
	return &optionsOpt{options: opts}
}

type optionsOpt struct {
	options Options
}

func (o *optionsOpt) Apply(c *Client) {
	c.options = o.options
}

func (o *optionsOpt) NewClientOptionName() string {
	return optionNameOptions
}

// WithLogger returns loggerOpt implementation of NewClientOption
func WithLogger(logger logrus.FieldLogger) options.NewClientOption[Client] {
	return &loggerOpt{logger: logger}
}

type loggerOpt struct {
	logger logrus.FieldLogger
}

func (o *loggerOpt) Apply(c *Client) {
	c.options.Logger = o.logger
}

func (o *loggerOpt) NewClientOptionName() string {
	return optionNameLogger
}

// WithSession returns sessionOpt implementation of NewClientOption
//
// WithSession supplies an already dialed session to explicit mode in place of dialing.
func WithSession(s types.Session) options.NewClientOption[Client] {
	return &sessionOpt{session: s}
}

type sessionOpt struct {
	session types.Session
}

func (o *sessionOpt) Apply(c *Client) {
	c.session = o.session
}

func (o *sessionOpt) NewClientOptionName() string {
	return optionNameSession
}

// WithEngine returns engineOpt implementation of NewClientOption
//
// WithEngine supplies the transfer engine used by implicit mode.
func WithEngine(e types.Engine) options.NewClientOption[Client] {
	return &engineOpt{engine: e}
}

type engineOpt struct {
	engine types.Engine
}

func (o *engineOpt) Apply(c *Client) {
	c.engine = o.engine
}

func (o *engineOpt) NewClientOptionName() string {
	return optionNameEngine
}

// WithTransport returns transportOpt implementation of NewClientOption
//
// WithTransport bypasses mode selection entirely and drives t.
func WithTransport(t types.Transport) options.NewClientOption[Client] {
	return &transportOpt{transport: t}
}

type transportOpt struct {
	transport types.Transport
}

func (o *transportOpt) Apply(c *Client) {
	c.transport = o.transport
}

func (o *transportOpt) NewClientOptionName() string {
	return optionNameTransport
}
