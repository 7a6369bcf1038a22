package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"

	"github.com/c2fo/ftps"
	"github.com/c2fo/ftps/options"
	"github.com/c2fo/ftps/utils"
)

var newClient = ftps.NewClient

func main() {
	if err := newApp(os.Stdout, os.Stderr).Run(os.Args); err != nil {
		_, _ = color.New(color.FgRed).Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp(out, errOut io.Writer) *cli.App {
	app := cli.NewApp()
	app.Name = "ftpscp"
	app.Usage = "Transfers files to and from an FTPS server over explicit or implicit TLS"
	app.Writer = out
	app.ErrWriter = errOut
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:   "server, s",
			Usage:  "server as user@host[:port]",
			EnvVar: "FTPS_SERVER",
		},
		cli.StringFlag{
			Name:   "password, p",
			Usage:  "password for user",
			EnvVar: "FTPS_PASSWORD",
		},
		cli.BoolFlag{
			Name:  "implicit",
			Usage: "use implicit FTPS (TLS from the first byte) instead of AUTH TLS",
		},
		cli.BoolFlag{
			Name:  "ascii",
			Usage: "transfer in ASCII mode instead of binary",
		},
		cli.BoolFlag{
			Name:  "insecure",
			Usage: "skip server certificate and hostname verification",
		},
		cli.DurationFlag{
			Name:  "timeout",
			Usage: "dial timeout, ie: 30s",
		},
		cli.BoolFlag{
			Name:  "debug",
			Usage: "print FTP commands and replies to stderr",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "get",
			Usage:     "download a remote file",
			ArgsUsage: "<remote> <local>",
			Action: withClient(2, func(ctx context.Context, c *ftps.Client, args cli.Args) (bool, error) {
				return c.Get(ctx, args.Get(1), args.Get(0))
			}),
		},
		{
			Name:      "put",
			Usage:     "upload a local file",
			ArgsUsage: "<local> <remote>",
			Action: withClient(2, func(ctx context.Context, c *ftps.Client, args cli.Args) (bool, error) {
				return c.Put(ctx, args.Get(0), args.Get(1))
			}),
		},
		{
			Name:      "rename",
			Aliases:   []string{"mv"},
			Usage:     "rename a remote file",
			ArgsUsage: "<old> <new>",
			Action: withClient(2, func(ctx context.Context, c *ftps.Client, args cli.Args) (bool, error) {
				return c.Rename(ctx, args.Get(0), args.Get(1))
			}),
		},
		{
			Name:      "delete",
			Aliases:   []string{"rm"},
			Usage:     "delete a remote file",
			ArgsUsage: "<path>",
			Action: withClient(1, func(ctx context.Context, c *ftps.Client, args cli.Args) (bool, error) {
				return c.Delete(ctx, args.Get(0))
			}),
		},
		{
			Name:      "ls",
			Usage:     "list a remote directory",
			ArgsUsage: "<path>",
			Action: func(cliCtx *cli.Context) error {
				var names []string
				action := withClient(1, func(ctx context.Context, c *ftps.Client, args cli.Args) (bool, error) {
					var err error
					names, err = c.Dir(ctx, args.Get(0))
					return err == nil, err
				})
				if err := action(cliCtx); err != nil {
					return err
				}
				if len(names) > 0 {
					_, _ = fmt.Fprintln(cliCtx.App.Writer, strings.Join(names, "\n"))
				}
				return nil
			},
		},
	}
	return app
}

type operation func(ctx context.Context, c *ftps.Client, args cli.Args) (bool, error)

// withClient validates the argument count, connects, runs op and reports its result.
func withClient(nargs int, op operation) func(*cli.Context) error {
	return func(cliCtx *cli.Context) error {
		if err := checkArgs(cliCtx.Args(), nargs); err != nil {
			return fmt.Errorf("%s: %w", cliCtx.Command.Name, err)
		}

		ctx := context.Background()
		client, err := connect(ctx, cliCtx)
		if err != nil {
			return err
		}
		defer func() { _ = client.Close() }()

		ok, err := op(ctx, client, cliCtx.Args())
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%s %s: nothing was transferred", cliCtx.Command.Name, strings.Join(cliCtx.Args(), " "))
		}
		if cliCtx.Command.Name != "ls" {
			_, _ = color.New(color.FgGreen).Fprintf(cliCtx.App.Writer, "%s %s: done\n", cliCtx.Command.Name, strings.Join(cliCtx.Args(), " "))
		}
		return nil
	}
}

func checkArgs(args cli.Args, n int) error {
	if len(args) != n {
		return fmt.Errorf("requires %d arguments, got %d", n, len(args))
	}
	for _, a := range args {
		if a == "" {
			return errors.New("arguments may not be empty")
		}
	}
	return nil
}

func connect(ctx context.Context, cliCtx *cli.Context) (*ftps.Client, error) {
	server := cliCtx.GlobalString("server")
	if server == "" {
		return nil, errors.New("--server (or FTPS_SERVER) is required")
	}
	auth, err := utils.NewAuthority(server)
	if err != nil {
		return nil, fmt.Errorf("invalid server %q: %w", server, err)
	}

	logger := logrus.New()
	logger.SetOutput(cliCtx.App.ErrWriter)
	logger.SetLevel(logrus.WarnLevel)

	opts := ftps.Options{
		DialTimeout: cliCtx.GlobalDuration("timeout"),
		Logger:      logger,
	}
	if cliCtx.GlobalBool("insecure") {
		opts.InsecureSkipVerify = utils.Ptr(true)
	}
	if cliCtx.GlobalBool("debug") {
		opts.DebugWriter = cliCtx.App.ErrWriter
		logger.SetLevel(logrus.DebugLevel)
	}

	clientOpts := []options.NewClientOption[ftps.Client]{ftps.WithOptions(opts)}
	if auth.Port() != 0 {
		clientOpts = append(clientOpts, ftps.WithPort(int(auth.Port())))
	}
	if cliCtx.GlobalIsSet("implicit") {
		clientOpts = append(clientOpts, ftps.WithImplicit(cliCtx.GlobalBool("implicit")))
	}
	if cliCtx.GlobalBool("ascii") {
		clientOpts = append(clientOpts, ftps.WithBinary(false))
	}

	password := cliCtx.GlobalString("password")
	if password == "" {
		password = auth.Password()
	}

	logger.WithFields(logrus.Fields{
		"function": "connect",
		"server":   auth.HostPortStr(21),
		"user":     auth.Username(),
	}).Debug("connecting")
	return newClient(ctx, auth.Host(), auth.Username(), password, clientOpts...)
}
