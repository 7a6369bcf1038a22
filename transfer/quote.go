package transfer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

// runQuotes executes raw FTP commands against conn in order. RNFR is held until the following RNTO.
func runQuotes(conn Conn, cmds []string, log logrus.FieldLogger) error {
	var renameFrom string
	for _, raw := range cmds {
		cmd := strings.TrimSpace(raw)
		tolerant := strings.HasPrefix(cmd, "*")
		cmd = strings.TrimPrefix(cmd, "*")

		verb, arg, _ := strings.Cut(cmd, " ")
		verb = strings.ToUpper(verb)
		arg = strings.TrimSpace(arg)

		var err error
		switch verb {
		case "NOOP":
			err = conn.NoOp()
		case "RNFR":
			if arg == "" {
				return fmt.Errorf("quote command %q requires an argument", raw)
			}
			renameFrom = arg
			continue
		case "RNTO":
			if renameFrom == "" {
				return fmt.Errorf("quote command %q has no preceding RNFR", raw)
			}
			err = requireArg(raw, arg, func() error { return conn.Rename(renameFrom, arg) })
			renameFrom = ""
		case "DELE":
			err = requireArg(raw, arg, func() error { return conn.Delete(arg) })
		case "MKD", "XMKD":
			err = requireArg(raw, arg, func() error { return conn.MakeDir(arg) })
		case "RMD", "XRMD":
			err = requireArg(raw, arg, func() error { return conn.RemoveDir(arg) })
		case "CWD":
			err = requireArg(raw, arg, func() error { return conn.ChangeDir(arg) })
		default:
			return fmt.Errorf("quote command %q is not supported", verb)
		}

		if err != nil {
			if tolerant {
				log.WithError(err).WithField("command", cmd).Debug("ignoring failed quote command")
				continue
			}
			return fmt.Errorf("quote command %q failed: %w", cmd, err)
		}
	}
	if renameFrom != "" {
		return fmt.Errorf("RNFR %s was not followed by RNTO", renameFrom)
	}
	return nil
}

var errMissingArg = errors.New("missing argument")

func requireArg(raw, arg string, fn func() error) error {
	if arg == "" {
		return fmt.Errorf("quote command %q: %w", raw, errMissingArg)
	}
	return fn()
}
