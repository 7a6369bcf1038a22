package utils

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"
)

/*
   URI parlance (see https://www.rfc-editor.org/rfc/rfc3986.html#section-3.2):

       ftps://bob@example.com:990/pub/file.txt
       \__/   \_______________/\___________/
        |            |               |
     scheme      authority          path

   Where:
     authority   = [ userinfo "@" ] host [ ":" port ]
*/

// Authority represents host, port and userinfo (user/pass) in a URI
type Authority struct {
	host string
	port uint16
	url  *url.URL
}

// Username returns the username of the authority.  May be an empty string.
func (a Authority) Username() string {
	return a.url.User.Username()
}

// Password returns the password of the authority.  May be an empty string.
func (a Authority) Password() string {
	p, _ := a.url.User.Password()
	return p
}

// Host returns the host portion of an authority
func (a Authority) Host() string {
	return a.host
}

// Port returns the port portion of an authority.  Zero when absent.
func (a Authority) Port() uint16 {
	return a.port
}

// HostPortStr returns host and port separated by a colon, using defaultPort when the authority has none,
// ie "host.com:990"
func (a Authority) HostPortStr(defaultPort uint16) string {
	port := a.port
	if port == 0 {
		port = defaultPort
	}
	if strings.Contains(a.host, ":") {
		return fmt.Sprintf("[%s]:%d", a.host, port)
	}
	return fmt.Sprintf("%s:%d", a.host, port)
}

// String returns a string representation of authority.  It never includes the password.
func (a Authority) String() string {
	authority := a.host
	if a.port != 0 {
		authority = fmt.Sprintf("%s:%d", authority, a.port)
	}
	if a.Username() != "" {
		authority = fmt.Sprintf("%s@%s", a.Username(), authority)
	}
	return authority
}

var schemeRE = regexp.MustCompile("^[A-Za-z][A-Za-z0-9+.-]*://")

// NewAuthority initializes Authority struct by parsing an authority string, with or without scheme.
func NewAuthority(authority string) (Authority, error) {
	if authority == "" {
		return Authority{}, errors.New("authority string may not be empty")
	}

	if !schemeRE.MatchString(authority) {
		authority = "scheme://" + authority
	}

	u, err := url.Parse(authority)
	if err != nil {
		return Authority{}, err
	}

	host, portStr := splitHostPort(u.Host)
	if host == "" {
		return Authority{}, errors.New("authority host may not be empty")
	}
	var port uint16
	if portStr != "" {
		val, err := strconv.ParseUint(portStr, 10, 16)
		if err != nil {
			return Authority{}, err
		}
		port = uint16(val)
	}

	return Authority{
		host: host,
		port: port,
		url:  u,
	}, nil
}

// splitHostPort separates host and port. Unlike net.SplitHostPort, but per RFC 3986, it requires ports to be
// numeric.
func splitHostPort(hostPort string) (host, port string) {
	host = hostPort

	colon := strings.LastIndexByte(host, ':')
	if colon != -1 && validOptionalPort(host[colon:]) {
		host, port = host[:colon], host[colon+1:]
	}

	if strings.HasPrefix(host, "[") && strings.HasSuffix(host, "]") {
		host = host[1 : len(host)-1]
	}

	return
}

// validOptionalPort reports whether port is either an empty string or matches /^:\d*$/
func validOptionalPort(port string) bool {
	if port == "" {
		return true
	}
	if port[0] != ':' {
		return false
	}
	for _, b := range port[1:] {
		if b < '0' || b > '9' {
			return false
		}
	}
	return true
}
