package testcontainers

import (
	"context"
	"fmt"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	pureftpdPort     = "21/tcp"
	pureftpdUser     = "ftps"
	pureftpdPassword = "dummy"
)

// Server addresses a running FTPS server.
type Server struct {
	Host     string
	Port     int
	User     string
	Password string
}

// registerPureFTPd starts a pure-ftpd container that refuses plaintext logins. The passive port range is mapped
// one to one because the server advertises the ports it listens on.
func registerPureFTPd(t *testing.T) Server {
	ctx := context.Background()
	is := require.New(t)

	req := testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Name:         "ftps-pureftpd",
			Image:        "stilliard/pure-ftpd:latest",
			ExposedPorts: []string{"21", "30000-30009:30000-30009"},
			Env: map[string]string{
				"PUBLICHOST":        "localhost",
				"FTP_USER_NAME":     pureftpdUser,
				"FTP_USER_PASS":     pureftpdPassword,
				"FTP_USER_HOME":     "/home/ftps",
				"FTP_PASSIVE_PORTS": "30000:30009",
				"ADDED_FLAGS":       "--tls=2",
				"TLS_CN":            "localhost",
				"TLS_ORG":           "c2fo",
				"TLS_C":             "US",
				"TLS_USE_DSAPRAM":   "true",
				"FTP_MAX_CLIENTS":   "20",
			},
			WaitingFor: wait.ForListeningPort(pureftpdPort),
		},
		Started: true,
	}
	ctr, err := testcontainers.GenericContainer(ctx, req)
	testcontainers.CleanupContainer(t, ctr)
	is.NoError(err)

	host, err := ctr.Host(ctx)
	is.NoError(err)

	port, err := ctr.MappedPort(ctx, pureftpdPort)
	is.NoError(err)
	p, err := strconv.Atoi(port.Port())
	is.NoError(err, fmt.Sprintf("mapped port %q", port.Port()))

	return Server{
		Host:     host,
		Port:     p,
		User:     pureftpdUser,
		Password: pureftpdPassword,
	}
}
