/*
Package testcontainers runs ftps.Client conformance tests against real FTPS servers. It uses the local Docker daemon
to run a pure-ftpd server that requires explicit TLS. Implicit FTPS is tested against the server named by the
FTPS_IMPLICIT_SERVER env var (user:pass@host:port), and skipped when it is not set.
*/
package testcontainers
