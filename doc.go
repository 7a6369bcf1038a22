/*
Package ftps provides a FTP-over-TLS client that speaks both explicit and implicit FTPS behind one API.

Explicit FTPS connects in plaintext on the control port (usually 21) and upgrades with AUTH TLS. The client keeps
one logged-in session open between Connect and Close.

Implicit FTPS negotiates TLS from the first byte (usually port 990). The client holds no connection; every
operation is an independent, self-authenticating request issued through the transfer package.

Usage

	client, err := ftps.NewClient(ctx, "ftp.acme.com", "bob", "s3cr3t",
		ftps.WithImplicit(true),
		ftps.WithPort(990),
	)
	if err != nil {
		return err
	}
	defer client.Close()

	ok, err := client.Put(ctx, "/tmp/report.csv", "/incoming/report.csv")
	if err != nil {
		return err
	}
	if !ok {
		// an argument was empty or the local file could not be opened
	}

	names, err := client.Dir(ctx, "/incoming")

Results

Get, Put, Rename and Delete return a bool and an error:

  - true, nil: the operation succeeded
  - false, nil: a required argument was empty, or the local file could not be opened (logged at warn level)
  - false, err: the server or transfer failed; err wraps ErrTransfer

Connect failures wrap ErrConnection, ErrAuth or ErrMode. Use errors.Is to test for them.

Configuration

Options values take precedence over env vars, which take precedence over defaults.

  - FTPS_PASSWORD: password used when NewClient receives an empty one
  - FTPS_PORT: server port, default 21
  - FTPS_MODE: explicit (default) or implicit
  - FTPS_DISABLE_EPSV: "true" or "1" to use PASV instead of EPSV
  - FTPS_INSECURE_SKIP_VERIFY: "true" or "1" to disable certificate and hostname verification
  - FTPS_CLIENT_CERT, FTPS_CLIENT_CERT_PASSWORD: a PKCS#12 client certificate and its password
  - FTPS_PROXY: a socks5:// proxy URL

Certificate verification is on unless explicitly disabled.
*/
package ftps
