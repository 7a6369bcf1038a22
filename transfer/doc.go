/*
Package transfer is a generic URL transfer engine for FTP and FTPS.

A request is described entirely by a types.TransferOptions set applied to a single-use Handle:

	engine := transfer.NewEngine(transfer.Config{DialTimeout: 15 * time.Second})

	h, err := engine.Open()
	if err != nil {
		return err
	}
	defer h.Close()

	opts := types.NewTransferOptions(map[types.OptionKey]any{
		types.OptURL:            "ftps://ftp.acme.com:990/pub/",
		types.OptUserPwd:        "bob:s3cr3t",
		types.OptListOnly:       true,
		types.OptReturnTransfer: true,
	})
	if err := h.Apply(opts); err != nil {
		return err
	}
	listing, err := h.Perform(ctx)

# Schemes

ftps:// connects with implicit TLS (default port 990). ftp:// connects in plaintext (default port 21) and
upgrades according to OptFTPSSL: FTPSSLTry attempts AUTH TLS and falls back to plaintext when refused,
FTPSSLControl and FTPSSLAll require it. Both protected levels also protect the data channel.

# Request shape

A URL whose path is empty or ends in "/" is a directory listing (NLST when OptListOnly, LIST otherwise).
Any other path is a download, or an upload when OptUpload is set and OptInFile provides the reader.

OptQuote commands run after login and before the transfer, OptPostQuote commands after it. Supported
verbs are DELE, RNFR/RNTO, MKD, RMD, CWD and NOOP. A command prefixed with "*" may fail without failing the
request.

# TLS verification

OptSSLVerifyPeer and OptSSLVerifyHost both default to true. Disabling only host verification still
validates the certificate chain.
*/
package transfer
