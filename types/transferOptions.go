package types

import (
	"fmt"
	"sort"
)

// OptionKey names a single transfer engine option.
type OptionKey int

const (
	_ OptionKey = iota
	// OptURL is the target URL (string), ie: ftps://host:990/path/file.txt
	OptURL
	// OptUserPwd is "user:password" (string)
	OptUserPwd
	// OptSSLVerifyPeer toggles certificate chain verification (bool)
	OptSSLVerifyPeer
	// OptSSLVerifyHost toggles certificate hostname verification (bool)
	OptSSLVerifyHost
	// OptFTPSSL is the requested FTP-SSL level (FTPSSL)
	OptFTPSSL
	// OptFTPSSLAuth is the AUTH method used when upgrading a plain control channel (FTPAuth)
	OptFTPSSLAuth
	// OptReturnTransfer captures the response body and returns it from Perform (bool)
	OptReturnTransfer
	// OptBinaryTransfer requests TYPE I (bool)
	OptBinaryTransfer
	// OptTransferText requests TYPE A (bool)
	OptTransferText
	// OptFile is the download destination (io.Writer)
	OptFile
	// OptInFile is the upload source (io.Reader)
	OptInFile
	// OptUpload switches the request to an upload (bool)
	OptUpload
	// OptQuote lists raw commands sent before the transfer ([]string)
	OptQuote
	// OptPostQuote lists raw commands sent after the transfer ([]string)
	OptPostQuote
	// OptListOnly requests a names-only (NLST) listing (bool)
	OptListOnly
)

var optionKeyNames = map[OptionKey]string{
	OptURL:            "URL",
	OptUserPwd:        "USERPWD",
	OptSSLVerifyPeer:  "SSL_VERIFYPEER",
	OptSSLVerifyHost:  "SSL_VERIFYHOST",
	OptFTPSSL:         "FTP_SSL",
	OptFTPSSLAuth:     "FTPSSLAUTH",
	OptReturnTransfer: "RETURNTRANSFER",
	OptBinaryTransfer: "BINARYTRANSFER",
	OptTransferText:   "TRANSFERTEXT",
	OptFile:           "FILE",
	OptInFile:         "INFILE",
	OptUpload:         "UPLOAD",
	OptQuote:          "QUOTE",
	OptPostQuote:      "POSTQUOTE",
	OptListOnly:       "FTPLISTONLY",
}

func (k OptionKey) String() string {
	if name, ok := optionKeyNames[k]; ok {
		return name
	}
	return fmt.Sprintf("OptionKey(%d)", int(k))
}

// FTPSSL is the level of TLS requested for an ftp:// URL. ftps:// URLs are always implicit TLS.
type FTPSSL int

const (
	// FTPSSLNone never attempts TLS
	FTPSSLNone FTPSSL = iota
	// FTPSSLTry attempts AUTH and falls back to plaintext when the server refuses
	FTPSSLTry
	// FTPSSLControl requires TLS on the control connection
	FTPSSLControl
	// FTPSSLAll requires TLS on control and data connections
	FTPSSLAll
)

// FTPAuth is the AUTH command flavor sent when upgrading a plain control connection.
type FTPAuth int

const (
	// FTPAuthDefault lets the engine choose
	FTPAuthDefault FTPAuth = iota
	// FTPAuthSSL sends AUTH SSL
	FTPAuthSSL
	// FTPAuthTLS sends AUTH TLS
	FTPAuthTLS
)

// TransferOptions is an immutable mapping of option keys to values. Every mutating method returns a copy.
type TransferOptions struct {
	values map[OptionKey]any
}

// NewTransferOptions returns a TransferOptions holding a copy of values.
func NewTransferOptions(values map[OptionKey]any) TransferOptions {
	o := TransferOptions{values: make(map[OptionKey]any, len(values))}
	for k, v := range values {
		o.values[k] = v
	}
	return o
}

// With returns a copy of o with key set to value.
func (o TransferOptions) With(key OptionKey, value any) TransferOptions {
	c := NewTransferOptions(o.values)
	c.values[key] = value
	return c
}

// Merge returns a new TransferOptions holding o's entries overlaid by override's. Entries in override win on
// key collision. Neither o nor override is modified.
func (o TransferOptions) Merge(override TransferOptions) TransferOptions {
	merged := NewTransferOptions(o.values)
	for k, v := range override.values {
		merged.values[k] = v
	}
	return merged
}

// Get returns the value stored under key.
func (o TransferOptions) Get(key OptionKey) (any, bool) {
	v, ok := o.values[key]
	return v, ok
}

// Len returns the number of options set.
func (o TransferOptions) Len() int {
	return len(o.values)
}

// Keys returns the set option keys in ascending order.
func (o TransferOptions) Keys() []OptionKey {
	keys := make([]OptionKey, 0, len(o.values))
	for k := range o.values {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// String returns a readable rendering of o with the credential value masked.
func (o TransferOptions) String() string {
	s := "{"
	for i, k := range o.Keys() {
		if i > 0 {
			s += " "
		}
		v := o.values[k]
		if k == OptUserPwd {
			v = "***"
		}
		s += fmt.Sprintf("%s=%v", k, v)
	}
	return s + "}"
}
