package types

// Error is a type that allows for error constants below
type Error string

// Error returns a string representation of the error
func (e Error) Error() string { return string(e) }

const (
	// ErrConnection - the transport could not be opened
	ErrConnection = Error("ftps connection error")

	// ErrAuth - the server rejected the credentials
	ErrAuth = Error("ftps authentication error")

	// ErrMode - a required transfer mode (passive, binary/ascii) could not be set
	ErrMode = Error("ftps mode error")

	// ErrTransfer - the underlying session or transfer engine reported a failure
	ErrTransfer = Error("ftps transfer error")
)
