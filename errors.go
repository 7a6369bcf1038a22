package ftps

import "github.com/c2fo/ftps/types"

// Error kinds returned by Client. Concrete errors wrap one of these together with the underlying cause, so both
// can be matched with errors.Is.
const (
	// ErrConnection - the transport could not be opened, or the client is not connected
	ErrConnection = types.ErrConnection

	// ErrAuth - the server rejected the credentials (explicit mode)
	ErrAuth = types.ErrAuth

	// ErrMode - passive or transfer type setup failed (explicit mode)
	ErrMode = types.ErrMode

	// ErrTransfer - the session or transfer engine reported a failure
	ErrTransfer = types.ErrTransfer
)
