package utils

import "fmt"

// WrapOpenLocalError returns a wrapped local file open error
func WrapOpenLocalError(err error) error {
	return fmt.Errorf("open local file error: %w", err)
}

// WrapGetError returns a wrapped download error
func WrapGetError(err error) error {
	return fmt.Errorf("get error: %w", err)
}

// WrapPutError returns a wrapped upload error
func WrapPutError(err error) error {
	return fmt.Errorf("put error: %w", err)
}

// WrapRenameError returns a wrapped rename error
func WrapRenameError(err error) error {
	return fmt.Errorf("rename error: %w", err)
}

// WrapDeleteError returns a wrapped delete error
func WrapDeleteError(err error) error {
	return fmt.Errorf("delete error: %w", err)
}

// WrapListError returns a wrapped list error
func WrapListError(err error) error {
	return fmt.Errorf("list error: %w", err)
}

// WrapCloseError returns a wrapped close error
func WrapCloseError(err error) error {
	return fmt.Errorf("close error: %w", err)
}
