package utils

import (
	"regexp"

	"github.com/mitchellh/go-homedir"
)

// regex to test whether the last character is a '/'
var hasTrailingSlash = regexp.MustCompile("/$")

// regex to test whether the first character is a '/'
var hasLeadingSlash = regexp.MustCompile("^/")

// regex matching any FTP line break: CRLF, LF or a lone CR
var lineBreak = regexp.MustCompile("\r\n|\n|\r")

// EnsureTrailingSlash will only ever use / since it's used for remote FTP paths, never a Windows OS path.
func EnsureTrailingSlash(dir string) string {
	if hasTrailingSlash.MatchString(dir) {
		return dir
	}
	return dir + "/"
}

// EnsureLeadingSlash is like EnsureTrailingSlash except that it adds the leading slash if needed.
func EnsureLeadingSlash(dir string) string {
	if hasLeadingSlash.MatchString(dir) {
		return dir
	}
	return "/" + dir
}

// SplitLines splits a listing response on CRLF, LF or CR, dropping empty entries.
func SplitLines(s string) []string {
	var lines []string
	for _, l := range lineBreak.Split(s, -1) {
		if l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}

// ExpandLocalPath expands a leading ~ to the current user's home directory.
func ExpandLocalPath(p string) (string, error) {
	return homedir.Expand(p)
}

// Ptr returns a pointer to the given value.
func Ptr[T any](value T) *T {
	return &value
}
