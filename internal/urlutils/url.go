// Package urlutils injects credentials into remote repository URLs.
//
// Remote specifiers are not always URLs: local filesystem paths and bare
// directory names are valid git remotes. Those pass through every function
// here unchanged. AuthenticateStrict additionally rejects specifiers that
// fail to parse at all, so an operation that resolved credentials does not
// silently run without them.
package urlutils

import (
	"fmt"
	"net/url"
	"regexp"
)

var userInfoPattern = regexp.MustCompile(`://([^/@:\s]+):([^/@\s]+)@`)

// Authenticate returns rawURL with its user-info component set to the given
// username and password. Specifiers that do not parse as absolute URLs with a
// host (local paths, file shorthand without scheme) are returned unchanged.
// Existing user-info is replaced, never duplicated, so applying new
// credentials to an already-authenticated URL drops the old pair.
func Authenticate(rawURL, username, password string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return rawURL
	}

	parsed.User = url.UserPassword(username, password)
	return parsed.String()
}

// AuthenticateStrict behaves like Authenticate, except a specifier that
// does not parse at all is an error. Local paths and remote names parse
// fine and still pass through unchanged.
func AuthenticateStrict(rawURL, username, password string) (string, error) {
	if _, err := url.Parse(rawURL); err != nil {
		// regex scrub, the URL did not parse
		return "", fmt.Errorf("invalid remote URL %q: %v", RedactLine(rawURL), err)
	}
	return Authenticate(rawURL, username, password), nil
}

// Redact returns rawURL with any password in its user-info replaced by
// asterisks, for inclusion in logs and error messages.
func Redact(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	if parsed.User == nil {
		return rawURL
	}

	if _, hasPassword := parsed.User.Password(); hasPassword {
		parsed.User = url.UserPassword(parsed.User.Username(), "***")
		return parsed.String()
	}
	return rawURL
}

// RedactLine hides the password of any authenticated URL embedded in a
// command line, so full lines can be logged safely.
func RedactLine(line string) string {
	return userInfoPattern.ReplaceAllString(line, "://$1:***@")
}
