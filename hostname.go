// Package hostname validates hostnames according to RFC 1123.
//
// Only the character set and the first/last byte are checked. Total length,
// per-label length and internationalized names are left to the caller.
package hostname

// IsValid reports whether hostname is a valid hostname.
//
// A hostname is valid if all of the following hold:
//
//   - It is not empty.
//   - It only contains ASCII letters, digits, '-' and '.'.
//   - It does not start or end with '-' or '.'.
//
// The input is scanned byte by byte, so any non-ASCII input is invalid.
func IsValid(hostname string) bool {
	return isValid(hostname)
}

// IsValidBytes is like IsValid, but for a byte slice.
func IsValidBytes(hostname []byte) bool {
	return isValid(hostname)
}

func isValid[T ~string | ~[]byte](hostname T) bool {
	n := len(hostname)
	if n == 0 {
		return false
	}
	if isBoundary(hostname[0]) || isBoundary(hostname[n-1]) {
		return false
	}
	for i := 0; i < n; i++ {
		if !isValidChar(hostname[i]) {
			return false
		}
	}
	return true
}

func isValidChar(b byte) bool {
	switch {
	case 'a' <= b && b <= 'z',
		'A' <= b && b <= 'Z',
		'0' <= b && b <= '9',
		b == '-', b == '.':
		return true
	}
	return false
}

// isBoundary reports whether b may not appear as the first or last byte.
func isBoundary(b byte) bool {
	return b == '-' || b == '.'
}
