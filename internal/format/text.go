package format

// CString decodes a fixed-width text field starting at off, trimming at the
// first NUL. Decoding never reads past the n-byte field, even when no NUL is
// present.
func CString(b []byte, off, n int) string {
	f := b[off : off+n]
	for i, c := range f {
		if c == 0 {
			return string(f[:i])
		}
	}
	return string(f)
}

// ParseUint parses an unsigned integer with C strtoul(s, NULL, 0) semantics:
// leading whitespace and an optional '+' are skipped, "0x"/"0X" selects hex, a
// leading '0' selects octal, anything else decimal. The longest valid digit
// prefix is consumed; a field with no valid digits yields zero. Firmware
// archives in the wild carry garbage in these fields, so parsing is
// deliberately permissive and never fails.
func ParseUint(s string) uint64 {
	i := 0
	for i < len(s) && (s[i] == ' ' || s[i] == '\t' || s[i] == '\n' || s[i] == '\v' || s[i] == '\f' || s[i] == '\r') {
		i++
	}
	if i < len(s) && s[i] == '+' {
		i++
	}

	base := uint64(10)
	if i < len(s) && s[i] == '0' {
		if i+1 < len(s) && (s[i+1] == 'x' || s[i+1] == 'X') && isHexDigit(s[i+2:]) {
			base = 16
			i += 2
		} else {
			base = 8
		}
	}

	var v uint64
	for ; i < len(s); i++ {
		d, ok := digitVal(s[i])
		if !ok || d >= base {
			break
		}
		v = v*base + d
	}
	return v
}

// isHexDigit reports whether s starts with a hex digit. strtoul only treats
// "0x" as a hex prefix when a digit follows; a bare "0x" is the octal zero
// followed by junk.
func isHexDigit(s string) bool {
	if len(s) == 0 {
		return false
	}
	d, ok := digitVal(s[0])
	return ok && d < 16
}

func digitVal(c byte) (uint64, bool) {
	switch {
	case c >= '0' && c <= '9':
		return uint64(c - '0'), true
	case c >= 'a' && c <= 'f':
		return uint64(c-'a') + 10, true
	case c >= 'A' && c <= 'F':
		return uint64(c-'A') + 10, true
	}
	return 0, false
}
