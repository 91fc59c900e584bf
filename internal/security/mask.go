package security

import "strings"

// MaskRune replaces the hidden part of a credential.
const MaskRune = '•'

// MaskCredential hides a stored credential before it leaves the server.
// Values longer than 12 characters keep their first 6 and last 4 characters;
// shorter values are masked entirely. The result never equals a non-empty raw value.
func MaskCredential(raw string) string {
	if raw == "" {
		return ""
	}

	r := []rune(raw)
	masked := strings.Repeat(string(MaskRune), len(r))
	if len(r) > 12 {
		masked = string(r[:6]) + strings.Repeat(string(MaskRune), len(r)-10) + string(r[len(r)-4:])
	}
	if masked == raw {
		masked += string(MaskRune)
	}
	return masked
}

// IsMasked reports whether a value came back from MaskCredential unchanged,
// so updates can ignore echoed masks instead of overwriting the stored secret.
func IsMasked(value string) bool {
	return strings.ContainsRune(value, MaskRune)
}
