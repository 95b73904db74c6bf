package types

import "strings"

// ValidateName checks the registration syntax: lowercase alphanumerics
// and hyphens, length within [minLen, maxLen], no hyphen at either end,
// and no "--" in the third and fourth position (reserved for punycode
// style encodings). Callers trim whitespace first via CleanName.
func ValidateName(name string, minLen, maxLen uint32) error {
	n := uint32(len(name))
	if n < minLen {
		return ErrNameTooShort.Wrapf("%q is %d chars, min %d", name, n, minLen)
	}
	if n > maxLen {
		return ErrNameTooLong.Wrapf("%q is %d chars, max %d", name, n, maxLen)
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= '0' && c <= '9':
		case c == '-':
		default:
			return ErrInvalidName.Wrapf("%q contains invalid character %q", name, c)
		}
	}
	if name[0] == '-' || name[len(name)-1] == '-' {
		return ErrInvalidName.Wrapf("%q cannot start or end with a hyphen", name)
	}
	if len(name) >= 4 && name[2] == '-' && name[3] == '-' {
		return ErrInvalidName.Wrapf("%q cannot have hyphens in positions three and four", name)
	}
	return nil
}

// CleanName normalizes raw user input before validation.
func CleanName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
