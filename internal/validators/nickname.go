package validators

import "unicode/utf8"

// IsNicknameValid accepts 2 to 8 Hangul syllables or jamo, Latin letters or digits.
func IsNicknameValid(nickname string) bool {
	n := utf8.RuneCountInString(nickname)
	if n < 2 || n > 8 {
		return false
	}

	for _, r := range nickname {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r >= 0xAC00 && r <= 0xD7A3:
		case r >= 0x3131 && r <= 0x318E:
		default:
			return false
		}
	}
	return true
}
