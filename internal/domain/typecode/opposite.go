package typecode

import "strings"

// Unknown replaces characters that have no opposite.
const Unknown = '?'

var opposites = map[byte]byte{
	'I': 'E', 'E': 'I',
	'N': 'S', 'S': 'N',
	'F': 'T', 'T': 'F',
	'P': 'J', 'J': 'P',
}

// Flip returns the opposite of code: every letter is replaced by its
// counterpart on the same axis (INFP -> ESTJ). Input is upper-cased first;
// characters outside the eight axis letters become "?". Flip never fails,
// but the result need not be a code present in any table.
func Flip(code string) string {
	code = strings.ToUpper(code)
	out := make([]byte, len(code))
	for i := 0; i < len(code); i++ {
		if o, ok := opposites[code[i]]; ok {
			out[i] = o
		} else {
			out[i] = Unknown
		}
	}
	return string(out)
}
