package proc

import "strings"

// SplitArgs splits a single command-line string into arguments. Runs of
// spaces and tabs separate arguments; double quotes group characters,
// including whitespace, into one argument and are not passed to the child.
// An unterminated quote extends to the end of the string.
func SplitArgs(s string) []string {
	var args []string
	var cur strings.Builder
	inQuotes := false
	quoted := false // a quoted token may be empty, e.g. ""

	flush := func() {
		if cur.Len() > 0 || quoted {
			args = append(args, cur.String())
		}
		cur.Reset()
		quoted = false
	}

	for _, c := range s {
		switch {
		case c == '"':
			inQuotes = !inQuotes
			quoted = true
		case !inQuotes && (c == ' ' || c == '\t'):
			flush()
		default:
			cur.WriteRune(c)
		}
	}
	flush()
	return args
}
