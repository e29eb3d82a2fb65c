package launcher

import "unicode"

// SplitCommand tokenizes a built command string into an argument vector using
// the same quoting rules BuildCommand targets: tokens are separated by
// whitespace, double quotes group a section containing spaces, and three
// consecutive quotes produce one literal quote character. Empty tokens are
// dropped.
//
// Go's process primitive takes an argv vector rather than a single command
// line, so the runner performs this splitting itself instead of handing the
// string to the OS.
func SplitCommand(command string) []string {
	var args []string
	var current []rune
	quoteCount := 0
	inQuote := false

	for _, c := range command {
		if c == '"' {
			quoteCount++
			if quoteCount == 3 {
				// third consecutive quote is a literal quote character
				quoteCount = 0
				current = append(current, '"')
			}
			continue
		}
		if quoteCount > 0 {
			if quoteCount == 1 {
				inQuote = !inQuote
			}
			quoteCount = 0
		}
		if !inQuote && unicode.IsSpace(c) {
			if len(current) > 0 {
				args = append(args, string(current))
				current = current[:0]
			}
			continue
		}
		current = append(current, c)
	}

	if len(current) > 0 {
		args = append(args, string(current))
	}

	return args
}
