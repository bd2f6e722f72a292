package console

import (
	"errors"
	"strings"
)

var errUnterminatedQuote = errors.New("unterminated quote")

// splitArgs splits line on whitespace. Double quotes group words, so
// name="Organic Wheat" is a single argument.
func splitArgs(line string) ([]string, error) {
	var (
		args    []string
		cur     strings.Builder
		inQuote bool
		started bool
	)
	for _, r := range line {
		switch {
		case r == '"':
			inQuote = !inQuote
			started = true
		case !inQuote && (r == ' ' || r == '\t'):
			if started {
				args = append(args, cur.String())
				cur.Reset()
				started = false
			}
		default:
			cur.WriteRune(r)
			started = true
		}
	}
	if inQuote {
		return nil, errUnterminatedQuote
	}
	if started {
		args = append(args, cur.String())
	}
	return args, nil
}

// options separates key=value arguments from bare words.
func options(args []string) (map[string]string, []string) {
	kv := make(map[string]string)
	var words []string
	for _, a := range args {
		if k, v, ok := strings.Cut(a, "="); ok && k != "" {
			kv[strings.ToLower(k)] = v
			continue
		}
		words = append(words, a)
	}
	return kv, words
}
