// Package domain defines core entities and value objects for localhelp.
//
// The domain layer is independent of infrastructure concerns and represents
// pure business logic and data structures: the parsed invocation, the loaded
// configuration, and the structured AI answer.
package domain

import "strings"

// CommandInfo is the parsed form of a localhelp invocation. It is produced
// once per run and never mutated afterwards.
type CommandInfo struct {
	// Command is the target tool name. Never empty.
	Command string
	// Args are subcommand arguments that were not absorbed into the query.
	Args []string
	// Query is the free-text question, empty when none was given. A detected
	// query always contains at least one fragment, so empty means absent.
	Query string
}

// HasQuery reports whether a free-text question was supplied.
func (c CommandInfo) HasQuery() bool {
	return c.Query != ""
}

// queryMarkers are substrings that flag a bare trailing argument as natural
// language rather than a subcommand. Matching is case-sensitive.
var queryMarkers = []string{"I ", "help", "want", "need", "how"}

// SplitArgs classifies the raw argument vector into command, subcommand
// arguments, and an optional free-text query.
//
// An argument starts the query when it contains a space, when it starts with
// a quote character, or when it is the last argument and contains one of the
// queryMarkers substrings. Everything from the query start onward is joined
// with single spaces after per-fragment quote stripping; everything before it
// stays in Args.
func SplitArgs(argv []string) (CommandInfo, error) {
	if len(argv) == 0 {
		return CommandInfo{}, ErrNoCommand
	}

	info := CommandInfo{Command: argv[0]}
	rest := argv[1:]

	queryStart := -1
	for i, arg := range rest {
		if isQueryStart(arg, i == len(rest)-1) {
			queryStart = i
			break
		}
	}

	if queryStart == -1 {
		info.Args = append(info.Args, rest...)
		return info, nil
	}

	info.Args = append(info.Args, rest[:queryStart]...)

	fragments := make([]string, 0, len(rest)-queryStart)
	for _, fragment := range rest[queryStart:] {
		fragments = append(fragments, stripQuotes(fragment))
	}
	info.Query = strings.Join(fragments, " ")
	return info, nil
}

func isQueryStart(arg string, last bool) bool {
	if strings.Contains(arg, " ") {
		return true
	}
	if strings.HasPrefix(arg, "'") || strings.HasPrefix(arg, "\"") {
		return true
	}
	if last {
		for _, marker := range queryMarkers {
			if strings.Contains(arg, marker) {
				return true
			}
		}
	}
	return false
}

// stripQuotes removes one symmetric pair of matching quote characters from a
// single fragment. Quotes are never stripped across fragment boundaries.
func stripQuotes(fragment string) string {
	if len(fragment) < 2 {
		return fragment
	}
	first := fragment[0]
	last := fragment[len(fragment)-1]
	if first == last && (first == '\'' || first == '"') {
		return fragment[1 : len(fragment)-1]
	}
	return fragment
}
