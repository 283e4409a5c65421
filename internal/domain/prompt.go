package domain

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// DocSectionMarker introduces the documentation block inside the prompt.
// The simulation backend keys off its presence.
const DocSectionMarker = "MAN PAGE CONTENT:"

// truncationMarker is appended when documentation is cut at the length cap.
const truncationMarker = "(truncated)"

// BuildPrompt deterministically renders the invocation and optional
// documentation into a single prompt instructing the backend to answer in
// the four-field structured format. Pure string building: no validation, no
// retries.
func BuildPrompt(info CommandInfo, doc string, hasDoc bool) string {
	var b strings.Builder

	b.WriteString("You are an expert in command-line tools. A user needs help with the '")
	b.WriteString(info.Command)
	b.WriteString("' command.\n")

	if len(info.Args) > 0 {
		fmt.Fprintf(&b, "They are looking at: %s %s\n", info.Command, strings.Join(info.Args, " "))
	}
	if info.HasQuery() {
		fmt.Fprintf(&b, "\nUSER QUESTION: %s\n", info.Query)
	} else {
		b.WriteString("\nThe user did not ask a specific question; explain what the command does and how it is typically used.\n")
	}

	if hasDoc {
		b.WriteString("\n")
		b.WriteString(DocSectionMarker)
		b.WriteString("\n")
		b.WriteString(truncateDoc(doc))
		b.WriteString("\n")
	} else {
		b.WriteString("\nNo local documentation was available for this command.\n")
	}

	b.WriteString(`
Answer using exactly this format, one field per line:
EXPLANATION: <one or two sentences answering the question or explaining the command>
COMMAND: <a single concrete command the user should run, or NONE>
WARNINGS: <anything destructive or surprising about that command, or NONE>
INFO: <additional context worth knowing, or NONE>
Use the literal word NONE when a field does not apply.`)

	return b.String()
}

// truncateDoc caps the documentation length. Text of exactly the cap length
// passes through untouched. The cut never splits a multibyte rune: it backs
// up to the nearest rune start so the prompt stays valid UTF-8.
func truncateDoc(doc string) string {
	if len(doc) <= MaxDocPromptChars {
		return doc
	}
	cut := MaxDocPromptChars
	for cut > 0 && !utf8.RuneStart(doc[cut]) {
		cut--
	}
	return doc[:cut] + truncationMarker
}
