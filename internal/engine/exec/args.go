package exec

import (
	"strings"

	"go.trai.ch/forge/internal/core/domain"
)

// BuildCommandLine expands the argument template into the final command
// line. The template is tokenized on whitespace and each token is rewritten
// by its suffix, checked in this fixed order: %1 (input list), "%1" (quoted
// input list), %2 (output), "%2" (quoted output); any other token is copied
// verbatim. Every token, substituted or literal, is followed by exactly one
// space.
func (n *Node) BuildCommandLine(out *strings.Builder) {
	output := n.name.String()

	for _, token := range strings.Fields(n.cfg.Arguments) {
		switch {
		case strings.HasSuffix(token, "%1"):
			// /Option:%1 -> /Option:a /Option:b /Option:c
			n.appendInputs(out, token[:len(token)-2], "")
		case strings.HasSuffix(token, `"%1"`):
			// /Option:"%1" -> /Option:"a" /Option:"b" /Option:"c"
			// The prefix keeps the opening quote.
			n.appendInputs(out, token[:len(token)-3], `"`)
		case strings.HasSuffix(token, "%2"):
			// /Option:%2 -> /Option:out
			out.WriteString(token[:len(token)-2])
			out.WriteString(output)
		case strings.HasSuffix(token, `"%2"`):
			// /Option:"%2" -> /Option:"out"
			out.WriteString(token[:len(token)-3])
			out.WriteString(output)
			out.WriteByte('"')
		default:
			out.WriteString(token)
		}
		out.WriteByte(' ')
	}
}

// appendInputs expands the input-file list placeholder: every static
// dependency after the executable, with directory listings expanded to
// their current files in listing order. pre and post wrap each entry;
// entries are single-space separated.
func (n *Node) appendInputs(out *strings.Builder, pre, post string) {
	first := true
	write := func(name string) {
		if !first {
			out.WriteByte(' ')
		}
		out.WriteString(pre)
		out.WriteString(name)
		out.WriteString(post)
		first = false
	}

	for _, dep := range n.staticDeps[1:] { // skip the executable
		if listing, ok := dep.(*domain.DirectoryListNode); ok {
			for _, file := range listing.Files() {
				write(file)
			}
			continue
		}
		write(dep.Name().String())
	}
}
