package grammar

import (
	"fmt"
	"strings"
)

// lineWrapWidth is the column at which Description.String wraps a
// production's alternatives onto a continuation line.
const lineWrapWidth = 72

// namedProduction is a single `<name>: alt0 | alt1 | ...` line of a
// Description.
type namedProduction struct {
	name string
	alts []string
}

func (np namedProduction) key() string {
	return np.name + ": " + strings.Join(np.alts, " | ")
}

// Description is the grammar of a Parser, rendered as a named production
// listing. The zero value describes a parser that matches only the empty
// phrase.
type Description struct {
	command     string
	productions []namedProduction
}

// String renders the description as the top-level command form followed by
// a blank line and then every named production, each wrapped at
// lineWrapWidth columns with continuation lines indented and prefixed by
// "| ".
func (d Description) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s\n\n", d.command)
	for _, p := range d.productions {
		line := p.name
		for _, alt := range p.alts {
			sep := " | "
			if !strings.Contains(line, ": ") && !strings.HasPrefix(line, "    ") {
				sep = ": "
			}
			if len(line)+len(alt)+len(sep) < lineWrapWidth && !strings.Contains(alt, ":") {
				line += sep + alt
			} else {
				sb.WriteString(line)
				sb.WriteString("\n")
				line = "    | " + alt
			}
		}
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	return sb.String()
}

func joinDescriptions(a, b Description) Description {
	command := a.command
	if command != "" && b.command != "" {
		command += " " + b.command
	} else {
		command += b.command
	}
	return Description{
		command:     command,
		productions: mergeProductions(a.productions, b.productions),
	}
}

func repeatDescription(d Description, suffix string) Description {
	command := d.command
	if strings.Contains(command, " ") {
		command = "(" + command + ")" + suffix
	} else {
		command = command + suffix
	}
	return Description{command: command, productions: d.productions}
}

func joinAlternatives(alts []string) []string {
	out := make([]string, len(alts))
	copy(out, alts)
	return out
}

// mergeProductions appends productions from b onto a, skipping any whose
// (name, alts) pair textually duplicates one already present.
func mergeProductions(a, b []namedProduction) []namedProduction {
	seen := make(map[string]bool, len(a))
	out := make([]namedProduction, 0, len(a)+len(b))
	for _, np := range a {
		seen[np.key()] = true
		out = append(out, np)
	}
	for _, np := range b {
		k := np.key()
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, np)
	}
	return out
}
