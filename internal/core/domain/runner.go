package domain

// DetectedRunner is a tool found by a detector in one directory.
// Values are created once per detection and never mutated.
type DetectedRunner struct {
	// Name is the executable used to run commands, e.g. "npm" or "cargo".
	Name string
	// DetectedFile is the marker file that triggered the match.
	DetectedFile string
	// Ecosystem selects the script discovery strategy.
	Ecosystem Ecosystem
	// Priority orders runners found in the same directory. Lower wins.
	Priority int
	// RunPrefix holds the arguments placed between the tool and the script name,
	// e.g. ["run"] for npm.
	RunPrefix []string
}

// Invocation is a fully resolved program call.
type Invocation struct {
	Program string
	Args    []string
	Dir     string
}

// String renders the invocation as a shell-like command line.
func (i Invocation) String() string {
	s := i.Program
	for _, a := range i.Args {
		s += " " + quoteArg(a)
	}
	return s
}

func quoteArg(a string) string {
	if a == "" {
		return `""`
	}
	for _, r := range a {
		switch r {
		case ' ', '\t', '"', '\'', '$', '`', '\\', '*', '?', '&', '|', ';', '<', '>', '(', ')':
			return "'" + escapeSingleQuotes(a) + "'"
		}
	}
	return a
}

func escapeSingleQuotes(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\'' {
			out = append(out, `'\''`...)
			continue
		}
		out = append(out, s[i])
	}
	return string(out)
}
