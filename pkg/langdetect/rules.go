package langdetect

import (
	"bytes"
	"strings"
)

// rule is a cheap pattern check tried before the enry classifier.
type rule struct {
	lang  string
	match func(content []byte) bool
}

// rules are ordered from most to least specific.
//
//nolint:gochecknoglobals // Read-only lookup table.
var rules = []rule{
	{"go", isGo},
	{"python", isPython},
	{"html", isHTML},
	{"json", isJSON},
	{"dockerfile", isDockerfile},
	{"sql", isSQL},
	{"rust", isRust},
	{"javascript", isJavaScript},
	{"yaml", isYAML},
}

func isGo(content []byte) bool {
	return bytes.HasPrefix(bytes.TrimSpace(content), []byte("package "))
}

func isPython(content []byte) bool {
	s := string(content)
	switch {
	case strings.Contains(s, "def ") && strings.Contains(s, "):"):
		return true
	case strings.Contains(s, "__name__"), strings.Contains(s, "__main__"):
		return true
	case strings.Contains(s, "import (") || !strings.Contains(s, "import "):
		return false
	default:
		return strings.Contains(s, "from ") || strings.HasPrefix(strings.TrimSpace(s), "import ")
	}
}

func isHTML(content []byte) bool {
	lower := bytes.ToLower(content)
	for _, tag := range []string{"<!doctype html", "<html", "<head>", "<body>"} {
		if bytes.Contains(lower, []byte(tag)) {
			return true
		}
	}
	return false
}

func isJSON(content []byte) bool {
	trimmed := bytes.TrimSpace(content)
	return (bytes.HasPrefix(trimmed, []byte("{")) || bytes.HasPrefix(trimmed, []byte("["))) &&
		bytes.Contains(trimmed, []byte(`"`))
}

func isDockerfile(content []byte) bool {
	return bytes.HasPrefix(bytes.TrimSpace(content), []byte("FROM ")) ||
		(bytes.Contains(content, []byte("\nFROM ")) && bytes.Contains(content, []byte("\nRUN "))) ||
		(bytes.Contains(content, []byte("WORKDIR ")) && bytes.Contains(content, []byte("COPY ")))
}

func isSQL(content []byte) bool {
	upper := strings.ToUpper(strings.TrimSpace(string(content)))
	for _, verb := range []string{"SELECT ", "INSERT ", "UPDATE ", "DELETE ", "CREATE "} {
		if strings.HasPrefix(upper, verb) {
			return true
		}
	}
	return false
}

func isRust(content []byte) bool {
	s := string(content)
	return strings.Contains(s, "fn main()") || strings.Contains(s, "println!") || strings.Contains(s, "let mut ")
}

func isJavaScript(content []byte) bool {
	s := string(content)
	for _, token := range []string{"=>", "const ", "let ", "console.log"} {
		if strings.Contains(s, token) {
			return true
		}
	}
	return false
}

// isYAML counts "key: value" and "- item" lines that do not look like code.
func isYAML(content []byte) bool {
	keys := 0
	for _, line := range bytes.Split(content, []byte("\n")) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 || line[0] == '#' {
			continue
		}
		if bytes.Contains(line, []byte(": ")) &&
			!bytes.ContainsAny(line, "({") && line[0] != '"' {
			keys++
		}
		if bytes.HasPrefix(line, []byte("- ")) {
			keys++
		}
	}
	return keys >= 2
}
