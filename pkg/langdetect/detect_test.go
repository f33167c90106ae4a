package langdetect_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/gomdedit/pkg/langdetect"
)

func TestDetect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		content  string
		expected string
	}{
		{"shebang bash", "#!/bin/bash\necho hello", "bash"},
		{"shebang sh", "#!/bin/sh\necho hello", "bash"},
		{"shebang python", "#!/usr/bin/env python3\nprint('hello')", "python"},
		{"shebang wins over patterns", "#!/bin/bash\ndef foo():\n    pass", "bash"},
		{"go code", "package main\n\nfunc main() {\n\tfmt.Println(\"hello\")\n}", "go"},
		{"python code", "def foo():\n    pass\n\nif __name__ == '__main__':\n    foo()", "python"},
		{"python import", "from os import path", "python"},
		{"javascript code", "const x = () => { return 42; };\nconsole.log(x());", "javascript"},
		{"json object", `{"key": "value", "number": 123}`, "json"},
		{"yaml content", "key: value\nother: 123\nlist:\n  - item1\n  - item2", "yaml"},
		{"rust code", "fn main() {\n    println!(\"Hello, world!\");\n}", "rust"},
		{"sql query", "SELECT * FROM users WHERE id = 1;", "sql"},
		{"html content", "<!DOCTYPE html>\n<html>\n<body></body>\n</html>", "html"},
		{"dockerfile", "FROM golang:1.21\nWORKDIR /app\nCOPY . .\nRUN go build", "dockerfile"},
		{"plain text fallback", "just some text without any code patterns", "text"},
		{"empty content", "", "text"},
		{"whitespace only", "  \n\t\n", "text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, langdetect.Detect([]byte(tt.content)))
		})
	}
}

func TestFromInfo(t *testing.T) {
	t.Parallel()

	tests := []struct {
		tag  string
		want string
	}{
		{"go", "go"},
		{"golang", "go"},
		{"Python", "python"},
		{"sh", "bash"},
		{"nosuchlang", "nosuchlang"},
		{"", "text"},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, langdetect.FromInfo(tt.tag))
		})
	}
}

func TestResolve(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "go", langdetect.Resolve("golang title=main.go", []byte("SELECT 1")))
	assert.Equal(t, "sql", langdetect.Resolve("", []byte("SELECT 1")))
	assert.Equal(t, "text", langdetect.Resolve("   ", nil))
}

func BenchmarkDetect(b *testing.B) {
	code := []byte("package main\n\nimport \"fmt\"\n\nfunc main() {\n\tfmt.Println(\"hi\")\n}")
	for b.Loop() {
		langdetect.Detect(code)
	}
}
