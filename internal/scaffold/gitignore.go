package scaffold

import "strings"

// GitignoreFile is the name of the generated ignore file.
const GitignoreFile = ".gitignore"

// DefaultIgnorePatterns returns the patterns written to .gitignore.
func DefaultIgnorePatterns() []string {
	return []string{
		".vscode",
		"*.pyc",
		"venv",
	}
}

// renderIgnore writes one pattern per line. Blank patterns are skipped.
func renderIgnore(patterns []string) []byte {
	var sb strings.Builder
	for _, p := range patterns {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		sb.WriteString(p)
		sb.WriteByte('\n')
	}
	return []byte(sb.String())
}
