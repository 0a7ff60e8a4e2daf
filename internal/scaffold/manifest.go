package scaffold

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"
)

// ManifestFile is the name of the generated package manifest.
const ManifestFile = "pyproject.toml"

type pyproject struct {
	Project struct {
		Name    string `toml:"name"`
		Authors []struct {
			Name  string `toml:"name"`
			Email string `toml:"email"`
		} `toml:"authors"`
	} `toml:"project"`
}

// checkManifest parses a rendered pyproject.toml and returns problems found
// in it as human-readable warnings.
func checkManifest(data []byte, wantName string) []string {
	var doc pyproject
	if err := toml.Unmarshal(data, &doc); err != nil {
		return []string{fmt.Sprintf("%s does not parse: %v", ManifestFile, err)}
	}
	var warnings []string
	if doc.Project.Name != wantName {
		warnings = append(warnings,
			fmt.Sprintf("%s: project.name is %q, want %q", ManifestFile, doc.Project.Name, wantName))
	}
	if len(doc.Project.Authors) == 0 {
		warnings = append(warnings,
			fmt.Sprintf("%s: no author found; set git user.name or `bspy config set author.name`", ManifestFile))
	}
	return warnings
}
