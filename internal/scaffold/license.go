package scaffold

import (
	"fmt"
	"sort"
	"strings"
)

// LicenseFile is the name of the generated license file.
const LicenseFile = "LICENSE"

var licenseTemplates = map[string]string{
	"MIT": "templates/licenses/MIT.tmpl",
}

// SupportedLicenses lists the license types Create can write.
func SupportedLicenses() []string {
	names := make([]string, 0, len(licenseTemplates))
	for name := range licenseTemplates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// licenseTemplate resolves a license type to its embedded template path.
// Matching ignores case.
func licenseTemplate(kind string) (string, error) {
	for name, path := range licenseTemplates {
		if strings.EqualFold(name, kind) {
			return path, nil
		}
	}
	return "", &Error{
		Kind: ErrUnsupportedLicense,
		Step: "resolve license",
		Err:  fmt.Errorf("license %q is not supported (supported: %s)", kind, strings.Join(SupportedLicenses(), ", ")),
	}
}
