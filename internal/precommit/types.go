package precommit

// FileName is the name pre-commit looks for at the repository root.
const FileName = ".pre-commit-config.yaml"

// Hook is a single hook entry under a repository. Hooks of a local repo
// define the hook themselves and need Name, Entry and Language; hooks of a
// remote repo only override the manifest published by that repo.
type Hook struct {
	ID                      string   `yaml:"id"`
	Alias                   string   `yaml:"alias,omitempty"`
	Name                    string   `yaml:"name,omitempty"`
	Description             string   `yaml:"description,omitempty"`
	Entry                   string   `yaml:"entry,omitempty"`
	Language                string   `yaml:"language,omitempty"`
	LanguageVersion         string   `yaml:"language_version,omitempty"`
	Files                   string   `yaml:"files,omitempty"`
	Exclude                 string   `yaml:"exclude,omitempty"`
	Types                   []string `yaml:"types,omitempty"`
	TypesOr                 []string `yaml:"types_or,omitempty"`
	ExcludeTypes            []string `yaml:"exclude_types,omitempty"`
	Args                    []string `yaml:"args,omitempty"`
	Stages                  []string `yaml:"stages,omitempty"`
	AdditionalDependencies  []string `yaml:"additional_dependencies,omitempty"`
	AlwaysRun               *bool    `yaml:"always_run,omitempty"`
	PassFilenames           *bool    `yaml:"pass_filenames,omitempty"`
	RequireSerial           *bool    `yaml:"require_serial,omitempty"`
	Verbose                 *bool    `yaml:"verbose,omitempty"`
	LogFile                 string   `yaml:"log_file,omitempty"`
	MinimumPreCommitVersion string   `yaml:"minimum_pre_commit_version,omitempty"`
}

// Repo is a hook repository entry.
type Repo struct {
	Repo  string `yaml:"repo"`
	Rev   string `yaml:"rev,omitempty"`
	Hooks []Hook `yaml:"hooks"`
}

// Config is the top-level pre-commit document.
type Config struct {
	Repos                   []Repo            `yaml:"repos"`
	DefaultInstallHookTypes []string          `yaml:"default_install_hook_types,omitempty"`
	DefaultLanguageVersion  map[string]string `yaml:"default_language_version,omitempty"`
	DefaultStages           []string          `yaml:"default_stages,omitempty"`
	Files                   string            `yaml:"files,omitempty"`
	Exclude                 string            `yaml:"exclude,omitempty"`
	FailFast                *bool             `yaml:"fail_fast,omitempty"`
	MinimumPreCommitVersion string            `yaml:"minimum_pre_commit_version,omitempty"`
}

// Special repository names that pre-commit resolves without cloning.
const (
	RepoLocal = "local"
	RepoMeta  = "meta"
)

// Bool returns a pointer to b, for the optional boolean fields.
func Bool(b bool) *bool { return &b }
