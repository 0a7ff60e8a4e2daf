package precommit

// DefaultConfig returns the hook set written into new projects: black,
// flake8, isort and pyupgrade, in that order. Each call returns a fresh value.
func DefaultConfig() Config {
	return Config{
		Repos: []Repo{
			{
				Repo:  "https://github.com/psf/black",
				Rev:   "23.1.0",
				Hooks: []Hook{{ID: "black"}},
			},
			{
				Repo:  "https://github.com/PyCQA/flake8",
				Rev:   "6.0.0",
				Hooks: []Hook{{ID: "flake8"}},
			},
			{
				Repo:  "https://github.com/pycqa/isort",
				Rev:   "5.11.2",
				Hooks: []Hook{{ID: "isort"}},
			},
			{
				Repo:  "https://github.com/asottile/pyupgrade",
				Rev:   "v3.3.1",
				Hooks: []Hook{{ID: "pyupgrade", Args: []string{"--py38-plus"}}},
			},
		},
	}
}
