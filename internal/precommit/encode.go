package precommit

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strconv"

	"go.yaml.in/yaml/v3"
)

// mapping builds a YAML mapping node, skipping keys that have no value.
type mapping struct {
	node *yaml.Node
}

func newMapping() *mapping {
	return &mapping{node: &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}}
}

// yaml11Scalars are plain strings that YAML 1.1 readers such as PyYAML
// resolve to booleans or null.
var yaml11Scalars = map[string]bool{
	"y": true, "Y": true, "yes": true, "Yes": true, "YES": true,
	"n": true, "N": true, "no": true, "No": true, "NO": true,
	"on": true, "On": true, "ON": true, "off": true, "Off": true, "OFF": true,
	"true": true, "True": true, "TRUE": true, "false": true, "False": true, "FALSE": true,
	"null": true, "Null": true, "NULL": true, "~": true,
}

func scalar(tag, value string) *yaml.Node {
	n := &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value}
	if tag == "!!str" && yaml11Scalars[value] {
		n.Style = yaml.DoubleQuotedStyle
	}
	return n
}

func (m *mapping) add(key string, value *yaml.Node) {
	m.node.Content = append(m.node.Content, scalar("!!str", key), value)
}

func (m *mapping) str(key, value string) {
	if value == "" {
		return
	}
	m.add(key, scalar("!!str", value))
}

func (m *mapping) strs(key string, values []string) {
	if len(values) == 0 {
		return
	}
	seq := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
	for _, v := range values {
		seq.Content = append(seq.Content, scalar("!!str", v))
	}
	m.add(key, seq)
}

func (m *mapping) flag(key string, value *bool) {
	if value == nil {
		return
	}
	m.add(key, scalar("!!bool", strconv.FormatBool(*value)))
}

// dict emits a string map with keys in sorted order.
func (m *mapping) dict(key string, values map[string]string) {
	if len(values) == 0 {
		return
	}
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	inner := newMapping()
	for _, k := range keys {
		inner.str(k, values[k])
	}
	if inner.empty() {
		return
	}
	m.add(key, inner.node)
}

func (m *mapping) mappings(key string, items []*mapping) {
	seq := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
	for _, item := range items {
		if item.empty() {
			continue
		}
		seq.Content = append(seq.Content, item.node)
	}
	if len(seq.Content) == 0 {
		return
	}
	m.add(key, seq)
}

func (m *mapping) empty() bool {
	return len(m.node.Content) == 0
}

func (h Hook) mapping() *mapping {
	m := newMapping()
	m.str("id", h.ID)
	m.str("alias", h.Alias)
	m.str("name", h.Name)
	m.str("description", h.Description)
	m.str("entry", h.Entry)
	m.str("language", h.Language)
	m.str("language_version", h.LanguageVersion)
	m.str("files", h.Files)
	m.str("exclude", h.Exclude)
	m.strs("types", h.Types)
	m.strs("types_or", h.TypesOr)
	m.strs("exclude_types", h.ExcludeTypes)
	m.strs("args", h.Args)
	m.strs("stages", h.Stages)
	m.strs("additional_dependencies", h.AdditionalDependencies)
	m.flag("always_run", h.AlwaysRun)
	m.flag("pass_filenames", h.PassFilenames)
	m.flag("require_serial", h.RequireSerial)
	m.flag("verbose", h.Verbose)
	m.str("log_file", h.LogFile)
	m.str("minimum_pre_commit_version", h.MinimumPreCommitVersion)
	return m
}

func (r Repo) mapping() *mapping {
	m := newMapping()
	m.str("repo", r.Repo)
	m.str("rev", r.Rev)
	hooks := make([]*mapping, 0, len(r.Hooks))
	for _, h := range r.Hooks {
		hooks = append(hooks, h.mapping())
	}
	m.mappings("hooks", hooks)
	return m
}

// Node returns the document as a YAML mapping node. Empty fields are omitted
// at every level, including repository and hook entries that end up empty.
func (c Config) Node() *yaml.Node {
	m := newMapping()
	repos := make([]*mapping, 0, len(c.Repos))
	for _, r := range c.Repos {
		repos = append(repos, r.mapping())
	}
	m.mappings("repos", repos)
	m.strs("default_install_hook_types", c.DefaultInstallHookTypes)
	m.dict("default_language_version", c.DefaultLanguageVersion)
	m.strs("default_stages", c.DefaultStages)
	m.str("files", c.Files)
	m.str("exclude", c.Exclude)
	m.flag("fail_fast", c.FailFast)
	m.str("minimum_pre_commit_version", c.MinimumPreCommitVersion)
	return m.node
}

// Encode writes the sparse YAML rendering of c to w.
func Encode(w io.Writer, c Config) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c.Node()); err != nil {
		return fmt.Errorf("encoding pre-commit config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("flushing pre-commit config: %w", err)
	}
	return nil
}

// Marshal returns the sparse YAML rendering of c.
func Marshal(c Config) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, c); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
