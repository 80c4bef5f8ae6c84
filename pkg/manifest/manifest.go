// Package manifest edits a project's package.json without disturbing the
// fields it does not touch.
package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	schematicerrors "github.com/kdeps/schematics/pkg/errors"
	"github.com/spf13/afero"
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
)

const (
	// FileName is the manifest file name relative to the app path.
	FileName = "package.json"

	Dependencies    = "dependencies"
	DevDependencies = "devDependencies"
)

// Manifest is a package.json document held as raw JSON so that key order
// and formatting survive edits.
type Manifest struct {
	Path string
	data []byte
}

// Load reads and validates the manifest at path.
func Load(fs afero.Fs, path string) (*Manifest, error) {
	exists, err := afero.Exists(fs, path)
	if err != nil {
		return nil, schematicerrors.WrapError(err, schematicerrors.ErrCodeFileOperations, "failed to stat manifest").WithPath(path)
	}
	if !exists {
		return nil, schematicerrors.NewMissingManifestError(path)
	}

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, schematicerrors.WrapError(err, schematicerrors.ErrCodeFileOperations, "failed to read manifest").WithPath(path)
	}
	return Parse(path, data)
}

// Parse validates data as a JSON object.
func Parse(path string, data []byte) (*Manifest, error) {
	if !gjson.ValidBytes(data) {
		return nil, schematicerrors.NewInvalidManifestError(path, fmt.Errorf("invalid JSON"))
	}
	if !gjson.ParseBytes(data).IsObject() {
		return nil, schematicerrors.NewInvalidManifestError(path, fmt.Errorf("top-level value is not an object"))
	}
	return &Manifest{Path: path, data: append([]byte(nil), data...)}, nil
}

// Bytes returns the current document.
func (m *Manifest) Bytes() []byte {
	return append([]byte(nil), m.data...)
}

// Name returns the package name, if any.
func (m *Manifest) Name() string {
	return gjson.GetBytes(m.data, "name").String()
}

// Dependency returns the version recorded for name in section.
func (m *Manifest) Dependency(section, name string) (string, bool) {
	res := gjson.GetBytes(m.data, dependencyPath(section, name))
	if !res.Exists() {
		return "", false
	}
	return res.String(), true
}

// HasDependency reports whether name is listed in section.
func (m *Manifest) HasDependency(section, name string) bool {
	_, ok := m.Dependency(section, name)
	return ok
}

// DependencySection returns the section listing name, checking section
// first and then the runtime and development sections.
func (m *Manifest) DependencySection(section, name string) (string, bool) {
	for _, sec := range []string{section, Dependencies, DevDependencies} {
		if m.HasDependency(sec, name) {
			return sec, true
		}
	}
	return "", false
}

// EnsureDependency adds name@version to section, creating the section when
// absent. A package already listed in section, dependencies or
// devDependencies is left as is. It reports whether the document changed.
//
// Only the edited section is rewritten; every other byte of the document is
// kept.
func (m *Manifest) EnsureDependency(section, name, version string) (bool, error) {
	if section == "" || name == "" {
		return false, schematicerrors.NewInvalidOptionsError("dependency section and name are required")
	}
	if _, ok := m.DependencySection(section, name); ok {
		return false, nil
	}

	sec := gjson.GetBytes(m.data, gjson.Escape(section))
	if sec.Exists() && !sec.IsObject() {
		return false, schematicerrors.Newf(schematicerrors.ErrCodeManifestUpdate, "%q is not an object", section).WithPath(m.Path)
	}

	var (
		updated []byte
		err     error
	)
	if isMultiline(m.data) {
		updated, err = m.insertIndented(sec, section, name, version)
	} else {
		updated, err = sjson.SetBytes(m.data, dependencyPath(section, name), version)
	}
	if err != nil {
		return false, schematicerrors.WrapError(err, schematicerrors.ErrCodeManifestUpdate, "failed to set dependency").WithPath(m.Path)
	}
	m.data = updated
	return true, nil
}

// Save writes the document back to its path.
func (m *Manifest) Save(fs afero.Fs) error {
	if err := afero.WriteFile(fs, m.Path, m.data, 0o644); err != nil {
		return schematicerrors.WrapError(err, schematicerrors.ErrCodeFileOperations, "failed to write manifest").WithPath(m.Path)
	}
	return nil
}

func dependencyPath(section, name string) string {
	return gjson.Escape(section) + "." + gjson.Escape(name)
}

// insertIndented adds the entry using the document's own indentation.
func (m *Manifest) insertIndented(sec gjson.Result, section, name, version string) ([]byte, error) {
	indent := detectIndent(m.data)

	if !sec.Exists() {
		value, err := indentedObject(name, version, indent, indent)
		if err != nil {
			return nil, err
		}
		return insertMember(m.data, quote(section)+": "+value, "", indent), nil
	}

	prefix := linePrefix(m.data, sec.Index)
	var (
		raw []byte
		err error
	)
	switch {
	case len(sec.Map()) == 0:
		var value string
		value, err = indentedObject(name, version, indent, prefix)
		raw = []byte(value)
	case isMultiline([]byte(sec.Raw)):
		raw = insertMember([]byte(sec.Raw), quote(name)+": "+quote(version), prefix, indent)
	default:
		raw, err = sjson.SetBytes([]byte(sec.Raw), gjson.Escape(name), version)
	}
	if err != nil {
		return nil, err
	}
	return sjson.SetRawBytes(m.data, gjson.Escape(section), raw)
}

// indentedObject renders {"name": "version"} as a multi-line object whose
// closing brace lines up with an owning key indented by keyPrefix.
func indentedObject(name, version, indent, keyPrefix string) (string, error) {
	compact, err := sjson.Set("{}", gjson.Escape(name), version)
	if err != nil {
		return "", err
	}
	opts := *pretty.DefaultOptions
	opts.Indent = indent
	opts.Prefix = keyPrefix
	return strings.TrimSpace(string(pretty.PrettyOptions([]byte(compact), &opts))), nil
}

// insertMember appends member as the last entry of the object in obj,
// leaving everything before it and the closing brace untouched.
func insertMember(obj []byte, member, prefix, indent string) []byte {
	end := bytes.LastIndexByte(obj, '}')
	last := len(bytes.TrimRight(obj[:end], " \t\r\n"))

	out := make([]byte, 0, len(obj)+len(member)+len(prefix)+len(indent)+4)
	out = append(out, obj[:last]...)
	if obj[last-1] == '{' {
		out = append(out, "\n"+prefix+indent+member+"\n"+prefix...)
		return append(out, obj[end:]...)
	}
	out = append(out, ",\n"+prefix+indent+member...)
	return append(out, obj[last:]...)
}

// linePrefix returns the leading whitespace of the line holding offset.
func linePrefix(data []byte, offset int) string {
	start := bytes.LastIndexByte(data[:offset], '\n') + 1
	line := data[start:offset]
	return string(line[:len(line)-len(bytes.TrimLeft(line, " \t"))])
}

func quote(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}

func isMultiline(data []byte) bool {
	return bytes.Contains(bytes.TrimSpace(data), []byte("\n"))
}

func detectIndent(data []byte) string {
	for _, line := range bytes.Split(data, []byte("\n"))[1:] {
		trimmed := bytes.TrimLeft(line, " \t")
		if len(trimmed) == 0 || len(trimmed) == len(line) {
			continue
		}
		return string(line[:len(line)-len(trimmed)])
	}
	return "  "
}
