package domain

import "path/filepath"

const (
	// TernProjectName is the name of the project descriptor declaring the ECMA level.
	TernProjectName = ".tern-project"

	// ESLintRCName is the legacy-named lint configuration file.
	ESLintRCName = ".eslintrc"

	// ESLintRCJSName is the script-form lint configuration file.
	ESLintRCJSName = ".eslintrc.js"

	// ESLintRCJSONName is the JSON-form lint configuration file.
	ESLintRCJSONName = ".eslintrc.json"

	// ESLintRCYAMLName is a YAML-form lint configuration file. It is recognized but never parsed.
	ESLintRCYAMLName = ".eslintrc.yaml"

	// ESLintRCYMLName is a YAML-form lint configuration file. It is recognized but never parsed.
	ESLintRCYMLName = ".eslintrc.yml"

	// PackageJSONName is the name of the package descriptor.
	PackageJSONName = "package.json"

	// ProjectJSONName is the name of the project metadata file.
	ProjectJSONName = "project.json"

	// JSConfigName is the name of the jsconfig file.
	JSConfigName = "jsconfig.json"

	// NodeModulesDirName is the name of the installed dependencies directory.
	NodeModulesDirName = "node_modules"

	// SettingsFileName is the name of the jsproj settings file.
	SettingsFileName = "jsproj.yaml"

	// ESLintConfigKey is the package descriptor property holding an embedded lint configuration.
	ESLintConfigKey = "eslintConfig"

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

const (
	// MinEcmaLevel is the lowest accepted ECMA level.
	MinEcmaLevel = 5

	// MaxEcmaLevel is the highest accepted ECMA level.
	MaxEcmaLevel = 7

	// DefaultEcmaLevel is used whenever the project descriptor is absent or invalid.
	DefaultEcmaLevel = 6
)

// lintFileNames are the short names whose change invalidates a resolved lint configuration.
var lintFileNames = map[string]struct{}{
	ESLintRCName:     {},
	ESLintRCJSName:   {},
	ESLintRCJSONName: {},
	ESLintRCYAMLName: {},
	ESLintRCYMLName:  {},
	PackageJSONName:  {},
}

// IsLintFile reports whether a file with the given short name can contribute to the lint configuration.
func IsLintFile(name string) bool {
	_, ok := lintFileNames[name]
	return ok
}

// ShortName returns the last segment of a path.
func ShortName(path string) string {
	if path == "" {
		return ""
	}
	return filepath.Base(path)
}

// ChildPath returns the absolute path of a project child.
func ChildPath(location, name string) string {
	return filepath.Join(location, name)
}
