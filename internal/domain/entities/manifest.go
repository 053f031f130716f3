package entities

import "strings"

// ManifestPatterns lists the filename suffixes identifying a dependency manifest
// for one language.
type ManifestPatterns struct {
	Language string
	Patterns []string
}

// manifestTable is consulted in order; the first language with a matching
// pattern wins. "build.gradle.kts" belongs to both java and kotlin, so java wins.
//
//nolint:gochecknoglobals // static lookup table, never mutated
var manifestTable = []ManifestPatterns{
	{Language: "javascript", Patterns: []string{
		"package.json", "package-lock.json", "yarn.lock", "pnpm-lock.yaml", "npm-shrinkwrap.json",
	}},
	{Language: "python", Patterns: []string{
		"requirements.txt", "requirements.in", "Pipfile", "Pipfile.lock",
		"pyproject.toml", "poetry.lock", "setup.py", "setup.cfg",
	}},
	{Language: "go", Patterns: []string{"go.mod", "go.sum"}},
	{Language: "rust", Patterns: []string{"Cargo.toml", "Cargo.lock"}},
	{Language: "ruby", Patterns: []string{"Gemfile", "Gemfile.lock", ".gemspec"}},
	{Language: "java", Patterns: []string{
		"pom.xml", "build.gradle", "build.gradle.kts", "gradle.lockfile",
	}},
	{Language: "kotlin", Patterns: []string{"build.gradle.kts", "settings.gradle.kts"}},
	{Language: "php", Patterns: []string{"composer.json", "composer.lock"}},
	{Language: "dotnet", Patterns: []string{
		".csproj", ".fsproj", "packages.config", "packages.lock.json", "Directory.Packages.props",
	}},
	{Language: "swift", Patterns: []string{"Package.swift", "Package.resolved", "Podfile", "Podfile.lock"}},
	{Language: "dart", Patterns: []string{"pubspec.yaml", "pubspec.lock"}},
	{Language: "terraform", Patterns: []string{
		".terraform.lock.hcl", "versions.tf", "providers.tf", "terraform.tf", "main.tf",
	}},
}

// ManifestTable returns a copy of the manifest pattern table in lookup order.
func ManifestTable() []ManifestPatterns {
	table := make([]ManifestPatterns, 0, len(manifestTable))
	for _, entry := range manifestTable {
		table = append(table, ManifestPatterns{
			Language: entry.Language,
			Patterns: append([]string(nil), entry.Patterns...),
		})
	}
	return table
}

// IsManifest reports whether path ends with any known manifest pattern.
func IsManifest(path string) bool {
	_, ok := LanguageFor(path)
	return ok
}

// LanguageFor returns the language of the first table entry owning a pattern
// that path ends with.
func LanguageFor(path string) (string, bool) {
	for _, entry := range manifestTable {
		for _, pattern := range entry.Patterns {
			if strings.HasSuffix(path, pattern) {
				return entry.Language, true
			}
		}
	}
	return "", false
}

// Classify fills in the language of a change record. Renamed records fall back
// to their previous path so a manifest moved to an unrecognised name still shows
// up as losing its dependencies.
func Classify(record ChangeRecord) (ChangeRecord, bool) {
	if language, ok := LanguageFor(record.Filename); ok {
		record.Language = language
		return record, true
	}
	if record.IsRename() {
		if language, ok := LanguageFor(record.OldFilename); ok {
			record.Language = language
			return record, true
		}
	}
	return record, false
}
