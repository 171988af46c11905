// Copyright (c) 2026 PaymentKit Team
// PaymentKit - payment card input engine
// This source code is licensed under the MIT license found in the LICENSE file.

// i18n-linter checks that every i18n.T() key used in the Go sources exists
// in the primary locale, that every other locale carries the same keys, and
// lists keys nobody uses anymore.
//
// Run it from the repository root:
//
//	go run ./tools/i18n-linter
package main

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	localesDir    = "internal/i18n/locales"
	primaryLocale = "active.en.yaml"
	projectRoot   = "."
)

// Location stores the file and line number of a found key.
type Location struct {
	Filepath string
	Line     int
}

// Report is the outcome of one lint run. Undefined and Missing fail the run;
// Orphaned is a warning.
type Report struct {
	Used      map[string][]Location
	Undefined []string
	Orphaned  []string
	Missing   map[string][]string
}

// Failed reports whether the run found errors.
func (r Report) Failed() bool {
	return len(r.Undefined) > 0 || len(r.Missing) > 0
}

var callRe = regexp.MustCompile(`i18n\.T\("([^"]+)"`)

func main() {
	r, err := lint(projectRoot, filepath.Join(projectRoot, localesDir))
	if err != nil {
		fmt.Printf("❌ %v\n", err)
		os.Exit(1)
	}
	printReport(os.Stdout, r)
	if r.Failed() {
		os.Exit(1)
	}
}

func lint(root, locales string) (Report, error) {
	used, err := findUsedKeys(root)
	if err != nil {
		return Report{}, fmt.Errorf("finding used keys: %w", err)
	}
	primary, err := loadKeysFromLocale(filepath.Join(locales, primaryLocale))
	if err != nil {
		return Report{}, fmt.Errorf("loading primary locale %s: %w", primaryLocale, err)
	}

	r := Report{Used: used, Missing: map[string][]string{}}
	for k := range used {
		if _, ok := primary[k]; !ok {
			r.Undefined = append(r.Undefined, k)
		}
	}
	for k := range primary {
		if _, ok := used[k]; !ok {
			r.Orphaned = append(r.Orphaned, k)
		}
	}
	sort.Strings(r.Undefined)
	sort.Strings(r.Orphaned)

	files, err := filepath.Glob(filepath.Join(locales, "*.yaml"))
	if err != nil {
		return Report{}, err
	}
	for _, f := range files {
		if filepath.Base(f) == primaryLocale {
			continue
		}
		other, err := loadKeysFromLocale(f)
		if err != nil {
			return Report{}, fmt.Errorf("loading %s: %w", f, err)
		}
		var missing []string
		for k := range primary {
			if _, ok := other[k]; !ok {
				missing = append(missing, k)
			}
		}
		if len(missing) > 0 {
			sort.Strings(missing)
			r.Missing[filepath.Base(f)] = missing
		}
	}
	return r, nil
}

func printReport(w io.Writer, r Report) {
	_, _ = fmt.Fprintf(w, "🔍 %d translation keys used in source code.\n\n", len(r.Used))

	_, _ = fmt.Fprintln(w, "--- Undefined keys (used in code, missing from "+primaryLocale+") ---")
	for _, k := range r.Undefined {
		loc := r.Used[k][0]
		_, _ = fmt.Fprintf(w, "  - %s (%s:%d)\n", k, loc.Filepath, loc.Line)
	}
	if len(r.Undefined) == 0 {
		_, _ = fmt.Fprintln(w, "  ✨ None found.")
	}

	_, _ = fmt.Fprintln(w, "\n--- Missing keys (in "+primaryLocale+" but not in other locales) ---")
	names := make([]string, 0, len(r.Missing))
	for n := range r.Missing {
		names = append(names, n)
	}
	sort.Strings(names)
	for _, n := range names {
		for _, k := range r.Missing[n] {
			_, _ = fmt.Fprintf(w, "  - %s: %s\n", n, k)
		}
	}
	if len(names) == 0 {
		_, _ = fmt.Fprintln(w, "  ✨ All keys present.")
	}

	_, _ = fmt.Fprintln(w, "\n--- Orphaned keys (defined but never used) ---")
	for _, k := range r.Orphaned {
		_, _ = fmt.Fprintf(w, "  - %s\n", k)
	}
	if len(r.Orphaned) == 0 {
		_, _ = fmt.Fprintln(w, "  ✨ None found.")
	}

	switch {
	case r.Failed():
		_, _ = fmt.Fprintln(w, "\n❌ Found issues that need to be addressed.")
	case len(r.Orphaned) > 0:
		_, _ = fmt.Fprintln(w, "\n⚠️  Found orphaned keys. Please consider removing them.")
	default:
		_, _ = fmt.Fprintln(w, "\n✅ All translation files are consistent!")
	}
}

// findUsedKeys scans non-test .go files for i18n.T("key") calls. Directories
// the go tool ignores (leading "_" or ".", testdata) and tools/ are skipped.
func findUsedKeys(root string) (map[string][]Location, error) {
	keys := make(map[string][]Location)
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			name := d.Name()
			if path != root && (strings.HasPrefix(name, "_") || strings.HasPrefix(name, ".") || name == "testdata" || name == "tools") {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".go") || strings.HasSuffix(path, "_test.go") {
			return nil
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		for i, line := range strings.Split(string(content), "\n") {
			for _, m := range callRe.FindAllStringSubmatch(line, -1) {
				keys[m[1]] = append(keys[m[1]], Location{Filepath: path, Line: i + 1})
			}
		}
		return nil
	})
	return keys, err
}

// loadKeysFromLocale reads a YAML file and returns a flat set of its keys.
func loadKeysFromLocale(path string) (map[string]struct{}, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var data map[string]any
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, err
	}
	keys := make(map[string]struct{})
	flattenYAML("", data, keys)
	return keys, nil
}

// flattenYAML turns nested maps into dot-separated keys, so both flat and
// nested locale files work.
func flattenYAML(prefix string, node any, keys map[string]struct{}) {
	switch v := node.(type) {
	case map[string]any:
		for k, val := range v {
			next := k
			if prefix != "" {
				next = prefix + "." + k
			}
			flattenYAML(next, val, keys)
		}
	default:
		if prefix != "" {
			keys[prefix] = struct{}{}
		}
	}
}
