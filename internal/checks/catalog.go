package checks

import (
	"os"
	"path/filepath"
)

// Catalog builds the ordered check sequence for a profile against one
// project directory. Ordering is fixed and deterministic: earlier checks are
// cheaper and higher-signal, and the sequence never reorders at runtime.
type Catalog struct {
	// Dir is the project root all commands and probes run against.
	Dir string
	// Overrides replaces the command of a built-in check, keyed by name.
	Overrides map[string]string
	// Extras are user-defined checks appended after the built-in sequence.
	Extras []CheckDefinition
}

// Build returns the ordered check definitions for the given profile.
// Applicability predicates are closures over the project directory and are
// evaluated lazily, so a prerequisite created mid-run by an earlier check is
// picked up correctly.
func (c *Catalog) Build(profile Profile) []CheckDefinition {
	full := profile == ProfileFull

	var defs []CheckDefinition
	add := func(d CheckDefinition) {
		if cmd, ok := c.Overrides[d.Name]; ok {
			d.Command = cmd
		}
		defs = append(defs, d)
	}

	add(CheckDefinition{
		Name:       "Dependency Audit",
		Category:   "Security",
		Command:    "composer audit",
		Required:   true,
		Applicable: c.exists("composer.lock"),
	})
	if full {
		// Passes when .env is NOT tracked; git ls-files exits 0 when it is.
		add(CheckDefinition{
			Name:       "Env Not Tracked",
			Category:   "Security",
			Command:    "git ls-files --error-unmatch .env",
			Required:   true,
			InvertExit: true,
			Applicable: c.exists(".git"),
		})
	}
	add(CheckDefinition{
		Name:       "Code Style",
		Category:   "Code Quality",
		Command:    "vendor/bin/pint --test",
		Required:   true,
		Applicable: c.exists("vendor/bin/pint"),
	})
	add(CheckDefinition{
		Name:       "Static Analysis",
		Category:   "Code Quality",
		Command:    "vendor/bin/phpstan analyse --no-progress",
		Required:   true,
		Applicable: c.exists("vendor/bin/phpstan"),
	})
	add(CheckDefinition{
		Name:       "Test Suite",
		Category:   "Tests",
		Command:    "php artisan test",
		Required:   true,
		Applicable: c.exists("artisan"),
	})
	add(CheckDefinition{
		Name:       "Migration Status",
		Category:   "Database",
		Command:    "php artisan migrate:status",
		Required:   false,
		Applicable: c.exists("artisan"),
	})
	if full {
		add(CheckDefinition{
			Name:       "Config Cache",
			Category:   "Configuration",
			Command:    "php artisan config:cache",
			Required:   true,
			Applicable: c.exists("artisan"),
		})
		add(CheckDefinition{
			Name:       "Route Cache",
			Category:   "Configuration",
			Command:    "php artisan route:cache",
			Required:   true,
			Applicable: c.exists("artisan"),
		})
		add(CheckDefinition{
			Name:       "Asset Build",
			Category:   "Assets",
			Command:    "npm run build",
			Required:   true,
			Applicable: c.exists("package.json"),
		})
	}

	for _, extra := range c.Extras {
		add(extra)
	}
	return defs
}

// exists returns a predicate probing for a path relative to the project dir.
func (c *Catalog) exists(rel string) func() bool {
	dir := c.Dir
	return func() bool {
		_, err := os.Stat(filepath.Join(dir, rel))
		return err == nil
	}
}
