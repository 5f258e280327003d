package app

import (
	"os"
	"path/filepath"
)

// Paths holds the filesystem locations fstack reads configuration from.
// All fields are pre-computed; nothing is created on disk.
type Paths struct {
	ProjectTable string // ./fstack.yaml
	ProjectEnv   string // ./.env

	UserDir   string // ~/.config/fstack/
	UserTable string // ~/.config/fstack/table.yaml
	UserEnv   string // ~/.config/fstack/env
}

// NewPaths resolves all paths from a working directory and a home directory.
// An empty home disables the per-user locations.
func NewPaths(workDir, home string) *Paths {
	p := &Paths{
		ProjectTable: filepath.Join(workDir, "fstack.yaml"),
		ProjectEnv:   filepath.Join(workDir, ".env"),
	}
	if home != "" {
		p.UserDir = filepath.Join(home, ".config", "fstack")
		p.UserTable = filepath.Join(p.UserDir, "table.yaml")
		p.UserEnv = filepath.Join(p.UserDir, "env")
	}
	return p
}

// DefaultPaths resolves paths from the process working and home directories.
func DefaultPaths() *Paths {
	wd, err := os.Getwd()
	if err != nil {
		wd = "."
	}
	home, _ := os.UserHomeDir()
	return NewPaths(wd, home)
}

// EnvFiles returns the existing env files, project first so that its values
// win (godotenv never overrides a variable that is already set).
func (p *Paths) EnvFiles() []string {
	return existing(p.ProjectEnv, p.UserEnv)
}

// FindTable returns the first existing table file, project before user,
// or "" when neither exists and the built-in table applies.
func (p *Paths) FindTable() string {
	if found := existing(p.ProjectTable, p.UserTable); len(found) > 0 {
		return found[0]
	}
	return ""
}

func existing(paths ...string) []string {
	var out []string
	for _, path := range paths {
		if path == "" {
			continue
		}
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			out = append(out, path)
		}
	}
	return out
}
