package model

import "strings"

// Entry is a direct child of the listed root directory
type Entry struct {
	Name  string
	IsDir bool
}

// IsVCS reports whether the entry belongs to version control metadata
// (.git, .github, .gitignore and so on)
func (e *Entry) IsVCS() bool {
	return strings.HasPrefix(e.Name, ".git")
}

// DisplayName returns the name with a trailing "/" for directories
func (e *Entry) DisplayName() string {
	if e.IsDir {
		return e.Name + "/"
	}
	return e.Name
}
