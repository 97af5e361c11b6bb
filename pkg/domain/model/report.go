package model

import "path/filepath"

// ReportTarget tells the reporter where to read from and write to
type ReportTarget struct {
	Root       string // Directory whose children are listed
	OutputDir  string // Directory created for the summary
	OutputFile string // File name inside OutputDir
}

// OutputPath returns the path of the summary file
func (t *ReportTarget) OutputPath() string {
	return filepath.Join(t.OutputDir, t.OutputFile)
}
