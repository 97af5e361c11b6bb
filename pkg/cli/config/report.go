package config

import (
	"github.com/m-mizutani/runinfo/pkg/domain/model"
	"github.com/urfave/cli/v3"
)

// Report holds run report configuration
type Report struct {
	Root       string
	OutputDir  string
	OutputFile string
	Unknown    string
	NoColor    bool
	ConfigFile string
}

// Flags returns CLI flags for report configuration
func (c *Report) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "root",
			Usage:       "Directory whose top level entries are listed",
			Value:       ".",
			Destination: &c.Root,
			Sources:     cli.EnvVars("RUNINFO_ROOT"),
		},
		&cli.StringFlag{
			Name:        "output-dir",
			Usage:       "Directory to write the run summary into",
			Value:       "output",
			Destination: &c.OutputDir,
			Sources:     cli.EnvVars("RUNINFO_OUTPUT_DIR"),
		},
		&cli.StringFlag{
			Name:        "output-file",
			Usage:       "File name of the run summary",
			Value:       "run_info.json",
			Destination: &c.OutputFile,
			Sources:     cli.EnvVars("RUNINFO_OUTPUT_FILE"),
		},
		&cli.StringFlag{
			Name:        "unknown",
			Usage:       "Placeholder used when the repository is not known",
			Value:       model.DefaultUnknown,
			Destination: &c.Unknown,
			Sources:     cli.EnvVars("RUNINFO_UNKNOWN"),
		},
		&cli.BoolFlag{
			Name:        "no-color",
			Usage:       "Disable colored output",
			Destination: &c.NoColor,
			Sources:     cli.EnvVars("RUNINFO_NO_COLOR"),
		},
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Usage:       "Path to a TOML config file",
			Destination: &c.ConfigFile,
			Sources:     cli.EnvVars("RUNINFO_CONFIG"),
		},
	}
}

// Target returns where the report reads from and writes to
func (c *Report) Target() *model.ReportTarget {
	return &model.ReportTarget{
		Root:       c.Root,
		OutputDir:  c.OutputDir,
		OutputFile: c.OutputFile,
	}
}

// Merge applies values from f to fields whose flag was not set on the
// command line or through the environment
func (c *Report) Merge(f *File, isSet func(name string) bool) {
	apply := func(name string, dst *string, v string) {
		if v != "" && !isSet(name) {
			*dst = v
		}
	}

	apply("root", &c.Root, f.Root)
	apply("unknown", &c.Unknown, f.Unknown)
	apply("output-dir", &c.OutputDir, f.Output.Dir)
	apply("output-file", &c.OutputFile, f.Output.File)
}
