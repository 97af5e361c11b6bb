package usecase

import (
	"context"
	"encoding/json"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/runinfo/pkg/domain/model"
)

const commitLength = 7

// ReportOption is a functional option for ReportUseCase
type ReportOption func(*ReportUseCase)

// WithLookupEnv replaces os.LookupEnv as the environment source
func WithLookupEnv(lookup func(string) (string, bool)) ReportOption {
	return func(uc *ReportUseCase) {
		uc.lookupEnv = lookup
	}
}

// WithClock sets the function used to stamp the summary
func WithClock(now func() time.Time) ReportOption {
	return func(uc *ReportUseCase) {
		uc.now = now
	}
}

// WithWriter sets the destination of the human readable report
func WithWriter(w io.Writer) ReportOption {
	return func(uc *ReportUseCase) {
		uc.out = w
	}
}

// WithUnknown sets the placeholder used when the repository is not known
func WithUnknown(placeholder string) ReportOption {
	return func(uc *ReportUseCase) {
		uc.unknown = placeholder
	}
}

// WithNoColor disables colored output regardless of the terminal
func WithNoColor(noColor bool) ReportOption {
	return func(uc *ReportUseCase) {
		uc.noColor = noColor
	}
}

// ReportUseCase reports the current CI run
type ReportUseCase struct {
	lookupEnv func(string) (string, bool)
	now       func() time.Time
	out       io.Writer
	unknown   string
	noColor   bool
}

// NewReport creates a new instance of ReportUseCase
func NewReport(opts ...ReportOption) *ReportUseCase {
	uc := &ReportUseCase{
		lookupEnv: os.LookupEnv,
		now:       time.Now,
		out:       os.Stdout,
		unknown:   model.DefaultUnknown,
	}

	for _, opt := range opts {
		opt(uc)
	}

	return uc
}

// Run executes collect, print, list, build and persist in that order.
// The first error stops the remaining steps.
func (uc *ReportUseCase) Run(ctx context.Context, target *model.ReportTarget) error {
	logger := ctxlog.From(ctx)

	env := uc.CollectEnvironment()
	logger.Debug("Collected run environment",
		"repository", env.Repository,
		"workflow", env.Workflow,
		"run_id", env.RunID,
		"ref", env.Ref,
		"commit", env.Commit,
		"runner_os", env.RunnerOS,
	)

	uc.PrintSummary(env)

	if err := uc.ListTopLevelEntries(ctx, target.Root); err != nil {
		return err
	}

	summary := uc.BuildSummary(env)

	if err := uc.PersistSummary(ctx, summary, target.OutputDir, target.OutputFile); err != nil {
		return err
	}

	return nil
}

// CollectEnvironment reads the GitHub Actions variables. Missing values
// fall back to defaults, so it never fails.
func (uc *ReportUseCase) CollectEnvironment() *model.RunEnv {
	repository := uc.getenv("GITHUB_REPOSITORY")
	if repository == "" {
		repository = uc.unknown
	}

	ref := uc.getenv("GITHUB_REF_NAME")
	if ref == "" {
		ref = uc.getenv("GITHUB_REF")
	}

	return &model.RunEnv{
		Repository: repository,
		Workflow:   uc.getenv("GITHUB_WORKFLOW"),
		RunID:      uc.getenv("GITHUB_RUN_ID"),
		Ref:        ref,
		Commit:     shortSHA(uc.getenv("GITHUB_SHA")),
		RunnerOS:   uc.getenv("RUNNER_OS"),
	}
}

func (uc *ReportUseCase) getenv(key string) string {
	v, _ := uc.lookupEnv(key)
	return v
}

func shortSHA(sha string) string {
	r := []rune(sha)
	if len(r) > commitLength {
		return string(r[:commitLength])
	}
	return sha
}

// PrintSummary writes the run facts to the report writer
func (uc *ReportUseCase) PrintSummary(env *model.RunEnv) {
	p := uc.printer()
	p.Title("Olá, GitHub Actions (Go)!")
	p.Line("Repositório: %s", env.Repository)
	p.Line("Workflow: %s | Run ID: %s", env.Workflow, env.RunID)
	p.Line("Branch/Ref: %s | Commit: %s", env.Ref, env.Commit)
	p.Line("Runner: %s", env.RunnerOS)
}

// ListTopLevelEntries prints the direct children of root, skipping
// version control entries
func (uc *ReportUseCase) ListTopLevelEntries(ctx context.Context, root string) error {
	logger := ctxlog.From(ctx)

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return goerr.Wrap(err, "failed to resolve root directory", goerr.V("root", root))
	}

	entries, err := readEntries(absRoot)
	if err != nil {
		return err
	}

	p := uc.printer()
	p.Line("")
	p.Title("Arquivos no repositório (nível raiz):")

	var skipped int
	for _, entry := range entries {
		if entry.IsVCS() {
			skipped++
			continue
		}
		p.Entry(entry)
	}

	logger.Debug("Listed root directory",
		"root", absRoot,
		"entries", len(entries),
		"skipped", skipped,
	)

	return nil
}

// readEntries returns the children of dir sorted by name
func readEntries(dir string) ([]*model.Entry, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read root directory", goerr.V("root", dir))
	}

	entries := make([]*model.Entry, 0, len(dirEntries))
	for _, de := range dirEntries {
		isDir := de.IsDir()

		// Symlinks are classified by their target; a dangling link is a file
		if de.Type()&fs.ModeSymlink != 0 {
			if info, err := os.Stat(filepath.Join(dir, de.Name())); err == nil {
				isDir = info.IsDir()
			}
		}

		entries = append(entries, &model.Entry{
			Name:  de.Name(),
			IsDir: isDir,
		})
	}

	return entries, nil
}

// BuildSummary stamps env with the current time
func (uc *ReportUseCase) BuildSummary(env *model.RunEnv) *model.RunSummary {
	return model.NewRunSummary(env, uc.now())
}

// PersistSummary writes summary as indented JSON to outputDir/outputFile,
// creating outputDir if needed and replacing any existing file
func (uc *ReportUseCase) PersistSummary(ctx context.Context, summary *model.RunSummary, outputDir, outputFile string) error {
	logger := ctxlog.From(ctx)

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return goerr.Wrap(err, "failed to create output directory", goerr.V("dir", outputDir))
	}

	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return goerr.Wrap(err, "failed to marshal run summary")
	}

	path := filepath.Join(outputDir, outputFile)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return goerr.Wrap(err, "failed to write run summary", goerr.V("path", path))
	}

	logger.Info("Saved run summary", "path", path, "size_bytes", len(data))

	p := uc.printer()
	p.Line("")
	p.Line("Resumo salvo em %s", filepath.ToSlash(path))

	return nil
}
