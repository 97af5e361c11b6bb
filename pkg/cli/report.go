package cli

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/runinfo/pkg/cli/config"
	"github.com/m-mizutani/runinfo/pkg/domain/interfaces"
	"github.com/m-mizutani/runinfo/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func runReport(cfg *config.Report) cli.ActionFunc {
	return func(ctx context.Context, c *cli.Command) error {
		logger := ctxlog.From(ctx).With(slog.String("report_id", uuid.NewString()))
		ctx = ctxlog.With(ctx, logger)

		if cfg.ConfigFile != "" {
			f, err := config.LoadFile(cfg.ConfigFile)
			if err != nil {
				return err
			}
			cfg.Merge(f, c.IsSet)
			logger.Debug("Loaded config file", slog.String("path", cfg.ConfigFile))
		}

		logger.Info("Reporting run",
			slog.String("root", cfg.Root),
			slog.String("output_dir", cfg.OutputDir),
			slog.String("output_file", cfg.OutputFile),
		)

		var reportUC interfaces.ReportUseCase = usecase.NewReport(
			usecase.WithUnknown(cfg.Unknown),
			usecase.WithNoColor(cfg.NoColor),
		)

		if err := reportUC.Run(ctx, cfg.Target()); err != nil {
			return goerr.Wrap(err, "failed to report run")
		}

		return nil
	}
}
