package interfaces

import (
	"context"

	"github.com/m-mizutani/runinfo/pkg/domain/model"
)

// ReportUseCase defines the CI run reporting flow
type ReportUseCase interface {
	// Run collects the environment, prints it, lists the root and persists the summary
	Run(ctx context.Context, target *model.ReportTarget) error
}
