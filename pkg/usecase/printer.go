package usecase

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/m-mizutani/runinfo/pkg/domain/model"
)

// printer writes report lines. Write errors are dropped: the report is
// informational and must not abort the run.
type printer struct {
	w     io.Writer
	title *color.Color
	dir   *color.Color
}

func (uc *ReportUseCase) printer() *printer {
	p := &printer{
		w:     uc.out,
		title: color.New(color.Bold),
		dir:   color.New(color.FgBlue),
	}
	if uc.noColor {
		p.title.DisableColor()
		p.dir.DisableColor()
	}
	return p
}

func (p *printer) Title(s string) {
	_, _ = p.title.Fprintln(p.w, s)
}

func (p *printer) Line(format string, args ...any) {
	_, _ = fmt.Fprintf(p.w, format+"\n", args...)
}

func (p *printer) Entry(e *model.Entry) {
	if e.IsDir {
		_, _ = fmt.Fprintf(p.w, " - %s\n", p.dir.Sprint(e.DisplayName()))
		return
	}
	_, _ = fmt.Fprintf(p.w, " - %s\n", e.DisplayName())
}
