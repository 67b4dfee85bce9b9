package scan

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/linegrep/linegrep"
	"github.com/linegrep/linegrep/logging"
	"github.com/linegrep/linegrep/report"
	"github.com/linegrep/linegrep/sources/file"
	"github.com/linegrep/linegrep/sources/files"
)

// Pipeline drives every source of a run through the evaluator and the
// printer, strictly one source and one line at a time.
type Pipeline struct {
	Options   linegrep.Options
	Evaluator *Evaluator
	Printer   *report.Printer

	// Logger receives per-source diagnostics.
	Logger zerolog.Logger
}

func NewPipeline(opts linegrep.Options, evaluator *Evaluator, printer *report.Printer) *Pipeline {
	printer.ShowLineNumber = opts.ShowLineNumber
	return &Pipeline{
		Options:   opts,
		Evaluator: evaluator,
		Printer:   printer,
		Logger:    logging.Logger,
	}
}

// ScanSource reads src to the end, or up to its first selected line in list
// mode, printing report units as it goes unless counting or listing. Only
// output write failures are returned.
func (p *Pipeline) ScanSource(ctx context.Context, src linegrep.Source) (linegrep.Result, error) {
	var (
		result linegrep.Result
		mode   = p.Options.Mode()
	)

	err := src.Lines(ctx, func(line linegrep.Line) error {
		if !p.Evaluator.Selected(line.Content) {
			return nil
		}
		result.Matched = true
		result.Count++

		switch mode {
		case linegrep.ModeList:
			return linegrep.SkipSource
		case linegrep.ModeCount:
			return nil
		}

		for _, unit := range p.Evaluator.Units(line.Content) {
			if err := p.Printer.Unit(line.Label(), line.Number, unit.Text(line.Content)); err != nil {
				return err
			}
		}
		return nil
	})
	return result, err
}

// Run scans every source in order and returns the exit status of the run.
// A source that cannot be opened is reported unless errors are suppressed
// and then skipped. Labels are printed when more than one source is named.
func (p *Pipeline) Run(ctx context.Context, fs *files.Files) (linegrep.Status, error) {
	status := linegrep.StatusNoMatch
	p.Printer.ShowLabel = p.Options.ShowLabel(fs.Count())

	err := fs.Sources(ctx, func(src *file.File, err error) error {
		if err != nil {
			if !p.Options.SuppressErrors {
				p.Logger.Error().Err(err).Msg("skipping source")
			}
			return nil
		}

		result, err := p.ScanSource(ctx, src)
		if err != nil {
			return err
		}
		result.Resource = src.Resource

		qualifies, err := p.summarize(result)
		if err != nil {
			return err
		}
		if qualifies {
			status = linegrep.StatusMatch
		}
		p.Logger.Debug().
			Str("source", src.Resource.Label).
			Bool("matched", result.Matched).
			Int("count", result.Count).
			Msg("source scanned")
		return nil
	})

	if ferr := p.Printer.Flush(); err == nil {
		err = ferr
	}
	if err != nil {
		return linegrep.StatusTrouble, err
	}
	return status, nil
}

// summarize prints the per-source output of the list and count modes and
// reports whether the source counts as a match for the exit status.
func (p *Pipeline) summarize(result linegrep.Result) (bool, error) {
	switch p.Options.Mode() {
	case linegrep.ModeList:
		if !result.Matched {
			return false, nil
		}
		return true, p.Printer.Label(result.Resource.Label)
	case linegrep.ModeCount:
		return result.Count > 0, p.Printer.Count(result.Resource.Label, result.Count)
	default:
		return result.Matched, nil
	}
}
