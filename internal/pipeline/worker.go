package pipeline

import (
	"bytes"
	"fmt"
	"log/slog"
	"strings"

	"github.com/dgallion1/docchat/internal/parser"
	"github.com/dgallion1/docchat/internal/section"
)

// Worker turns one uploaded document into viewer sections.
type Worker struct {
	store             *section.Store
	log               *slog.Logger
	pdfFallbackPdftot bool
}

func NewWorker(store *section.Store, log *slog.Logger, pdfFallback bool) *Worker {
	return &Worker{
		store:             store,
		log:               log,
		pdfFallbackPdftot: pdfFallback,
	}
}

// Process runs the import for a job: parse, flatten, append sections.
func (w *Worker) Process(job *Job) {
	log := w.log.With("job_id", job.ID, "filename", job.Filename)

	// Phase 1: Parse.
	job.SetStatus(StatusParsing, "parsing")
	p, err := parser.ForFile(job.Filename)
	if err != nil {
		log.Error("unsupported format", "error", err)
		job.AddError(err.Error())
		job.SetStatus(StatusFailed, "parsing")
		return
	}
	if pdf, ok := p.(*parser.PDFParser); ok {
		pdf.FallbackPdftotext = w.pdfFallbackPdftot
	}

	doc, err := p.Parse(bytes.NewReader(job.FileData()), job.Filename)
	if err != nil {
		log.Error("parse failed", "error", err)
		job.AddError(fmt.Sprintf("parse: %s", err))
		job.SetStatus(StatusFailed, "parsing")
		return
	}
	if job.Title != "" {
		doc.Title = job.Title
	}

	// Phase 2: Flatten into sections.
	job.SetStatus(StatusSectioning, "sectioning")
	inputs := doc.Sections()
	if len(inputs) == 0 {
		log.Warn("no extractable content")
		job.AddError("no extractable content")
		job.SetStatus(StatusFailed, "sectioning")
		return
	}

	for _, in := range inputs {
		title := in.Title
		// Qualify bare positional titles with the document name.
		if doc.Title != "" && strings.HasPrefix(title, "Part ") {
			title = doc.Title + " " + title
		}
		sec := w.store.Add(title, in.Content)
		job.AddSection(sec.ID)
	}

	log.Info("import complete", "sections", len(inputs))
	job.SetStatus(StatusCompleted, "done")
}
