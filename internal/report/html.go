package report

import (
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"time"
)

//go:embed template.gohtml
var templateFS embed.FS

var reportTemplate = template.Must(template.ParseFS(templateFS, "template.gohtml"))

// ReportMeta carries the run identity stamped into the artifact footer.
type ReportMeta struct {
	Title       string
	RunID       string
	GeneratedAt time.Time
}

type reportData struct {
	Title       string
	RunID       string
	GeneratedAt string
	PlayersJSON template.JS
}

// RenderHTML writes the single self-contained report artifact: the dataset
// serialized into the page plus the client-side filter/sort/compare/export
// wiring.
func RenderHTML(w io.Writer, ds Dataset, meta ReportMeta) error {
	if ds == nil {
		ds = Dataset{}
	}
	payload, err := json.Marshal(ds)
	if err != nil {
		return fmt.Errorf("failed to serialize dataset: %w", err)
	}

	data := reportData{
		Title:       meta.Title,
		RunID:       meta.RunID,
		GeneratedAt: meta.GeneratedAt.UTC().Format(time.RFC3339),
		PlayersJSON: template.JS(payload),
	}

	if err := reportTemplate.Execute(w, data); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}
	return nil
}
