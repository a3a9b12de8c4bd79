package adapter

import (
	"context"
	"io"

	"github.com/print-shop/ledger/internal/domain/entity"
)

// SummaryExporter renders a report summary into a downloadable document.
type SummaryExporter interface {
	// ContentType returns the MIME type of the rendered document.
	ContentType() string

	// FileExtension returns the extension, without dot, of the rendered document.
	FileExtension() string

	// Export writes the rendered summary to w.
	Export(ctx context.Context, w io.Writer, summary *entity.ReportSummary) error
}
