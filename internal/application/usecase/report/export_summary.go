package report

import (
	"bytes"
	"context"
	"fmt"

	"github.com/print-shop/ledger/internal/application/adapter"
)

// ExportSummaryOutput carries a rendered summary document.
type ExportSummaryOutput struct {
	FileName    string
	ContentType string
	Content     []byte
}

// ExportSummaryUseCase computes a summary and renders it with an exporter.
type ExportSummaryUseCase struct {
	compute  *ComputeSummaryUseCase
	exporter adapter.SummaryExporter
}

// NewExportSummaryUseCase creates a new ExportSummaryUseCase instance.
func NewExportSummaryUseCase(compute *ComputeSummaryUseCase, exporter adapter.SummaryExporter) *ExportSummaryUseCase {
	return &ExportSummaryUseCase{
		compute:  compute,
		exporter: exporter,
	}
}

// Execute computes and renders the summary for input.
func (uc *ExportSummaryUseCase) Execute(ctx context.Context, input ComputeSummaryInput) (*ExportSummaryOutput, error) {
	out, err := uc.compute.Execute(ctx, input)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := uc.exporter.Export(ctx, &buf, out.Summary); err != nil {
		return nil, fmt.Errorf("failed to export summary: %w", err)
	}

	return &ExportSummaryOutput{
		FileName:    fmt.Sprintf("ledger-summary-%s.%s", input.Scope.String(), uc.exporter.FileExtension()),
		ContentType: uc.exporter.ContentType(),
		Content:     buf.Bytes(),
	}, nil
}
