package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"workio/internal/entities"
	"workio/internal/usecase"
	"workio/pkg/format"

	"github.com/spf13/cobra"
)

// exportFunc writes one CSV for the inclusive day range and returns its row count.
type exportFunc func(ctx context.Context, uc usecase.InterfaceUsecase, w io.Writer, from, to time.Time) (int, error)

func newExportAuditCmd() *cobra.Command {
	var start, end, out string
	cmd := &cobra.Command{
		Use:     "export-audit",
		Short:   "Write the audit trail between two dates as CSV",
		Example: `  workio export-audit --start 2025-09-01 --end 2025-09-30 --out audit.csv`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runExport(cmd, start, end, out, func(ctx context.Context, uc usecase.InterfaceUsecase, w io.Writer, from, to time.Time) (int, error) {
				return uc.ExportAudit(ctx, w, from, to)
			})
		},
	}
	exportFlags(cmd, &start, &end, &out)
	return cmd
}

func newExportReportCmd() *cobra.Command {
	var typ, start, end, out string
	cmd := &cobra.Command{
		Use:     "export-report",
		Short:   "Write a master data, documents, transactions or users report as CSV",
		Example: `  workio export-report --type documents --start 2025-09-01 --end 2025-09-30 -o documents.csv`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, ok := entities.ParseReportType(typ)
			if !ok {
				return fmt.Errorf("%w: --type must be one of master-data, documents, transactions, users", entities.ErrInvalidArgument)
			}
			return runExport(cmd, start, end, out, func(ctx context.Context, uc usecase.InterfaceUsecase, w io.Writer, from, to time.Time) (int, error) {
				return uc.ExportReport(ctx, w, rt, from, to)
			})
		},
	}
	cmd.Flags().StringVarP(&typ, "type", "t", "", "report type: master-data, documents, transactions or users")
	_ = cmd.MarkFlagRequired("type")
	exportFlags(cmd, &start, &end, &out)
	return cmd
}

func exportFlags(cmd *cobra.Command, start, end, out *string) {
	cmd.Flags().StringVar(start, "start", "", "first day, YYYY-MM-DD")
	cmd.Flags().StringVar(end, "end", "", "last day, YYYY-MM-DD")
	cmd.Flags().StringVarP(out, "out", "o", "-", "output file, - for stdout")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")
}

func runExport(cmd *cobra.Command, start, end, out string, export exportFunc) error {
	from, ok := format.ParseDate(start)
	if !ok {
		return fmt.Errorf("%w: --start must be YYYY-MM-DD", entities.ErrInvalidArgument)
	}
	to, ok := format.ParseDate(end)
	if !ok {
		return fmt.Errorf("%w: --end must be YYYY-MM-DD", entities.ErrInvalidArgument)
	}

	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	repo, err := openRepository(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer func() { _ = repo.OnStop(context.Background()) }()

	var w io.Writer = cmd.OutOrStdout()
	if out != "" && out != "-" {
		f, err := os.Create(out)
		if err != nil {
			return fmt.Errorf("create %s: %w", out, err)
		}
		defer f.Close()
		w = f
	}

	uc := usecase.New(log, ctx, repo, nil, cfg.HTTP.RequestTimeout)
	rows, err := export(ctx, uc, w, from, to)
	if err != nil {
		return err
	}
	log.Infow("export written", "command", cmd.Name(), "rows", rows, "out", out)
	return nil
}
