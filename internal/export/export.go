// Package export writes metric snapshots to Parquet files using github.com/parquet-go/parquet-go.
package export

import (
	"context"
	"fmt"
	"io"
	"os"
	"slices"
	"time"

	"github.com/parquet-go/parquet-go"
	"go.uber.org/zap"

	metricsModel "github.com/Mouadistaa/project-pulse-ai/internal/metrics/model"
	metricsRepository "github.com/Mouadistaa/project-pulse-ai/internal/metrics/repository"
)

// SnapshotRow is one metrics_daily row in columnar form.
// Metrics that were never computed are stored as nulls.
type SnapshotRow struct {
	WorkspaceID   string    `parquet:"workspace_id,snappy,dict"`
	Day           time.Time `parquet:"day,snappy"`
	LeadTimeP50   *float64  `parquet:"lead_time_p50,optional,snappy"`
	LeadTimeP85   *float64  `parquet:"lead_time_p85,optional,snappy"`
	WIP           *int64    `parquet:"wip,optional,snappy"`
	Throughput    *float64  `parquet:"throughput,optional,snappy"`
	ReviewTimeP50 *float64  `parquet:"review_time_p50,optional,snappy"`
	BugRatio      *float64  `parquet:"bug_ratio,optional,snappy"`
	PRSizeP50     *float64  `parquet:"pr_size_p50,optional,snappy"`
	ComputedAt    time.Time `parquet:"computed_at,snappy"`
}

// FromSnapshots converts snapshots to rows in the given order.
func FromSnapshots(snapshots []metricsModel.Snapshot) []SnapshotRow {
	rows := make([]SnapshotRow, len(snapshots))
	for i, s := range snapshots {
		var wip *int64
		if s.WIP != nil {
			v := int64(*s.WIP)
			wip = &v
		}
		rows[i] = SnapshotRow{
			WorkspaceID:   s.WorkspaceID,
			Day:           s.Day.UTC(),
			LeadTimeP50:   s.LeadTimeP50,
			LeadTimeP85:   s.LeadTimeP85,
			WIP:           wip,
			Throughput:    s.Throughput,
			ReviewTimeP50: s.ReviewTimeP50,
			BugRatio:      s.BugRatio,
			PRSizeP50:     s.PRSizeP50,
			ComputedAt:    s.ComputedAt.UTC(),
		}
	}
	return rows
}

// WriteSnapshots encodes rows as a Parquet file into w.
func WriteSnapshots(w io.Writer, rows []SnapshotRow) error {
	writer := parquet.NewGenericWriter[SnapshotRow](w)
	if _, err := writer.Write(rows); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write snapshot rows: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to flush parquet file: %w", err)
	}
	return nil
}

// WriteSnapshotsFile writes rows to a new Parquet file at path.
func WriteSnapshotsFile(path string, rows []SnapshotRow) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close output file: %w", cerr)
		}
	}()

	return WriteSnapshots(file, rows)
}

// Exporter dumps stored snapshots of a workspace.
type Exporter struct {
	snapshots metricsRepository.Repository
	logger    *zap.SugaredLogger
}

// New creates a snapshot exporter.
func New(snapshots metricsRepository.Repository, logger *zap.SugaredLogger) *Exporter {
	return &Exporter{snapshots: snapshots, logger: logger}
}

// ExportWorkspace writes up to limit most recent snapshots of a workspace to path,
// oldest day first, and returns the number of rows written.
func (e *Exporter) ExportWorkspace(ctx context.Context, workspaceID string, limit int, path string) (int, error) {
	snapshots, err := e.snapshots.Latest(ctx, workspaceID, limit)
	if err != nil {
		return 0, fmt.Errorf("load snapshots: %w", err)
	}
	slices.Reverse(snapshots)

	if err := WriteSnapshotsFile(path, FromSnapshots(snapshots)); err != nil {
		return 0, err
	}

	e.logger.Infow("snapshots exported", "workspace_id", workspaceID, "rows", len(snapshots), "path", path)
	return len(snapshots), nil
}
