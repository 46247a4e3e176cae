package store

import (
	"context"

	"geoconnect-backend-go/internal/models"
)

func (s *PgStore) InsertMetricSample(ctx context.Context, id string, sample models.MetricSample) error {
	_, err := s.db.ExecContext(ctx, `
INSERT INTO server_metric_samples (
  id, captured_at, heap_used_bytes, heap_max_bytes, system_memory_total_bytes,
  system_memory_used_bytes, disk_total_bytes, disk_used_bytes, process_cpu_load, system_cpu_load
) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
`, id, sample.CapturedAt, sample.HeapUsedBytes, sample.HeapMaxBytes, sample.SystemMemoryTotal,
		sample.SystemMemoryUsed, sample.DiskTotalBytes, sample.DiskUsedBytes, sample.ProcessCpuLoad, sample.SystemCpuLoad)
	return translate(err)
}

func (s *PgStore) LatestMetricSamples(ctx context.Context, limit int) ([]models.MetricSample, error) {
	rows := []models.MetricSample{}
	if err := s.db.SelectContext(ctx, &rows, `
SELECT captured_at, heap_used_bytes, heap_max_bytes, system_memory_total_bytes,
       system_memory_used_bytes, disk_total_bytes, disk_used_bytes, process_cpu_load, system_cpu_load
FROM server_metric_samples
ORDER BY captured_at DESC
LIMIT $1
`, limit); err != nil {
		return nil, translate(err)
	}
	// oldest first for charting
	for i, j := 0, len(rows)-1; i < j; i, j = i+1, j-1 {
		rows[i], rows[j] = rows[j], rows[i]
	}
	return rows, nil
}
