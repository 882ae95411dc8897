package logger

import (
	"fmt"
	"time"
)

// BatchProgress reports per-item progress of a sequential batch
type BatchProgress struct {
	total       int
	current     int
	succeeded   int
	description string
	startTime   time.Time
	logger      *Logger
}

// NewBatchProgress creates a reporter for total items
func NewBatchProgress(log *Logger, total int, description string) *BatchProgress {
	if log == nil {
		log = GetLogger()
	}
	return &BatchProgress{
		total:       total,
		description: description,
		startTime:   time.Now(),
		logger:      log.WithField("component", "progress"),
	}
}

// Start announces the next item and returns its 1-based position
func (bp *BatchProgress) Start(item string) int {
	bp.current++
	bp.logger.WithFields(map[string]interface{}{
		"current": bp.current,
		"total":   bp.total,
	}).Info(fmt.Sprintf("[%d/%d] %s '%s'...", bp.current, bp.total, bp.description, item))
	return bp.current
}

// Done records a successful item with a short outcome text
func (bp *BatchProgress) Done(item, outcome string) {
	bp.succeeded++
	bp.logger.WithField("item", item).Info(fmt.Sprintf("✓ %s: %s", item, outcome))
}

// Finish logs the batch summary
func (bp *BatchProgress) Finish() {
	bp.logger.WithFields(map[string]interface{}{
		"total":     bp.total,
		"succeeded": bp.succeeded,
		"skipped":   bp.current - bp.succeeded,
		"elapsed":   time.Since(bp.startTime).Round(time.Millisecond).String(),
	}).Info(fmt.Sprintf("%s finished: %d/%d", bp.description, bp.succeeded, bp.total))
}

// Counts returns processed and succeeded item counts
func (bp *BatchProgress) Counts() (processed, succeeded int) {
	return bp.current, bp.succeeded
}
