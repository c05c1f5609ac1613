package cron

import (
	"fmt"
	"log"
	"time"

	"github.com/genfuture/careers-api/model"
)

// LogCatalogStatistics records the size of the catalog once an hour.
// Diagnostic only; the counts never feed back into request handling.
func (m *CronManager) LogCatalogStatistics() {
	jobName := "catalog_statistics"

	var universities, courses, careerPaths, users int64

	if err := m.db.Model(&model.University{}).Count(&universities).Error; err != nil {
		m.logJobError(jobName, fmt.Errorf("failed to count universities: %w", err))
		return
	}
	if err := m.db.Model(&model.Course{}).Count(&courses).Error; err != nil {
		m.logJobError(jobName, fmt.Errorf("failed to count courses: %w", err))
		return
	}
	if err := m.db.Model(&model.CareerPath{}).Count(&careerPaths).Error; err != nil {
		m.logJobError(jobName, fmt.Errorf("failed to count career paths: %w", err))
		return
	}
	if err := m.db.Model(&model.User{}).Count(&users).Error; err != nil {
		m.logJobError(jobName, fmt.Errorf("failed to count users: %w", err))
		return
	}

	m.logJobComplete(jobName, fmt.Sprintf(
		"universities=%d courses=%d career_paths=%d users=%d",
		universities, courses, careerPaths, users))
}

// CleanupOldData removes rows that have outlived their purpose.
// Runs daily at 2 AM.
func (m *CronManager) CleanupOldData() {
	jobName := "cleanup_old_data"

	totalCleaned := 0

	// 1. Expired JWT blacklist entries. The blacklist only needs to
	// outlive the tokens it blocks.
	result := m.db.Where("expires_at < ?", time.Now()).Delete(&model.JWTTokenBlacklist{})
	if result.Error != nil {
		log.Printf("[CRON] Failed to clean token blacklist: %v", result.Error)
	} else {
		log.Printf("[CRON] Cleaned %d expired tokens", result.RowsAffected)
		totalCleaned += int(result.RowsAffected)
	}

	// 2. Old cron job logs (keep only last 90 days)
	cutoffLogs := time.Now().Add(-90 * 24 * time.Hour)
	result = m.db.Where("created_at < ?", cutoffLogs).Delete(&model.CronJobLog{})
	if result.Error != nil {
		log.Printf("[CRON] Failed to clean cron logs: %v", result.Error)
	} else {
		log.Printf("[CRON] Cleaned %d old cron logs", result.RowsAffected)
		totalCleaned += int(result.RowsAffected)
	}

	// 3. Old admin audit entries (keep only last 365 days)
	cutoffAudit := time.Now().Add(-365 * 24 * time.Hour)
	result = m.db.Where("created_at < ?", cutoffAudit).Delete(&model.AdminAuditLog{})
	if result.Error != nil {
		log.Printf("[CRON] Failed to clean audit logs: %v", result.Error)
	} else {
		log.Printf("[CRON] Cleaned %d old audit logs", result.RowsAffected)
		totalCleaned += int(result.RowsAffected)
	}

	m.logJobComplete(jobName, fmt.Sprintf("Cleaned up %d total records", totalCleaned))
}
