package service

import (
	"time"

	"github.com/DivyaGovardhan/design-ui/database"
	"github.com/DivyaGovardhan/design-ui/database/model"
	"github.com/DivyaGovardhan/design-ui/logger"

	"github.com/goccy/go-json"
)

// AuditLogService records staff and account actions.
type AuditLogService struct{}

// LogAction writes one audit entry. Marshalling the detail payload is
// best-effort; the entry is still written without it.
func (s *AuditLogService) LogAction(userId int, username, action, resource string, resourceId int, ip, userAgent string, details map[string]any) error {
	db := database.GetDB()

	detailsJSON := ""
	if details != nil {
		data, err := json.Marshal(details)
		if err != nil {
			logger.Warning("Failed to marshal audit log details:", err)
		} else {
			detailsJSON = string(data)
		}
	}

	entry := model.AuditLog{
		UserId:     userId,
		Username:   username,
		Action:     action,
		Resource:   resource,
		ResourceId: resourceId,
		IP:         ip,
		UserAgent:  userAgent,
		Details:    detailsJSON,
		Timestamp:  time.Now(),
	}

	if err := db.Create(&entry).Error; err != nil {
		logger.Warningf("Failed to create audit log: user=%d, action=%s, resource=%s, error=%v", userId, action, resource, err)
		return err
	}
	return nil
}

// GetAuditLogs retrieves audit entries with optional filters, newest first.
func (s *AuditLogService) GetAuditLogs(userId, limit, offset int, action, resource string) ([]model.AuditLog, int64, error) {
	db := database.GetDB()

	query := db.Model(&model.AuditLog{})

	if userId > 0 {
		query = query.Where("user_id = ?", userId)
	}
	if action != "" {
		query = query.Where("action = ?", action)
	}
	if resource != "" {
		query = query.Where("resource = ?", resource)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var entries []model.AuditLog
	err := query.Order("timestamp DESC").Limit(limit).Offset(offset).Find(&entries).Error
	return entries, total, err
}

// CleanOldLogs deletes entries older than the retention window.
func (s *AuditLogService) CleanOldLogs(retentionDays int) error {
	db := database.GetDB()
	cutoff := time.Now().AddDate(0, 0, -retentionDays)
	return db.Where("timestamp < ?", cutoff).Delete(&model.AuditLog{}).Error
}
