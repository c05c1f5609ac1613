package middleware

import (
	"encoding/json"
	"log"
	"strconv"

	"github.com/genfuture/careers-api/model"
	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// AdminAuditLog records an audit trail entry for admin catalog
// mutations. It captures the prior state of the touched record and the
// request body, then writes the entry after the handler has run.
// Audit failures are logged, never surfaced to the request.
func AdminAuditLog(db *gorm.DB, action, resource string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, ok := GetUser(c)
		if !ok || user == nil {
			return c.Next()
		}

		var resourceID uint
		if id := c.Params("id"); id != "" {
			if parsedID, err := strconv.ParseUint(id, 10, 32); err == nil {
				resourceID = uint(parsedID)
			}
		}

		var oldValue interface{}
		if resourceID > 0 && (c.Method() == "DELETE" || c.Method() == "PUT") {
			switch resource {
			case "universities":
				var u model.University
				if err := db.First(&u, resourceID).Error; err == nil {
					oldValue = u
				}
			case "courses":
				var course model.Course
				if err := db.First(&course, resourceID).Error; err == nil {
					oldValue = course
				}
			case "career_paths":
				var cp model.CareerPath
				if err := db.First(&cp, resourceID).Error; err == nil {
					oldValue = cp
				}
			}
		}

		var newValue json.RawMessage
		if c.Method() == "POST" || c.Method() == "PUT" {
			if body := c.Body(); json.Valid(body) {
				newValue = append(json.RawMessage(nil), body...)
			}
		}

		entry := model.AdminAuditLog{
			AdminID:     user.ID,
			Action:      action,
			Resource:    resource,
			ResourceID:  resourceID,
			NewValue:    datatypes.JSON(newValue),
			IPAddress:   c.IP(),
			UserAgent:   c.Get("User-Agent"),
			Description: c.Method() + " " + c.Path(),
		}
		if oldValue != nil {
			if oldJSON, err := json.Marshal(oldValue); err == nil {
				entry.OldValue = datatypes.JSON(oldJSON)
			}
		}

		err := c.Next()

		if createErr := db.Create(&entry).Error; createErr != nil {
			log.Printf("[audit] failed to record %s on %s/%d: %v", action, resource, resourceID, createErr)
		}

		return err
	}
}
