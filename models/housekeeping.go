package models

import "time"

type HousekeepingStatus string

const (
	HousekeepingStatusPending    HousekeepingStatus = "pending"
	HousekeepingStatusInProgress HousekeepingStatus = "in-progress"
	HousekeepingStatusDone       HousekeepingStatus = "done"
)

// HousekeepingTask is scheduled for a single calendar day ("2006-01-02"),
// not a range.
type HousekeepingTask struct {
	ID            uint               `json:"id" gorm:"primaryKey"`
	RoomID        uint               `json:"roomId" gorm:"index"`
	ScheduledDate string             `json:"scheduledDate"`
	Status        HousekeepingStatus `json:"status"`
	CleaningType  string             `json:"cleaningType"`
	CreatedAt     time.Time          `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time          `gorm:"autoUpdateTime" json:"updatedAt"`
}
