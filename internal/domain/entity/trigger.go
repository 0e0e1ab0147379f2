package entity

import "time"

// ScheduleTrigger is the denormalized projection of a Block into the
// relational trigger store. An external scheduler reads this table to learn
// when notifications are due; the Block remains the source of truth.
type ScheduleTrigger struct {
	ID            string    `gorm:"column:id;type:uuid;primaryKey"`
	MongoID       string    `gorm:"column:mongo_id;index"`
	UserID        string    `gorm:"column:user_id"`
	ScheduledTime string    `gorm:"column:scheduled_time"`
	CreatedAt     time.Time `gorm:"column:created_at"`
}

// TableName specifies the table name for the ScheduleTrigger entity.
func (ScheduleTrigger) TableName() string {
	return "schedule_triggers"
}
