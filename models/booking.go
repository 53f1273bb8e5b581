package models

import "time"

// Booking represents a reserved time slot for a teacher/class pair.
//
// Date is "YYYY-MM-DD"; StartTime and EndTime are stored as "HH:MM:SS"
// and displayed as "HH:MM". ID is assigned by the store on insert.
type Booking struct {
	ID        string    `bson:"id" json:"id,omitempty" gorm:"column:id;primaryKey;type:varchar(36)"`
	Teacher   string    `bson:"teacher" json:"teacher" gorm:"column:teacher;not null" validate:"required"`
	ClassName string    `bson:"class_name" json:"class_name" gorm:"column:class_name;not null" validate:"required"`
	Date      string    `bson:"date" json:"date" gorm:"column:date;type:varchar(10);not null;index:idx_bookings_date_start,priority:1" validate:"required,datetime=2006-01-02"`
	StartTime string    `bson:"start_time" json:"start_time" gorm:"column:start_time;type:varchar(8);index:idx_bookings_date_start,priority:2" validate:"omitempty,clocktime"`
	EndTime   string    `bson:"end_time" json:"end_time" gorm:"column:end_time;type:varchar(8)" validate:"omitempty,clocktime"`
	CreatedAt time.Time `bson:"created_at" json:"created_at" gorm:"column:created_at;autoCreateTime"`
}
