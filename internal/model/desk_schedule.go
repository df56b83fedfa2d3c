package model

import "time"

// DeskSchedule описывает бронирование рабочего стола на интервал времени.
// UserID может отсутствовать (осиротевшая запись), такие записи
// пропускаются при группировке по участникам.
type DeskSchedule struct {
	ScheduleID string    `json:"schedule_id"`
	UserID     *string   `json:"user_id,omitempty"`
	DeskName   string    `json:"desk_name"`
	StartsAt   time.Time `json:"starts_at"`
	EndsAt     time.Time `json:"ends_at"`
}

// OrgMember описывает участника организации вместе с его бронированиями
// за текущий и предыдущий календарный год.
type OrgMember struct {
	User
	DeskSchedulesThisYear     []DeskSchedule `json:"deskSchedulesThisYear"`
	DeskSchedulesPreviousYear []DeskSchedule `json:"deskSchedulesPreviousYear"`
}
