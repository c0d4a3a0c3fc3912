package dto

import "time"

type LogCupsRequestDTO struct {
	Count int `json:"count" example:"2"`
}

type CoffeeLogEntryDTO struct {
	Count     int       `json:"count" example:"2"`
	CreatedAt time.Time `json:"created_at" example:"2025-08-12T09:15:00+02:00"`
}

type MonthLogResponseDTO struct {
	Month   string              `json:"month" example:"2025-08"`
	Cups    int                 `json:"cups" example:"38"`
	Entries []CoffeeLogEntryDTO `json:"entries"`
}
