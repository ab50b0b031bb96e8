package dto

import "time"

type TrackingEventDTO struct {
	Date        time.Time `json:"date"`
	Location    string    `json:"location"`
	Status      string    `json:"status"`
	Description string    `json:"description"`
}

type TrackingResponseDTO struct {
	ContainerNo  string             `json:"container_no"`
	GlobalStatus string             `json:"global_status"`
	Events       []TrackingEventDTO `json:"events"`
}
