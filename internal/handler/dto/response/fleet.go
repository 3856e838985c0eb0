package response

import (
	"time"

	"fleetsync/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type EquipmentResponse struct {
	Ficha            string             `json:"ficha"`
	Name             string             `json:"name"`
	Make             string             `json:"make"`
	Model            string             `json:"model"`
	SerialNumber     string             `json:"serialNumber"`
	Plate            string             `json:"plate"`
	Category         string             `json:"category"`
	Active           bool               `json:"active"`
	InactivityReason string             `json:"inactivityReason,omitempty"`
	Schedules        []ScheduleResponse `json:"schedules"`
}

type ScheduleResponse struct {
	Type            string     `json:"type"`
	CurrentUsage    float64    `json:"currentUsage"`
	Frequency       float64    `json:"frequency"`
	LastServiceDate *time.Time `json:"lastServiceDate,omitempty"`
	NextDue         float64    `json:"nextDue"`
	Remaining       float64    `json:"remaining"`
	Active          bool       `json:"active"`
	Status          string     `json:"status"`
}

type MaintenanceResponse struct {
	Ficha           string     `json:"ficha"`
	Type            string     `json:"type"`
	CurrentUsage    float64    `json:"currentUsage"`
	Frequency       float64    `json:"frequency"`
	LastServiceDate *time.Time `json:"lastServiceDate,omitempty"`
	NextDue         float64    `json:"nextDue"`
	Remaining       float64    `json:"remaining"`
	Active          bool       `json:"active"`
	Status          string     `json:"status"`
}

type InventoryItemResponse struct {
	Code         string `json:"code"`
	Name         string `json:"name"`
	Type         string `json:"type"`
	Supplier     string `json:"supplier"`
	Quantity     int    `json:"quantity"`
	MinimumStock int    `json:"minimumStock"`
	Active       bool   `json:"active"`
	LowStock     bool   `json:"lowStock"`
}

func FromEquipmentViews(views []*queries.EquipmentView) []*EquipmentResponse {
	out := make([]*EquipmentResponse, len(views))
	for i, v := range views {
		resp := &EquipmentResponse{}
		// field names line up; copier saves the per-field boilerplate
		_ = copier.Copy(resp, v)
		if resp.Schedules == nil {
			resp.Schedules = []ScheduleResponse{}
		}
		out[i] = resp
	}
	return out
}

func FromMaintenanceViews(views []*queries.MaintenanceView) []*MaintenanceResponse {
	out := make([]*MaintenanceResponse, len(views))
	for i, v := range views {
		resp := &MaintenanceResponse{}
		_ = copier.Copy(resp, v)
		out[i] = resp
	}
	return out
}

func FromInventoryViews(views []*queries.InventoryItemView) []*InventoryItemResponse {
	out := make([]*InventoryItemResponse, len(views))
	for i, v := range views {
		resp := &InventoryItemResponse{}
		_ = copier.Copy(resp, v)
		out[i] = resp
	}
	return out
}
