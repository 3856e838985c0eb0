package response

import (
	"fleetsync/internal/domain/alert"
)

type ThresholdsResponse struct {
	Critical   float64  `json:"critical"`
	Preventive float64  `json:"preventive"`
	Warnings   []string `json:"warnings,omitempty"`
}

func FromPolicy(p alert.Policy, warnings []string) *ThresholdsResponse {
	return &ThresholdsResponse{
		Critical:   p.Critical,
		Preventive: p.Preventive,
		Warnings:   warnings,
	}
}
