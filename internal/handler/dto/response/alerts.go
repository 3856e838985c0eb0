package response

import (
	"time"

	"fleetsync/internal/usecase/commands"
	"fleetsync/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type NotificationResponse struct {
	ID         uuid.UUID `json:"id"`
	Kind       string    `json:"kind"`
	Severity   string    `json:"severity"`
	SubjectKey string    `json:"subjectKey"`
	Ficha      string    `json:"ficha,omitempty"`
	Message    string    `json:"message"`
	Read       bool      `json:"read"`
	CreatedAt  time.Time `json:"createdAt"`
}

type UnreadCountResponse struct {
	Count int64 `json:"count"`
}

type SweepResponse struct {
	Proposed int      `json:"proposed"`
	Created  int      `json:"created"`
	Warnings []string `json:"warnings"`
}

func FromNotificationViews(views []*queries.NotificationView) []*NotificationResponse {
	out := make([]*NotificationResponse, len(views))
	for i, v := range views {
		resp := &NotificationResponse{}
		_ = copier.Copy(resp, v)
		out[i] = resp
	}
	return out
}

func FromSweepResult(r *commands.SweepResult) *SweepResponse {
	return &SweepResponse{
		Proposed: r.Proposed,
		Created:  r.Created,
		Warnings: orEmptyStrings(r.Warnings),
	}
}
