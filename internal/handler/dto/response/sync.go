package response

import (
	"fleetsync/internal/domain/reconcile"
)

type FieldChangeResponse struct {
	Key     string   `json:"key"`
	Changes []string `json:"changes"`
}

type EntityChangesResponse struct {
	Inserted []string              `json:"inserted"`
	Updated  []FieldChangeResponse `json:"updated"`
}

type SyncSummaryResponse struct {
	Equipment    EntityChangesResponse `json:"equipment"`
	Inventory    EntityChangesResponse `json:"inventory"`
	Maintenance  EntityChangesResponse `json:"maintenance"`
	Warnings     []string              `json:"warnings"`
	TotalChanges int                   `json:"totalChanges"`
}

func FromSummary(s *reconcile.Summary) *SyncSummaryResponse {
	return &SyncSummaryResponse{
		Equipment:    fromEntityChanges(s.Equipment),
		Inventory:    fromEntityChanges(s.Inventory),
		Maintenance:  fromEntityChanges(s.Maintenance),
		Warnings:     orEmptyStrings(s.Warnings),
		TotalChanges: s.TotalChanges,
	}
}

func fromEntityChanges(ec reconcile.EntityChanges) EntityChangesResponse {
	resp := EntityChangesResponse{
		Inserted: orEmptyStrings(ec.Inserted),
		Updated:  make([]FieldChangeResponse, len(ec.Updated)),
	}
	for i, u := range ec.Updated {
		resp.Updated[i] = FieldChangeResponse{
			Key:     u.Key,
			Changes: orEmptyStrings(u.Changes),
		}
	}
	return resp
}

func orEmptyStrings(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
