package alert

import (
	"fmt"
	"sort"

	"fleetsync/internal/domain/equipment"
	"fleetsync/internal/domain/inventory"
	"fleetsync/internal/domain/maintenance"
)

// Derive inspects the live state and proposes notification intents:
//
//   - active schedules classified overdue → maintenance_overdue (critical)
//   - active schedules classified critical → maintenance_due (critical)
//   - active schedules classified preventive → maintenance_due (warning)
//   - active inventory items at or below minimum stock → low_stock (warning)
//   - active schedules whose equipment is inactive → equipment_inactive (info)
//
// Schedules on inactive equipment produce only the inactive intent, never a
// due/overdue one; a parked machine accrues no usage. Intents are deduped
// within the run by (kind, subject) and returned most urgent first.
func Derive(schedules []maintenance.Schedule, items []inventory.Item, fleet []equipment.Equipment, policy Policy) []Intent {
	activeFicha := make(map[string]bool, len(fleet))
	knownFicha := make(map[string]bool, len(fleet))
	for _, e := range fleet {
		knownFicha[e.Ficha] = true
		if e.Active {
			activeFicha[e.Ficha] = true
		}
	}

	var intents []Intent
	seen := make(map[string]bool)
	emit := func(i Intent) {
		if seen[i.DedupeKey()] {
			return
		}
		seen[i.DedupeKey()] = true
		intents = append(intents, i)
	}

	for _, s := range schedules {
		if !s.Active {
			continue
		}
		if knownFicha[s.Ficha] && !activeFicha[s.Ficha] {
			emit(Intent{
				Kind:       KindEquipmentInactive,
				Severity:   SeverityInfo,
				SubjectKey: s.Ficha,
				Ficha:      s.Ficha,
				Message:    fmt.Sprintf("equipment %s is inactive but still has an active %s schedule", s.Ficha, s.Type),
			})
			continue
		}

		switch policy.Classify(s.Remaining) {
		case StatusOverdue:
			emit(Intent{
				Kind:       KindMaintenanceOverdue,
				Severity:   SeverityCritical,
				SubjectKey: s.DisplayKey(),
				Ficha:      s.Ficha,
				Message:    fmt.Sprintf("%s overdue by %.0f units", s.Type, -s.Remaining),
			})
		case StatusCritical:
			emit(Intent{
				Kind:       KindMaintenanceDue,
				Severity:   SeverityCritical,
				SubjectKey: s.DisplayKey(),
				Ficha:      s.Ficha,
				Message:    fmt.Sprintf("%s due in %.0f units", s.Type, s.Remaining),
			})
		case StatusPreventive:
			emit(Intent{
				Kind:       KindMaintenanceDue,
				Severity:   SeverityWarning,
				SubjectKey: s.DisplayKey(),
				Ficha:      s.Ficha,
				Message:    fmt.Sprintf("%s due in %.0f units", s.Type, s.Remaining),
			})
		}
	}

	for _, item := range items {
		if !item.Active || !item.LowStock() {
			continue
		}
		emit(Intent{
			Kind:       KindLowStock,
			Severity:   SeverityWarning,
			SubjectKey: item.Code,
			Message:    fmt.Sprintf("%s stock %d at or below minimum %d", item.Name, item.Quantity, item.MinimumStock),
		})
	}

	sort.SliceStable(intents, func(a, b int) bool {
		return severityRank(intents[a].Severity) < severityRank(intents[b].Severity)
	})
	return intents
}

func severityRank(s Severity) int {
	switch s {
	case SeverityCritical:
		return 0
	case SeverityWarning:
		return 1
	default:
		return 2
	}
}
