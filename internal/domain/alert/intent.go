package alert

type Kind string

const (
	KindMaintenanceDue     Kind = "maintenance_due"
	KindMaintenanceOverdue Kind = "maintenance_overdue"
	KindLowStock           Kind = "low_stock"
	KindEquipmentInactive  Kind = "equipment_inactive"
)

type Severity string

const (
	SeverityInfo     Severity = "info"
	SeverityWarning  Severity = "warning"
	SeverityCritical Severity = "critical"
)

// Intent is one candidate alert. The deriver only proposes: checking the
// (kind, subject) pair against already-open notifications is the sink's job.
type Intent struct {
	Kind       Kind
	Severity   Severity
	SubjectKey string
	Ficha      string
	Message    string
}

// DedupeKey identifies the open-notification slot an intent competes for.
func (i Intent) DedupeKey() string {
	return string(i.Kind) + "|" + i.SubjectKey
}
