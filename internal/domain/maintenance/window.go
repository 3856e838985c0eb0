package maintenance

// Recompute derives the maintenance window from the schedule's stored
// fields and returns a copy with NextDue and Remaining rewritten:
//
//	NextDue   = UsageAtLastService + Frequency
//	Remaining = NextDue - CurrentUsage
//
// It is the single source of truth for both values; everything else in the
// system treats them as read-only caches. Remaining keeps its sign: a
// negative value means overdue by that magnitude and must not be clamped.
func Recompute(s Schedule) (Schedule, error) {
	if s.Frequency <= 0 {
		return Schedule{}, ErrNonPositiveFrequency
	}
	if s.CurrentUsage < 0 {
		return Schedule{}, ErrNegativeUsage
	}

	s.NextDue = s.UsageAtLastService + s.Frequency
	s.Remaining = s.NextDue - s.CurrentUsage
	return s, nil
}
