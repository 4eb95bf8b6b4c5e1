package internal

import "time"

// extrapolationUnit picks the step used to derive more dates from a single
// result, based on what the parser knew. ok is false when the result is
// already precise enough.
func extrapolationUnit(known Values, parseTime bool) (Unit, bool) {
	hasWeekday := known.Has(FieldWeekday)
	hasMonth := known.Has(FieldMonth)
	hasDay := known.Has(FieldDay)
	hasYear := known.Has(FieldYear)
	hasTime := known.Has(FieldHour)

	if hasYear && hasMonth && hasDay {
		return 0, false
	}
	if hasTime || !parseTime {
		return 0, false
	}

	// Time parsing is on from here, so a known month and day steps by hours
	// rather than years.
	switch {
	case hasWeekday:
		return UnitWeek, true
	case hasMonth && hasDay:
		return UnitHour, true
	default:
		return UnitDay, true
	}
}

// extrapolate derives two more dates when the query produced exactly one
// result and no shortcut keyword is involved.
func extrapolate(dates []time.Time, results []ParsedResult, c Classification, parseTime bool) []time.Time {
	if len(dates) != 1 || len(results) == 0 || c.AnyKeyword() {
		return nil
	}

	unit, ok := extrapolationUnit(results[0].Known, parseTime)
	if !ok {
		return nil
	}

	return []time.Time{unit.Add(dates[0], 1), unit.Add(dates[0], 2)}
}
