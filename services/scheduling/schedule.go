package scheduling

import (
	"bookhive/models"
	"bookhive/utils"
)

// ResolveDaySchedule returns the day schedule that applies to a calendar
// date, or ok=false if the staff member does not work that day. The date is
// parsed as a bare calendar date, so the weekday never shifts with the host
// timezone. A non-working day is a normal outcome, not an error.
func ResolveDaySchedule(schedule models.WorkSchedule, date string) (models.DaySchedule, bool) {
	weekday, err := utils.WeekdayName(date)
	if err != nil {
		return models.DaySchedule{}, false
	}

	day, ok := schedule[weekday]
	if !ok || !day.Working || day.Start == "" || day.End == "" {
		return models.DaySchedule{}, false
	}
	return day, true
}
