package timetable

import (
	"strconv"
	"strings"

	"github.com/DigiPoint-niger/scolatek-sub000/app/models"
)

// ValidateTimeFormat validates a HH:MM time string.
func ValidateTimeFormat(timeStr string) bool {
	parts := strings.Split(timeStr, ":")
	if len(parts) != 2 || len(parts[0]) != 2 || len(parts[1]) != 2 {
		return false
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return false
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return false
	}
	return true
}

// ValidateDayOfWeek validates a day-of-week string.
func ValidateDayOfWeek(day string) bool {
	switch models.DayOfWeek(strings.ToLower(day)) {
	case models.Monday, models.Tuesday, models.Wednesday, models.Thursday,
		models.Friday, models.Saturday, models.Sunday:
		return true
	}
	return false
}
