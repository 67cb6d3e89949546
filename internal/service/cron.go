package service

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"devtools/backend/internal/model"
)

const cronTimeLayout = "2006-01-02 15:04:05 UTC"

type cronField struct {
	name     string
	min, max int
}

var cronFields = [5]cronField{
	{"minute", 0, 59},
	{"hour", 0, 23},
	{"day", 1, 31},
	{"month", 1, 12},
	{"weekday", 0, 7},
}

// CheckCron validates a five field crontab expression. Next runs are
// simulated from now by stepping whole hours; this is not a scheduler.
func CheckCron(expr string, now time.Time) model.CronResponse {
	invalid := func(msg string) model.CronResponse {
		return model.CronResponse{Valid: false, NextRuns: []string{}, Error: msg}
	}

	if strings.TrimSpace(expr) == "" {
		return invalid("cron expression is required")
	}
	parts := strings.Fields(expr)
	if len(parts) != len(cronFields) {
		return invalid(fmt.Sprintf("cron expression must have 5 fields, got %d", len(parts)))
	}
	for i, f := range cronFields {
		if !validCronField(parts[i], f.min, f.max) {
			return invalid(fmt.Sprintf("invalid %s field %q (allowed %d-%d)", f.name, parts[i], f.min, f.max))
		}
	}

	minute, hour := parts[0], parts[1]
	now = now.UTC()
	runs := make([]string, 0, 5)
	for i := 0; i < 5; i++ {
		next := now.Add(time.Duration(i+1) * time.Hour)
		h := next.Hour()
		if n, err := strconv.Atoi(hour); err == nil {
			h = n
		}
		m := 0
		if n, err := strconv.Atoi(minute); err == nil {
			m = n
		}
		next = time.Date(next.Year(), next.Month(), next.Day(), h, m, 0, 0, time.UTC)
		runs = append(runs, next.Format(cronTimeLayout))
	}
	return model.CronResponse{Valid: true, NextRuns: runs, Error: ""}
}

func validCronField(field string, min, max int) bool {
	if field == "*" {
		return true
	}
	inRange := func(s string) (int, bool) {
		n, err := strconv.Atoi(s)
		if err != nil || n < min || n > max {
			return 0, false
		}
		return n, true
	}

	switch {
	case strings.Contains(field, "/"):
		base, step, _ := strings.Cut(field, "/")
		n, err := strconv.Atoi(step)
		if err != nil || n <= 0 {
			return false
		}
		if base == "*" {
			return true
		}
		_, ok := inRange(base)
		return ok
	case strings.Contains(field, ","):
		for _, item := range strings.Split(field, ",") {
			if _, ok := inRange(strings.TrimSpace(item)); !ok {
				return false
			}
		}
		return true
	case strings.Contains(field, "-"):
		lo, hi, _ := strings.Cut(field, "-")
		start, ok1 := inRange(lo)
		end, ok2 := inRange(hi)
		return ok1 && ok2 && start <= end
	default:
		_, ok := inRange(field)
		return ok
	}
}
