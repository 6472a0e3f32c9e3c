package services

import (
	"strings"
	"testing"
	"time"

	"github.com/stridehq/stride/internal/models"
)

func newTestRoutine(name string) models.Routine {
	return models.Routine{
		Recurrence:      models.Recurrence{ScheduleType: models.ScheduleDaily},
		Name:            name,
		MeasurementType: "yes/no",
		FromTime:        "07:00",
		ToTime:          "08:00",
	}
}

func TestSaveRoutineAssignsIdentity(t *testing.T) {
	routines := &stubRoutineStore{}
	service := NewRoutineService(routines, &stubRoutineLogStore{})

	routine := newTestRoutine("Morning run")
	if err := service.SaveRoutine(&routine); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if routine.ID == "" {
		t.Fatal("expected id to be assigned")
	}
	if routine.CreatedAt.IsZero() {
		t.Fatal("expected createdAt to be stamped")
	}
	if len(routine.Days) != 7 {
		t.Fatalf("daily routine should store 7 weekdays, got %d", len(routine.Days))
	}
	if len(routines.routines) != 1 {
		t.Fatalf("expected 1 stored routine, got %d", len(routines.routines))
	}
}

func TestSaveRoutineValidation(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*models.Routine)
		wantField string
	}{
		{"empty name", func(r *models.Routine) { r.Name = "   " }, "name"},
		{"name too long", func(r *models.Routine) { r.Name = strings.Repeat("x", 61) }, "name"},
		{"empty measurement type", func(r *models.Routine) { r.MeasurementType = "" }, "measurementType"},
		{"measurement type too long", func(r *models.Routine) { r.MeasurementType = strings.Repeat("x", 31) }, "measurementType"},
		{"bad from time", func(r *models.Routine) { r.FromTime = "25:00" }, "fromTime"},
		{"window inverted", func(r *models.Routine) { r.FromTime = "09:00"; r.ToTime = "08:00" }, "toTime"},
		{"window zero width", func(r *models.Routine) { r.FromTime = "09:00"; r.ToTime = "09:00" }, "toTime"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			routines := &stubRoutineStore{}
			service := NewRoutineService(routines, &stubRoutineLogStore{})

			routine := newTestRoutine("Read")
			test.mutate(&routine)

			err := service.SaveRoutine(&routine)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if checkErr := assertValidationField(err, test.wantField); checkErr != nil {
				t.Fatal(checkErr)
			}
			if len(routines.routines) != 0 {
				t.Fatal("rejected routine must not be stored")
			}
		})
	}
}

func TestRoutinesFiltersDeletedAndSortsByName(t *testing.T) {
	routines := &stubRoutineStore{routines: []models.Routine{
		{Meta: models.Meta{ID: "b"}, Name: "Stretch"},
		{Meta: models.Meta{ID: "a"}, Name: "Journal"},
		{Meta: models.Meta{ID: "c", IsDeleted: true}, Name: "Abandoned"},
	}}
	service := NewRoutineService(routines, &stubRoutineLogStore{})

	active, err := service.Routines()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(active) != 2 {
		t.Fatalf("expected 2 active routines, got %d", len(active))
	}
	if active[0].Name != "Journal" || active[1].Name != "Stretch" {
		t.Fatalf("unexpected order: %s, %s", active[0].Name, active[1].Name)
	}
}

func TestSetStatusUpsertsByNaturalKey(t *testing.T) {
	logs := &stubRoutineLogStore{}
	service := NewRoutineService(&stubRoutineStore{}, logs)
	date := models.NewDate(2025, time.April, 10)

	if err := service.SetStatus("routine-1", date, models.StatusFollowed); err != nil {
		t.Fatalf("first write failed: %v", err)
	}
	if err := service.SetStatus("routine-1", date, models.StatusIgnored); err != nil {
		t.Fatalf("second write failed: %v", err)
	}

	if len(logs.logs) != 1 {
		t.Fatalf("expected a single log for the pair, got %d", len(logs.logs))
	}
	if logs.logs[0].Status != models.StatusIgnored {
		t.Fatalf("expected status %q, got %q", models.StatusIgnored, logs.logs[0].Status)
	}
}

func TestSetStatusDistinctDatesCreateDistinctLogs(t *testing.T) {
	logs := &stubRoutineLogStore{}
	service := NewRoutineService(&stubRoutineStore{}, logs)
	date := models.NewDate(2025, time.April, 10)

	if err := service.SetStatus("routine-1", date, models.StatusFollowed); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := service.SetStatus("routine-1", date.AddDays(1), models.StatusFollowed); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(logs.logs) != 2 {
		t.Fatalf("expected 2 logs, got %d", len(logs.logs))
	}
}

func TestSetStatusRejectsUnknownStatus(t *testing.T) {
	logs := &stubRoutineLogStore{}
	service := NewRoutineService(&stubRoutineStore{}, logs)

	err := service.SetStatus("routine-1", models.NewDate(2025, time.April, 10), "done")
	if err == nil {
		t.Fatal("expected validation error")
	}
	if checkErr := assertValidationField(err, "status"); checkErr != nil {
		t.Fatal(checkErr)
	}
	if len(logs.logs) != 0 {
		t.Fatal("rejected status must not create a log")
	}
}

func TestPendingCount(t *testing.T) {
	monday := models.NewDate(2025, time.March, 3)

	routines := &stubRoutineStore{routines: []models.Routine{
		{Meta: models.Meta{ID: "daily"}, Name: "A", Recurrence: models.Recurrence{ScheduleType: models.ScheduleDaily}},
		{Meta: models.Meta{ID: "logged"}, Name: "B", Recurrence: models.Recurrence{ScheduleType: models.ScheduleDaily}},
		{Meta: models.Meta{ID: "default-log"}, Name: "C", Recurrence: models.Recurrence{ScheduleType: models.ScheduleDaily}},
		{
			Meta: models.Meta{ID: "off-day"}, Name: "D",
			Recurrence: models.Recurrence{ScheduleType: models.ScheduleSpecificDays, Days: []time.Weekday{time.Friday}},
		},
		{Meta: models.Meta{ID: "gone", IsDeleted: true}, Name: "E", Recurrence: models.Recurrence{ScheduleType: models.ScheduleDaily}},
	}}
	logs := &stubRoutineLogStore{logs: []models.RoutineLog{
		{Meta: models.Meta{ID: "l1"}, RoutineID: "logged", Date: monday, Status: models.StatusFollowed},
		{Meta: models.Meta{ID: "l2"}, RoutineID: "default-log", Date: monday, Status: models.StatusDefault},
	}}
	service := NewRoutineService(routines, logs)

	count, err := service.PendingCount(monday)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// "daily" has no log and "default-log" is still at the default status;
	// the resolved, off-day and deleted routines do not count.
	if count != 2 {
		t.Fatalf("expected 2 pending routines, got %d", count)
	}
}

func TestLogsForRangeIsInclusive(t *testing.T) {
	from := models.NewDate(2025, time.May, 1)
	to := models.NewDate(2025, time.May, 7)

	logs := &stubRoutineLogStore{logs: []models.RoutineLog{
		{Meta: models.Meta{ID: "l1"}, RoutineID: "r", Date: from, Status: models.StatusFollowed},
		{Meta: models.Meta{ID: "l2"}, RoutineID: "r", Date: to, Status: models.StatusFollowed},
		{Meta: models.Meta{ID: "l3"}, RoutineID: "r", Date: from.AddDays(-1), Status: models.StatusFollowed},
		{Meta: models.Meta{ID: "l4"}, RoutineID: "r", Date: to.AddDays(1), Status: models.StatusFollowed},
		{Meta: models.Meta{ID: "l5", IsDeleted: true}, RoutineID: "r", Date: from.AddDays(2), Status: models.StatusFollowed},
	}}
	service := NewRoutineService(&stubRoutineStore{}, logs)

	inRange, err := service.LogsForRange(from, to)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(inRange) != 2 {
		t.Fatalf("expected 2 logs inside the range, got %d", len(inRange))
	}
}
