package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/c14220110/healthcheck-backend/internal/common/apperror"
	"github.com/c14220110/healthcheck-backend/internal/health/models"
	rostermodels "github.com/c14220110/healthcheck-backend/internal/roster/models"
	"github.com/c14220110/healthcheck-backend/internal/testutil"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []string
}

func (p *recordingPublisher) Publish(eventType string, _ interface{}) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, eventType)
}

func healthyInput() models.SubmissionInput {
	return models.SubmissionInput{Temperature: "36.5", Throat: "normal", Fever: "normal", Cough: "no"}
}

func TestSubmit_StoresAndPublishes(t *testing.T) {
	db := testutil.SetupTestDB(t)
	id := testutil.InsertEmployee(t, db, "E100", "Kimura", "it", false)

	pub := &recordingPublisher{}
	svc := NewSubmissionService(db, pub)
	svc.Now = func() time.Time { return time.Date(2024, 6, 10, 1, 2, 3, 0, time.UTC) }

	input := healthyInput()
	input.SelectedParts = `["head","throat"]`
	result, err := svc.Submit(context.Background(), id, input)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if result.Flag != models.FlagUnwell {
		t.Errorf("flag = %v, want unwell", result.Flag)
	}
	if result.SelectedParts != "head, throat" {
		t.Errorf("selected parts = %q", result.SelectedParts)
	}
	if result.SubmittedAt != "2024-06-10 10:02:03" {
		t.Errorf("submitted_at = %q", result.SubmittedAt)
	}
	if result.Throat != "正常" || result.Cough != "ない" {
		t.Errorf("labels = %q/%q", result.Throat, result.Cough)
	}
	if len(pub.events) != 1 || pub.events[0] != EventHealthSubmitted {
		t.Errorf("published events = %v", pub.events)
	}

	subs, err := svc.ListByEmployee(context.Background(), id, time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), time.Date(2024, 6, 11, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(subs) != 1 || subs[0].ID != result.ID || subs[0].Flag != models.FlagUnwell {
		t.Errorf("stored submissions = %+v", subs)
	}
}

func TestSubmit_Validation(t *testing.T) {
	db := testutil.SetupTestDB(t)
	id := testutil.InsertEmployee(t, db, "E101", "Ito", "hr", false)
	pub := &recordingPublisher{}
	svc := NewSubmissionService(db, pub)
	ctx := context.Background()

	missing := healthyInput()
	missing.Temperature = " "
	if _, err := svc.Submit(ctx, id, missing); apperror.GetCode(err) != apperror.CodeValidation {
		t.Errorf("missing temperature: err = %v", err)
	}

	badParts := healthyInput()
	badParts.SelectedParts = "{"
	if _, err := svc.Submit(ctx, id, badParts); apperror.GetCode(err) != apperror.CodeValidation {
		t.Errorf("bad parts: err = %v", err)
	}

	if _, err := svc.Submit(ctx, 9999, healthyInput()); apperror.GetCode(err) != apperror.CodeNotFound {
		t.Errorf("unknown employee: err = %v", err)
	}

	if len(pub.events) != 0 {
		t.Errorf("failed submissions must not publish, got %v", pub.events)
	}
}

func TestSubmit_UnparsableTemperatureIsStoredAsZero(t *testing.T) {
	db := testutil.SetupTestDB(t)
	id := testutil.InsertEmployee(t, db, "E102", "Mori", "hr", false)
	svc := NewSubmissionService(db, nil)

	input := healthyInput()
	input.Temperature = "warm"
	result, err := svc.Submit(context.Background(), id, input)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if result.Temperature != 0 || result.Flag != models.FlagNormal {
		t.Errorf("result = %+v", result)
	}
}

type rosterFromDB struct {
	entries []rostermodels.RosterEntry
}

func (r rosterFromDB) ListRoster(context.Context) ([]rostermodels.RosterEntry, error) {
	return r.entries, nil
}

func TestSubmitThenRosterStatus(t *testing.T) {
	db := testutil.SetupTestDB(t)
	healthy := testutil.InsertEmployee(t, db, "E200", "Okada", "sales", false)
	unwell := testutil.InsertEmployee(t, db, "E201", "Goto", "sales", false)
	absent := testutil.InsertEmployee(t, db, "E202", "Abe", "sales", false)

	now := time.Date(2024, 6, 10, 2, 0, 0, 0, time.UTC)
	subs := NewSubmissionService(db, nil)
	subs.Now = func() time.Time { return now }
	ctx := context.Background()

	if _, err := subs.Submit(ctx, healthy, healthyInput()); err != nil {
		t.Fatal(err)
	}
	sick := healthyInput()
	sick.Temperature = "38.4"
	if _, err := subs.Submit(ctx, unwell, sick); err != nil {
		t.Fatal(err)
	}
	// kemarin, tidak boleh terhitung
	testutil.InsertSubmission(t, db, absent, 36.0, 0, now.Add(-24*time.Hour))

	roster := rosterFromDB{entries: []rostermodels.RosterEntry{
		{EmployeeID: healthy, EmployeeNumber: "E200", Name: "Okada", DepartmentName: "営業部"},
		{EmployeeID: unwell, EmployeeNumber: "E201", Name: "Goto", DepartmentName: "営業部"},
		{EmployeeID: absent, EmployeeNumber: "E202", Name: "Abe", DepartmentName: "営業部"},
	}}
	status := NewStatusService(roster, subs)
	status.Now = func() time.Time { return now }

	rows, _, err := status.GetRosterStatus(ctx, models.StatusQuery{})
	if err != nil {
		t.Fatal(err)
	}
	want := map[int64]models.HealthState{healthy: models.StateNormal, unwell: models.StateUnwell, absent: models.StateNotSubmitted}
	for _, r := range rows {
		if r.State != want[r.EmployeeID] {
			t.Errorf("employee %d: state %v, want %v", r.EmployeeID, r.State, want[r.EmployeeID])
		}
	}

	rows, _, err = status.GetRosterStatus(ctx, models.StatusQuery{Filter: "unregistered"})
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 || rows[0].EmployeeID != absent {
		t.Errorf("unregistered rows = %+v", rows)
	}
}
