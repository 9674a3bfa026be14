package attendance

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/workpoint-ph/attendance-backend-go/internal/domain/attendance"
	"github.com/workpoint-ph/attendance-backend-go/internal/domain/employee"
	"github.com/workpoint-ph/attendance-backend-go/internal/pkg/clock"
)

var manila = func() *time.Location {
	loc, err := time.LoadLocation(clock.BusinessTimezone)
	if err != nil {
		panic(err)
	}
	return loc
}()

// testClock is a settable clock for stepping through a day.
type testClock struct {
	t time.Time
}

func (c *testClock) Now() time.Time           { return c.t }
func (c *testClock) Location() *time.Location { return c.t.Location() }

type fakeLocker struct {
	denied   bool
	acquires []string
	releases []string
}

func (l *fakeLocker) Acquire(_ context.Context, key string, _ time.Duration) (bool, error) {
	l.acquires = append(l.acquires, key)
	return !l.denied, nil
}

func (l *fakeLocker) Release(_ context.Context, key string) error {
	l.releases = append(l.releases, key)
	return nil
}

type fakeAttendanceRepo struct {
	records map[string]attendance.Record
	nextID  int
	saves   int
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{records: map[string]attendance.Record{}, nextID: 1}
}

func (r *fakeAttendanceRepo) Create(_ context.Context, rec attendance.Record) (attendance.Record, error) {
	rec.ID = "rec-" + strconv.Itoa(r.nextID)
	r.nextID++
	r.records[rec.ID] = rec
	return rec, nil
}

func (r *fakeAttendanceRepo) GetByID(_ context.Context, id string) (attendance.Record, error) {
	rec, ok := r.records[id]
	if !ok {
		return attendance.Record{}, attendance.ErrRecordNotFound
	}
	return rec, nil
}

func (r *fakeAttendanceRepo) FindOpenOrToday(_ context.Context, employeeID string, today time.Time) (*attendance.Record, error) {
	yesterday := today.AddDate(0, 0, -1)
	for _, rec := range r.records {
		if rec.EmployeeID != employeeID {
			continue
		}
		if rec.Date.Equal(today) || (rec.Date.Equal(yesterday) && !rec.Terminal()) {
			found := rec
			return &found, nil
		}
	}
	return nil, nil
}

func (r *fakeAttendanceRepo) Save(_ context.Context, rec attendance.Record) error {
	r.saves++
	r.records[rec.ID] = rec
	return nil
}

func (r *fakeAttendanceRepo) List(_ context.Context, _ attendance.Filter) ([]attendance.Record, int64, error) {
	return nil, 0, nil
}

func (r *fakeAttendanceRepo) ListByEmployee(_ context.Context, employeeID string, _ attendance.MyFilter) ([]attendance.Record, int64, error) {
	var out []attendance.Record
	for _, rec := range r.records {
		if rec.EmployeeID == employeeID {
			out = append(out, rec)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeAttendanceRepo) ListRange(_ context.Context, _ string, _, _ time.Time) ([]attendance.Record, error) {
	return nil, nil
}

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func (r *fakeEmployeeRepo) Create(_ context.Context, emp employee.Employee) (employee.Employee, error) {
	return emp, nil
}

func (r *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	emp, ok := r.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (r *fakeEmployeeRepo) GetByCode(_ context.Context, _ string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (r *fakeEmployeeRepo) Update(_ context.Context, _ employee.Employee) error { return nil }

func (r *fakeEmployeeRepo) List(_ context.Context, _ employee.Filter) ([]employee.Employee, int64, error) {
	return nil, 0, nil
}

func authedContext(t *testing.T, employeeID string) context.Context {
	t.Helper()
	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := ja.Encode(map[string]interface{}{"employee_id": employeeID})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

type fixture struct {
	clock     *testClock
	locker    *fakeLocker
	records   *fakeAttendanceRepo
	employees *fakeEmployeeRepo
	svc       attendance.Service
	ctx       context.Context
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		clock:   &testClock{t: time.Date(2026, 1, 15, 8, 0, 0, 0, manila)},
		locker:  &fakeLocker{},
		records: newFakeAttendanceRepo(),
		employees: &fakeEmployeeRepo{employees: map[string]employee.Employee{
			"emp-1": {
				ID:               "emp-1",
				Code:             "2024-0117",
				FullName:         "Maria Santos",
				Role:             employee.RoleEmployee,
				EmploymentType:   "regular",
				ScheduledTimeIn:  "08:00",
				ScheduledTimeOut: "17:00",
				IsActive:         true,
			},
		}},
	}
	f.svc = NewAttendanceService(f.clock, attendance.DefaultPolicy(), f.locker, f.records, f.employees)
	f.ctx = authedContext(t, "emp-1")
	return f
}

func TestTimeInCreatesRecord(t *testing.T) {
	f := newFixture(t)

	resp, err := f.svc.TimeIn(f.ctx)
	require.NoError(t, err)

	assert.Equal(t, "emp-1", resp.EmployeeID)
	assert.Equal(t, "2026-01-15", resp.Date)
	require.NotNil(t, resp.TimeIn)
	assert.Equal(t, "08:00:00", *resp.TimeIn)
	require.NotNil(t, resp.TimeInStatus)
	assert.Equal(t, "On Time", *resp.TimeInStatus)
	assert.Equal(t, attendance.StatusActive, resp.Status)

	assert.Equal(t, []string{"attendance:time-in:emp-1"}, f.locker.acquires)
	assert.Len(t, f.locker.releases, 1)
	assert.Len(t, f.records.records, 1)
}

func TestTimeInTwiceRejected(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.TimeIn(f.ctx)
	require.NoError(t, err)

	f.clock.t = f.clock.t.Add(5 * time.Minute)
	_, err = f.svc.TimeIn(f.ctx)
	assert.ErrorIs(t, err, attendance.ErrAlreadyClockedIn)
	assert.Len(t, f.records.records, 1)
}

func TestTimeInLockDenied(t *testing.T) {
	f := newFixture(t)
	f.locker.denied = true

	_, err := f.svc.TimeIn(f.ctx)
	assert.ErrorIs(t, err, attendance.ErrClockInConflict)
	assert.Empty(t, f.records.records)
}

func TestTimeInInactiveEmployee(t *testing.T) {
	f := newFixture(t)
	emp := f.employees.employees["emp-1"]
	emp.IsActive = false
	f.employees.employees["emp-1"] = emp

	_, err := f.svc.TimeIn(f.ctx)
	assert.ErrorIs(t, err, employee.ErrEmployeeInactive)
}

func TestTimeInWithoutSchedule(t *testing.T) {
	f := newFixture(t)
	emp := f.employees.employees["emp-1"]
	emp.ScheduledTimeIn = ""
	f.employees.employees["emp-1"] = emp

	_, err := f.svc.TimeIn(f.ctx)
	assert.ErrorIs(t, err, attendance.ErrNoScheduleFound)
}

func TestStartBreakWithoutRecord(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.StartBreak(f.ctx)
	assert.ErrorIs(t, err, attendance.ErrRecordNotForToday)
}

func TestFullDayThroughService(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.TimeIn(f.ctx)
	require.NoError(t, err)

	f.clock.t = time.Date(2026, 1, 15, 12, 0, 0, 0, manila)
	_, err = f.svc.StartBreak(f.ctx)
	require.NoError(t, err)

	f.clock.t = time.Date(2026, 1, 15, 12, 30, 0, 0, manila)
	_, err = f.svc.EndBreak(f.ctx)
	require.NoError(t, err)

	f.clock.t = time.Date(2026, 1, 15, 17, 0, 0, 0, manila)
	resp, err := f.svc.TimeOut(f.ctx)
	require.NoError(t, err)

	assert.Equal(t, attendance.StatusCompleted, resp.Status)
	assert.Equal(t, 30, resp.BreakDuration)
	require.NotNil(t, resp.WorkHours)
	assert.InDelta(t, 8.5, *resp.WorkHours, 0.001)
	require.NotNil(t, resp.TimeOutStatus)
	assert.Equal(t, "On Time", *resp.TimeOutStatus)
}

func TestGraveyardNextMorningResolvesYesterdayRecord(t *testing.T) {
	f := newFixture(t)
	emp := f.employees.employees["emp-1"]
	emp.ScheduledTimeIn = "10:00 PM"
	emp.ScheduledTimeOut = "6:00 AM"
	f.employees.employees["emp-1"] = emp

	f.clock.t = time.Date(2026, 1, 15, 22, 0, 0, 0, manila)
	_, err := f.svc.TimeIn(f.ctx)
	require.NoError(t, err)

	// Past midnight the action still lands on last night's record.
	f.clock.t = time.Date(2026, 1, 16, 6, 0, 0, 0, manila)
	resp, err := f.svc.TimeOut(f.ctx)
	require.NoError(t, err)
	assert.Equal(t, "2026-01-15", resp.Date)
	assert.Equal(t, attendance.StatusCompleted, resp.Status)
}

func TestActionStates(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.TimeIn(f.ctx)
	require.NoError(t, err)

	f.clock.t = time.Date(2026, 1, 15, 10, 0, 0, 0, manila)
	resp, err := f.svc.ActionStates(f.ctx)
	require.NoError(t, err)

	assert.Equal(t, "2026-01-15", resp.Date)
	require.Len(t, resp.Actions, 4)

	byAction := map[attendance.Action]attendance.ActionState{}
	for _, st := range resp.Actions {
		byAction[st.Action] = st
	}
	assert.Equal(t, attendance.Completed, byAction[attendance.ActionTimeIn].Eligibility)
	assert.Equal(t, attendance.Enabled, byAction[attendance.ActionStartBreak].Eligibility)
	assert.Equal(t, attendance.Disabled, byAction[attendance.ActionEndBreak].Eligibility)
	assert.Equal(t, attendance.Enabled, byAction[attendance.ActionTimeOut].Eligibility)
}

func TestUpdateRecordRederivesStatuses(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.TimeIn(f.ctx)
	require.NoError(t, err)
	f.clock.t = time.Date(2026, 1, 15, 17, 0, 0, 0, manila)
	resp, err := f.svc.TimeOut(f.ctx)
	require.NoError(t, err)

	// An admin fixes the forgotten time-out to half past five.
	fixed := "17:30:00"
	updated, err := f.svc.UpdateRecord(f.ctx, attendance.UpdateRecordRequest{
		ID:      resp.ID,
		TimeOut: &fixed,
	})
	require.NoError(t, err)

	require.NotNil(t, updated.TimeOut)
	assert.Equal(t, "17:30:00", *updated.TimeOut)
	require.NotNil(t, updated.TimeOutStatus)
	assert.Equal(t, "Overtime(30)", *updated.TimeOutStatus)
	require.NotNil(t, updated.WorkHours)
	assert.InDelta(t, 9.5, *updated.WorkHours, 0.001)
}

func TestUpdateRecordUnknownID(t *testing.T) {
	f := newFixture(t)

	in := "08:00:00"
	_, err := f.svc.UpdateRecord(f.ctx, attendance.UpdateRecordRequest{ID: "missing", TimeIn: &in})
	assert.ErrorIs(t, err, attendance.ErrRecordNotFound)
}
