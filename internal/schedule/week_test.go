package schedule

import (
	"fmt"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/gymmate-dev/staff-scheduler/backend/internal/domain"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestResolveAssignableWeekStart(t *testing.T) {
	tests := []struct {
		name      string
		reference time.Time
		direction Direction
		want      time.Time
	}{
		// 2026-09-02 는 수요일, 2026-09-05 는 토요일
		{"upcoming from wednesday", date(2026, 9, 2), WeekUpcoming, date(2026, 9, 5)},
		{"upcoming from saturday skips to next week", date(2026, 9, 5), WeekUpcoming, date(2026, 9, 12)},
		{"upcoming from friday", date(2026, 9, 4), WeekUpcoming, date(2026, 9, 5)},
		{"upcoming from sunday", date(2026, 9, 6), WeekUpcoming, date(2026, 9, 12)},
		{"past from wednesday", date(2026, 9, 2), WeekPast, date(2026, 8, 29)},
		{"past from saturday is the same day", date(2026, 9, 5), WeekPast, date(2026, 9, 5)},
		{"past from sunday", date(2026, 9, 6), WeekPast, date(2026, 9, 5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveAssignableWeekStart(tt.reference, tt.direction)
			if !got.Equal(tt.want) {
				t.Errorf("ResolveAssignableWeekStart(%s, %s) = %s, want %s",
					tt.reference.Format("2006-01-02"), tt.direction, got.Format("2006-01-02"), tt.want.Format("2006-01-02"))
			}
			if got.Weekday() != time.Saturday {
				t.Errorf("anchor %s is not a Saturday", got.Format("2006-01-02"))
			}
		})
	}
}

func TestResolveAssignableWeekStart_DropsClock(t *testing.T) {
	reference := time.Date(2026, 9, 2, 23, 59, 0, 0, time.UTC)
	got := ResolveAssignableWeekStart(reference, WeekUpcoming)
	if !got.Equal(date(2026, 9, 5)) {
		t.Errorf("got %s, want date-only Saturday", got)
	}
}

func TestDateOf(t *testing.T) {
	anchor := date(2026, 9, 5) // 토요일

	tests := []struct {
		day  domain.Weekday
		want time.Time
	}{
		{domain.Saturday, date(2026, 9, 5)},
		{domain.Sunday, date(2026, 9, 6)},
		{domain.Monday, date(2026, 9, 7)},
		{domain.Friday, date(2026, 9, 11)},
	}

	for _, tt := range tests {
		if got := DateOf(anchor, tt.day); !got.Equal(tt.want) {
			t.Errorf("DateOf(anchor, %s) = %s, want %s", tt.day, got.Format("2006-01-02"), tt.want.Format("2006-01-02"))
		}
	}
}

func TestDefaultWeek_WeekendHolidays(t *testing.T) {
	anchor := date(2026, 9, 5)
	week := DefaultWeek(anchor, DefaultWeekOptions{Table: WeeklyDefaults, Category: domain.ShiftDay})

	if len(week) != 7 {
		t.Fatalf("week has %d days, want 7", len(week))
	}
	for _, wd := range domain.AnchoredWeek {
		day := week[wd]
		wantHoliday := wd == domain.Saturday || wd == domain.Sunday
		if day.IsHoliday != wantHoliday {
			t.Errorf("%s: isHoliday = %v, want %v", wd, day.IsHoliday, wantHoliday)
		}
		if !wantHoliday && day.WorkingHours != WeeklyDefaults.Day.Work {
			t.Errorf("%s: working hours = %+v, want day-shift defaults", wd, day.WorkingHours)
		}
	}
}

func TestDefaultWeek_RegistrationForcesElapsedDaysToHoliday(t *testing.T) {
	// 등록 시점이 수요일(2026-09-09)이면 지난 토요일(09-05)이 앵커가 되고,
	// 수요일까지의 날은 평일이라도 모두 휴무로 강제된다.
	today := date(2026, 9, 9)
	anchor := ResolveAssignableWeekStart(today, WeekPast)

	week := DefaultWeek(anchor, DefaultWeekOptions{
		Table:               RegistrationDefaults,
		Category:            domain.ShiftDay,
		ForceHolidayThrough: today,
	})

	for _, wd := range domain.AnchoredWeek {
		day := week[wd]
		elapsed := !DateOf(anchor, wd).After(today)
		weekend := wd == domain.Saturday || wd == domain.Sunday
		wantHoliday := elapsed || weekend
		if day.IsHoliday != wantHoliday {
			t.Errorf("%s (%s): isHoliday = %v, want %v",
				wd, DateOf(anchor, wd).Format("2006-01-02"), day.IsHoliday, wantHoliday)
		}
	}

	// 목요일과 금요일은 아직 오지 않았으므로 근무일이어야 한다
	if week[domain.Thursday].IsHoliday || week[domain.Friday].IsHoliday {
		t.Error("thursday and friday should remain working days")
	}
}

func TestValidateWeek_CatchesContainmentViolation(t *testing.T) {
	anchor := date(2026, 9, 5)
	week := DefaultWeek(anchor, DefaultWeekOptions{Table: WeeklyDefaults, Category: domain.ShiftDay})

	// 근무 09:00~09:30 에 09:00~10:00 휴게시간은 근무시간을 벗어난다
	monday := week[domain.Monday]
	monday.WorkingHours = domain.TimeRange{Start: 540, End: 600}
	monday.PrimaryBreak = domain.BreakInterval{}
	monday.SecondaryBreaks = []domain.BreakInterval{{Start: 540, End: 630, Name: "휴게시간"}}

	violations := ValidateWeek(week)
	if len(violations) == 0 {
		t.Fatal("expected validation errors, got none")
	}

	found := false
	for _, v := range violations {
		if v.Day == domain.Monday && v.Kind == ViolationSecondaryBreakOutside {
			found = true
			if got := v.Error(); !strings.HasPrefix(got, "월요일") {
				t.Errorf("message %q should be prefixed with the day name", got)
			}
		}
	}
	if !found {
		t.Errorf("violations %v should mention monday's containment violation", violations)
	}
}

func TestValidateWeek_CollectsEveryViolation(t *testing.T) {
	anchor := date(2026, 9, 5)
	week := DefaultWeek(anchor, DefaultWeekOptions{Table: WeeklyDefaults, Category: domain.ShiftDay})

	// 서로 다른 두 요일에 위반을 만들어 둘 다 보고되는지 확인한다
	week[domain.Monday].SecondaryBreaks = []domain.BreakInterval{{Start: 0, End: 60, Name: "휴게시간"}}
	week[domain.Tuesday].SecondaryBreaks = []domain.BreakInterval{
		{Start: 840, End: 900, Name: "휴게시간"},
		{Start: 870, End: 930, Name: "휴게시간"},
	}

	violations := ValidateWeek(week)

	days := map[domain.Weekday]bool{}
	for _, v := range violations {
		days[v.Day] = true
	}
	if !days[domain.Monday] || !days[domain.Tuesday] {
		t.Errorf("violations %v should cover both offending days", violations)
	}
}

func TestProjectWeek(t *testing.T) {
	anchor := date(2026, 9, 5)
	week := DefaultWeek(anchor, DefaultWeekOptions{Table: WeeklyDefaults, Category: domain.ShiftDay})
	week[domain.Monday].SecondaryBreaks = []domain.BreakInterval{{Start: 900, End: 960, Name: "휴게시간"}}

	records := ProjectWeek(42, anchor, week)

	if len(records) != 7 {
		t.Fatalf("projected %d records, want 7", len(records))
	}

	for i, record := range records {
		if record.StaffID != 42 {
			t.Errorf("record %d staffId = %d, want 42", i, record.StaffID)
		}
		want := anchor.AddDate(0, 0, i)
		if !record.Date.Equal(want) {
			t.Errorf("record %d date = %s, want %s", i, record.Date.Format("2006-01-02"), want.Format("2006-01-02"))
		}
	}

	// 토요일은 휴무 레코드
	saturday := records[0]
	if !saturday.IsHoliday || !saturday.WorkingHours.IsZero() || len(saturday.BreakTimes) != 0 {
		t.Errorf("saturday record = %+v, want zeroed holiday record", saturday)
	}

	// 월요일은 기본 휴게시간이 breakTimes 맨 앞에 온다
	monday := records[2]
	if monday.IsHoliday {
		t.Fatal("monday should be a working day")
	}
	if len(monday.BreakTimes) != 2 {
		t.Fatalf("monday breakTimes = %v, want primary + one secondary", monday.BreakTimes)
	}
	if monday.BreakTimes[0] != week[domain.Monday].PrimaryBreak {
		t.Errorf("breakTimes[0] = %+v, want the primary break", monday.BreakTimes[0])
	}
}

func TestProjectWeek_OmitsZeroLengthPrimaryBreak(t *testing.T) {
	anchor := date(2026, 9, 5)
	week := DefaultWeek(anchor, DefaultWeekOptions{Table: WeeklyDefaults, Category: domain.ShiftDay})
	week[domain.Monday].PrimaryBreak = domain.BreakInterval{Name: DefaultPrimaryBreakName}
	week[domain.Monday].SecondaryBreaks = []domain.BreakInterval{{Start: 900, End: 960, Name: "휴게시간"}}

	records := ProjectWeek(1, anchor, week)
	monday := records[2]

	if len(monday.BreakTimes) != 1 {
		t.Fatalf("monday breakTimes = %v, zero-length primary should be omitted", monday.BreakTimes)
	}
	if monday.BreakTimes[0].Name != "휴게시간" {
		t.Errorf("breakTimes[0] = %+v, want the secondary break", monday.BreakTimes[0])
	}
}

type stubRecordStore struct {
	records map[string]*domain.StaffDayRecord
	saved   [][]*domain.StaffDayRecord
	err     error
}

func newStubRecordStore() *stubRecordStore {
	return &stubRecordStore{records: make(map[string]*domain.StaffDayRecord)}
}

func (s *stubRecordStore) key(staffID int64, d time.Time) string {
	return fmt.Sprintf("%d#%s", staffID, d.Format("2006-01-02"))
}

func (s *stubRecordStore) GetStaffDayRecord(staffID int64, d time.Time) (*domain.StaffDayRecord, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.records[s.key(staffID, d)], nil
}

func (s *stubRecordStore) SaveStaffDayRecords(records []*domain.StaffDayRecord) error {
	if s.err != nil {
		return s.err
	}
	for _, record := range records {
		s.records[s.key(record.StaffID, record.Date)] = record
	}
	s.saved = append(s.saved, records)
	return nil
}

// rangeStubRecordStore 는 기간 조회까지 지원하는 저장소 스텁이다
type rangeStubRecordStore struct {
	*stubRecordStore
	rangeCalls  int
	singleCalls int
}

func newRangeStubRecordStore() *rangeStubRecordStore {
	return &rangeStubRecordStore{stubRecordStore: newStubRecordStore()}
}

func (s *rangeStubRecordStore) GetStaffDayRecord(staffID int64, d time.Time) (*domain.StaffDayRecord, error) {
	s.singleCalls++
	return s.stubRecordStore.GetStaffDayRecord(staffID, d)
}

func (s *rangeStubRecordStore) GetStaffDayRecordsInRange(staffID int64, from, to time.Time) ([]*domain.StaffDayRecord, error) {
	s.rangeCalls++
	if s.err != nil {
		return nil, s.err
	}

	found := make([]*domain.StaffDayRecord, 0)
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		if record := s.records[s.key(staffID, d)]; record != nil {
			found = append(found, record)
		}
	}
	return found, nil
}

func TestLoadWeek_UsesRangeReadWhenAvailable(t *testing.T) {
	anchor := date(2026, 9, 5)
	opts := DefaultWeekOptions{Table: WeeklyDefaults, Category: domain.ShiftDay}

	week := DefaultWeek(anchor, opts)
	week[domain.Tuesday].WorkingHours = domain.TimeRange{Start: 600, End: 1200}

	store := newRangeStubRecordStore()
	if err := store.SaveStaffDayRecords(ProjectWeek(3, anchor, week)); err != nil {
		t.Fatalf("save error = %v", err)
	}

	loaded, existed, err := LoadWeek(store, 3, anchor, opts)
	if err != nil {
		t.Fatalf("LoadWeek() error = %v", err)
	}
	if !existed {
		t.Fatal("existed = false, want true")
	}

	// 일곱 번의 단건 조회 대신 기간 조회 한 번으로 읽어야 한다
	if store.rangeCalls != 1 {
		t.Errorf("range calls = %d, want 1", store.rangeCalls)
	}
	if store.singleCalls != 0 {
		t.Errorf("single-day calls = %d, want 0 when a range read is available", store.singleCalls)
	}

	for _, wd := range domain.AnchoredWeek {
		if !reflect.DeepEqual(week[wd], loaded[wd]) {
			t.Errorf("%s: loaded = %+v, want %+v", wd, loaded[wd], week[wd])
		}
	}
}

func TestLoadWeek_DefaultsWhenEmpty(t *testing.T) {
	store := newStubRecordStore()
	anchor := date(2026, 9, 5)

	week, existed, err := LoadWeek(store, 1, anchor, DefaultWeekOptions{Table: WeeklyDefaults, Category: domain.ShiftDay})
	if err != nil {
		t.Fatalf("LoadWeek() error = %v", err)
	}
	if existed {
		t.Error("existed = true, want false for empty store")
	}
	if !week[domain.Saturday].IsHoliday {
		t.Error("default week should have saturday as holiday")
	}
}

func TestProjectThenLoadRoundTrip(t *testing.T) {
	anchor := date(2026, 9, 5)
	opts := DefaultWeekOptions{Table: WeeklyDefaults, Category: domain.ShiftDay}

	week := DefaultWeek(anchor, opts)
	week[domain.Monday].SecondaryBreaks = []domain.BreakInterval{
		{Start: 900, End: 960, Name: "청소"},
		{Start: 1020, End: 1050, Name: "휴게시간"},
	}
	week[domain.Tuesday].WorkingHours = domain.TimeRange{Start: 600, End: 1200}
	week[domain.Tuesday].PrimaryBreak = domain.BreakInterval{Start: 690, End: 750, Name: "점심시간"}

	store := newStubRecordStore()
	if err := store.SaveStaffDayRecords(ProjectWeek(7, anchor, week)); err != nil {
		t.Fatalf("save error = %v", err)
	}

	loaded, existed, err := LoadWeek(store, 7, anchor, opts)
	if err != nil {
		t.Fatalf("LoadWeek() error = %v", err)
	}
	if !existed {
		t.Fatal("existed = false, want true")
	}

	// 길이 0인 기본 휴게시간이 없는 주는 저장-복원을 거쳐도 동일해야 한다
	for _, wd := range domain.AnchoredWeek {
		if !reflect.DeepEqual(week[wd], loaded[wd]) {
			t.Errorf("%s: loaded = %+v, want %+v", wd, loaded[wd], week[wd])
		}
	}
}
