package booking

import (
	"errors"
	"testing"

	"classbook/models"
)

func validInput() models.BookingInput {
	return models.BookingInput{
		Teacher:   "Ana",
		ClassName: "3A",
		Date:      "2025-09-23",
		StartTime: "09:00",
		EndTime:   "10:00",
	}
}

func expectKind(t *testing.T, err error, kind string) {
	t.Helper()
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError %s, got %v", kind, err)
	}
	if vErr.Kind != kind {
		t.Fatalf("expected kind %s, got %s (%s)", kind, vErr.Kind, vErr.Message)
	}
}

func TestValidateAcceptsValidBooking(t *testing.T) {
	res, err := Validate(validInput(), nil)
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if res.HasOverlap() {
		t.Fatalf("unexpected overlap: %+v", res.Overlaps)
	}
	want := models.Booking{Teacher: "Ana", ClassName: "3A", Date: "2025-09-23", StartTime: "09:00:00", EndTime: "10:00:00"}
	if res.Booking != want {
		t.Fatalf("Validate() booking = %+v, want %+v", res.Booking, want)
	}
}

func TestValidateTrimsFields(t *testing.T) {
	in := validInput()
	in.Teacher = "  Ana "
	in.ClassName = "\t3A\n"
	res, err := Validate(in, nil)
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if res.Booking.Teacher != "Ana" || res.Booking.ClassName != "3A" {
		t.Fatalf("fields not trimmed: %+v", res.Booking)
	}
}

func TestValidateMissingFields(t *testing.T) {
	cases := []struct {
		name  string
		edit  func(*models.BookingInput)
		field string
	}{
		{"teacher", func(in *models.BookingInput) { in.Teacher = "" }, "teacher"},
		{"blank class", func(in *models.BookingInput) { in.ClassName = "   " }, "class_name"},
		{"date", func(in *models.BookingInput) { in.Date = "" }, "date"},
		{"start", func(in *models.BookingInput) { in.StartTime = "" }, "start_time"},
		{"end", func(in *models.BookingInput) { in.EndTime = "" }, "end_time"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validInput()
			tc.edit(&in)
			_, err := Validate(in, nil)
			expectKind(t, err, KindMissingField)
			var vErr *ValidationError
			errors.As(err, &vErr)
			if vErr.Field != tc.field {
				t.Fatalf("field = %s, want %s", vErr.Field, tc.field)
			}
		})
	}
}

func TestValidateMissingFieldWinsOverOtherFailures(t *testing.T) {
	in := validInput()
	in.Teacher = ""
	in.Date = "2025-09-27"
	in.StartTime = "19:00"
	in.EndTime = "18:00"
	_, err := Validate(in, nil)
	expectKind(t, err, KindMissingField)
}

func TestValidateMalformedFields(t *testing.T) {
	for _, edit := range []func(*models.BookingInput){
		func(in *models.BookingInput) { in.Date = "23/09/2025" },
		func(in *models.BookingInput) { in.Date = "2025-02-30" },
		func(in *models.BookingInput) { in.StartTime = "9h" },
		func(in *models.BookingInput) { in.EndTime = "10:75" },
	} {
		in := validInput()
		edit(&in)
		_, err := Validate(in, nil)
		expectKind(t, err, KindMalformedField)
	}
}

func TestValidateInterval(t *testing.T) {
	in := validInput()
	in.StartTime, in.EndTime = "10:00", "10:00"
	_, err := Validate(in, nil)
	expectKind(t, err, KindInvalidInterval)

	in.StartTime, in.EndTime = "11:00", "10:00"
	_, err = Validate(in, nil)
	expectKind(t, err, KindInvalidInterval)
}

func TestValidateIntervalCheckedBeforeWindow(t *testing.T) {
	in := validInput()
	in.StartTime, in.EndTime = "19:00", "06:00"
	_, err := Validate(in, nil)
	expectKind(t, err, KindInvalidInterval)
}

func TestValidateIntervalWinsOverMalformedDate(t *testing.T) {
	in := validInput()
	in.Date = "23/09/2025"
	in.StartTime, in.EndTime = "10:00", "09:00"
	_, err := Validate(in, nil)
	expectKind(t, err, KindInvalidInterval)
}

func TestValidateWindowWinsOverMalformedDate(t *testing.T) {
	in := validInput()
	in.Date = "2025-02-30"
	in.StartTime, in.EndTime = "17:00", "19:00"
	_, err := Validate(in, nil)
	expectKind(t, err, KindOutsideAllowedWindow)
}

func TestValidateWindowBoundaries(t *testing.T) {
	cases := []struct {
		start, end string
		ok         bool
	}{
		{"07:00", "18:00", true},
		{"06:59", "08:00", false},
		{"17:00", "18:01", false},
		{"17:59", "18:00", true},
		{"18:00", "18:30", false},
	}
	for _, tc := range cases {
		in := validInput()
		in.StartTime, in.EndTime = tc.start, tc.end
		_, err := Validate(in, nil)
		if tc.ok && err != nil {
			t.Errorf("%s-%s: unexpected error %v", tc.start, tc.end, err)
		}
		if !tc.ok {
			expectKind(t, err, KindOutsideAllowedWindow)
		}
	}
}

func TestValidateWeekend(t *testing.T) {
	for _, date := range []string{"2025-09-27", "2025-09-28"} {
		in := validInput()
		in.Date = date
		_, err := Validate(in, nil)
		expectKind(t, err, KindWeekendNotAllowed)
	}
	in := validInput()
	in.Date = "2025-09-26"
	if _, err := Validate(in, nil); err != nil {
		t.Fatalf("friday rejected: %v", err)
	}
}

func TestValidateWindowCheckedBeforeWeekend(t *testing.T) {
	in := validInput()
	in.Date = "2025-09-27"
	in.StartTime, in.EndTime = "06:00", "07:30"
	_, err := Validate(in, nil)
	expectKind(t, err, KindOutsideAllowedWindow)
}

func TestValidateOverlaps(t *testing.T) {
	existing := []models.Booking{
		{ID: "a", Date: "2025-09-23", StartTime: "09:30:00", EndTime: "10:30:00"},
		{ID: "b", Date: "2025-09-23", StartTime: "10:00:00", EndTime: "11:00:00"},
		{ID: "c", Date: "2025-09-23", StartTime: "08:00:00", EndTime: "09:00:00"},
		{ID: "d", Date: "2025-09-24", StartTime: "09:00:00", EndTime: "10:00:00"},
	}
	res, err := Validate(validInput(), existing)
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if len(res.Overlaps) != 1 || res.Overlaps[0].ID != "a" {
		t.Fatalf("Overlaps = %+v, want only a", res.Overlaps)
	}
}

func TestFindOverlapsTreatsMissingTimeAsMidnight(t *testing.T) {
	candidate := models.Booking{Date: "2025-09-23", StartTime: "07:00:00", EndTime: "08:00:00"}
	existing := []models.Booking{
		{ID: "open-end", Date: "2025-09-23", StartTime: "", EndTime: "07:30:00"},
		{ID: "no-end", Date: "2025-09-23", StartTime: "07:15:00", EndTime: ""},
	}
	got := FindOverlaps(candidate, existing)
	if len(got) != 1 || got[0].ID != "open-end" {
		t.Fatalf("FindOverlaps() = %+v, want only open-end", got)
	}
}

func TestOverlaps(t *testing.T) {
	cases := []struct {
		a, b [2]int
		want bool
	}{
		{[2]int{540, 600}, [2]int{600, 660}, false},
		{[2]int{540, 600}, [2]int{570, 630}, true},
		{[2]int{540, 660}, [2]int{570, 600}, true},
		{[2]int{540, 600}, [2]int{480, 540}, false},
	}
	for _, tc := range cases {
		if got := Overlaps(tc.a[0], tc.a[1], tc.b[0], tc.b[1]); got != tc.want {
			t.Errorf("Overlaps(%v, %v) = %v, want %v", tc.a, tc.b, got, tc.want)
		}
		if got := Overlaps(tc.b[0], tc.b[1], tc.a[0], tc.a[1]); got != tc.want {
			t.Errorf("Overlaps is not symmetric for %v, %v", tc.a, tc.b)
		}
	}
}

func TestRulesFromWindow(t *testing.T) {
	r, err := RulesFromWindow("08:00", "12:00")
	if err != nil {
		t.Fatalf("RulesFromWindow() error = %v", err)
	}
	in := validInput()
	in.StartTime, in.EndTime = "07:30", "09:00"
	_, err = r.Validate(in, nil)
	expectKind(t, err, KindOutsideAllowedWindow)

	if _, err := RulesFromWindow("12:00", "08:00"); err == nil {
		t.Fatal("expected inverted window to fail")
	}
}
