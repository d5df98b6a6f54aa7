package domain

import "testing"

func TestClampProgress(t *testing.T) {
	cases := []struct{ in, want int }{
		{-10, 0},
		{0, 0},
		{55, 55},
		{100, 100},
		{150, 100},
	}
	for _, tc := range cases {
		if got := ClampProgress(tc.in); got != tc.want {
			t.Errorf("ClampProgress(%d) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestStatusEnums(t *testing.T) {
	if !EnrollmentStatus("In Progress").Valid() {
		t.Error("In Progress must be valid")
	}
	if EnrollmentStatus("in progress").Valid() {
		t.Error("status labels are case sensitive")
	}
	if !ApplicationStatus("Interview Scheduled").Valid() {
		t.Error("Interview Scheduled must be valid")
	}
	if ApplicationStatus("Waitlisted").Valid() {
		t.Error("unknown application status accepted")
	}
	if !SessionStatus("Rescheduled").Valid() {
		t.Error("Rescheduled must be valid")
	}
}

func TestValidYear(t *testing.T) {
	for _, label := range []string{"First Year", "Second Year", "Third Year", "Fourth Year", "Graduate", "Not Applicable"} {
		if !ValidYear(label) {
			t.Errorf("ValidYear(%q) = false", label)
		}
	}
	if ValidYear("Fifth Year") {
		t.Error("unknown year label accepted")
	}
}

func TestEnrollmentLookups(t *testing.T) {
	u := &User{EnrolledCourses: []Enrollment{
		{CourseID: "c1", Progress: 10},
		{CourseID: "c2", Progress: 20},
	}}

	if !u.HasEnrollment("c1") || u.HasEnrollment("c3") {
		t.Error("HasEnrollment lookup wrong")
	}

	entry := u.FindEnrollment("c2")
	if entry == nil {
		t.Fatal("FindEnrollment returned nil for existing course")
	}
	entry.Progress = 75
	if u.EnrolledCourses[1].Progress != 75 {
		t.Error("FindEnrollment must return a pointer into the slice")
	}
	if u.FindEnrollment("c3") != nil {
		t.Error("FindEnrollment returned entry for unknown course")
	}
}
