package domain

import "time"

const (
	RoleStudent = "student"
	RoleAdmin   = "admin"
)

// UserType categorises where a user is in their career.
type UserType string

const (
	UserTypeStudent      UserType = "Student"
	UserTypeGraduate     UserType = "Graduate"
	UserTypeProfessional UserType = "Professional"
)

func (t UserType) Valid() bool {
	switch t {
	case UserTypeStudent, UserTypeGraduate, UserTypeProfessional:
		return true
	}
	return false
}

// academicYears is the fixed set of academic-year labels a profile may carry.
var academicYears = map[string]struct{}{
	"First Year":     {},
	"Second Year":    {},
	"Third Year":     {},
	"Fourth Year":    {},
	"Graduate":       {},
	"Not Applicable": {},
}

const DefaultYear = "First Year"

// ValidYear reports whether label is one of the allowed academic-year labels.
func ValidYear(label string) bool {
	_, ok := academicYears[label]
	return ok
}

// EnrollmentStatus is the lifecycle state of a course enrollment.
type EnrollmentStatus string

const (
	EnrollmentInProgress EnrollmentStatus = "In Progress"
	EnrollmentCompleted  EnrollmentStatus = "Completed"
	EnrollmentPaused     EnrollmentStatus = "Paused"
)

func (s EnrollmentStatus) Valid() bool {
	switch s {
	case EnrollmentInProgress, EnrollmentCompleted, EnrollmentPaused:
		return true
	}
	return false
}

// ApplicationStatus is the review state of an internship application.
type ApplicationStatus string

const (
	ApplicationPending            ApplicationStatus = "Pending"
	ApplicationUnderReview        ApplicationStatus = "Under Review"
	ApplicationInterviewScheduled ApplicationStatus = "Interview Scheduled"
	ApplicationAccepted           ApplicationStatus = "Accepted"
	ApplicationRejected           ApplicationStatus = "Rejected"
)

func (s ApplicationStatus) Valid() bool {
	switch s {
	case ApplicationPending, ApplicationUnderReview, ApplicationInterviewScheduled,
		ApplicationAccepted, ApplicationRejected:
		return true
	}
	return false
}

// SessionStatus is the state of a mentorship session.
type SessionStatus string

const (
	SessionUpcoming    SessionStatus = "Upcoming"
	SessionCompleted   SessionStatus = "Completed"
	SessionCancelled   SessionStatus = "Cancelled"
	SessionRescheduled SessionStatus = "Rescheduled"
)

func (s SessionStatus) Valid() bool {
	switch s {
	case SessionUpcoming, SessionCompleted, SessionCancelled, SessionRescheduled:
		return true
	}
	return false
}

// DefaultSessionDuration is the mentorship session length in minutes when the
// caller does not supply one.
const DefaultSessionDuration = 60

// Enrollment is one course membership embedded in a user document.
type Enrollment struct {
	CourseID    string           `json:"courseId" bson:"course_id"`
	CourseTitle string           `json:"courseTitle" bson:"course_title"`
	Progress    int              `json:"progress" bson:"progress"`
	Status      EnrollmentStatus `json:"status" bson:"status"`
	EnrolledAt  time.Time        `json:"enrolledAt" bson:"enrolled_at"`
}

// ResumeDetails holds the contact details submitted with an application.
type ResumeDetails struct {
	ApplicantName  string `json:"applicantName" bson:"applicant_name"`
	ApplicantEmail string `json:"applicantEmail" bson:"applicant_email"`
	ApplicantPhone string `json:"applicantPhone" bson:"applicant_phone"`
	CoverLetter    string `json:"coverLetter" bson:"cover_letter"`
}

// Application is one internship application embedded in a user document.
type Application struct {
	InternshipID    string            `json:"internshipId" bson:"internship_id"`
	InternshipTitle string            `json:"internshipTitle" bson:"internship_title"`
	Company         string            `json:"company" bson:"company"`
	Status          ApplicationStatus `json:"status" bson:"status"`
	AppliedAt       time.Time         `json:"appliedAt" bson:"applied_at"`
	ResumeDetails   ResumeDetails     `json:"resumeDetails" bson:"resume_details"`
}

// Session is one booked mentorship session embedded in a user document.
type Session struct {
	SessionID     string        `json:"sessionId" bson:"session_id"`
	MentorName    string        `json:"mentorName" bson:"mentor_name"`
	Topic         string        `json:"topic" bson:"topic"`
	ScheduledDate time.Time     `json:"scheduledDate" bson:"scheduled_date"`
	Duration      int           `json:"duration" bson:"duration"`
	Status        SessionStatus `json:"status" bson:"status"`
	BookedAt      time.Time     `json:"bookedAt" bson:"booked_at"`
	MeetingLink   string        `json:"meetingLink" bson:"meeting_link"`
	Notes         string        `json:"notes" bson:"notes"`
}

// User is the aggregate root: one person plus everything embedded in their
// document. The three sub-collections are append-only per unique key; only
// status, progress and notes fields are ever mutated in place.
type User struct {
	ID           string    `json:"id" bson:"_id,omitempty"`
	Name         string    `json:"name" bson:"name"`
	Email        string    `json:"email" bson:"email"`
	PasswordHash string    `json:"-" bson:"password_hash"`
	UserType     UserType  `json:"userType" bson:"user_type"`
	Year         string    `json:"year" bson:"year"`
	Location     string    `json:"location" bson:"location"`
	Phone        string    `json:"phone" bson:"phone"`
	Role         string    `json:"role" bson:"role"`
	CreatedAt    time.Time `json:"createdAt" bson:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" bson:"updated_at"`

	EnrolledCourses    []Enrollment  `json:"enrolledCourses" bson:"enrolled_courses"`
	AppliedInternships []Application `json:"appliedInternships" bson:"applied_internships"`
	MentorshipSessions []Session     `json:"mentorshipSessions" bson:"mentorship_sessions"`
}

// enrollmentIndex builds the uniqueness index over course ids.
func (u *User) enrollmentIndex() map[string]int {
	idx := make(map[string]int, len(u.EnrolledCourses))
	for i, e := range u.EnrolledCourses {
		idx[e.CourseID] = i
	}
	return idx
}

// HasEnrollment reports whether the user is already enrolled in courseID.
func (u *User) HasEnrollment(courseID string) bool {
	_, ok := u.enrollmentIndex()[courseID]
	return ok
}

// FindEnrollment returns a pointer into EnrolledCourses for in-place updates,
// or nil when the course is not present.
func (u *User) FindEnrollment(courseID string) *Enrollment {
	if i, ok := u.enrollmentIndex()[courseID]; ok {
		return &u.EnrolledCourses[i]
	}
	return nil
}

// HasApplication reports whether the user already applied to internshipID.
func (u *User) HasApplication(internshipID string) bool {
	for _, a := range u.AppliedInternships {
		if a.InternshipID == internshipID {
			return true
		}
	}
	return false
}

// HasSession reports whether sessionID is already booked.
func (u *User) HasSession(sessionID string) bool {
	for _, s := range u.MentorshipSessions {
		if s.SessionID == sessionID {
			return true
		}
	}
	return false
}

// ClampProgress restricts a progress value to the [0,100] range.
func ClampProgress(p int) int {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
