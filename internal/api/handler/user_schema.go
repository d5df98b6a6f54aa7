package handler

// --- Auth requests ---

type signupRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	UserType string `json:"userType" validate:"omitempty,oneof=Student Graduate Professional"`
	Year     string `json:"year"`
	Location string `json:"location"`
	Phone    string `json:"phone"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// --- Profile update ---

// updateProfileRequest distinguishes "field absent" (nil) from an explicit
// empty value; location and phone may be cleared with "".
type updateProfileRequest struct {
	Name     *string `json:"name"`
	UserType *string `json:"userType" validate:"omitempty,oneof=Student Graduate Professional"`
	Year     *string `json:"year"`
	Location *string `json:"location"`
	Phone    *string `json:"phone"`
}

// --- Sub-collection mutations ---

type enrollRequest struct {
	CourseID    string `json:"courseId"    validate:"required"`
	CourseTitle string `json:"courseTitle" validate:"required"`
}

// updateCourseRequest carries a partial enrollment update. Status values are
// validated against the domain enumeration in the service, not here, because
// the labels contain spaces.
type updateCourseRequest struct {
	Progress *int    `json:"progress"`
	Status   *string `json:"status"`
}

// applyInternshipRequest deliberately has no status field: the initial
// application status is server-assigned.
type applyInternshipRequest struct {
	InternshipID      string `json:"internshipId"      validate:"required"`
	InternshipTitle   string `json:"internshipTitle"   validate:"required"`
	InternshipCompany string `json:"internshipCompany" validate:"required"`
	ApplicantName     string `json:"applicantName"`
	ApplicantEmail    string `json:"applicantEmail"    validate:"omitempty,email"`
	ApplicantPhone    string `json:"applicantPhone"`
	CoverLetter       string `json:"coverLetter"`
	AppliedDate       string `json:"appliedDate"` // RFC 3339, optional
}

type bookSessionRequest struct {
	SessionID     string `json:"sessionId"     validate:"required"`
	MentorName    string `json:"mentorName"    validate:"required"`
	Topic         string `json:"topic"         validate:"required"`
	ScheduledDate string `json:"scheduledDate" validate:"required"` // RFC 3339
	Duration      int    `json:"duration"      validate:"omitempty,gt=0"`
	MeetingLink   string `json:"meetingLink"`
}
