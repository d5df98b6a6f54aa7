package ports

import (
	"context"
	"time"

	"github.com/elevare/platform-api/internal/core/domain"
)

// RegisterInput carries the signup payload. Name, Email and Password are
// required; the rest fall back to profile defaults.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	UserType string
	Year     string
	Location string
	Phone    string
}

// UpdateProfileInput holds a partial profile update. Nil means "field absent,
// leave unchanged"; a non-nil empty Location or Phone is an explicit clear.
type UpdateProfileInput struct {
	Name     *string
	UserType *string
	Year     *string
	Location *string
	Phone    *string
}

// EnrollInput identifies the course to enroll the user in.
type EnrollInput struct {
	CourseID    string
	CourseTitle string
}

// UpdateEnrollmentInput holds a partial update of one enrollment entry.
type UpdateEnrollmentInput struct {
	Progress *int
	Status   *string
}

// ApplyInput carries an internship application. Applicant contact fields
// default to the user's own profile values when empty; AppliedAt defaults to
// now. The initial status is always server-assigned.
type ApplyInput struct {
	InternshipID    string
	InternshipTitle string
	Company         string
	ApplicantName   string
	ApplicantEmail  string
	ApplicantPhone  string
	CoverLetter     string
	AppliedAt       *time.Time
}

// BookSessionInput carries a mentorship session booking. Duration defaults to
// domain.DefaultSessionDuration when zero.
type BookSessionInput struct {
	SessionID     string
	MentorName    string
	Topic         string
	ScheduledDate time.Time
	Duration      int
	MeetingLink   string
}

// UserService is the mutation contract over the user aggregate. Every
// operation is one load, one validated in-memory change, one whole-document
// save. Sub-collection creations are at-most-once per unique key.
type UserService interface {
	Register(ctx context.Context, in RegisterInput) (*domain.User, error)
	// Login returns a signed token and the user on success, and the same
	// domain.ErrInvalidCredentials whether the email is unknown or the
	// password is wrong.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	GetUser(ctx context.Context, userID string) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID string, in UpdateProfileInput) (*domain.User, error)
	Enroll(ctx context.Context, userID string, in EnrollInput) (*domain.Enrollment, error)
	UpdateEnrollmentProgress(ctx context.Context, userID, courseID string, in UpdateEnrollmentInput) (*domain.Enrollment, error)
	ApplyToInternship(ctx context.Context, userID string, in ApplyInput) (*domain.Application, error)
	BookSession(ctx context.Context, userID string, in BookSessionInput) (*domain.Session, error)
}
