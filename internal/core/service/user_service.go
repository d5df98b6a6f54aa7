package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/elevare/platform-api/internal/core/domain"
	"github.com/elevare/platform-api/internal/core/ports"
)

// UserService implements every mutation over the user aggregate: signup,
// login, profile updates, course enrollment, internship applications and
// mentorship bookings. Each operation loads the document, applies one
// validated change and saves the whole document back.
type UserService struct {
	repo      ports.UserRepository
	hasher    ports.CredentialHasher
	jwtSecret string
	tokenTTL  time.Duration
	logger    zerolog.Logger
}

func NewUserService(repo ports.UserRepository, hasher ports.CredentialHasher, jwtSecret string, tokenTTL time.Duration, logger zerolog.Logger) *UserService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &UserService{
		repo:      repo,
		hasher:    hasher,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		logger:    logger,
	}
}

// Register creates a new user aggregate. The email is stored lowercase and
// must be unique; the password is hashed before the document ever reaches the
// store.
func (s *UserService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if strings.TrimSpace(in.Email) == "" {
		return nil, fmt.Errorf("%w: email is required", domain.ErrValidation)
	}
	if in.Password == "" {
		return nil, fmt.Errorf("%w: password is required", domain.ErrValidation)
	}
	if len(in.Password) < 6 {
		return nil, fmt.Errorf("%w: password must be at least 6 characters", domain.ErrValidation)
	}

	email := strings.ToLower(strings.TrimSpace(in.Email))

	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return nil, domain.ErrEmailTaken
	}

	userType := domain.UserTypeStudent
	if in.UserType != "" {
		userType = domain.UserType(in.UserType)
		if !userType.Valid() {
			return nil, fmt.Errorf("%w: invalid userType %q", domain.ErrValidation, in.UserType)
		}
	}
	year := domain.DefaultYear
	if in.Year != "" {
		if !domain.ValidYear(in.Year) {
			return nil, fmt.Errorf("%w: invalid year %q", domain.ErrValidation, in.Year)
		}
		year = in.Year
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	user := &domain.User{
		Name:               strings.TrimSpace(in.Name),
		Email:              email,
		PasswordHash:       hash,
		UserType:           userType,
		Year:               year,
		Location:           in.Location,
		Phone:              in.Phone,
		Role:               domain.RoleStudent,
		CreatedAt:          now,
		UpdatedAt:          now,
		EnrolledCourses:    []domain.Enrollment{},
		AppliedInternships: []domain.Application{},
		MentorshipSessions: []domain.Session{},
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		s.logger.Error().Err(err).Str("email", email).Msg("failed to create user")
		return nil, err
	}

	s.logger.Info().Str("user_id", created.ID).Str("email", email).Msg("user registered")
	return created, nil
}

// Login verifies the credentials and returns a signed token plus the user.
// Unknown email and wrong password produce the identical error.
func (s *UserService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, fmt.Errorf("%w: email and password are required", domain.ErrValidation)
	}

	user, err := s.repo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}

// GetUser loads one aggregate by id.
func (s *UserService) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	return s.repo.FindByID(ctx, userID)
}

// UpdateProfile applies only the fields present in the payload. Location and
// phone accept an empty string as an explicit clear; name, userType and year
// are ignored when empty.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, in ports.UpdateProfileInput) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if in.Name != nil && *in.Name != "" {
		user.Name = strings.TrimSpace(*in.Name)
	}
	if in.UserType != nil && *in.UserType != "" {
		t := domain.UserType(*in.UserType)
		if !t.Valid() {
			return nil, fmt.Errorf("%w: invalid userType %q", domain.ErrValidation, *in.UserType)
		}
		user.UserType = t
	}
	if in.Year != nil && *in.Year != "" {
		if !domain.ValidYear(*in.Year) {
			return nil, fmt.Errorf("%w: invalid year %q", domain.ErrValidation, *in.Year)
		}
		user.Year = *in.Year
	}
	if in.Location != nil {
		user.Location = *in.Location
	}
	if in.Phone != nil {
		user.Phone = *in.Phone
	}
	user.UpdatedAt = time.Now().UTC()

	if err := s.repo.Save(ctx, user); err != nil {
		s.logger.Error().Err(err).Str("user_id", userID).Msg("failed to save profile")
		return nil, err
	}
	return user, nil
}

// Enroll appends a course to the user's enrollments. A courseId already
// present is rejected and the collection is left unchanged.
func (s *UserService) Enroll(ctx context.Context, userID string, in ports.EnrollInput) (*domain.Enrollment, error) {
	if in.CourseID == "" {
		return nil, fmt.Errorf("%w: courseId is required", domain.ErrValidation)
	}
	if in.CourseTitle == "" {
		return nil, fmt.Errorf("%w: courseTitle is required", domain.ErrValidation)
	}

	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if user.HasEnrollment(in.CourseID) {
		return nil, fmt.Errorf("%w: already enrolled in this course", domain.ErrDuplicateEntry)
	}

	entry := domain.Enrollment{
		CourseID:    in.CourseID,
		CourseTitle: in.CourseTitle,
		Progress:    0,
		Status:      domain.EnrollmentInProgress,
		EnrolledAt:  time.Now().UTC(),
	}
	user.EnrolledCourses = append(user.EnrolledCourses, entry)
	user.UpdatedAt = time.Now().UTC()

	if err := s.repo.Save(ctx, user); err != nil {
		s.logger.Error().Err(err).Str("user_id", userID).Str("course_id", in.CourseID).Msg("failed to save enrollment")
		return nil, err
	}

	s.logger.Info().Str("user_id", userID).Str("course_id", in.CourseID).Msg("course enrolled")
	return &entry, nil
}

// UpdateEnrollmentProgress mutates progress and status of one enrollment in
// place. Progress is clamped to [0,100]; status must be a known enum value.
func (s *UserService) UpdateEnrollmentProgress(ctx context.Context, userID, courseID string, in ports.UpdateEnrollmentInput) (*domain.Enrollment, error) {
	if in.Status != nil && !domain.EnrollmentStatus(*in.Status).Valid() {
		return nil, fmt.Errorf("%w: invalid status %q", domain.ErrValidation, *in.Status)
	}

	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	entry := user.FindEnrollment(courseID)
	if entry == nil {
		return nil, fmt.Errorf("%w: course not found in enrolled courses", domain.ErrEntryNotFound)
	}

	if in.Progress != nil {
		entry.Progress = domain.ClampProgress(*in.Progress)
	}
	if in.Status != nil {
		entry.Status = domain.EnrollmentStatus(*in.Status)
	}
	user.UpdatedAt = time.Now().UTC()

	if err := s.repo.Save(ctx, user); err != nil {
		s.logger.Error().Err(err).Str("user_id", userID).Str("course_id", courseID).Msg("failed to save progress")
		return nil, err
	}

	result := *entry
	return &result, nil
}

// ApplyToInternship appends an application. The initial status is always
// Pending, regardless of anything the caller sends; applicant contact fields
// fall back to the user's own profile.
func (s *UserService) ApplyToInternship(ctx context.Context, userID string, in ports.ApplyInput) (*domain.Application, error) {
	if in.InternshipID == "" {
		return nil, fmt.Errorf("%w: internshipId is required", domain.ErrValidation)
	}
	if in.InternshipTitle == "" {
		return nil, fmt.Errorf("%w: internshipTitle is required", domain.ErrValidation)
	}
	if in.Company == "" {
		return nil, fmt.Errorf("%w: company is required", domain.ErrValidation)
	}

	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if user.HasApplication(in.InternshipID) {
		return nil, fmt.Errorf("%w: already applied for this internship", domain.ErrDuplicateEntry)
	}

	appliedAt := time.Now().UTC()
	if in.AppliedAt != nil {
		appliedAt = in.AppliedAt.UTC()
	}

	details := domain.ResumeDetails{
		ApplicantName:  in.ApplicantName,
		ApplicantEmail: in.ApplicantEmail,
		ApplicantPhone: in.ApplicantPhone,
		CoverLetter:    in.CoverLetter,
	}
	if details.ApplicantName == "" {
		details.ApplicantName = user.Name
	}
	if details.ApplicantEmail == "" {
		details.ApplicantEmail = user.Email
	}
	if details.ApplicantPhone == "" {
		details.ApplicantPhone = user.Phone
	}

	entry := domain.Application{
		InternshipID:    in.InternshipID,
		InternshipTitle: in.InternshipTitle,
		Company:         in.Company,
		Status:          domain.ApplicationPending,
		AppliedAt:       appliedAt,
		ResumeDetails:   details,
	}
	user.AppliedInternships = append(user.AppliedInternships, entry)
	user.UpdatedAt = time.Now().UTC()

	if err := s.repo.Save(ctx, user); err != nil {
		s.logger.Error().Err(err).Str("user_id", userID).Str("internship_id", in.InternshipID).Msg("failed to save application")
		return nil, err
	}

	s.logger.Info().Str("user_id", userID).Str("internship_id", in.InternshipID).Msg("internship application recorded")
	return &entry, nil
}

// BookSession appends a mentorship session. Duration defaults to 60 minutes
// and the initial status is always Upcoming.
func (s *UserService) BookSession(ctx context.Context, userID string, in ports.BookSessionInput) (*domain.Session, error) {
	if in.SessionID == "" {
		return nil, fmt.Errorf("%w: sessionId is required", domain.ErrValidation)
	}
	if in.MentorName == "" {
		return nil, fmt.Errorf("%w: mentorName is required", domain.ErrValidation)
	}
	if in.Topic == "" {
		return nil, fmt.Errorf("%w: topic is required", domain.ErrValidation)
	}
	if in.ScheduledDate.IsZero() {
		return nil, fmt.Errorf("%w: scheduledDate is required", domain.ErrValidation)
	}

	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if user.HasSession(in.SessionID) {
		return nil, fmt.Errorf("%w: session already booked", domain.ErrDuplicateEntry)
	}

	duration := in.Duration
	if duration <= 0 {
		duration = domain.DefaultSessionDuration
	}

	entry := domain.Session{
		SessionID:     in.SessionID,
		MentorName:    in.MentorName,
		Topic:         in.Topic,
		ScheduledDate: in.ScheduledDate.UTC(),
		Duration:      duration,
		Status:        domain.SessionUpcoming,
		BookedAt:      time.Now().UTC(),
		MeetingLink:   in.MeetingLink,
		Notes:         "",
	}
	user.MentorshipSessions = append(user.MentorshipSessions, entry)
	user.UpdatedAt = time.Now().UTC()

	if err := s.repo.Save(ctx, user); err != nil {
		s.logger.Error().Err(err).Str("user_id", userID).Str("session_id", in.SessionID).Msg("failed to save session")
		return nil, err
	}

	s.logger.Info().Str("user_id", userID).Str("session_id", in.SessionID).Str("mentor", in.MentorName).Msg("mentorship session booked")
	return &entry, nil
}

func (s *UserService) generateToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"role":    user.Role,
		"exp":     time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
