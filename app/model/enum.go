package model

import (
	"errors"
	"net/mail"
	"net/url"
	"regexp"
	"strings"
)

// ActivityCode identifies which of the five LEAPS submission kinds a
// payload belongs to.
type ActivityCode string

const (
	ActivityLearn   ActivityCode = "LEARN"
	ActivityExplore ActivityCode = "EXPLORE"
	ActivityAmplify ActivityCode = "AMPLIFY"
	ActivityPresent ActivityCode = "PRESENT"
	ActivityShine   ActivityCode = "SHINE"
)

// ActivityCodes is the canonical ordering of the five stages.
var ActivityCodes = []ActivityCode{
	ActivityLearn,
	ActivityExplore,
	ActivityAmplify,
	ActivityPresent,
	ActivityShine,
}

func (c ActivityCode) Valid() bool {
	switch c {
	case ActivityLearn, ActivityExplore, ActivityAmplify, ActivityPresent, ActivityShine:
		return true
	}
	return false
}

func ParseActivityCode(s string) (ActivityCode, error) {
	code := ActivityCode(s)
	if !code.Valid() {
		return "", errors.New("unknown activity code: " + s)
	}
	return code, nil
}

// ActivityPoints is the fixed point value awarded when a submission for the
// given stage is approved.
var ActivityPoints = map[ActivityCode]int{
	ActivityLearn:   20,
	ActivityExplore: 50,
	ActivityAmplify: 25,
	ActivityPresent: 20,
	ActivityShine:   30,
}

// SubmissionStatus is the review-workflow state of a submission.
type SubmissionStatus string

const (
	StatusPending  SubmissionStatus = "PENDING"
	StatusApproved SubmissionStatus = "APPROVED"
	StatusRejected SubmissionStatus = "REJECTED"
	StatusRevoked  SubmissionStatus = "REVOKED"
)

func (s SubmissionStatus) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusRevoked:
		return true
	}
	return false
}

type Visibility string

const (
	VisibilityPublic  Visibility = "PUBLIC"
	VisibilityPrivate Visibility = "PRIVATE"
)

func (v Visibility) Valid() bool {
	return v == VisibilityPublic || v == VisibilityPrivate
}

type Role string

const (
	RoleParticipant Role = "participant"
	RoleReviewer    Role = "reviewer"
	RoleAdmin       Role = "admin"
)

func (r Role) Valid() bool {
	return r == RoleParticipant || r == RoleReviewer || r == RoleAdmin
}

// LearnProviders is the closed set of course providers accepted on a LEARN
// submission.
var LearnProviders = []string{"COURSERA", "UDEMY", "EDX", "YOUTUBE", "OTHER"}

var handleRegexp = regexp.MustCompile(`^[A-Za-z0-9_-]{3,30}$`)

// ErrInvalidHandle carries the exact text shown to users; callers rely on
// this message staying stable.
var ErrInvalidHandle = errors.New("handle must be 3-30 characters and contain only letters, numbers, underscores or hyphens")

// ValidateHandle accepts handles of length 3-30 built from ASCII letters,
// digits, underscore and hyphen. Case is accepted as-is.
func ValidateHandle(handle string) error {
	if !handleRegexp.MatchString(handle) {
		return ErrInvalidHandle
	}
	return nil
}

var ErrInvalidEmail = errors.New("email address is not valid")

func ValidateEmail(email string) error {
	if email == "" || strings.Contains(email, "..") {
		return ErrInvalidEmail
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return ErrInvalidEmail
	}
	return nil
}

var ErrInvalidURL = errors.New("url must be absolute and include a scheme")

// ValidateURL requires an absolute URL with a scheme and host; bare domains
// are rejected.
func ValidateURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return ErrInvalidURL
	}
	return nil
}
