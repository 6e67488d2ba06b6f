package model

import (
	"encoding/json"
	"fmt"
)

// APIPayload is the closed set of API-shape payload variants. The tag on the
// envelope decides which variant the data must satisfy.
type APIPayload interface {
	Activity() ActivityCode
}

type LearnAPIPayload struct {
	Provider       string  `json:"provider" validate:"required,oneof=COURSERA UDEMY EDX YOUTUBE OTHER"`
	CourseName     string  `json:"courseName" validate:"required,min=2"`
	CertificateURL *string `json:"certificateUrl,omitempty" validate:"omitempty,url"`
	CompletedAt    string  `json:"completedAt" validate:"required"`
}

func (*LearnAPIPayload) Activity() ActivityCode { return ActivityLearn }

type ExploreAPIPayload struct {
	// Reflection must be substantial; the 150-character floor is an
	// anti-gaming guard, not a formatting rule.
	Reflection    string   `json:"reflection" validate:"required,min=150"`
	ClassDate     string   `json:"classDate" validate:"required"`
	SchoolName    *string  `json:"schoolName,omitempty"`
	EvidenceFiles []string `json:"evidenceFiles,omitempty"`
}

func (*ExploreAPIPayload) Activity() ActivityCode { return ActivityExplore }

type AmplifyAPIPayload struct {
	PeersTrained         *int     `json:"peersTrained" validate:"required,gte=0,lte=50"`
	StudentsTrained      *int     `json:"studentsTrained" validate:"required,gte=0,lte=200"`
	AttendanceProofFiles []string `json:"attendanceProofFiles,omitempty"`
	SessionDate          string   `json:"sessionDate" validate:"required"`
	SessionStartTime     *string  `json:"sessionStartTime,omitempty"`
	DurationMinutes      *int     `json:"durationMinutes,omitempty" validate:"omitempty,gte=0"`
	Location             *string  `json:"location,omitempty"`
	SessionTitle         *string  `json:"sessionTitle,omitempty"`
	CoFacilitators       []string `json:"coFacilitators,omitempty"`
	Notes                *string  `json:"notes,omitempty"`
}

func (*AmplifyAPIPayload) Activity() ActivityCode { return ActivityAmplify }

type PresentAPIPayload struct {
	LinkedinURL   string  `json:"linkedinUrl" validate:"required,url"`
	ScreenshotURL *string `json:"screenshotUrl,omitempty" validate:"omitempty,url"`
	Caption       string  `json:"caption" validate:"required,min=10"`
}

func (*PresentAPIPayload) Activity() ActivityCode { return ActivityPresent }

type ShineAPIPayload struct {
	IdeaTitle   string   `json:"ideaTitle" validate:"required,min=4"`
	IdeaSummary string   `json:"ideaSummary" validate:"required,min=50"`
	Attachments []string `json:"attachments,omitempty"`
}

func (*ShineAPIPayload) Activity() ActivityCode { return ActivityShine }

// APIEnvelope ties an API-shape payload to the activity code that governs it.
type APIEnvelope struct {
	ActivityCode ActivityCode `json:"activityCode"`
	Data         APIPayload   `json:"data"`
}

// ParseAPIEnvelope validates an untyped request body against the API-shape
// schema selected by its activity code. It returns a *ValidationError for
// any malformed input: unknown code, missing or out-of-range fields, or
// field names in the storage convention.
func ParseAPIEnvelope(raw []byte) (*APIEnvelope, error) {
	var head envelopeHead
	if err := json.Unmarshal(raw, &head); err != nil {
		return nil, errValidation("request body is not a valid submission envelope")
	}
	code := ActivityCode(head.ActivityCode)
	if !code.Valid() {
		return nil, errValidation(fmt.Sprintf("no payload variant matches activityCode %q", head.ActivityCode))
	}
	data, err := ParseAPIPayload(code, head.Data)
	if err != nil {
		return nil, err
	}
	return &APIEnvelope{ActivityCode: code, Data: data}, nil
}

// ParseAPIPayload validates data against the API shape for code.
func ParseAPIPayload(code ActivityCode, data json.RawMessage) (APIPayload, error) {
	switch code {
	case ActivityLearn:
		return decodePayload[LearnAPIPayload](data)
	case ActivityExplore:
		return decodePayload[ExploreAPIPayload](data)
	case ActivityAmplify:
		return decodePayload[AmplifyAPIPayload](data)
	case ActivityPresent:
		return decodePayload[PresentAPIPayload](data)
	case ActivityShine:
		return decodePayload[ShineAPIPayload](data)
	}
	return nil, errValidation(fmt.Sprintf("no payload variant matches activityCode %q", code))
}
