package model

import (
	"encoding/json"
	"fmt"
)

// Storage-shape twins of the API payloads. These are deliberately separate
// types with their own schema rather than a rename pass over the API shape:
// cross-convention rejection falls out of having two independent schemas.
// The bson tags match the snake_case keys the payload documents are stored
// under.

type StoragePayload interface {
	Activity() ActivityCode
}

type LearnStoragePayload struct {
	Provider       string  `json:"provider" bson:"provider" validate:"required,oneof=COURSERA UDEMY EDX YOUTUBE OTHER"`
	CourseName     string  `json:"course_name" bson:"course_name" validate:"required,min=2"`
	CertificateURL *string `json:"certificate_url,omitempty" bson:"certificate_url,omitempty" validate:"omitempty,url"`
	CompletedAt    string  `json:"completed_at" bson:"completed_at" validate:"required"`
}

func (*LearnStoragePayload) Activity() ActivityCode { return ActivityLearn }

type ExploreStoragePayload struct {
	Reflection    string   `json:"reflection" bson:"reflection" validate:"required,min=150"`
	ClassDate     string   `json:"class_date" bson:"class_date" validate:"required"`
	SchoolName    *string  `json:"school_name,omitempty" bson:"school_name,omitempty"`
	EvidenceFiles []string `json:"evidence_files,omitempty" bson:"evidence_files,omitempty"`
}

func (*ExploreStoragePayload) Activity() ActivityCode { return ActivityExplore }

type AmplifyStoragePayload struct {
	PeersTrained         *int     `json:"peers_trained" bson:"peers_trained" validate:"required,gte=0,lte=50"`
	StudentsTrained      *int     `json:"students_trained" bson:"students_trained" validate:"required,gte=0,lte=200"`
	AttendanceProofFiles []string `json:"attendance_proof_files,omitempty" bson:"attendance_proof_files,omitempty"`
	SessionDate          string   `json:"session_date" bson:"session_date" validate:"required"`
	SessionStartTime     *string  `json:"session_start_time,omitempty" bson:"session_start_time,omitempty"`
	DurationMinutes      *int     `json:"duration_minutes,omitempty" bson:"duration_minutes,omitempty" validate:"omitempty,gte=0"`
	Location             *string  `json:"location,omitempty" bson:"location,omitempty"`
	SessionTitle         *string  `json:"session_title,omitempty" bson:"session_title,omitempty"`
	CoFacilitators       []string `json:"co_facilitators,omitempty" bson:"co_facilitators,omitempty"`
	Notes                *string  `json:"notes,omitempty" bson:"notes,omitempty"`
}

func (*AmplifyStoragePayload) Activity() ActivityCode { return ActivityAmplify }

type PresentStoragePayload struct {
	LinkedinURL   string  `json:"linkedin_url" bson:"linkedin_url" validate:"required,url"`
	ScreenshotURL *string `json:"screenshot_url,omitempty" bson:"screenshot_url,omitempty" validate:"omitempty,url"`
	Caption       string  `json:"caption" bson:"caption" validate:"required,min=10"`
}

func (*PresentStoragePayload) Activity() ActivityCode { return ActivityPresent }

type ShineStoragePayload struct {
	IdeaTitle   string   `json:"idea_title" bson:"idea_title" validate:"required,min=4"`
	IdeaSummary string   `json:"idea_summary" bson:"idea_summary" validate:"required,min=50"`
	Attachments []string `json:"attachments,omitempty" bson:"attachments,omitempty"`
}

func (*ShineStoragePayload) Activity() ActivityCode { return ActivityShine }

// StorageEnvelope ties a storage-shape payload to its activity code. The
// discriminator key stays activityCode on both envelopes; it is routing
// metadata, not a payload field.
type StorageEnvelope struct {
	ActivityCode ActivityCode   `json:"activityCode"`
	Data         StoragePayload `json:"data"`
}

// ParseStorageEnvelope validates an untyped envelope against the
// storage-shape schema selected by its activity code. API-convention field
// names inside data are rejected the same way storage names are rejected by
// the API-shape parser.
func ParseStorageEnvelope(raw []byte) (*StorageEnvelope, error) {
	var head envelopeHead
	if err := json.Unmarshal(raw, &head); err != nil {
		return nil, errValidation("envelope is not a valid submission envelope")
	}
	code := ActivityCode(head.ActivityCode)
	if !code.Valid() {
		return nil, errValidation(fmt.Sprintf("no payload variant matches activityCode %q", head.ActivityCode))
	}
	data, err := ParseStoragePayload(code, head.Data)
	if err != nil {
		return nil, err
	}
	return &StorageEnvelope{ActivityCode: code, Data: data}, nil
}

// ParseStoragePayload validates data against the storage shape for code.
func ParseStoragePayload(code ActivityCode, data json.RawMessage) (StoragePayload, error) {
	switch code {
	case ActivityLearn:
		return decodePayload[LearnStoragePayload](data)
	case ActivityExplore:
		return decodePayload[ExploreStoragePayload](data)
	case ActivityAmplify:
		return decodePayload[AmplifyStoragePayload](data)
	case ActivityPresent:
		return decodePayload[PresentStoragePayload](data)
	case ActivityShine:
		return decodePayload[ShineStoragePayload](data)
	}
	return nil, errValidation(fmt.Sprintf("no payload variant matches activityCode %q", code))
}
