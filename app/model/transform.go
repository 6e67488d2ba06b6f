package model

import (
	"errors"
	"fmt"
)

// ErrUnknownActivityCode marks a contract violation: a payload reached a
// dispatcher without passing validation first, or the schema and transform
// layers have drifted apart. It is never returned for ordinary bad input.
var ErrUnknownActivityCode = errors.New("unrecognized activity code")

// The per-activity transforms are pure field renames. Every field maps to
// exactly one field on the other side; absent optionals stay absent and
// slices keep their nil/empty distinction, so a round-trip reproduces the
// original value exactly.

func LearnToStorage(p *LearnAPIPayload) *LearnStoragePayload {
	return &LearnStoragePayload{
		Provider:       p.Provider,
		CourseName:     p.CourseName,
		CertificateURL: p.CertificateURL,
		CompletedAt:    p.CompletedAt,
	}
}

func LearnToAPI(p *LearnStoragePayload) *LearnAPIPayload {
	return &LearnAPIPayload{
		Provider:       p.Provider,
		CourseName:     p.CourseName,
		CertificateURL: p.CertificateURL,
		CompletedAt:    p.CompletedAt,
	}
}

func ExploreToStorage(p *ExploreAPIPayload) *ExploreStoragePayload {
	return &ExploreStoragePayload{
		Reflection:    p.Reflection,
		ClassDate:     p.ClassDate,
		SchoolName:    p.SchoolName,
		EvidenceFiles: p.EvidenceFiles,
	}
}

func ExploreToAPI(p *ExploreStoragePayload) *ExploreAPIPayload {
	return &ExploreAPIPayload{
		Reflection:    p.Reflection,
		ClassDate:     p.ClassDate,
		SchoolName:    p.SchoolName,
		EvidenceFiles: p.EvidenceFiles,
	}
}

func AmplifyToStorage(p *AmplifyAPIPayload) *AmplifyStoragePayload {
	return &AmplifyStoragePayload{
		PeersTrained:         p.PeersTrained,
		StudentsTrained:      p.StudentsTrained,
		AttendanceProofFiles: p.AttendanceProofFiles,
		SessionDate:          p.SessionDate,
		SessionStartTime:     p.SessionStartTime,
		DurationMinutes:      p.DurationMinutes,
		Location:             p.Location,
		SessionTitle:         p.SessionTitle,
		CoFacilitators:       p.CoFacilitators,
		Notes:                p.Notes,
	}
}

func AmplifyToAPI(p *AmplifyStoragePayload) *AmplifyAPIPayload {
	return &AmplifyAPIPayload{
		PeersTrained:         p.PeersTrained,
		StudentsTrained:      p.StudentsTrained,
		AttendanceProofFiles: p.AttendanceProofFiles,
		SessionDate:          p.SessionDate,
		SessionStartTime:     p.SessionStartTime,
		DurationMinutes:      p.DurationMinutes,
		Location:             p.Location,
		SessionTitle:         p.SessionTitle,
		CoFacilitators:       p.CoFacilitators,
		Notes:                p.Notes,
	}
}

func PresentToStorage(p *PresentAPIPayload) *PresentStoragePayload {
	return &PresentStoragePayload{
		LinkedinURL:   p.LinkedinURL,
		ScreenshotURL: p.ScreenshotURL,
		Caption:       p.Caption,
	}
}

func PresentToAPI(p *PresentStoragePayload) *PresentAPIPayload {
	return &PresentAPIPayload{
		LinkedinURL:   p.LinkedinURL,
		ScreenshotURL: p.ScreenshotURL,
		Caption:       p.Caption,
	}
}

func ShineToStorage(p *ShineAPIPayload) *ShineStoragePayload {
	return &ShineStoragePayload{
		IdeaTitle:   p.IdeaTitle,
		IdeaSummary: p.IdeaSummary,
		Attachments: p.Attachments,
	}
}

func ShineToAPI(p *ShineStoragePayload) *ShineAPIPayload {
	return &ShineAPIPayload{
		IdeaTitle:   p.IdeaTitle,
		IdeaSummary: p.IdeaSummary,
		Attachments: p.Attachments,
	}
}

// ToStorageEnvelope routes a validated API envelope to the matching
// transform. A variant outside the five known payloads fails hard; data
// must never pass through the naming boundary unrecognized.
func ToStorageEnvelope(env *APIEnvelope) (*StorageEnvelope, error) {
	switch p := env.Data.(type) {
	case *LearnAPIPayload:
		return &StorageEnvelope{ActivityCode: ActivityLearn, Data: LearnToStorage(p)}, nil
	case *ExploreAPIPayload:
		return &StorageEnvelope{ActivityCode: ActivityExplore, Data: ExploreToStorage(p)}, nil
	case *AmplifyAPIPayload:
		return &StorageEnvelope{ActivityCode: ActivityAmplify, Data: AmplifyToStorage(p)}, nil
	case *PresentAPIPayload:
		return &StorageEnvelope{ActivityCode: ActivityPresent, Data: PresentToStorage(p)}, nil
	case *ShineAPIPayload:
		return &StorageEnvelope{ActivityCode: ActivityShine, Data: ShineToStorage(p)}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownActivityCode, env.ActivityCode)
}

// ToAPIEnvelope is the reverse direction, storage shape to API shape.
func ToAPIEnvelope(env *StorageEnvelope) (*APIEnvelope, error) {
	switch p := env.Data.(type) {
	case *LearnStoragePayload:
		return &APIEnvelope{ActivityCode: ActivityLearn, Data: LearnToAPI(p)}, nil
	case *ExploreStoragePayload:
		return &APIEnvelope{ActivityCode: ActivityExplore, Data: ExploreToAPI(p)}, nil
	case *AmplifyStoragePayload:
		return &APIEnvelope{ActivityCode: ActivityAmplify, Data: AmplifyToAPI(p)}, nil
	case *PresentStoragePayload:
		return &APIEnvelope{ActivityCode: ActivityPresent, Data: PresentToAPI(p)}, nil
	case *ShineStoragePayload:
		return &APIEnvelope{ActivityCode: ActivityShine, Data: ShineToAPI(p)}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownActivityCode, env.ActivityCode)
}
