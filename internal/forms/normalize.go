// Package forms turns a loosely-typed multipart form payload into the
// canonical submission record. Form-encoding clients differ in whether they
// suffix repeated-field names with "[]", so multi-value lookup tolerates both.
package forms

import (
	"net/url"
	"strings"

	"github.com/nimblelabs/inquiry-api/internal/models"
)

// Scalar returns the first value for key, trimmed, or "" when absent.
func Scalar(v url.Values, key string) string {
	if vs, ok := v[key]; ok && len(vs) > 0 {
		return strings.TrimSpace(vs[0])
	}
	return ""
}

// MultiValue resolves a repeated field by checking the bracketed key first
// ("key[]"), then the bare key. Absent yields nil; otherwise the values are
// returned in submission order.
func MultiValue(v url.Values, key string) []string {
	if vs, ok := v[key+"[]"]; ok {
		return vs
	}
	if vs, ok := v[key]; ok {
		return vs
	}
	return nil
}

// Normalize builds the canonical Submission from a raw form payload.
// Required-field presence is the caller's concern.
func Normalize(v url.Values) *models.Submission {
	return &models.Submission{
		FullName: Scalar(v, "full_name"),
		Email:    Scalar(v, "email"),
		Phone:    Scalar(v, "phone"),

		Company:        Scalar(v, "company"),
		BuildType:      Scalar(v, "build_type"),
		ProjectType:    Scalar(v, "project_type"),
		Industry:       Scalar(v, "industry"),
		Timeline:       Scalar(v, "timeline"),
		StartupStage:   Scalar(v, "startup_stage"),
		Budget:         Scalar(v, "budget"),
		Message:        Scalar(v, "message"),
		MVPValidation:  Scalar(v, "mvp_validation"),
		ReferralSource: Scalar(v, "referral_source"),

		PlatformRequired: MultiValue(v, "platform_required"),
		MVPPurpose:       MultiValue(v, "mvp_purpose"),
		DiscussionMode:   MultiValue(v, "discussion_mode"),
	}
}
