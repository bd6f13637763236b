package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Submission is one contact-form record. It is inserted once and never
// mutated or deleted.
type Submission struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CreatedAt string             `bson:"created_at" json:"created_at"` // RFC 3339, UTC

	FullName string `bson:"full_name" json:"full_name"`
	Email    string `bson:"email" json:"email"`
	Phone    string `bson:"phone" json:"phone"`

	Company        string `bson:"company" json:"company"`
	BuildType      string `bson:"build_type" json:"build_type"`
	ProjectType    string `bson:"project_type" json:"project_type"`
	Industry       string `bson:"industry" json:"industry"`
	Timeline       string `bson:"timeline" json:"timeline"`
	StartupStage   string `bson:"startup_stage" json:"startup_stage"`
	Budget         string `bson:"budget" json:"budget"`
	Message        string `bson:"message" json:"message"`
	MVPValidation  string `bson:"mvp_validation" json:"mvp_validation"`
	ReferralSource string `bson:"referral_source" json:"referral_source"`

	// Order preserved as submitted.
	PlatformRequired []string `bson:"platform_required" json:"platform_required"`
	MVPPurpose       []string `bson:"mvp_purpose" json:"mvp_purpose"`
	DiscussionMode   []string `bson:"discussion_mode" json:"discussion_mode"`

	Attachments []Attachment `bson:"attachments" json:"attachments"`
}

// Attachment is one uploaded file's stored metadata, owned by its Submission.
type Attachment struct {
	OriginalName string `bson:"originalname" json:"originalname"` // client-supplied, untrusted
	FileName     string `bson:"filename" json:"filename"`         // server-generated, unique
	Path         string `bson:"path" json:"path"`
	MimeType     string `bson:"mimetype" json:"mimetype"`
	Size         int64  `bson:"size" json:"size"`
}

// HasRequired reports whether the required scalar fields are all non-empty.
func (s *Submission) HasRequired() bool {
	return s.FullName != "" && s.Email != "" && s.Phone != ""
}
