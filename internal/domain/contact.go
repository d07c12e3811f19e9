package domain

import (
	"bytes"
	"context"
	"encoding/json"
)

// Submission represents a contact form submission.
// Two frontends post to the same endpoint: the contact page sends inquiryPurpose,
// the contact-form component sends projectType and split names.
type Submission struct {
	InquiryPurpose Text `json:"inquiryPurpose"`
	Description    Text `json:"description"`
	FullName       Text `json:"fullName"`
	Email          Text `json:"email"`
	Organization   Text `json:"organization"`
	PhoneNumber    Text `json:"phoneNumber"`
	Message        Text `json:"message"`
	FirstName      Text `json:"firstName"`
	LastName       Text `json:"lastName"`
	Budget         Text `json:"budget"`
	CompanyName    Text `json:"companyName"`
	ProjectType    Text `json:"projectType"`
}

// Detailed reports whether the submission came from the contact page form.
func (s *Submission) Detailed() bool {
	return s.InquiryPurpose.Present()
}

// Text is a form field that accepts any JSON scalar.
// false, null and 0 decode to the empty string so Present mirrors form truthiness.
type Text string

func (t *Text) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0, bytes.Equal(data, []byte("null")), bytes.Equal(data, []byte("false")):
		*t = ""
	case data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = Text(s)
	case data[0] == '{' || data[0] == '[':
		*t = Text(data)
	default:
		// true or a number
		var n json.Number
		if err := json.Unmarshal(data, &n); err == nil {
			if f, err := n.Float64(); err == nil && f == 0 {
				*t = ""
				return nil
			}
		}
		*t = Text(data)
	}
	return nil
}

// Present reports whether the field carries a value.
func (t Text) Present() bool {
	return t != ""
}

func (t Text) String() string {
	return string(t)
}

// ContactUsecase defines the interface for contact form operations
type ContactUsecase interface {
	// SendContactMessage relays the submission by email and returns the transport message ID
	SendContactMessage(ctx context.Context, sub *Submission) (string, error)
}
