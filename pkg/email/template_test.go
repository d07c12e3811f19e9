package email

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var submittedAt = time.Date(2026, 3, 4, 15, 4, 5, 0, time.UTC)

func TestRenderDetailedEmail(t *testing.T) {
	t.Run("Should omit every optional line that is empty", func(t *testing.T) {
		subject, html, err := RenderContactEmail(ContactEmailData{
			InquiryPurpose: "Partnership",
			Email:          "a@b.com",
			PhoneNumber:    "3001234567",
			Message:        "Hello",
			SubmittedAt:    submittedAt,
		})
		require.NoError(t, err)

		assert.Equal(t, "New Contact Form Submission - Partnership", subject)
		assert.Contains(t, html, "<p><strong>Inquiry Purpose:</strong> Partnership</p>")
		assert.Contains(t, html, "<p><strong>Email:</strong> a@b.com</p>")
		assert.Contains(t, html, "+92 3001234567")
		assert.Contains(t, html, "<p>Hello</p>")
		assert.Contains(t, html, "Submitted at: 3/4/2026, 3:04:05 PM")

		for _, label := range []string{"Name:", "Company:", "Budget:", "Project Type:", "Description:"} {
			assert.NotContains(t, html, label)
		}
	})

	t.Run("Should prefer split names and company name", func(t *testing.T) {
		_, html, err := RenderContactEmail(ContactEmailData{
			InquiryPurpose: "Support",
			FirstName:      "Ada",
			LastName:       "Lovelace",
			FullName:       "Augusta Ada King",
			CompanyName:    "Analytical Engines",
			Organization:   "Royal Society",
			Budget:         "5000",
			ProjectType:    "Website",
			Description:    "Need help",
			SubmittedAt:    submittedAt,
		})
		require.NoError(t, err)

		assert.Contains(t, html, "<p><strong>Name:</strong> Ada Lovelace</p>")
		assert.NotContains(t, html, "Augusta Ada King")
		assert.Contains(t, html, "<p><strong>Company:</strong> Analytical Engines</p>")
		assert.NotContains(t, html, "Royal Society")
		assert.Contains(t, html, "<p><strong>Budget:</strong> 5000</p>")
		assert.Contains(t, html, "<p><strong>Project Type:</strong> Website</p>")
		assert.Contains(t, html, "<p><strong>Description:</strong> Need help</p>")
		assert.NotContains(t, html, "Phone Number:")
		assert.NotContains(t, html, "Message:")
	})

	t.Run("Should fall back to full name and organization", func(t *testing.T) {
		_, html, err := RenderContactEmail(ContactEmailData{
			InquiryPurpose: "Support",
			FirstName:      "Ada",
			FullName:       "Ada Lovelace",
			Organization:   "Royal Society",
			SubmittedAt:    submittedAt,
		})
		require.NoError(t, err)

		assert.Contains(t, html, "<p><strong>Name:</strong> Ada Lovelace</p>")
		assert.Contains(t, html, "<p><strong>Company:</strong> Royal Society</p>")
	})

	t.Run("Should escape submitted markup", func(t *testing.T) {
		_, html, err := RenderContactEmail(ContactEmailData{
			InquiryPurpose: "Support",
			Message:        "<script>alert(1)</script>",
			SubmittedAt:    submittedAt,
		})
		require.NoError(t, err)
		assert.NotContains(t, html, "<script>")
		assert.Contains(t, html, "&lt;script&gt;")
	})
}

func TestRenderBasicEmail(t *testing.T) {
	t.Run("Should use the project type as subject", func(t *testing.T) {
		subject, html, err := RenderContactEmail(ContactEmailData{
			FirstName:   "Ada",
			LastName:    "Lovelace",
			Email:       "ada@example.com",
			PhoneNumber: "3001234567",
			CompanyName: "Analytical Engines",
			Budget:      "5000",
			ProjectType: "Website",
			Message:     "Hi",
			SubmittedAt: submittedAt,
		})
		require.NoError(t, err)

		assert.Equal(t, "New Contact Form Submission - Website", subject)
		assert.Contains(t, html, "<p><strong>Name:</strong> Ada Lovelace</p>")
		assert.Contains(t, html, "<p><strong>Phone:</strong> +92 3001234567</p>")
		assert.Contains(t, html, "<p><strong>Company:</strong> Analytical Engines</p>")
		assert.Contains(t, html, "<p><strong>Budget:</strong> 5000</p>")
		assert.NotContains(t, html, "Inquiry Purpose:")
	})

	t.Run("Should default the subject and still render every line", func(t *testing.T) {
		subject, html, err := RenderContactEmail(ContactEmailData{
			Email:       "ada@example.com",
			SubmittedAt: submittedAt,
		})
		require.NoError(t, err)

		assert.Equal(t, "New Contact Form Submission - General Inquiry", subject)
		for _, label := range []string{"Name:", "Email:", "Phone:", "Company:", "Budget:", "Project Type:", "Message:"} {
			assert.Contains(t, html, label)
		}
		assert.NotContains(t, html, "undefined")
	})
}
