package v1

import (
	"contact-mailer-backend/internal/delivery/http/response"
	"contact-mailer-backend/internal/domain"
	"contact-mailer-backend/pkg/apperror"
	"contact-mailer-backend/pkg/email"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	contactUC domain.ContactUsecase
}

// NewContactHandler registers the contact routes (public, no auth required)
func NewContactHandler(public *gin.RouterGroup, contactUC domain.ContactUsecase) {
	handler := &ContactHandler{
		contactUC: contactUC,
	}

	public.POST("/contact", handler.SubmitContact)
}

// SubmitContact godoc
// @Summary      Submit Contact Form
// @Description  Relays a contact form submission to the site inbox by email. The detailed template is used when inquiryPurpose is set.
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        contact  body      domain.Submission  true  "Contact Form Data"
// @Success      200      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /contact [post]
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	var sub domain.Submission
	if err := c.ShouldBindJSON(&sub); err != nil {
		c.Error(apperror.Internal(email.ClassifyError(err), err).WithDetail())
		return
	}

	messageID, err := h.contactUC.SendContactMessage(c.Request.Context(), &sub)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Email sent successfully", messageID)
}
