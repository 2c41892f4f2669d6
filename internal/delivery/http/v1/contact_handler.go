package v1

import (
	"aluxim-mail-relay/internal/delivery/http/response"
	"aluxim-mail-relay/internal/domain"
	"aluxim-mail-relay/pkg/apperror"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	contactUC domain.ContactUsecase
}

// NewContactHandler registers the contact routes (public, no auth required)
func NewContactHandler(r gin.IRoutes, contactUC domain.ContactUsecase) {
	handler := &ContactHandler{
		contactUC: contactUC,
	}

	r.POST("/send-email", handler.SendEmail)
}

// SendEmail godoc
// @Summary      Submit Contact Form
// @Description  Forward a contact form submission to the admin inbox. Public endpoint.
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        contact  body      domain.ContactMessage  true  "Contact Form Data"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /send-email [post]
func (h *ContactHandler) SendEmail(c *gin.Context) {
	var req domain.ContactMessage
	if err := bindJSON(c, &req); err != nil {
		c.Error(apperror.BadRequest(MsgInvalidBody))
		return
	}

	if err := h.contactUC.SendContactMessage(c.Request.Context(), &req); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK)
}
