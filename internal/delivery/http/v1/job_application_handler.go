package v1

import (
	"aluxim-mail-relay/internal/delivery/http/response"
	"aluxim-mail-relay/internal/domain"
	"aluxim-mail-relay/pkg/apperror"
	"net/http"

	"github.com/gin-gonic/gin"
)

type JobApplicationHandler struct {
	applicationUC domain.ApplicationUsecase
}

// NewJobApplicationHandler registers the careers page route
func NewJobApplicationHandler(r gin.IRoutes, applicationUC domain.ApplicationUsecase) {
	handler := &JobApplicationHandler{applicationUC: applicationUC}

	r.POST("/apply-job", handler.ApplyJob)
}

// ApplyJob godoc
// @Summary      Submit Job Application
// @Description  Notify the admin inbox, then send the applicant an acknowledgment.
// @Description  Either send failing yields 500, even when the admin copy already went out.
// @Tags         careers
// @Accept       json
// @Produce      json
// @Param        application  body      domain.JobApplication  true  "Job Application Data"
// @Success      200          {object}  response.Response
// @Failure      400          {object}  response.Response
// @Failure      500          {object}  response.Response
// @Router       /apply-job [post]
func (h *JobApplicationHandler) ApplyJob(c *gin.Context) {
	var req domain.JobApplication
	if err := bindJSON(c, &req); err != nil {
		c.Error(apperror.BadRequest(MsgInvalidBody))
		return
	}

	if err := h.applicationUC.SubmitApplication(c.Request.Context(), &req); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK)
}
