package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"job_portal/internal/model"
	"job_portal/internal/service"
)

// JobHandler handles the public job surface and the admin company CRUD
type JobHandler struct {
	service service.JobService
	logger  *zap.Logger
}

// NewJobHandler creates a new JobHandler
func NewJobHandler(s service.JobService, logger *zap.Logger) *JobHandler {
	return &JobHandler{service: s, logger: logger}
}

// ListJobs returns every posting for the public listing page
func (h *JobHandler) ListJobs(c *gin.Context) {
	jobs, err := h.service.ListJobs(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to list jobs", zap.Error(err))
		sendError(c, http.StatusInternalServerError, "Lỗi database")
		return
	}
	c.JSON(http.StatusOK, jobs)
}

func (h *JobHandler) Apply(c *gin.Context) {
	var req model.ApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Thiếu user_id hoặc job_id")
		return
	}
	if req.UserID == 0 || req.JobID == 0 {
		sendError(c, http.StatusBadRequest, "Thiếu user_id hoặc job_id")
		return
	}

	if _, err := h.service.Apply(c.Request.Context(), req); err != nil {
		if errors.Is(err, service.ErrAlreadyApplied) {
			sendError(c, http.StatusBadRequest, "Bạn đã ứng tuyển công ty này rồi!")
			return
		}
		h.logger.Error("failed to submit application",
			zap.Int("user_id", req.UserID),
			zap.Int("job_id", req.JobID),
			zap.Error(err),
		)
		sendError(c, http.StatusInternalServerError, "Lỗi server")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Ứng tuyển thành công!"})
}

// GetUserApplications lists the user's applications, most recent first
func (h *JobHandler) GetUserApplications(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("userId"))
	if err != nil {
		sendError(c, http.StatusBadRequest, "userId không hợp lệ")
		return
	}

	apps, err := h.service.ListUserApplications(c.Request.Context(), userID)
	if err != nil {
		h.logger.Error("failed to list user applications", zap.Int("user_id", userID), zap.Error(err))
		sendError(c, http.StatusInternalServerError, "Lỗi server khi lấy danh sách ứng tuyển")
		return
	}
	c.JSON(http.StatusOK, apps)
}

// --- Admin routes ---

func (h *JobHandler) ListCompaniesAdmin(c *gin.Context) {
	companies, err := h.service.ListCompaniesAdmin(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to list companies", zap.Error(err))
		sendError(c, http.StatusInternalServerError, "Lỗi database")
		return
	}
	c.JSON(http.StatusOK, companies)
}

func (h *JobHandler) CreateCompany(c *gin.Context) {
	var req model.CompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Dữ liệu không hợp lệ")
		return
	}

	company, err := h.service.CreateCompany(c.Request.Context(), req)
	if err != nil {
		h.logger.Error("failed to create company", zap.Error(err))
		sendError(c, http.StatusInternalServerError, "Insert failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "id": company.ID})
}

func (h *JobHandler) UpdateCompany(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		sendError(c, http.StatusBadRequest, "id không hợp lệ")
		return
	}

	var req model.CompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Dữ liệu không hợp lệ")
		return
	}

	if err := h.service.UpdateCompany(c.Request.Context(), id, req); err != nil {
		h.logger.Error("failed to update company", zap.Int("id", id), zap.Error(err))
		sendError(c, http.StatusInternalServerError, "Update failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *JobHandler) DeleteCompany(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		sendError(c, http.StatusBadRequest, "id không hợp lệ")
		return
	}

	if err := h.service.DeleteCompany(c.Request.Context(), id); err != nil {
		h.logger.Error("failed to delete company", zap.Int("id", id), zap.Error(err))
		sendError(c, http.StatusInternalServerError, "Delete failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// RegisterJobRoutes registers the public job routes and the guarded
// admin company routes.
func (h *JobHandler) RegisterJobRoutes(rg *gin.RouterGroup, sessionMW gin.HandlerFunc, adminMW gin.HandlerFunc) {
	rg.GET("/jobs", h.ListJobs)
	rg.POST("/apply", h.Apply)
	rg.GET("/user/:userId/applications", h.GetUserApplications)

	adminRoutes := rg.Group("/admin")
	adminRoutes.Use(sessionMW)
	adminRoutes.Use(adminMW)
	{
		adminRoutes.GET("/companies", h.ListCompaniesAdmin)
		adminRoutes.POST("/companies", h.CreateCompany)
		adminRoutes.PUT("/companies/:id", h.UpdateCompany)
		adminRoutes.DELETE("/companies/:id", h.DeleteCompany)
	}
}
