package api

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/louvor-app/worship-planner/internal/models"
	"github.com/louvor-app/worship-planner/internal/service"
)

// Handler holds the API handlers
type Handler struct {
	svc service.Service
}

// NewHandler creates a new API handler
func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

// SetupRoutes registers one route group per page area.
func (h *Handler) SetupRoutes(router *gin.Engine) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	{
		api.GET("/dashboard", h.GetDashboard)
		api.GET("/header", h.GetHeader)

		api.GET("/songs", h.ListSongs)
		api.POST("/songs", h.CreateSong)
		api.PATCH("/songs/:id", h.UpdateSong)
		api.DELETE("/songs/:id", h.DeleteSong)

		api.GET("/services", h.ListServices)
		api.POST("/services", h.CreateService)
		api.PATCH("/services/:id", h.UpdateService)
		api.DELETE("/services/:id", h.DeleteService)

		// Team members cannot be deleted: rehearsal attendee lists and
		// service team assignments keep referencing them.
		api.GET("/team", h.ListTeam)
		api.POST("/team", h.CreateUser)
		api.PATCH("/team/:id", h.UpdateUser)

		api.GET("/rehearsals", h.ListRehearsals)
		api.POST("/rehearsals", h.CreateRehearsal)
		api.PATCH("/rehearsals/:id", h.UpdateRehearsal)
		api.DELETE("/rehearsals/:id", h.DeleteRehearsal)

		api.GET("/notifications", h.ListNotifications)
		api.POST("/notifications", h.CreateNotification)
		api.POST("/notifications/:id/read", h.MarkNotificationRead)

		api.GET("/reports", h.GetReports)
		api.GET("/media", h.ListMedia)

		api.GET("/settings/current-user", h.GetCurrentUser)
		api.PUT("/settings/current-user", h.UpdateCurrentUser)
	}
}

func (h *Handler) GetDashboard(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Dashboard(time.Now()))
}

func (h *Handler) GetHeader(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Header())
}

func (h *Handler) ListSongs(c *gin.Context) {
	songs := h.svc.ListSongs(c.Query("search"), c.Query("category"))
	c.JSON(http.StatusOK, songs)
}

func (h *Handler) CreateSong(c *gin.Context) {
	var req models.CreateSongRequest
	if !h.bind(c, &req) {
		return
	}
	c.JSON(http.StatusCreated, h.svc.CreateSong(req))
}

func (h *Handler) UpdateSong(c *gin.Context) {
	var patch models.SongPatch
	if !h.bindPatch(c, &patch) {
		return
	}
	h.svc.UpdateSong(c.Param("id"), patch)
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

func (h *Handler) DeleteSong(c *gin.Context) {
	h.svc.DeleteSong(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

func (h *Handler) ListServices(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.ListServices())
}

func (h *Handler) CreateService(c *gin.Context) {
	var req models.CreateServiceRequest
	if !h.bind(c, &req) {
		return
	}
	c.JSON(http.StatusCreated, h.svc.CreateService(req))
}

func (h *Handler) UpdateService(c *gin.Context) {
	var patch models.ServicePatch
	if !h.bindPatch(c, &patch) {
		return
	}
	h.svc.UpdateService(c.Param("id"), patch)
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

func (h *Handler) DeleteService(c *gin.Context) {
	h.svc.DeleteService(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

func (h *Handler) ListTeam(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.ListTeam())
}

func (h *Handler) CreateUser(c *gin.Context) {
	var req models.CreateUserRequest
	if !h.bind(c, &req) {
		return
	}
	c.JSON(http.StatusCreated, h.svc.CreateUser(req))
}

func (h *Handler) UpdateUser(c *gin.Context) {
	var patch models.UserPatch
	if !h.bindPatch(c, &patch) {
		return
	}
	h.svc.UpdateUser(c.Param("id"), patch)
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

func (h *Handler) ListRehearsals(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.ListRehearsals())
}

func (h *Handler) CreateRehearsal(c *gin.Context) {
	var req models.CreateRehearsalRequest
	if !h.bind(c, &req) {
		return
	}
	c.JSON(http.StatusCreated, h.svc.CreateRehearsal(req))
}

func (h *Handler) UpdateRehearsal(c *gin.Context) {
	var patch models.RehearsalPatch
	if !h.bindPatch(c, &patch) {
		return
	}
	h.svc.UpdateRehearsal(c.Param("id"), patch)
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

func (h *Handler) DeleteRehearsal(c *gin.Context) {
	h.svc.DeleteRehearsal(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

// ListNotifications returns the notifications addressed to the user named by
// the userId query parameter, defaulting to the current user.
func (h *Handler) ListNotifications(c *gin.Context) {
	userID := c.Query("userId")
	if userID == "" {
		if current := h.svc.CurrentUser(); current != nil {
			userID = current.ID
		}
	}
	c.JSON(http.StatusOK, h.svc.NotificationsFor(userID))
}

func (h *Handler) CreateNotification(c *gin.Context) {
	var req models.CreateNotificationRequest
	if !h.bind(c, &req) {
		return
	}
	c.JSON(http.StatusCreated, h.svc.CreateNotification(req))
}

func (h *Handler) MarkNotificationRead(c *gin.Context) {
	h.svc.MarkNotificationRead(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

func (h *Handler) GetReports(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Reports())
}

func (h *Handler) ListMedia(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.ListMedia(c.Query("category")))
}

func (h *Handler) GetCurrentUser(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"currentUser": h.svc.CurrentUser()})
}

func (h *Handler) UpdateCurrentUser(c *gin.Context) {
	var patch models.UserPatch
	if !h.bindPatch(c, &patch) {
		return
	}
	c.JSON(http.StatusOK, gin.H{"currentUser": h.svc.UpdateCurrentUser(patch)})
}

// bind decodes the JSON body into target and writes a 400 on failure.
func (h *Handler) bind(c *gin.Context, target interface{}) bool {
	if err := c.ShouldBindJSON(target); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Status:  "error",
			Code:    "INVALID_REQUEST",
			Message: err.Error(),
		})
		return false
	}
	return true
}

// bindPatch decodes an optional JSON body into a patch struct. An empty body
// is a valid empty patch, which the update contract treats as a no-op.
func (h *Handler) bindPatch(c *gin.Context, target interface{}) bool {
	err := c.ShouldBindJSON(target)
	if err == nil || errors.Is(err, io.EOF) {
		return true
	}
	c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Status:  "error",
		Code:    "INVALID_REQUEST",
		Message: err.Error(),
	})
	return false
}
