package post

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/soursync/core/internal/pkg/pagination"
	"github.com/soursync/core/internal/pkg/response"
	"gorm.io/gorm"
)

// Handler handles post HTTP requests.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

// RegisterRoutes mounts the public post routes.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	posts := rg.Group("/posts")
	posts.GET("", h.list)
	posts.GET("/:lang/:slug", h.get)
	posts.GET("/:lang/:slug/translations", h.translations)
}

// RegisterAdminRoutes mounts management routes; rg is already behind
// the auth middleware.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	posts := rg.Group("/posts")
	posts.GET("", h.adminList)
	posts.POST("", h.create)
	posts.GET("/:id", h.getByID)
	posts.PUT("/:id", h.update)
	posts.DELETE("/:id", h.delete)
}

// list GET /posts
func (h *Handler) list(c *gin.Context) {
	q := pagination.FromContext(c)

	var lq ListQuery
	if err := c.ShouldBindQuery(&lq); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	lq.Status = ""

	posts, pag, err := h.svc.List(q, lq, false)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Paged(c, posts, pag)
}

// get GET /posts/:lang/:slug
func (h *Handler) get(c *gin.Context) {
	post, err := h.svc.GetPublished(c.Param("slug"), c.Param("lang"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if post == nil {
		response.NotFoundMsg(c, "post not found")
		return
	}
	response.OK(c, post)
}

// translations GET /posts/:lang/:slug/translations
func (h *Handler) translations(c *gin.Context) {
	post, err := h.svc.GetPublished(c.Param("slug"), c.Param("lang"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if post == nil {
		response.NotFoundMsg(c, "post not found")
		return
	}

	variants, err := h.svc.Translations(post)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, variants)
}

// adminList GET /admin/posts
func (h *Handler) adminList(c *gin.Context) {
	q := pagination.FromContext(c)

	var lq ListQuery
	if err := c.ShouldBindQuery(&lq); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	posts, pag, err := h.svc.List(q, lq, true)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Paged(c, posts, pag)
}

// create POST /admin/posts
func (h *Handler) create(c *gin.Context) {
	var dto CreateDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	post, err := h.svc.Create(&dto)
	if errors.Is(err, ErrSlugConflict) {
		response.Conflict(c, err.Error())
		return
	}
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Created(c, post)
}

// getByID GET /admin/posts/:id
func (h *Handler) getByID(c *gin.Context) {
	post, err := h.svc.GetByID(c.Param("id"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if post == nil {
		response.NotFoundMsg(c, "post not found")
		return
	}
	response.OK(c, post)
}

// update PUT /admin/posts/:id
func (h *Handler) update(c *gin.Context) {
	var dto UpdateDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	post, err := h.svc.Update(c.Param("id"), &dto)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if post == nil {
		response.NotFoundMsg(c, "post not found")
		return
	}
	response.OK(c, post)
}

// delete DELETE /admin/posts/:id
func (h *Handler) delete(c *gin.Context) {
	err := h.svc.Delete(c.Param("id"))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		response.NotFoundMsg(c, "post not found")
		return
	}
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.NoContent(c)
}
