package handlers

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"github.com/nimblelabs/inquiry-api/internal/forms"
	"github.com/nimblelabs/inquiry-api/internal/models"
	"github.com/nimblelabs/inquiry-api/internal/services"
	"github.com/nimblelabs/inquiry-api/internal/storage"
	"github.com/nimblelabs/inquiry-api/internal/utils"
)

type ContactHandler struct {
	svc   services.SubmissionService
	store storage.Store
}

func NewContactHandler(svc services.SubmissionService, store storage.Store) *ContactHandler {
	return &ContactHandler{svc: svc, store: store}
}

// Create handles POST /api/contact: save file parts, normalize fields,
// then hand the canonical record to the submission service.
func (h *ContactHandler) Create(c *gin.Context) {
	const op = "ContactHandler.Create"

	form, err := c.MultipartForm()
	if err != nil {
		writeError(c, utils.E(utils.CodeInternal, op, "failed to parse multipart form", err))
		return
	}

	files := form.File["attachments"]
	if len(files) > storage.MaxAttachments {
		writeError(c, utils.E(utils.CodeInternal, op, "too many attachments (max 5)", nil))
		return
	}

	var attachments []models.Attachment
	for _, fh := range files {
		att, err := h.store.Save(c.Request.Context(), fh)
		if err != nil {
			writeError(c, err)
			return
		}
		attachments = append(attachments, att)
	}

	sub := forms.Normalize(url.Values(form.Value))
	sub.Attachments = attachments

	if err := h.svc.Submit(c.Request.Context(), sub); err != nil {
		writeError(c, err)
		return
	}

	c.String(http.StatusOK, "OK")
}
