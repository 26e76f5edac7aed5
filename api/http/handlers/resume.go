package handlers

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/hr360/assistant/api/http/presenter"
	"github.com/hr360/assistant/pkg/assistant"
	"github.com/hr360/assistant/pkg/resume"
)

type ResumeHandler struct {
	svc  assistant.Service
	repo resume.Repository
	// Limit uploaded file size read into memory (bytes)
	maxBytes int64
}

func NewResumeHandler(svc assistant.Service, repo resume.Repository) *ResumeHandler {
	return &ResumeHandler{svc: svc, repo: repo, maxBytes: 15 << 20} // 15MB
}

// Analyze accepts a resume file (PDF, DOCX or TXT) with an optional job
// description, extracts the text and returns the structured analysis.
func (h *ResumeHandler) Analyze(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil || fh == nil {
		return presenter.Error(c, http.StatusBadRequest, "file is required (pdf, docx or txt)")
	}
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if ext != ".pdf" && ext != ".docx" && ext != ".txt" {
		return presenter.Error(c, http.StatusBadRequest, "unsupported file format: only pdf, docx and txt are allowed")
	}
	file, err := fh.Open()
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "failed to open uploaded file")
	}
	defer file.Close()

	data, err := readAtMost(file, h.maxBytes)
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	}
	text, err := resume.ParseResumeText(fh.Filename, data)
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, fmt.Sprintf("failed to read resume: %v", err))
	}
	if len(text) == 0 {
		return presenter.Error(c, http.StatusBadRequest, "empty resume content")
	}

	jobDescription := strings.TrimSpace(c.FormValue("jobDescription"))
	analysis := h.svc.AnalyzeResume(c.Context(), text, jobDescription)

	screening := resume.Screening{
		ID:        uuid.New(),
		OwnerID:   ownerID(c),
		Filename:  fh.Filename,
		MimeType:  fh.Header.Get("Content-Type"),
		Size:      fh.Size,
		Analysis:  analysis,
		CreatedAt: time.Now().UTC(),
	}
	if err := h.repo.Create(c.Context(), screening); err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to save screening")
	}

	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"screeningId": screening.ID.String(),
		"filename":    screening.Filename,
		"sizeB":       len(data),
		"analysis":    analysis,
	})
}

// List returns the caller's screenings, newest first.
func (h *ResumeHandler) List(c *fiber.Ctx) error {
	limit, offset := parseLimitOffset(c, 20)
	items, err := h.repo.ListByOwner(c.Context(), ownerID(c), limit, offset)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to list screenings")
	}
	if items == nil {
		items = []resume.Screening{}
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{"items": items})
}

// Get returns a single screening by id.
func (h *ResumeHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid screening id")
	}
	s, err := h.repo.GetForOwner(c.Context(), ownerID(c), id)
	if err != nil {
		if err == resume.ErrNotFound {
			return presenter.Error(c, http.StatusNotFound, "screening not found")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to load screening")
	}
	return presenter.JSON(c, http.StatusOK, s)
}

// Delete removes a screening by id.
func (h *ResumeHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid screening id")
	}
	if err := h.repo.DeleteForOwner(c.Context(), ownerID(c), id); err != nil {
		if err == resume.ErrNotFound {
			return presenter.Error(c, http.StatusNotFound, "screening not found")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to delete screening")
	}
	return c.SendStatus(http.StatusNoContent)
}

func readAtMost(f multipart.File, max int64) ([]byte, error) {
	limited := io.LimitReader(f, max+1)
	b, err := io.ReadAll(limited)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if int64(len(b)) > max {
		return nil, fmt.Errorf("file too large: limit is %d bytes", max)
	}
	return b, nil
}

func ownerID(c *fiber.Ctx) uuid.UUID {
	s, _ := c.Locals("userId").(string)
	id, _ := uuid.Parse(s)
	return id
}
