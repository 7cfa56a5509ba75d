package handlers

import (
	"errors"
	"net/http"
	"time"

	"rentaid/internal/app"
	"rentaid/internal/common"
	"rentaid/internal/domain/application"
	"rentaid/internal/http/middleware"
	"rentaid/internal/http/response"
	"rentaid/internal/upload"
)

// Multipart parse buffer; file parts beyond this spill to temp files.
const multipartMemory = 10 << 20

// Upload slots accepted by the intake form.
const (
	slotLicenseFront = "dl_front"
	slotLicenseBack  = "dl_back"
)

type SubmissionHandler struct {
	intake    *app.IntakeService
	uploads   *upload.Store
	limiter   middleware.Limiter
	rateLimit int
	rateWin   time.Duration
}

func NewSubmissionHandler(intake *app.IntakeService, uploads *upload.Store, limiter middleware.Limiter, rateLimit int, rateWindow time.Duration) *SubmissionHandler {
	return &SubmissionHandler{intake: intake, uploads: uploads, limiter: limiter, rateLimit: rateLimit, rateWin: rateWindow}
}

type submitResponse struct {
	Success       bool   `json:"success"`
	Message       string `json:"message"`
	ApplicationID int64  `json:"applicationId"`
	Redirect      string `json:"redirect"`
}

type submitError struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func (h *SubmissionHandler) Submit(w http.ResponseWriter, r *http.Request) {
	if h.limiter != nil {
		key := "submit:" + middleware.ClientIP(r)
		if !h.limiter.Allow(key, h.rateLimit, h.rateWin) {
			writeSubmitError(w, common.NewError(common.CodeRateLimited, "too many submissions, try again later", nil))
			return
		}
	}
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		writeSubmitError(w, common.NewValidationError("invalid multipart form", nil))
		return
	}

	fields := make(map[string]string)
	for _, name := range application.RequiredFields {
		fields[name] = r.FormValue(name)
	}
	for _, name := range application.ExtendedFields {
		fields[name] = r.FormValue(name)
	}

	front, err := h.saveSlot(r, slotLicenseFront)
	if err != nil {
		writeSubmitError(w, err)
		return
	}
	back, err := h.saveSlot(r, slotLicenseBack)
	if err != nil {
		h.removeSaved(front)
		writeSubmitError(w, err)
		return
	}

	created, err := h.intake.Submit(r.Context(), application.Submission{
		Fields:       fields,
		LicenseFront: front,
		LicenseBack:  back,
	})
	if err != nil {
		// The service already removed any saved files.
		writeSubmitError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, submitResponse{
		Success:       true,
		Message:       "Application submitted successfully",
		ApplicationID: created.ID,
		Redirect:      "/confirmation.html",
	})
}

// saveSlot stores the named upload slot and returns the stored filename, or
// nil when the slot was not submitted.
func (h *SubmissionHandler) saveSlot(r *http.Request, slot string) (*string, error) {
	file, header, err := r.FormFile(slot)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}
		return nil, common.NewValidationError("invalid file upload", map[string]string{slot: "malformed upload"})
	}
	defer file.Close()
	stored, err := h.uploads.Save(header.Filename, file)
	if err != nil {
		return nil, err
	}
	return &stored, nil
}

func (h *SubmissionHandler) removeSaved(names ...*string) {
	for _, name := range names {
		if name != nil {
			h.uploads.Remove(*name)
		}
	}
}

// The public submission path answers with a success flag and never leaks
// internal error detail.
func writeSubmitError(w http.ResponseWriter, err error) {
	message := "internal server error"
	var appErr *common.Error
	if errors.As(err, &appErr) && appErr.Code != common.CodeInternal {
		message = appErr.Message
	}
	response.JSON(w, response.Status(err), submitError{Success: false, Error: message})
}
