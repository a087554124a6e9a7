package handler

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"docval/internal/domain"
	"docval/internal/report"
	"docval/internal/service"
)

// ValidationHandler handles document validation endpoints.
type ValidationHandler struct {
	validationService service.ValidationService
	maxFileSize       int64
}

// NewValidationHandler creates a new ValidationHandler. maxFileSize bounds how
// much of each uploaded file is read into memory.
func NewValidationHandler(validationService service.ValidationService, maxFileSize int64) *ValidationHandler {
	return &ValidationHandler{validationService: validationService, maxFileSize: maxFileSize}
}

// ValidationParamsRequest carries the policy key and the expected identity.
type ValidationParamsRequest struct {
	Country      string `json:"country" form:"country" binding:"required"`
	PersonType   string `json:"person_type" form:"person_type" binding:"required"`
	ExpectedName string `json:"expected_name" form:"expected_name"`
	ExpectedID   string `json:"expected_id" form:"expected_id"`
}

// ValidateRecordsRequest is the body of POST /validations/records.
type ValidateRecordsRequest struct {
	ValidationParamsRequest
	Records []domain.ExtractedRecord `json:"records"`
}

// ValidateObjectsRequest is the body of POST /validations/s3.
type ValidateObjectsRequest struct {
	ValidationParamsRequest
	Keys []string `json:"keys" binding:"required"`
}

// ValidationResponse is the payload returned by every validation endpoint.
type ValidationResponse struct {
	Report   *domain.Report       `json:"report"`
	Failures []domain.FileFailure `json:"failures"`
	Summary  []report.Message     `json:"summary"`
}

// ValidationMeta counts what happened to the submitted documents.
type ValidationMeta struct {
	Submitted int    `json:"submitted"`
	Validated int    `json:"validated"`
	Failed    int    `json:"failed"`
	Overall   string `json:"overall"`
}

func (r *ValidationParamsRequest) toParams() (service.ValidationParams, error) {
	pt, err := domain.ParsePersonType(r.PersonType)
	if err != nil {
		return service.ValidationParams{}, err
	}
	return service.ValidationParams{
		Country:      r.Country,
		PersonType:   pt,
		ExpectedName: r.ExpectedName,
		ExpectedID:   r.ExpectedID,
	}, nil
}

// Validate handles POST /api/v1/validations
func (h *ValidationHandler) Validate(c *gin.Context) {
	var req ValidationParamsRequest
	if err := c.ShouldBind(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "country and person_type are required")
		return
	}
	params, err := req.toParams()
	if err != nil {
		HandleError(c, err)
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		RespondError(c, http.StatusBadRequest, "MISSING_FILES", "multipart form with files is required")
		return
	}
	headers := form.File["files"]
	files := make([]service.SourceFile, 0, len(headers))
	for _, fh := range headers {
		content, err := h.readFile(fh)
		if err != nil {
			log.Printf("handler.ValidationHandler: reading %s: %v", fh.Filename, err)
			RespondError(c, http.StatusBadRequest, "UNREADABLE_FILE", fmt.Sprintf("could not read %s", fh.Filename))
			return
		}
		files = append(files, service.SourceFile{Name: fh.Filename, Content: content})
	}

	outcome, err := h.validationService.ValidateFiles(c.Request.Context(), params, files)
	if err != nil {
		HandleError(c, err)
		return
	}
	respondOutcome(c, outcome)
}

// ValidateRecords handles POST /api/v1/validations/records
func (h *ValidationHandler) ValidateRecords(c *gin.Context) {
	outcome, ok := h.validateRecords(c)
	if !ok {
		return
	}
	respondOutcome(c, outcome)
}

// ValidateObjects handles POST /api/v1/validations/s3
func (h *ValidationHandler) ValidateObjects(c *gin.Context) {
	var req ValidateObjectsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}
	params, err := req.toParams()
	if err != nil {
		HandleError(c, err)
		return
	}

	outcome, err := h.validationService.ValidateObjects(c.Request.Context(), params, req.Keys)
	if err != nil {
		HandleError(c, err)
		return
	}
	respondOutcome(c, outcome)
}

// Export handles POST /api/v1/validations/records/export?format=csv|xlsx
func (h *ValidationHandler) Export(c *gin.Context) {
	format := c.DefaultQuery("format", "csv")
	if format != "csv" && format != "xlsx" {
		RespondError(c, http.StatusBadRequest, "INVALID_FORMAT", "format must be csv or xlsx")
		return
	}

	outcome, ok := h.validateRecords(c)
	if !ok {
		return
	}

	var buf bytes.Buffer
	contentType := "text/csv; charset=utf-8"
	if format == "xlsx" {
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
		err := report.WriteXLSX(&buf, outcome.Report)
		if err != nil {
			HandleError(c, err)
			return
		}
	} else if err := report.NewCSVWriter(&buf).WriteReport(outcome.Report); err != nil {
		HandleError(c, err)
		return
	}

	filename := report.BuildFilename(outcome.Report, format)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Header("X-Validation-Overall", outcome.Report.Verdict.Overall.String())
	c.Data(http.StatusOK, contentType, buf.Bytes())
}

func (h *ValidationHandler) validateRecords(c *gin.Context) (*service.ValidationOutcome, bool) {
	var req ValidateRecordsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return nil, false
	}
	params, err := req.toParams()
	if err != nil {
		HandleError(c, err)
		return nil, false
	}

	outcome, err := h.validationService.ValidateRecords(c.Request.Context(), params, req.Records)
	if err != nil {
		HandleError(c, err)
		return nil, false
	}
	return outcome, true
}

// readFile reads at most maxFileSize+1 bytes so oversized files are still
// reported as too large by the service.
func (h *ValidationHandler) readFile(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	var r io.Reader = f
	if h.maxFileSize > 0 {
		r = io.LimitReader(f, h.maxFileSize+1)
	}
	return io.ReadAll(r)
}

func respondOutcome(c *gin.Context, outcome *service.ValidationOutcome) {
	validated := len(outcome.Report.Results)
	RespondOKWithMeta(c, ValidationResponse{
		Report:   outcome.Report,
		Failures: outcome.Failures,
		Summary:  report.Summarize(outcome.Report),
	}, ValidationMeta{
		Submitted: validated + len(outcome.Failures),
		Validated: validated,
		Failed:    len(outcome.Failures),
		Overall:   outcome.Report.Verdict.Overall.String(),
	})
}
