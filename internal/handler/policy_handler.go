package handler

import (
	"github.com/gin-gonic/gin"

	"docval/internal/domain"
	"docval/internal/service"
)

// PolicyHandler handles policy catalog endpoints.
type PolicyHandler struct {
	policyService service.PolicyService
}

// NewPolicyHandler creates a new PolicyHandler.
func NewPolicyHandler(policyService service.PolicyService) *PolicyHandler {
	return &PolicyHandler{policyService: policyService}
}

// PolicyResponse is one policy together with its key.
type PolicyResponse struct {
	Country         string                `json:"country"`
	PersonType      domain.PersonType     `json:"person_type"`
	PersonTypeLabel string                `json:"person_type_label"`
	Policy          domain.DocumentPolicy `json:"policy"`
}

// List handles GET /api/v1/policies
func (h *PolicyHandler) List(c *gin.Context) {
	RespondOK(c, h.policyService.ListCountries())
}

// Get handles GET /api/v1/policies/:country/:person_type
func (h *PolicyHandler) Get(c *gin.Context) {
	country := c.Param("country")
	personType, err := domain.ParsePersonType(c.Param("person_type"))
	if err != nil {
		HandleError(c, err)
		return
	}

	p, err := h.policyService.Get(country, personType)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, PolicyResponse{
		Country:         country,
		PersonType:      personType,
		PersonTypeLabel: personType.Label(),
		Policy:          *p,
	})
}
