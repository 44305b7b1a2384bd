package api

import (
	"errors"
	"time"

	"courselab/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type assignVariantRequest struct {
	AnonID     string                 `json:"anonID"`
	Attributes map[string]interface{} `json:"attributes"`
}

type assignVariantResponse struct {
	Included   bool                       `json:"included"`
	Assignment *variantAssignmentResponse `json:"assignment,omitempty"`
	Variant    *experimentVariantResponse `json:"variant,omitempty"`
}

type variantAssignmentResponse struct {
	AssignmentID uuid.UUID `json:"assignmentID"`
	ExperimentID uuid.UUID `json:"experimentID"`
	VariantID    uuid.UUID `json:"variantID"`
	AssignedAt   time.Time `json:"assignedAt"`
}

type experimentVariantResponse struct {
	VariantID uuid.UUID `json:"variantID"`
	Name      string    `json:"name"`
	IsControl bool      `json:"isControl"`
}

func (m ApiHandler) assignVariant(c *gin.Context) {
	experimentID, err := uuid.Parse(c.Param("experimentID"))
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	var requestBody assignVariantRequest
	if err := c.BindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	// A logged-in session supplies the identity; the anon id is only the
	// fallback for visitors without one.
	var identity domain.Identity
	if userAccountID, ok := userAccountIDFromContext(c); ok {
		identity = domain.NewUserIdentity(userAccountID)
	} else if requestBody.AnonID != "" {
		identity = domain.NewAnonIdentity(requestBody.AnonID)
	}

	out, err := m.ExperimentService.AssignVariant(
		c.Request.Context(),
		experimentID,
		identity,
		domain.VisitorAttributes(requestBody.Attributes),
	)
	if err != nil {
		returnErrorJsonCode(err, c, statusCodeForAssignError(err))
		return
	}

	response := assignVariantResponse{
		Included: out.Included,
	}
	if out.Assignment != nil {
		response.Assignment = &variantAssignmentResponse{
			AssignmentID: out.Assignment.VariantAssignmentID,
			ExperimentID: out.Assignment.ExperimentID,
			VariantID:    out.Assignment.ExperimentVariantID,
			AssignedAt:   out.Assignment.CreatedAt,
		}
	}
	if out.Variant != nil {
		response.Variant = &experimentVariantResponse{
			VariantID: out.Variant.ExperimentVariantID,
			Name:      out.Variant.Name,
			IsControl: out.Variant.IsControl,
		}
	}

	c.JSON(200, response)
}

func statusCodeForAssignError(err error) int {
	switch {
	case errors.Is(err, domain.ErrExperimentNotFound):
		return 404
	case errors.Is(err, domain.ErrInvalidIdentity),
		errors.Is(err, domain.ErrExperimentNotActive):
		return 400
	default:
		return 500
	}
}
