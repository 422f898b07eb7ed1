package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cvlm/crm-backend/internal/models"
	"github.com/cvlm/crm-backend/internal/services"
	"github.com/cvlm/crm-backend/internal/utils"
)

type ProspectHandler struct {
	svc       services.ProfileService
	referrals services.ReferralService
}

func NewProspectHandler(svc services.ProfileService, referrals services.ReferralService) *ProspectHandler {
	return &ProspectHandler{svc: svc, referrals: referrals}
}

type ImportRequest struct {
	RawText string `json:"raw_text"`
}

func (h *ProspectHandler) Import(c *gin.Context) {
	var req ImportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "ProspectHandler.Import", "invalid request body", err))
		return
	}

	p, err := h.svc.Import(c.Request.Context(), req.RawText)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (h *ProspectHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.List(c.Request.Context()))
}

type ProspectDetail struct {
	Profile       *models.Profile     `json:"profile"`
	Stats         models.RequestStats `json:"stats"`
	ReferralUsage int                 `json:"referral_usage"`
}

func (h *ProspectHandler) Get(c *gin.Context) {
	p, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	usage, err := h.referrals.UsageCount(c.Request.Context(), p.ID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, ProspectDetail{
		Profile:       p,
		Stats:         p.Stats(),
		ReferralUsage: usage,
	})
}

type SetCodeRequest struct {
	Code string `json:"code"`
}

func (h *ProspectHandler) SetOwnPromoCode(c *gin.Context) {
	var req SetCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "ProspectHandler.SetOwnPromoCode", "invalid request body", err))
		return
	}

	p, err := h.svc.SetOwnPromoCode(c.Request.Context(), c.Param("id"), req.Code)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

type SetStatusRequest struct {
	Status models.RequestStatus `json:"status"`
}

func (h *ProspectHandler) SetRequestStatus(c *gin.Context) {
	var req SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "ProspectHandler.SetRequestStatus", "invalid request body", err))
		return
	}

	p, err := h.svc.SetRequestStatus(c.Request.Context(), c.Param("id"), c.Param("request_id"), req.Status)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *ProspectHandler) SetRequestPromoCode(c *gin.Context) {
	var req SetCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "ProspectHandler.SetRequestPromoCode", "invalid request body", err))
		return
	}

	p, err := h.svc.SetRequestPromoCode(c.Request.Context(), c.Param("id"), c.Param("request_id"), req.Code)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

type SetDetailsRequest struct {
	Details string `json:"details"`
}

func (h *ProspectHandler) SetRequestDetails(c *gin.Context) {
	var req SetDetailsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "ProspectHandler.SetRequestDetails", "invalid request body", err))
		return
	}

	p, err := h.svc.SetRequestDetails(c.Request.Context(), c.Param("id"), c.Param("request_id"), req.Details)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// CodeOwner maps the resolver's "none" outcome to a 404; the resolver
// itself never errors.
func (h *ProspectHandler) CodeOwner(c *gin.Context) {
	owner, ok := h.referrals.ResolveOwner(c.Request.Context(), c.Param("code"))
	if !ok {
		writeError(c, utils.E(utils.CodeNotFound, "ProspectHandler.CodeOwner", "no profile owns this code", nil))
		return
	}
	c.JSON(http.StatusOK, owner)
}
