package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ringgate/internal/application/captcha/usecases"
	"ringgate/internal/shared/errors"
	"ringgate/internal/shared/logger"
	"ringgate/internal/shared/utils"
)

// CaptchaHandler exposes challenge creation and verification endpoints.
type CaptchaHandler struct {
	createChallengeUC createChallengeUseCase
	verifyChallengeUC verifyChallengeUseCase
	logger            logger.Interface
}

func NewCaptchaHandler(
	createChallengeUC createChallengeUseCase,
	verifyChallengeUC verifyChallengeUseCase,
	logger logger.Interface,
) *CaptchaHandler {
	return &CaptchaHandler{
		createChallengeUC: createChallengeUC,
		verifyChallengeUC: verifyChallengeUC,
		logger:            logger,
	}
}

// VerifyChallengeRequest carries a guess. SelectedIndex is a pointer so a
// missing field is distinguishable from index 0.
type VerifyChallengeRequest struct {
	SessionID     string `json:"sessionId" binding:"required,hexid"`
	SelectedIndex *int   `json:"selectedIndex" binding:"required"`
}

func (h *CaptchaHandler) CreateChallenge(c *gin.Context) {
	result, err := h.createChallengeUC.Execute(c.Request.Context(), c.ClientIP())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "challenge created")
}

func (h *CaptchaHandler) VerifyChallenge(c *gin.Context) {
	var req VerifyChallengeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for verify challenge", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "sessionId and selectedIndex are required")
		return
	}

	cmd := usecases.VerifyChallengeCommand{
		SessionID:     req.SessionID,
		SelectedIndex: *req.SelectedIndex,
	}

	result, err := h.verifyChallengeUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if !result.Verified {
		// A wrong guess is a client error but the remaining attempt budget
		// still travels in the payload.
		utils.ErrorResponseWithData(c, http.StatusBadRequest,
			string(errors.ErrorTypeValidation), "incorrect selection", result)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "challenge verified", result)
}
