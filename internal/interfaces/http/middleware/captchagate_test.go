package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "ringgate/internal/shared/errors"
	"ringgate/internal/shared/logger"
)

type fakeRedeemUC struct {
	err       error
	gotToken  string
	callCount int
}

func (f *fakeRedeemUC) Execute(ctx context.Context, token string) error {
	f.callCount++
	f.gotToken = token
	return f.err
}

func newGateRouter(redeemUC *fakeRedeemUC, handlerRan *bool, echoedBody *string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	gate := NewCaptchaGate(redeemUC, logger.NewLoggerWithSlog(slog.New(slog.DiscardHandler)))

	engine := gin.New()
	engine.POST("/protected", gate.Require(), func(c *gin.Context) {
		*handlerRan = true
		body, _ := io.ReadAll(c.Request.Body)
		*echoedBody = string(body)
		c.Status(http.StatusOK)
	})
	return engine
}

func postJSON(t *testing.T, engine *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/protected", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func TestCaptchaGate_PassesTokenAndRestoresBody(t *testing.T) {
	redeemUC := &fakeRedeemUC{}
	var handlerRan bool
	var echoedBody string
	engine := newGateRouter(redeemUC, &handlerRan, &echoedBody)

	body := `{"captchaToken":"tok-123","email":"a@b.com"}`
	rec := postJSON(t, engine, body)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, handlerRan)
	assert.Equal(t, "tok-123", redeemUC.gotToken)
	assert.Equal(t, body, echoedBody, "downstream handler must see the original body")
}

func TestCaptchaGate_RedemptionFailureBlocksHandler(t *testing.T) {
	redeemUC := &fakeRedeemUC{err: apperrors.NewUnauthorizedError("invalid captcha token")}
	var handlerRan bool
	var echoedBody string
	engine := newGateRouter(redeemUC, &handlerRan, &echoedBody)

	rec := postJSON(t, engine, `{"captchaToken":"bad"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, handlerRan, "handler must not run when redemption fails")

	var resp struct {
		Success bool `json:"success"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
}

func TestCaptchaGate_MissingTokenStillCallsRedeemer(t *testing.T) {
	redeemUC := &fakeRedeemUC{err: apperrors.NewUnauthorizedError("captcha token is required")}
	var handlerRan bool
	var echoedBody string
	engine := newGateRouter(redeemUC, &handlerRan, &echoedBody)

	rec := postJSON(t, engine, `{"email":"a@b.com"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, 1, redeemUC.callCount)
	assert.Empty(t, redeemUC.gotToken)
	assert.False(t, handlerRan)
}

func TestCaptchaGate_MalformedBodyTreatedAsMissingToken(t *testing.T) {
	redeemUC := &fakeRedeemUC{err: apperrors.NewUnauthorizedError("captcha token is required")}
	var handlerRan bool
	var echoedBody string
	engine := newGateRouter(redeemUC, &handlerRan, &echoedBody)

	rec := postJSON(t, engine, `not-json`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, redeemUC.gotToken)
	assert.False(t, handlerRan)
}
