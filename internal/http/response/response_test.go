package response

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func decodeBody(t *testing.T, recorder *httptest.ResponseRecorder) Response {
	t.Helper()
	var resp Response
	if err := json.Unmarshal(recorder.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp
}

func TestSuccessWithMsg(t *testing.T) {
	gin.SetMode(gin.TestMode)
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)

	SuccessWithMsg(c, "order placed", gin.H{"order_id": "order-1"})

	resp := decodeBody(t, recorder)
	if resp.StatusCode != CodeOK {
		t.Fatalf("status_code want %d got %d", CodeOK, resp.StatusCode)
	}
	if resp.Msg != "order placed" {
		t.Fatalf("msg want %q got %q", "order placed", resp.Msg)
	}
}

func TestErrorAttachesRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Set("request_id", "req-42")

	Error(c, CodeInternal, "cart update failed")

	resp := decodeBody(t, recorder)
	if resp.StatusCode != CodeInternal {
		t.Fatalf("status_code want %d got %d", CodeInternal, resp.StatusCode)
	}
	data, ok := resp.Data.(map[string]interface{})
	if !ok {
		t.Fatalf("data want map got %T", resp.Data)
	}
	if data["request_id"] != "req-42" {
		t.Fatalf("request_id want req-42 got %v", data["request_id"])
	}
}

func TestWrapErrorUnwraps(t *testing.T) {
	cause := errors.New("template parse failed")
	appErr := WrapError(CodeInternal, "render failed", cause)

	if !errors.Is(appErr, cause) {
		t.Fatalf("wrapped error must unwrap to cause")
	}
	if appErr.Code != CodeInternal {
		t.Fatalf("code want %d got %d", CodeInternal, appErr.Code)
	}
	if appErr.Error() != "render failed: template parse failed" {
		t.Fatalf("unexpected message: %s", appErr.Error())
	}

	bare := WrapError(CodeInternal, "render failed", nil)
	if bare.Error() != "render failed" {
		t.Fatalf("nil cause must fall back to message, got %s", bare.Error())
	}
}
