package httpx

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/MikeMC777/ordenes-ofertas/internal/store"
)

func init() {
	gin.SetMode(gin.TestMode)
	log.SetOutput(io.Discard)
	UseJSONFieldNames()
}

func TestRequestID_GeneratesAndPropagates(t *testing.T) {
	r := gin.New()
	r.Use(RequestID(), Logger())
	r.GET("/x", func(c *gin.Context) { c.String(http.StatusOK, GetRequestID(c)) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	rid := w.Header().Get(HeaderRequestID)
	if rid == "" || w.Body.String() != rid {
		t.Fatalf("rid header=%q body=%q", rid, w.Body.String())
	}

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set(HeaderRequestID, "abc-123")
	r.ServeHTTP(w, req)
	if got := w.Header().Get(HeaderRequestID); got != "abc-123" {
		t.Fatalf("rid=%q, esperado abc-123", got)
	}
}

type body struct {
	ID   *int64  `json:"id" binding:"required"`
	Name *string `json:"name" binding:"required"`
}

func bind(t *testing.T, raw string) error {
	t.Helper()
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(raw))
	c.Request.Header.Set("Content-Type", "application/json")
	var b body
	return c.ShouldBindJSON(&b)
}

func TestMalformed_NamesMissingJSONFields(t *testing.T) {
	err := bind(t, `{"id":0}`)
	if err == nil {
		t.Fatal("expected validation error")
	}
	m := Malformed(err)
	if !errors.Is(m, ErrMalformedRequest) {
		t.Fatalf("not malformed: %v", m)
	}
	if m.Error() != "missing required field(s): name" {
		t.Fatalf("msg=%q", m.Error())
	}

	if err := bind(t, `{"id":0,"name":""}`); err != nil {
		t.Fatalf("zero values are present values: %v", err)
	}
}

func TestMalformed_BadJSON(t *testing.T) {
	err := bind(t, `{"id":"x"`)
	if err == nil {
		t.Fatal("expected decode error")
	}
	if Status(Malformed(err)) != http.StatusBadRequest {
		t.Fatalf("status=%d", Status(Malformed(err)))
	}
}

func TestStatusAndAbort(t *testing.T) {
	cases := []struct {
		err  error
		code int
		msg  string
	}{
		{fmt.Errorf("user %w", store.ErrNotFound), http.StatusNotFound, "user not found"},
		{fmt.Errorf("dup: %w", store.ErrDuplicateID), http.StatusConflict, "dup: duplicate id"},
		{errors.New("connection reset"), http.StatusInternalServerError, "internal error"},
	}
	for _, tc := range cases {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		Abort(c, tc.err)
		if w.Code != tc.code {
			t.Fatalf("%v: status=%d, esperado=%d", tc.err, w.Code, tc.code)
		}
		var got HTTPError
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil || got.Error != tc.msg {
			t.Fatalf("body=%s", w.Body.String())
		}
	}
}
