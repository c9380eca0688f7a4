package classroom

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"SeatShuffler/internal/auth"
	"SeatShuffler/internal/board"
	"SeatShuffler/internal/clock"
	"SeatShuffler/internal/seating"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type handlerFixture struct {
	echo    *echo.Echo
	handler *ClassroomHandler
	service *ClassroomService
	session string
}

func newHandlerFixture(t *testing.T) *handlerFixture {
	t.Helper()
	svc := newTestService(t, clock.NewFixed(start))
	id, err := svc.OpenSession()
	require.NoError(t, err)
	return &handlerFixture{echo: echo.New(), handler: NewClassroomHandler(svc, nil), service: svc, session: id}
}

func (f *handlerFixture) call(t *testing.T, h echo.HandlerFunc, method, body string, claims bool) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := f.echo.NewContext(req, rec)
	if claims {
		c.Set(auth.ClaimsKey, &auth.SessionClaims{SessionID: f.session, Role: auth.RoleTeacher})
	}
	require.NoError(t, h(c))
	return rec
}

func TestClassroomHandler_GenerateAndRead(t *testing.T) {
	t.Parallel()

	f := newHandlerFixture(t)

	rec := f.call(t, f.handler.Layout, http.MethodGet, "", true)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = f.call(t, f.handler.Generate, http.MethodPost, `{"class_name":"7A","student_count":10,"column_count":3,"per_column_depth":[4,3,3],"seed":9}`, true)
	require.Equal(t, http.StatusCreated, rec.Code)
	var created board.View
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "7A seat shuffle result", created.Title)
	assert.Equal(t, 4, created.Rows)

	rec = f.call(t, f.handler.Layout, http.MethodGet, "", true)
	require.Equal(t, http.StatusOK, rec.Code)
	var read board.View
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &read))
	assert.Equal(t, created.BoardID, read.BoardID)

	rec = f.call(t, f.handler.Roster, http.MethodGet, "", true)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), echo.MIMETextHTML)
	assert.Contains(t, rec.Body.String(), "<h1>7A</h1>")
}

func TestClassroomHandler_Gestures(t *testing.T) {
	t.Parallel()

	f := newHandlerFixture(t)
	v, err := f.service.Generate(f.session, GenerateRequest{StudentCount: 4, ColumnCount: 2})
	require.NoError(t, err)
	a, b := v.Cells[0], v.Cells[1]

	rec := f.call(t, f.handler.Drag, http.MethodPost, `{"type":"dragstart","cell_id":"`+a.ID+`"}`, true)
	require.Equal(t, http.StatusOK, rec.Code)
	rec = f.call(t, f.handler.Drag, http.MethodPost, `{"type":"drop","cell_id":"`+b.ID+`"}`, true)
	require.Equal(t, http.StatusOK, rec.Code)
	var drag DragResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &drag))
	assert.True(t, drag.Swapped)

	rec = f.call(t, f.handler.Touch, http.MethodPost, `{"type":"touchstart","cell_id":"`+a.ID+`","touches":[{"x":40,"y":40}]}`, true)
	require.Equal(t, http.StatusOK, rec.Code)
	var touch TouchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &touch))
	assert.True(t, touch.PreventDefault)
	require.NotNil(t, touch.View.Proxy)

	rec = f.call(t, f.handler.Touch, http.MethodPost, `{"type":"touchcancel"}`, true)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), `"proxy"`)
	var cancel TouchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cancel))
	assert.True(t, cancel.PreventDefault)
	assert.False(t, cancel.Swapped)
	assert.Nil(t, cancel.View.Proxy)
}

func TestClassroomHandler_Errors(t *testing.T) {
	t.Parallel()

	f := newHandlerFixture(t)
	_, err := f.service.Generate(f.session, GenerateRequest{StudentCount: 4, ColumnCount: 2})
	require.NoError(t, err)

	tests := []struct {
		name   string
		h      echo.HandlerFunc
		method string
		body   string
		claims bool
		status int
	}{
		{"no claims", f.handler.Layout, http.MethodGet, "", false, http.StatusUnauthorized},
		{"malformed json", f.handler.Generate, http.MethodPost, `{"student_count":`, true, http.StatusBadRequest},
		{"too many columns", f.handler.Generate, http.MethodPost, `{"student_count":20,"column_count":11}`, true, http.StatusBadRequest},
		{"depth out of range", f.handler.Generate, http.MethodPost, `{"student_count":12,"column_count":1,"per_column_depth":[12]}`, true, http.StatusBadRequest},
		{"unknown drag event", f.handler.Drag, http.MethodPost, `{"type":"click"}`, true, http.StatusBadRequest},
		{"unknown cell", f.handler.Touch, http.MethodPost, `{"type":"touchstart","cell_id":"x","touches":[{"x":1,"y":1}]}`, true, http.StatusBadRequest},
		{"balance out of range", f.handler.Balance, http.MethodPost, `{"student_count":101,"column_count":2}`, true, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := f.call(t, tt.h, tt.method, tt.body, tt.claims)
			assert.Equal(t, tt.status, rec.Code)
			assert.Contains(t, rec.Body.String(), `"error"`)
		})
	}
}

func TestClassroomHandler_Close(t *testing.T) {
	t.Parallel()

	f := newHandlerFixture(t)
	rec := f.call(t, f.handler.Close, http.MethodDelete, "", true)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = f.call(t, f.handler.Layout, http.MethodGet, "", true)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestStatusFor(t *testing.T) {
	t.Parallel()

	assert.Equal(t, http.StatusBadRequest, statusFor(seating.ErrDepthLength))
	assert.Equal(t, http.StatusServiceUnavailable, statusFor(ErrSessionLimit))
	assert.Equal(t, http.StatusInternalServerError, statusFor(errors.New("boom")))
}
