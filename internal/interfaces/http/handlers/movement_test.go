package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/coffee-stock-backend/internal/config"
	"github.com/your-org/coffee-stock-backend/internal/domain/stock"
)

type fakeGateway struct {
	state  *stock.AppState
	seeded bool
}

func (g *fakeGateway) LoadState() (*stock.AppState, error) { return g.state, nil }
func (g *fakeGateway) SaveState(state *stock.AppState) error {
	snapshot := *state
	g.state = &snapshot
	return nil
}
func (g *fakeGateway) Seeded() (bool, error) { return g.seeded, nil }
func (g *fakeGateway) MarkSeeded() error     { g.seeded = true; return nil }

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	cfg := &config.Config{}
	svc := stock.NewService(cfg, &fakeGateway{}, logger)
	require.NoError(t, svc.Bootstrap())

	router := gin.New()
	handler := NewMovementHandler(svc, cfg)
	router.POST("/movements", handler.CreateMovement)
	router.GET("/movements", handler.GetMovements)
	router.DELETE("/movements/:id", handler.DeleteMovement)
	return router
}

func postJSON(router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateMovement_RecordsExit(t *testing.T) {
	router := newTestRouter(t)

	// JOSANE seeds with 1500g under lot 9140
	w := postJSON(router, "/movements", gin.H{
		"type":        "saida",
		"coffeeId":    "1",
		"pr":          "9140",
		"quantity":    600,
		"responsible": "Maria",
	})

	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Data stock.Movement `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "JOSANE", resp.Data.CoffeeName)
	assert.Equal(t, 600, resp.Data.Quantity)
	assert.NotEmpty(t, resp.Data.ID)
}

func TestCreateMovement_InsufficientStock(t *testing.T) {
	router := newTestRouter(t)

	w := postJSON(router, "/movements", gin.H{
		"type":        "saida",
		"coffeeId":    "1",
		"pr":          "9140",
		"quantity":    99999,
		"responsible": "Maria",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestCreateMovement_ValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		body gin.H
	}{
		{"missing responsible", gin.H{"type": "saida", "coffeeId": "1", "pr": "9140", "quantity": 10}},
		{"zero quantity", gin.H{"type": "saida", "coffeeId": "1", "pr": "9140", "quantity": 0, "responsible": "Maria"}},
		{"bad type", gin.H{"type": "transfer", "coffeeId": "1", "pr": "9140", "quantity": 10, "responsible": "Maria"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(newTestRouter(t), "/movements", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestDeleteMovement_NotFound(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodDelete, "/movements/missing", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
