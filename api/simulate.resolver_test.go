package api

import (
	"assetplanner/internal/app"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestHandler() ApiHandler {
	return ApiHandler{
		SimulationHandler: app.SimulationHandler{},
		Logger:            zap.NewNop().Sugar(),
	}
}

func postJson(t *testing.T, handler func(*gin.Context), body string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("POST", "/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	handler(c)
	return w
}

func TestSimulateResolver(t *testing.T) {
	m := newTestHandler()

	t.Run("returns the full projection", func(t *testing.T) {
		w := postJson(t, m.simulate, `{"years": 1, "monthly_stock_man": 3.0, "monthly_bond_man": 0, "monthly_savings_man": 0, "stock_return_percent": 6.0}`)
		require.Equal(t, 200, w.Code)

		var response struct {
			Snapshots []struct {
				MonthIndex  int     `json:"monthIndex"`
				TotalAssets float64 `json:"totalAssets"`
			} `json:"snapshots"`
			YearlyRollup []json.RawMessage `json:"yearlyRollup"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))

		require.Len(t, response.Snapshots, 13)
		require.Len(t, response.YearlyRollup, 2)
		require.InDelta(t, 30000, response.Snapshots[1].TotalAssets, 1e-6)
	})

	t.Run("omitted keys fall back to the config defaults", func(t *testing.T) {
		w := postJson(t, m.simulate, `{}`)
		require.Equal(t, 200, w.Code)

		var response struct {
			Params struct {
				Years         int `json:"years"`
				HorizonMonths int `json:"horizonMonths"`
			} `json:"params"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		require.Equal(t, 30, response.Params.Years)
		require.Equal(t, 360, response.Params.HorizonMonths)
	})

	t.Run("out-of-range years is a 400", func(t *testing.T) {
		w := postJson(t, m.simulate, `{"years": 51}`)
		require.Equal(t, 400, w.Code)
		require.Contains(t, w.Body.String(), "years out of range")
	})

	t.Run("negative amount is a 400", func(t *testing.T) {
		w := postJson(t, m.simulate, `{"years": 10, "monthly_stock_man": -1}`)
		require.Equal(t, 400, w.Code)
	})

	t.Run("malformed body is a 400", func(t *testing.T) {
		w := postJson(t, m.simulate, `{"years": `)
		require.Equal(t, 400, w.Code)
	})
}

func TestExportResolver(t *testing.T) {
	m := newTestHandler()

	t.Run("responds with a bom-prefixed csv attachment", func(t *testing.T) {
		w := postJson(t, m.export, `{"years": 1, "monthly_stock_man": 3.0}`)
		require.Equal(t, 200, w.Code)
		require.Equal(t, "text/csv; charset=utf-8", w.Header().Get("Content-Type"))
		require.Contains(t, w.Header().Get("Content-Disposition"), "attachment")

		body := w.Body.Bytes()
		require.Equal(t, []byte{0xEF, 0xBB, 0xBF}, body[:3])
		// 13 data rows plus the header
		require.Len(t, strings.Split(strings.TrimRight(string(body[3:]), "\n"), "\n"), 14)
	})

	t.Run("validation failures surface the same way", func(t *testing.T) {
		w := postJson(t, m.export, `{"years": 0}`)
		require.Equal(t, 400, w.Code)
	})
}
