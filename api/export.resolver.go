package api

import (
	"assetplanner/internal/export"
	"fmt"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"
)

// export runs the same simulation as /simulate but responds with the
// downloadable CSV instead of JSON.
func (m ApiHandler) export(c *gin.Context) {
	result, ok := m.runSimulation(c)
	if !ok {
		return
	}

	bytes, err := export.MonthlyCSV(result.Snapshots)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	filename := export.DefaultFilename(time.Now())
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename*=UTF-8''%s", url.PathEscape(filename)))
	c.Data(200, "text/csv; charset=utf-8", bytes)
}
