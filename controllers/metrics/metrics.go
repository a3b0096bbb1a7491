package metrics

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"privacyguard/data"
	"privacyguard/log"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis"
	"github.com/jinzhu/gorm"
	"github.com/sirupsen/logrus"
)

// Action -
type Action struct {
	DB     *gorm.DB
	Logger *logrus.Logger
	Redis  *redis.Client
}

var metric = &Action{
	DB:     data.GetDB(),
	Logger: log.GetLogger(),
	Redis:  data.GetRedis(),
}

const (
	cacheKey = "metrics:dashboard"
	cacheTTL = 30 * time.Second
)

type payload struct {
	Stats    *Stats           `json:"stats"`
	Pipeline map[string]int64 `json:"pipeline"`
	Forecast *Forecast        `json:"forecast"`
}

// GetMetrics - dashboard stats, pipeline counts and revenue forecast.
// Served from redis for up to 30 seconds between rebuilds.
func GetMetrics(c *gin.Context) {

	// 1. serve the cached copy when fresh
	if cached, err := metric.Redis.Get(cacheKey).Result(); err == nil {

		var body payload

		if json.Unmarshal([]byte(cached), &body) == nil {
			c.JSON(http.StatusOK, gin.H{
				"status":   http.StatusText(http.StatusOK),
				"stats":    body.Stats,
				"pipeline": body.Pipeline,
				"forecast": body.Forecast,
				"cached":   true,
			})
			c.Abort()
			return
		}
	}

	var body payload

	err := func() error {

		var err error

		// 2. rebuild from the database
		if body.Stats, err = DashboardStats(metric.DB); err != nil {
			return err
		}

		if body.Pipeline, err = PipelineCounts(metric.DB); err != nil {
			return err
		}

		body.Forecast, err = ForecastRevenue(metric.DB)

		return err
	}()

	if err != nil {
		metric.Logger.Errorf("[FETCH METRICS] %v", err)
		c.JSON(http.StatusBadRequest, gin.H{
			"status": http.StatusText(http.StatusBadRequest),
			"error":  fmt.Sprintf("%v", err),
		})
		c.Abort()
		return
	}

	// 3. cache for the next caller, failures only logged
	if encoded, err := json.Marshal(body); err == nil {
		if err = metric.Redis.Set(cacheKey, encoded, cacheTTL).Err(); err != nil {
			metric.Logger.Warnf("[FETCH METRICS] cannot cache dashboard. %v", err)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   http.StatusText(http.StatusOK),
		"stats":    body.Stats,
		"pipeline": body.Pipeline,
		"forecast": body.Forecast,
		"cached":   false,
	})
	c.Abort()
	return
}
