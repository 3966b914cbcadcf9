package server

import (
	"net/http"
	"strconv"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/bookingproto/rategen/internal/export"
)

// NewRouter builds the preview API around one generated snapshot. staticDir
// (the generator output directory) is exposed under /data so the booking
// page can load the JS bundles straight from the server.
func NewRouter(snap export.Snapshot, staticDir string) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.Default())
	router.Use(countRequests())

	rateRangesLoaded.Set(float64(len(snap.Rates)))
	blackoutDaysLoaded.Set(float64(len(snap.BlackoutDates)))

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "run_id": snap.RunID})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	{
		api.GET("/rooms", func(c *gin.Context) {
			c.JSON(http.StatusOK, snap.Rooms)
		})
		api.GET("/rates", func(c *gin.Context) {
			if roomID := c.Query("room_type_id"); roomID != "" {
				filtered := make([]export.Rate, 0)
				for _, r := range snap.Rates {
					if r.RoomTypeID == roomID {
						filtered = append(filtered, r)
					}
				}
				c.JSON(http.StatusOK, filtered)
				return
			}
			c.JSON(http.StatusOK, snap.Rates)
		})
		api.GET("/blackouts", func(c *gin.Context) {
			c.JSON(http.StatusOK, snap.BlackoutDates)
		})
		api.GET("/snapshot", func(c *gin.Context) {
			c.JSON(http.StatusOK, snap)
		})
	}

	if staticDir != "" {
		router.Static("/data", staticDir)
	}

	return router
}

func countRequests() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		httpRequestsTotal.WithLabelValues(
			c.FullPath(), strconv.Itoa(c.Writer.Status())).Inc()
	}
}
