package websocket

import (
	"net/http"
	"time"

	"privacyguard/controllers/metrics"
	"privacyguard/data"
	"privacyguard/log"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/jinzhu/gorm"
	"github.com/sirupsen/logrus"
)

// Action -
type Action struct {
	DB     *gorm.DB
	Logger *logrus.Logger
}

// declare upgrader
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

var web = &Action{
	DB:     data.GetDB(),
	Logger: log.GetLogger(),
}

// WebSocket - streams dashboard stats to the client every ~2 seconds until
// the connection drops
func WebSocket(c *gin.Context) {

	// 1. instantiate ws conn
	socket, err := upgrader.Upgrade(c.Writer, c.Request, nil)

	if err != nil {
		web.Logger.Errorf("cannot establish websocket connection. %v", err)
		return
	}

	defer socket.Close()

	for {

		// a. dashboard stats
		if ok := web.pushStats(socket); !ok {
			return
		}

		// b. pipeline counts
		if ok := web.pushPipeline(socket); !ok {
			return
		}

		time.Sleep(2200 * time.Millisecond)
	}
}

// pushStats - one stats frame. false means the client is gone.
func (web *Action) pushStats(socket *websocket.Conn) bool {

	stats, err := metrics.DashboardStats(web.DB)

	if err != nil {
		web.Logger.Errorf("[WEBSOCKET] cannot build stats. %v", err)
		socket.WriteJSON(map[string]interface{}{"error": "cannot build stats"})
		return true
	}

	if err = socket.WriteJSON(map[string]interface{}{"stats": stats}); err != nil {
		return false
	}

	return true
}

// pushPipeline - one pipeline frame. false means the client is gone.
func (web *Action) pushPipeline(socket *websocket.Conn) bool {

	pipeline, err := metrics.PipelineCounts(web.DB)

	if err != nil {
		web.Logger.Errorf("[WEBSOCKET] cannot build pipeline counts. %v", err)
		socket.WriteJSON(map[string]interface{}{"error": "cannot build pipeline counts"})
		return true
	}

	if err = socket.WriteJSON(map[string]interface{}{"pipeline": pipeline}); err != nil {
		return false
	}

	return true
}
