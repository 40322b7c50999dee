package realtime

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"motionklub/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type Handler struct {
	hub      *Hub
	upgrader websocket.Upgrader
}

// NewHandler allows the given browser origins; requests without an Origin
// header (non-browser clients) are always accepted.
func NewHandler(hub *Hub, allowedOrigins []string) *Handler {
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, o := range allowedOrigins {
		allowed[strings.TrimSpace(o)] = true
	}
	return &Handler{
		hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				if origin == "" || len(allowed) == 0 {
					return true
				}
				return allowed[origin]
			},
		},
	}
}

func (h *Handler) RegisterRoutes(v1 *gin.RouterGroup) {
	v1.GET("/ws/capacity", h.ServeCapacity)
}

// ServeCapacity upgrades to a websocket. ?event_id=1,2 subscribes up front;
// more events can be followed with {"type":"subscribe","event_id":N}.
func (h *Handler) ServeCapacity(c *gin.Context) {
	var initial []int64
	if raw := c.Query("event_id"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
			if err != nil {
				response.Error(c, http.StatusBadRequest, response.CodeValidation, "event_id must be a list of numbers")
				return
			}
			initial = append(initial, id)
		}
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws_upgrade_failed error=%q", err.Error())
		return
	}
	h.hub.ServeWS(conn, initial)
}
