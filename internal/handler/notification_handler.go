package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/noah-isme/examdesk-api/internal/service"
	appErrors "github.com/noah-isme/examdesk-api/pkg/errors"
	"github.com/noah-isme/examdesk-api/pkg/response"
)

const (
	wsWriteWait  = 10 * time.Second
	wsPongWait   = 60 * time.Second
	wsPingPeriod = (wsPongWait * 9) / 10
)

type notificationSubscriber interface {
	Subscribe(ctx context.Context, channel string) (<-chan []byte, error)
}

// NotificationHandler streams a user's notifications over a websocket.
type NotificationHandler struct {
	subscriber notificationSubscriber
	dispatcher *service.NotificationDispatcher
	upgrader   websocket.Upgrader
	logger     *zap.Logger
}

// NewNotificationHandler constructs the handler. An empty origin list accepts any origin.
func NewNotificationHandler(subscriber notificationSubscriber, dispatcher *service.NotificationDispatcher, allowedOrigins []string, logger *zap.Logger) *NotificationHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	allowed := make(map[string]struct{}, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		allowed[origin] = struct{}{}
	}
	return &NotificationHandler{
		subscriber: subscriber,
		dispatcher: dispatcher,
		logger:     logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				if len(allowed) == 0 {
					return true
				}
				_, ok := allowed[r.Header.Get("Origin")]
				return ok
			},
		},
	}
}

// Stream godoc
// @Summary Live notifications
// @Description Upgrades to a websocket and relays every notification pushed to the caller.
// @Tags Notifications
// @Security BearerAuth
// @Param access_token query string false "Access token when headers cannot be set"
// @Success 101
// @Router /notifications/ws [get]
func (h *NotificationHandler) Stream(c *gin.Context) {
	session := sessionFromContext(c)
	if session == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()

	messages, err := h.subscriber.Subscribe(ctx, h.dispatcher.Channel(session.UserID))
	if err != nil {
		response.Error(c, appErrors.WrapAs(appErrors.ErrBackend, err, "notification stream unavailable"))
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", zap.Int64("user_id", session.UserID), zap.Error(err))
		return
	}
	defer conn.Close()

	conn.SetReadLimit(512)
	_ = conn.SetReadDeadline(time.Now().Add(wsPongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(wsPongWait))
	})
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(wsPingPeriod)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			_ = conn.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(wsWriteWait))
			return
		case msg, ok := <-messages:
			if !ok {
				return
			}
			_ = conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
			if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(wsWriteWait)); err != nil {
				return
			}
		}
	}
}
