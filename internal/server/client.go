package server

import (
	"net/http"
	"time"

	"snipes-server/internal/engine"
	"snipes-server/pkg/api"
	"snipes-server/pkg/logger"
	"snipes-server/pkg/utils"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

// Настройки WebSocket
const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Client - посредник между Websocket и GameService
type Client struct {
	Game      *engine.GameService
	Conn      *websocket.Conn
	Send      chan api.ServerResponse
	SessionID string
	Codec     api.Codec

	// done закрывает writePump: форвардер перестает писать в Send
	done chan struct{}
	log  *logrus.Entry
}

func NewClient(game *engine.GameService, conn *websocket.Conn, codec api.Codec) *Client {
	id := utils.GenerateID()
	return &Client{
		Game:      game,
		Conn:      conn,
		Send:      make(chan api.ServerResponse, 256),
		SessionID: id,
		Codec:     codec,
		done:      make(chan struct{}),
		log: logger.For("ws_client").WithFields(logrus.Fields{
			"session": id,
			"codec":   codec,
		}),
	}
}

// readPump читает команды от клиента
func (c *Client) readPump() {
	defer func() {
		c.Game.Hub.Unregister(c.SessionID)
		if err := c.Conn.Close(); err != nil {
			c.log.WithError(err).Debug("failed to close websocket connection")
		}
		c.log.Info("Client disconnected")
	}()

	c.Conn.SetReadLimit(maxMessageSize)
	if err := c.Conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		c.log.WithError(err).Warn("failed to set read deadline")
	}
	c.Conn.SetPongHandler(func(string) error {
		if err := c.Conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
			c.log.WithError(err).Warn("failed to set pong read deadline")
		}
		return nil
	})

	// 1. ПОДПИСКА НА ОБНОВЛЕНИЯ
	gameUpdates := c.Game.Hub.Register(c.SessionID)

	// Запускаем пересылку обновлений из Hub в writePump
	go c.forward(gameUpdates)

	c.log.Info("Client connected")

	// Первая отрисовка, не дожидаясь тика
	c.reply(engine.BuildState(c.Game.Snapshot()))

	// 2. ЦИКЛ ЧТЕНИЯ КОМАНД
	for {
		_, data, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.log.WithError(err).Error("WS Error")
			}
			break
		}

		msg, err := api.DecodeCommand(c.Codec, data)
		if err != nil {
			c.log.WithError(err).Warn("Malformed frame")
			c.reply(engine.ErrorResponse(err))
			continue
		}

		cmd, err := engine.ParseCommand(msg)
		if err != nil {
			c.log.WithError(err).WithField("action", msg.Action).Warn("Command rejected")
			c.reply(engine.ErrorResponse(err))
			continue
		}

		if err := c.Game.Submit(cmd); err != nil {
			c.log.WithError(err).WithField("command", cmd.Type).Warn("Command dropped")
			c.reply(engine.ErrorResponse(err))
		}
	}
}

// forward перекладывает сообщения хаба в Send, пока жив writePump.
// Send закрывается, когда хаб закрыл канал сессии.
func (c *Client) forward(updates <-chan api.ServerResponse) {
	defer close(c.Send)
	for msg := range updates {
		select {
		case c.Send <- msg:
		case <-c.done:
			// Дочитываем канал до Unregister, чтобы хаб не копил снимки
			for range updates {
			}
			return
		}
	}
}

// reply отправляет ответ только этой сессии через хаб, тем же путем, что и снимки
func (c *Client) reply(msg api.ServerResponse) {
	c.Game.Hub.SendTo(c.SessionID, msg)
}

// writePump отправляет данные клиенту + Ping
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		close(c.done)
		if err := c.Conn.Close(); err != nil {
			c.log.WithError(err).Debug("failed to close websocket connection in writePump")
		}
	}()

	for {
		select {
		case message, ok := <-c.Send:
			if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				c.log.WithError(err).Warn("failed to set write deadline")
			}
			if !ok {
				if err := c.Conn.WriteMessage(websocket.CloseMessage, []byte{}); err != nil {
					c.log.WithError(err).Debug("write close message failed")
				}
				return
			}
			if err := c.write(message); err != nil {
				c.log.WithError(err).Debug("write message failed")
				return
			}

		case <-ticker.C:
			if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				c.log.WithError(err).Warn("failed to set ping write deadline")
			}
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				c.log.WithError(err).Debug("ping failed")
				return
			}
		}
	}
}

func (c *Client) write(msg api.ServerResponse) error {
	if !c.Codec.Binary() {
		return c.Conn.WriteJSON(msg)
	}
	data, err := api.Encode(c.Codec, msg)
	if err != nil {
		return err
	}
	return c.Conn.WriteMessage(websocket.BinaryMessage, data)
}
