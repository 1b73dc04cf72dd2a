package api

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/billworks/receipt-render/internal/printer"
	"github.com/billworks/receipt-render/internal/render/escpos"
	"github.com/billworks/receipt-render/internal/render/markup"
)

// WebSocket message types
const (
	EventRender   = "render"
	EventPrint    = "print"
	EventResponse = "response"
	EventError    = "error"
)

// WSMessage represents a WebSocket message
type WSMessage struct {
	Event string                 `json:"event"`
	Data  map[string]interface{} `json:"data"`
}

// WSClient represents a connected WebSocket client
type WSClient struct {
	conn   *websocket.Conn
	send   chan WSMessage
	server *Server
	mu     sync.Mutex
}

// handleWebSocket handles WebSocket connections
func (s *Server) handleWebSocket(c *gin.Context) {
	conn, err := s.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("WebSocket upgrade failed: %v", err)
		return
	}

	client := &WSClient{
		conn:   conn,
		send:   make(chan WSMessage, 256),
		server: s,
	}

	log.Println("WebSocket client connected")

	go client.readPump()
	go client.writePump()
}

func (c *WSClient) writePump() {
	defer c.conn.Close()

	for msg := range c.send {
		c.mu.Lock()
		err := c.conn.WriteJSON(msg)
		c.mu.Unlock()

		if err != nil {
			log.Printf("WebSocket write error: %v", err)
			return
		}
	}
}

func (c *WSClient) readPump() {
	defer func() {
		close(c.send)
		c.conn.Close()
		log.Println("WebSocket client disconnected")
	}()

	for {
		var msg WSMessage
		err := c.conn.ReadJSON(&msg)
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("WebSocket error: %v", err)
			}
			break
		}

		c.handleMessage(&msg)
	}
}

func (c *WSClient) handleMessage(msg *WSMessage) {
	switch msg.Event {
	case EventRender:
		c.handleRenderEvent(msg.Data)
	case EventPrint:
		c.handlePrintEvent(msg.Data)
	default:
		c.sendError(fmt.Sprintf("unknown event: %s", msg.Event))
	}
}

// decodeRenderRequest rebuilds a renderRequest from the loosely typed
// event payload.
func decodeRenderRequest(raw map[string]interface{}) (*renderRequest, error) {
	buf, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid request: %w", err)
	}

	var req renderRequest
	if err := json.Unmarshal(buf, &req); err != nil {
		return nil, fmt.Errorf("invalid request: %w", err)
	}

	return &req, nil
}

// handleRenderEvent renders a template and pushes the result back on
// the socket. The preview markup goes out as a string, the printer
// stream as base64.
func (c *WSClient) handleRenderEvent(raw map[string]interface{}) {
	req, err := decodeRenderRequest(raw)
	if err != nil {
		c.sendError(err.Error())
		return
	}

	tpl, err := req.resolveTemplate()
	if err != nil {
		c.sendError(err.Error())
		return
	}

	ctx := c.server.resolveData(req)
	payload := escpos.Render(tpl, ctx)

	c.sendResponse(map[string]interface{}{
		"success": true,
		"markup":  markup.Render(tpl, ctx),
		"escpos":  base64.StdEncoding.EncodeToString(payload),
	})
}

// handlePrintEvent renders a template and enqueues the result
func (c *WSClient) handlePrintEvent(raw map[string]interface{}) {
	req, err := decodeRenderRequest(raw)
	if err != nil {
		c.sendError(err.Error())
		return
	}

	var target printer.Printer
	if prn, ok := raw["printer"]; ok {
		buf, _ := json.Marshal(prn)
		if err := json.Unmarshal(buf, &target); err != nil {
			c.sendError(fmt.Sprintf("invalid printer: %v", err))
			return
		}
	}
	if target.Type == "" {
		c.sendError("printer is required")
		return
	}

	tpl, err := req.resolveTemplate()
	if err != nil {
		c.sendError(err.Error())
		return
	}

	payload := escpos.Render(tpl, c.server.resolveData(req))
	jobID := c.server.queue.Enqueue(target, payload)

	c.sendResponse(map[string]interface{}{
		"success": true,
		"job_id":  jobID,
	})
}

func (c *WSClient) sendResponse(data map[string]interface{}) {
	c.send <- WSMessage{
		Event: EventResponse,
		Data:  data,
	}
}

func (c *WSClient) sendError(message string) {
	c.send <- WSMessage{
		Event: EventError,
		Data: map[string]interface{}{
			"error": message,
		},
	}
}
