package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/matjar-app/matjar/internal/section"
	"github.com/matjar-app/matjar/internal/session"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// builderRequest is the incoming WebSocket message format.
type builderRequest struct {
	Type       string         `json:"type"` // chat, undo, redo, reset, add_section, apply_template
	Content    string         `json:"content,omitempty"`
	Section    string         `json:"section,omitempty"`
	Props      map[string]any `json:"props,omitempty"`
	TemplateID string         `json:"template_id,omitempty"`
}

// builderResponse is the outgoing WebSocket message format.
type builderResponse struct {
	Type    string `json:"type"` // document or error
	HTML    string `json:"html,omitempty"`
	Message string `json:"message,omitempty"`
	CanUndo bool   `json:"can_undo"`
	CanRedo bool   `json:"can_redo"`
}

// builderSocketHandler runs one live editing session per connection.
// The session is created from the template and store_name query
// parameters and lives for the lifetime of the socket.
func (s *Server) builderSocketHandler(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("builder: websocket upgrade: %v", err)
		return
	}
	defer conn.Close()

	sess := session.New(r.URL.Query().Get("template"), r.URL.Query().Get("store_name"), s.engine)

	// Send the seeded document first.
	s.sendDocument(conn, sess, sess.Current(), "")

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("builder: websocket read: %v", err)
			}
			return
		}

		var req builderRequest
		if err := json.Unmarshal(msg, &req); err != nil {
			s.sendError(conn, sess, "invalid message format")
			continue
		}

		switch req.Type {
		case "chat":
			if req.Content == "" {
				s.sendError(conn, sess, "content is required")
				continue
			}
			res, err := sess.ApplyIntent(r.Context(), req.Content)
			if err != nil {
				s.sendError(conn, sess, err.Error())
				continue
			}
			s.sendDocument(conn, sess, res.HTML, res.Message)

		case "undo":
			doc, err := sess.Undo()
			if err != nil {
				s.sendError(conn, sess, err.Error())
				continue
			}
			s.sendDocument(conn, sess, doc, "تم التراجع")

		case "redo":
			doc, err := sess.Redo()
			if err != nil {
				s.sendError(conn, sess, err.Error())
				continue
			}
			s.sendDocument(conn, sess, doc, "تمت الإعادة")

		case "reset":
			s.sendDocument(conn, sess, sess.Reset(), "تمت إعادة التعيين")

		case "add_section":
			doc, err := sess.AddSection(section.Type(req.Section), req.Props)
			if err != nil {
				s.sendError(conn, sess, err.Error())
				continue
			}
			s.sendDocument(conn, sess, doc, "تمت إضافة القسم")

		case "apply_template":
			s.sendDocument(conn, sess, sess.ApplyTemplate(req.TemplateID), "تم تطبيق القالب")

		default:
			s.sendError(conn, sess, "unknown message type: "+req.Type)
		}
	}
}

func (s *Server) sendDocument(conn *websocket.Conn, sess *session.Session, html, message string) {
	resp := builderResponse{
		Type:    "document",
		HTML:    html,
		Message: message,
		CanUndo: sess.CanUndo(),
		CanRedo: sess.CanRedo(),
	}
	if err := conn.WriteJSON(resp); err != nil {
		log.Printf("builder: websocket write: %v", err)
	}
}

func (s *Server) sendError(conn *websocket.Conn, sess *session.Session, message string) {
	resp := builderResponse{
		Type:    "error",
		Message: message,
		CanUndo: sess.CanUndo(),
		CanRedo: sess.CanRedo(),
	}
	if err := conn.WriteJSON(resp); err != nil {
		log.Printf("builder: websocket write error: %v", err)
	}
}
