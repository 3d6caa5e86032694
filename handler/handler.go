package handler

import (
	"io"
	"log"
	"net/http"

	"github.com/gorilla/websocket"
	jsoniter "github.com/json-iterator/go"

	"github.com/pulseboard/gqlview/parser"
	"github.com/pulseboard/gqlview/toolbar"
	"github.com/pulseboard/gqlview/tree"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// OutlineRequest is the payload for one-shot outline rendering.
type OutlineRequest struct {
	Text   string `json:"text"`
	Search string `json:"search"`
}

// OutlineResponse carries the derived rows.
type OutlineResponse struct {
	Rows []tree.Row `json:"rows"`
}

// Message is one toolbar gesture sent over a WebSocket session.
type Message struct {
	Action string `json:"action"` // load, toggle, expandAll, collapseAll, search, hideSearch
	Text   string `json:"text,omitempty"`
	Path   []int  `json:"path,omitempty"`
	Term   string `json:"term,omitempty"`
}

// Server exposes the outline endpoints used by the dashboard's detail
// pages.
type Server struct {
	cfg      Config
	upgrader websocket.Upgrader
}

// NewServer creates a Server for the given configuration.
func NewServer(cfg Config) *Server {
	s := &Server{cfg: cfg}
	s.upgrader = websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			if len(cfg.AllowedOrigins) == 0 {
				return true
			}
			origin := r.Header.Get("Origin")
			for _, allowed := range cfg.AllowedOrigins {
				if origin == allowed {
					return true
				}
			}
			return false
		},
	}
	return s
}

// Outline handles one-shot outline requests: POST {text, search} -> {rows}.
// Unparseable text yields an empty row list; the client falls back to a
// plain text display.
func (s *Server) Outline(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.cfg.MaxDocumentBytes))
	if err != nil {
		http.Error(w, "unable to read body", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	var req OutlineRequest
	if err := json.Unmarshal(body, &req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	doc := parser.Parse(req.Text)
	st := toolbar.State{SearchVisible: req.Search != "", SearchTerm: req.Search}
	rows := tree.New(doc).Rows(st, st.Term())

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(OutlineResponse{Rows: rows}); err != nil {
		log.Printf("outline: failed to write response: %v", err)
	}
}

// Session streams outline rows over a WebSocket. The connection owns the
// toolbar state and renderer for its lifetime, so gestures from one client
// never touch another's view state. After every gesture the rows are
// re-derived and pushed.
func (s *Server) Session(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		http.Error(w, "unable to upgrade to websocket", http.StatusBadRequest)
		return
	}
	defer conn.Close()

	var (
		st       toolbar.State
		renderer *tree.Renderer
	)
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return
		}
		var msg Message
		if err := json.Unmarshal(data, &msg); err != nil {
			conn.WriteMessage(websocket.TextMessage, []byte(`{"error":"invalid message JSON"}`))
			continue
		}

		switch msg.Action {
		case "load":
			renderer = tree.New(parser.Parse(msg.Text))
			st = toolbar.State{}
		case "toggle":
			if renderer != nil {
				renderer.Toggle(tree.Path(msg.Path), st)
			}
		case "expandAll":
			st.ExpandAll()
		case "collapseAll":
			st.CollapseAll()
		case "search":
			st.ShowSearch()
			st.SetSearchTerm(msg.Term)
		case "hideSearch":
			st.HideSearch()
		default:
			conn.WriteMessage(websocket.TextMessage, []byte(`{"error":"unknown action"}`))
			continue
		}

		if renderer == nil {
			continue
		}
		payload, err := json.Marshal(OutlineResponse{Rows: renderer.Rows(st, st.Term())})
		if err != nil {
			log.Printf("session: failed to encode rows: %v", err)
			return
		}
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			return
		}
	}
}
