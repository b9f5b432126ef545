package web

import (
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"log"
	"net"
	"net/http"

	"github.com/coder/websocket"

	"github.com/peterkuimelis/brinefall/internal/game"
)

// RelicInfo is the JSON representation of a catalog entry for the
// /api/relics endpoint.
type RelicInfo struct {
	Tag         string `json:"tag"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Role        string `json:"role"`
	Variant     int    `json:"variant"`
	Rarity      string `json:"rarity"`
	Cost        int    `json:"cost,omitempty"`
	Copies      int    `json:"copies,omitempty"`
	Weapon      bool   `json:"weapon,omitempty"`
	Family      string `json:"family,omitempty"`
}

// CrewInfo is the JSON representation of a crew for the /api/crews
// endpoint.
type CrewInfo struct {
	Number int      `json:"number"`
	Name   string   `json:"name"`
	Units  []string `json:"units"`
}

// Server is the brinefall web UI server: it serves the embedded client,
// the catalog and crew APIs, and a WebSocket-to-TCP proxy so a browser can
// join a skirmish server.
type Server struct {
	catalog  *game.Catalog
	crewFile string
	mux      *http.ServeMux
}

// NewServer creates a new web server around a built catalog.
func NewServer(catalog *game.Catalog, crewFile string) *Server {
	s := &Server{
		catalog:  catalog,
		crewFile: crewFile,
		mux:      http.NewServeMux(),
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	staticFS, _ := fs.Sub(staticFiles, "static")

	s.mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		f, err := staticFS.Open("index.html")
		if err != nil {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		defer f.Close()
		io.Copy(w, f)
	})

	s.mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))

	s.mux.HandleFunc("GET /api/relics", s.handleRelics)
	s.mux.HandleFunc("GET /api/crews", s.handleCrews)

	s.mux.HandleFunc("GET /ws", s.handleWebSocket)
}

func (s *Server) handleRelics(w http.ResponseWriter, r *http.Request) {
	var relics []RelicInfo
	for _, d := range s.catalog.Definitions() {
		relics = append(relics, RelicInfo{
			Tag:         string(d.Tag),
			Name:        d.Name,
			Description: d.Desc,
			Category:    d.Category.String(),
			Role:        d.Role.String(),
			Variant:     d.Variant,
			Rarity:      d.Rarity.String(),
			Cost:        d.Cost,
			Copies:      d.Copies,
		})
	}
	for _, d := range s.catalog.Weapons() {
		relics = append(relics, RelicInfo{
			Tag:         string(d.Tag),
			Name:        d.Name,
			Description: d.Desc,
			Role:        d.Role.String(),
			Rarity:      d.Rarity.String(),
			Cost:        d.Cost,
			Copies:      d.Copies,
			Weapon:      true,
			Family:      d.Family.String(),
		})
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(relics)
}

func (s *Server) handleCrews(w http.ResponseWriter, r *http.Request) {
	lf, err := game.ParseLoadoutFile(s.crewFile)
	if err != nil {
		http.Error(w, "could not read crew file", http.StatusInternalServerError)
		return
	}

	var crews []CrewInfo
	for i, c := range lf.Crews {
		ci := CrewInfo{Number: i + 1, Name: c.Name}
		for _, u := range c.Units {
			ci.Units = append(ci.Units, fmt.Sprintf("%s (%s)", u.Name, u.Role))
		}
		crews = append(crews, ci)
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(crews)
}

// handleWebSocket bridges a browser to a skirmish server: the browser
// speaks the same JSON protocol the TCP client does, framed over
// WebSocket messages.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	wsConn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		InsecureSkipVerify: true, // Allow connections from any origin
	})
	if err != nil {
		log.Printf("WebSocket accept error: %v", err)
		return
	}
	defer wsConn.CloseNow()

	ctx := r.Context()

	// Read initial connect message from browser
	_, connectData, err := wsConn.Read(ctx)
	if err != nil {
		log.Printf("WebSocket read connect: %v", err)
		return
	}

	var connectMsg struct {
		Type       string `json:"type"`
		Addr       string `json:"addr"`
		CrewNumber int    `json:"crew_number"`
	}
	if err := json.Unmarshal(connectData, &connectMsg); err != nil || connectMsg.Type != "connect" {
		wsConn.Close(websocket.StatusPolicyViolation, "expected connect message")
		return
	}

	// Open TCP connection to the skirmish server
	tcpConn, err := net.Dial("tcp", connectMsg.Addr)
	if err != nil {
		errMsg, _ := json.Marshal(map[string]string{
			"type":   "error",
			"result": fmt.Sprintf("Could not connect to skirmish server at %s: %v", connectMsg.Addr, err),
		})
		wsConn.Write(ctx, websocket.MessageText, errMsg)
		wsConn.Close(websocket.StatusNormalClosure, "connection failed")
		return
	}
	defer tcpConn.Close()

	// Send join message over TCP
	joinMsg, _ := json.Marshal(map[string]interface{}{
		"type":        "join",
		"crew_number": connectMsg.CrewNumber,
	})
	joinMsg = append(joinMsg, '\n')
	if _, err := tcpConn.Write(joinMsg); err != nil {
		log.Printf("TCP write join: %v", err)
		return
	}

	done := make(chan struct{})

	// TCP → WebSocket (server messages to browser)
	go func() {
		defer close(done)
		dec := json.NewDecoder(tcpConn)
		for {
			var msg json.RawMessage
			if err := dec.Decode(&msg); err != nil {
				if err != io.EOF {
					log.Printf("TCP read error: %v", err)
				}
				return
			}
			if err := wsConn.Write(ctx, websocket.MessageText, msg); err != nil {
				log.Printf("WebSocket write error: %v", err)
				return
			}
		}
	}()

	// WebSocket → TCP (browser responses to server)
	go func() {
		for {
			_, data, err := wsConn.Read(ctx)
			if err != nil {
				return
			}
			data = append(data, '\n')
			if _, err := tcpConn.Write(data); err != nil {
				log.Printf("TCP write error: %v", err)
				return
			}
		}
	}()

	<-done
	wsConn.Close(websocket.StatusNormalClosure, "skirmish ended")
}

// ListenAndServe starts the HTTP server.
func (s *Server) ListenAndServe(addr string) error {
	return http.ListenAndServe(addr, s.mux)
}
