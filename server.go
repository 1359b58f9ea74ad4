package main

import (
	"encoding/json"
	"log"
	"net"
	"net/http"
	"net/url"
	"os"

	"github.com/gorilla/websocket"
	qrcode "github.com/skip2/go-qrcode"
)

const (
	qrSize    = 256
	statsDays = 7
	statsTopN = 10
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true // Non-browser clients don't send Origin
		}
		u, err := url.Parse(origin)
		if err != nil {
			return false
		}
		return u.Host == r.Host
	},
}

func extractIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// arenaURL is the page a player opens to join, as seen by this request
func arenaURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	return (&url.URL{Scheme: scheme, Host: r.Host, Path: "/"}).String()
}

// SetupRoutes configures HTTP routes. analytics may be nil.
func SetupRoutes(hub *Hub, publicDir string, analytics *Analytics) *http.ServeMux {
	mux := http.NewServeMux()

	if info, err := os.Stat(publicDir); err == nil && info.IsDir() {
		mux.Handle("/", http.FileServer(http.Dir(publicDir)))
	}

	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		ip := extractIP(r)
		if !hub.Acquire(ip) {
			http.Error(w, "too many connections", http.StatusServiceUnavailable)
			return
		}

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Printf("upgrade error: %v", err)
			hub.Release(ip)
			return
		}

		client := NewClient(hub, conn, ip, ParseEncoding(r.URL.Query().Get("enc")))
		hub.Register(client)

		go client.WritePump()
		go client.ReadPump()
	})

	mux.HandleFunc("/qr.png", func(w http.ResponseWriter, r *http.Request) {
		png, err := qrcode.Encode(arenaURL(r), qrcode.Medium, qrSize)
		if err != nil {
			log.Printf("qr encode error: %v", err)
			http.Error(w, "qr encode failed", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "image/png")
		w.Header().Set("Cache-Control", "no-cache")
		w.Write(png)
	})

	mux.HandleFunc("/api/stats", func(w http.ResponseWriter, r *http.Request) {
		resp := StatsResponse{Players: hub.game.PlayerCount()}
		if analytics != nil {
			counts, err := analytics.EventCounts(statsDays)
			if err != nil {
				log.Printf("stats: event counts error: %v", err)
			}
			top, err := analytics.TopKillers(statsTopN)
			if err != nil {
				log.Printf("stats: top killers error: %v", err)
			}
			resp.EventCounts = counts
			resp.TopKillers = top
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			log.Printf("stats: encode error: %v", err)
		}
	})

	return mux
}
