package socket

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/chrisaacson69/monopoly/app/models"
	"github.com/chrisaacson69/monopoly/pkg"
	"github.com/chrisaacson69/monopoly/platform/cache"
	"github.com/chrisaacson69/monopoly/platform/database"
	"github.com/chrisaacson69/monopoly/platform/engine"
	"github.com/chrisaacson69/monopoly/platform/queries"
	"github.com/go-pg/pg/v10"
	"github.com/gomodule/redigo/redis"
	socketio "github.com/googollee/go-socket.io"
	"github.com/rs/cors"
	uuid "github.com/satori/go.uuid"
	log "github.com/sirupsen/logrus"
)

// watchSet records which run rooms a connection has been counted into,
// kept in the socket context. A starter joins its room without being
// counted, so teardown only decrements what was recorded here.
type watchSet map[string]bool

func watchSetOf(v interface{}) watchSet {
	if ws, ok := v.(watchSet); ok {
		return ws
	}
	return watchSet{}
}

// add reports whether the code was newly recorded.
func (ws watchSet) add(code string) bool {
	if ws[code] {
		return false
	}
	ws[code] = true
	return true
}

// drop reports whether the code was recorded at all.
func (ws watchSet) drop(code string) bool {
	if !ws[code] {
		return false
	}
	delete(ws, code)
	return true
}

// parseWatchRequest pulls the run code out of a watch-run message.
func parseWatchRequest(jsonStr string) (string, bool) {
	var dto models.VerifyRunDto
	if err := json.Unmarshal([]byte(jsonStr), &dto); err != nil || dto.Code == "" {
		return "", false
	}
	return dto.Code, true
}

// watcherCountPayload never reports below zero, covering counts read
// from a key that was dropped while watchers were still attached.
func watcherCountPayload(count int) string {
	if count < 0 {
		count = 0
	}
	return strconv.Itoa(count)
}

// CreateSocketIOServer serves the live-run feed. A room per run code:
// whoever starts a run owns it, anyone with the code can watch the
// progress events roll in.
func CreateSocketIOServer() {

	server, err := socketio.NewServer(nil)
	if err != nil {
		panic(err)
	}
	db := database.PostgreSQLConnection()
	defer db.Close()

	pool := cache.CreateRedisPool()
	defer pool.Close()

	server.OnConnect("/", func(s socketio.Conn) error {
		s.SetContext(watchSet{})
		return nil
	})

	server.OnEvent("/", "watch-run", func(s socketio.Conn, jsonStr string) {
		code, ok := parseWatchRequest(jsonStr)
		if !ok || !queries.VerifyRun(code, db) {
			s.Emit("error-message", "Invalid run")
			s.Emit("failed")
			return
		}
		s.Join(code)

		conn := pool.Get()
		defer conn.Close()
		ws := watchSetOf(s.Context())
		if ws.add(code) {
			s.SetContext(ws)
			if count, err := queries.AddRunWatcher(code, 1, &conn); err == nil {
				server.BroadcastToRoom("/", code, "watcher-count", watcherCountPayload(count))
			}
		}

		// Late joiners get the current state right away.
		if reports, err := queries.GetCachedRunReports(code, &conn); err == nil {
			s.Emit("run-complete", reports)
			return
		}
		if done, total, err := queries.GetRunProgress(code, &conn); err == nil {
			s.Emit("run-progress", fmt.Sprintf(`{"code":%q,"done":%d,"total":%d}`, code, done, total))
		}
	})

	server.OnEvent("/", "leave-run", func(s socketio.Conn, code string) {
		s.Leave(code)
		if !watchSetOf(s.Context()).drop(code) {
			return
		}
		conn := pool.Get()
		defer conn.Close()
		if count, err := queries.AddRunWatcher(code, -1, &conn); err == nil {
			server.BroadcastToRoom("/", code, "watcher-count", watcherCountPayload(count))
		}
	})

	server.OnEvent("/", "start-run", func(s socketio.Conn, jsonStr string) {
		var result map[string]string
		json.Unmarshal([]byte(jsonStr), &result)

		userID, ok := result["user_id"]
		if !ok {
			s.Emit("error-message", "User not authenticated")
			s.Emit("failed")
			return
		}
		if _, err := queries.GetUserData(userID, db); err != nil {
			s.Emit("error-message", "User retrieval failed")
			s.Emit("failed")
			return
		}
		rolls, err := strconv.ParseInt(result["rolls"], 10, 64)
		if err != nil || rolls <= 0 {
			s.Emit("error-message", "Roll count must be a positive number")
			s.Emit("failed")
			return
		}

		run := &models.Run{
			Id:        uuid.NewV4().String(),
			Code:      pkg.RandString(8),
			UserId:    userID,
			Rolls:     rolls,
			Status:    "running",
			CreatedAt: time.Now(),
		}
		conn := pool.Get()
		defer conn.Close()
		if !queries.StartRun(run, db, &conn) {
			s.Emit("error-message", "Unable to start run")
			return
		}

		code := run.Code
		s.Join(code)
		s.Emit("run-created", code)
		log.WithFields(log.Fields{"code": code, "rolls": rolls}).Info("live run started")

		go playRun(server, db, pool, code, rolls)
	})

	server.OnError("/", func(s socketio.Conn, e error) {
		log.Error("socket error: ", e)
	})

	server.OnDisconnect("/", func(s socketio.Conn, reason string) {
		ws := watchSetOf(s.Context())
		if len(ws) > 0 {
			conn := pool.Get()
			defer conn.Close()
			for code := range ws {
				if count, err := queries.AddRunWatcher(code, -1, &conn); err == nil {
					server.BroadcastToRoom("/", code, "watcher-count", watcherCountPayload(count))
				}
			}
		}
		s.LeaveAll()
	})

	go server.Serve()
	defer server.Close()

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
	})

	mux := http.NewServeMux()
	mux.Handle("/socket.io/", server)
	http.ListenAndServe(":8000", c.Handler(mux))
}

// playRun plays both strategies and feeds the room until the reports are
// stored. Progress callbacks arrive from both strategy goroutines, each
// takes its own pooled connection. A crash mid-run marks the row failed
// instead of leaving it running forever.
func playRun(server *socketio.Server, db *pg.DB, pool *redis.Pool, code string, rolls int64) {
	defer func() {
		if r := recover(); r != nil {
			log.WithFields(log.Fields{"code": code, "cause": r}).Error("live run crashed")
			if err := queries.FailRun(code, db); err != nil {
				log.WithField("code", code).Error(err)
			}
			conn := pool.Get()
			defer conn.Close()
			queries.DropRunCache(code, &conn)
			server.BroadcastToRoom("/", code, "run-failed", fmt.Sprintf(`{"code":%q}`, code))
		}
	}()

	every := rolls / 50
	if every == 0 {
		every = 1
	}

	short, long := engine.RunPolicies(rolls, time.Now().UnixNano(), every, func(leaveJail int, done, total int64) {
		conn := pool.Get()
		defer conn.Close()
		if err := queries.StepRunProgress(code, leaveJail, done, &conn); err != nil {
			return
		}
		overall, totalAll, err := queries.GetRunProgress(code, &conn)
		if err != nil {
			return
		}
		server.BroadcastToRoom("/", code, "run-progress", fmt.Sprintf(`{"code":%q,"done":%d,"total":%d}`, code, overall, totalAll))
	})

	shortJSON, err := json.Marshal(short)
	if err != nil {
		panic(err)
	}
	longJSON, err := json.Marshal(long)
	if err != nil {
		panic(err)
	}

	if err := queries.FinishRun(code, string(shortJSON), string(longJSON), db); err != nil {
		log.WithField("code", code).Error(err)
	}

	conn := pool.Get()
	defer conn.Close()
	payload := queries.RunReportsPayload(code, string(shortJSON), string(longJSON))
	queries.CacheRunReports(code, payload, &conn)
	queries.CompleteRunProgress(code, rolls, &conn)
	queries.ClearRunActive(code, &conn)

	server.BroadcastToRoom("/", code, "run-complete", payload)
	log.WithFields(log.Fields{"code": code, "rolls": rolls}).Info("live run finished")
}
