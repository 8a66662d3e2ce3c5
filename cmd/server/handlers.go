package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"strconv"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"github.com/parlorgames/poker/domain/ai"
	"github.com/parlorgames/poker/domain/eval"
	"github.com/parlorgames/poker/domain/poker"
)

// maxAutoTicks bounds the AI turns drained per request.
const maxAutoTicks = 64

type server struct {
	log    logrus.FieldLogger
	mu     sync.Mutex
	tables map[string]*tableEntry
	nextID int
}

// tableEntry serializes access to one table: the engine is single-writer.
type tableEntry struct {
	mu    sync.Mutex
	table *poker.Table
}

func newServer(log logrus.FieldLogger) *server {
	return &server{log: log, tables: make(map[string]*tableEntry)}
}

type seatRequest struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Human bool   `json:"human"`
	Tier  string `json:"tier"`
}

type createTableRequest struct {
	StartingStack     int           `json:"startingStack"`
	Ante              int           `json:"ante"`
	SmallBlind        int           `json:"smallBlind"`
	BigBlind          int           `json:"bigBlind"`
	MinRaise          int           `json:"minRaise"`
	Variant           poker.Variant `json:"variant"`
	SeventhStreetDown bool          `json:"seventhStreetDown"`
	WildOptions       [][]string    `json:"wildOptions"`
	Seats             []seatRequest `json:"seats"`
	Seed              int64         `json:"seed"`
}

type actionRequest struct {
	Seat    string        `json:"seat"`
	Kind    string        `json:"kind"`
	Amount  int           `json:"amount"`
	Variant poker.Variant `json:"variant"`
	Wilds   []string      `json:"wilds"`
	Indices []int         `json:"indices"`
}

func (s *server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *server) handleCreateTable(w http.ResponseWriter, r *http.Request) {
	var req createTableRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	cfg, err := s.buildConfig(req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	table, err := poker.New(cfg)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	s.mu.Lock()
	s.nextID++
	id := "t" + strconv.Itoa(s.nextID)
	s.tables[id] = &tableEntry{table: table}
	s.mu.Unlock()

	s.log.WithFields(logrus.Fields{"table": id, "seats": len(req.Seats)}).Info("table created")
	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"id":    id,
		"state": table.State(""),
	})
}

func (s *server) buildConfig(req createTableRequest) (poker.Config, error) {
	seats := make([]poker.SeatConfig, 0, len(req.Seats))
	for _, sr := range req.Seats {
		tier, err := parseTier(sr.Tier)
		if err != nil && !sr.Human {
			return poker.Config{}, err
		}
		seats = append(seats, poker.SeatConfig{ID: sr.ID, Name: sr.Name, Human: sr.Human, Tier: tier})
	}
	var wildOptions []eval.Wildness
	for _, names := range req.WildOptions {
		set, err := parseWilds(names)
		if err != nil {
			return poker.Config{}, err
		}
		wildOptions = append(wildOptions, set)
	}
	var rng *rand.Rand
	if req.Seed != 0 {
		rng = rand.New(rand.NewSource(req.Seed))
	}
	return poker.Config{
		StartingStack:     req.StartingStack,
		Ante:              req.Ante,
		SmallBlind:        req.SmallBlind,
		BigBlind:          req.BigBlind,
		MinRaise:          req.MinRaise,
		Variant:           req.Variant,
		WildOptions:       wildOptions,
		SeventhStreetDown: req.SeventhStreetDown,
		Seats:             seats,
		Rand:              rng,
		Logger:            s.log,
	}, nil
}

func (s *server) handleState(w http.ResponseWriter, r *http.Request) {
	entry, ok := s.entry(chi.URLParam(r, "tableID"))
	if !ok {
		writeError(w, http.StatusNotFound, errors.New("no such table"))
		return
	}
	entry.mu.Lock()
	state := entry.table.State(r.URL.Query().Get("seat"))
	entry.mu.Unlock()
	writeJSON(w, http.StatusOK, state)
}

func (s *server) handleAction(w http.ResponseWriter, r *http.Request) {
	entry, ok := s.entry(chi.URLParam(r, "tableID"))
	if !ok {
		writeError(w, http.StatusNotFound, errors.New("no such table"))
		return
	}
	var req actionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	wilds, err := parseWilds(req.Wilds)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	action := poker.Action{
		Kind:    poker.ActionKind(req.Kind),
		Amount:  req.Amount,
		Variant: req.Variant,
		Wilds:   wilds,
		Indices: req.Indices,
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()
	res, err := entry.table.Submit(req.Seat, action)
	if err != nil {
		status := http.StatusInternalServerError
		if poker.IsIllegalAction(err) {
			status = http.StatusUnprocessableEntity
		} else if errors.Is(err, poker.ErrGameOver) {
			status = http.StatusConflict
		}
		writeError(w, status, err)
		return
	}
	s.drainAI(entry)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"result": res,
		"state":  entry.table.State(req.Seat),
	})
}

func (s *server) handleTick(w http.ResponseWriter, r *http.Request) {
	entry, ok := s.entry(chi.URLParam(r, "tableID"))
	if !ok {
		writeError(w, http.StatusNotFound, errors.New("no such table"))
		return
	}
	entry.mu.Lock()
	defer entry.mu.Unlock()
	s.drainAI(entry)
	writeJSON(w, http.StatusOK, entry.table.State(r.URL.Query().Get("seat")))
}

func (s *server) handleLeave(w http.ResponseWriter, r *http.Request) {
	entry, ok := s.entry(chi.URLParam(r, "tableID"))
	if !ok {
		writeError(w, http.StatusNotFound, errors.New("no such table"))
		return
	}
	entry.mu.Lock()
	defer entry.mu.Unlock()
	if err := entry.table.RemoveSeat(chi.URLParam(r, "seatID")); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err)
		return
	}
	s.drainAI(entry)
	writeJSON(w, http.StatusOK, entry.table.State(""))
}

// drainAI lets computer seats act until a human is up, the hand settles,
// or the tick budget runs out. The entry lock must be held.
func (s *server) drainAI(entry *tableEntry) {
	for i := 0; i < maxAutoTicks; i++ {
		_, acted, err := entry.table.Tick()
		if err != nil {
			s.log.WithError(err).Error("ai turn failed")
			return
		}
		if !acted {
			return
		}
	}
}

func (s *server) entry(id string) (*tableEntry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.tables[id]
	return e, ok
}

func parseTier(name string) (ai.Tier, error) {
	switch strings.ToLower(name) {
	case "", "easy":
		return ai.Easy, nil
	case "medium":
		return ai.Medium, nil
	case "hard":
		return ai.Hard, nil
	}
	return ai.Easy, fmt.Errorf("unknown tier %q", name)
}

// parseWilds maps wire names to wildcard rules: "jokers", "black_jacks",
// "follow_queen", "deuces", or "rank:<2-13>".
func parseWilds(names []string) (eval.Wildness, error) {
	var out eval.Wildness
	for _, name := range names {
		switch {
		case name == "jokers":
			out = append(out, eval.Rule{Kind: eval.JokersWild})
		case name == "black_jacks":
			out = append(out, eval.Rule{Kind: eval.BlackJacksWild})
		case name == "follow_queen":
			out = append(out, eval.Rule{Kind: eval.FollowQueen})
		case name == "deuces":
			out = append(out, eval.Rule{Kind: eval.RankWild, Rank: 2})
		case strings.HasPrefix(name, "rank:"):
			n, err := strconv.Atoi(strings.TrimPrefix(name, "rank:"))
			if err != nil || n < 1 || n > 13 {
				return nil, fmt.Errorf("bad wild rank %q", name)
			}
			out = append(out, eval.Rule{Kind: eval.RankWild, Rank: uint8(n)})
		default:
			return nil, fmt.Errorf("unknown wild set %q", name)
		}
	}
	return out, nil
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
