package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/superrun/internal/storage"
)

func TestScoreboardViews(t *testing.T) {
	store := testStore(t)
	store.SaveScore("superrun", 900)
	store.SaveRun(storage.RunRecord{GameID: "superrun", Outcome: "won", Score: 10000, Duration: 95 * time.Second})

	m := NewScoreboardModel(store, 100, 30, ViewScores)
	if len(m.scores) != 1 || m.scores[0].Score != 900 {
		t.Fatalf("expected one score, got %+v", m.scores)
	}
	if !strings.Contains(m.View(), "HIGH SCORES") {
		t.Error("expected high scores title")
	}

	next, _ := m.Update(keyMsg("v"))
	m = next.(ScoreboardModel)
	if m.view != ViewRuns {
		t.Fatal("expected run log view")
	}
	if len(m.runs) != 1 || m.stats == nil || m.stats.Wins != 1 {
		t.Fatalf("expected one won run, got runs=%+v stats=%+v", m.runs, m.stats)
	}
	view := m.View()
	if !strings.Contains(view, "RUN LOG") || !strings.Contains(view, "1:35") {
		t.Errorf("unexpected run log view:\n%s", view)
	}

	// Switching game reloads the selected view
	next, _ = m.Update(keyMsg("tab"))
	m = next.(ScoreboardModel)
	if m.currentGameID() != "superrun_classic" || len(m.runs) != 0 {
		t.Errorf("expected empty classic run log, got %s with %d runs", m.currentGameID(), len(m.runs))
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0:00"},
		{59 * time.Second, "0:59"},
		{61500 * time.Millisecond, "1:02"},
		{10 * time.Minute, "10:00"},
	}
	for _, tt := range tests {
		if got := formatDuration(tt.d); got != tt.want {
			t.Errorf("formatDuration(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestScoreboardScoreStatsLine(t *testing.T) {
	store := testStore(t)
	store.SaveScore("superrun", 400)
	store.SaveScore("superrun", 800)

	m := NewScoreboardModel(store, 100, 30, ViewScores)
	if m.scoreStats == nil || m.scoreStats.Count != 2 {
		t.Fatalf("expected stats for two scores, got %+v", m.scoreStats)
	}
	if line := m.renderStats(); !strings.Contains(line, "2 games") || !strings.Contains(line, "average 600") {
		t.Errorf("renderStats() = %q", line)
	}
}

func TestScoreboardEmptyAndWrap(t *testing.T) {
	m := NewScoreboardModel(nil, 60, 20, ViewScores)
	if !strings.Contains(m.View(), "No scores recorded yet.") {
		t.Error("expected empty message without a store")
	}
	if m.renderStats() != "" {
		t.Error("expected no stats line without a store")
	}

	first := m.currentGameID()
	next, _ := m.Update(keyMsg("shift+tab"))
	m = next.(ScoreboardModel)
	if m.currentGameID() == first && len(m.games) > 1 {
		t.Error("shift+tab did not move the cursor")
	}
	for range m.games {
		next, _ = m.Update(keyMsg("tab"))
		m = next.(ScoreboardModel)
	}
	next, _ = m.Update(keyMsg("tab"))
	m = next.(ScoreboardModel)
	if m.currentGameID() != first {
		t.Errorf("wrap-around landed on %s, expected %s", m.currentGameID(), first)
	}
}

func TestScoreboardBackAndQuit(t *testing.T) {
	m := NewScoreboardModel(nil, 80, 24, ViewRuns)

	next, cmd := m.Update(keyMsg("esc"))
	if !next.(ScoreboardModel).IsGoingBack() || cmd == nil {
		t.Error("esc should go back to the launcher")
	}

	next, cmd = m.Update(keyMsg("q"))
	if !next.(ScoreboardModel).IsQuitting() || cmd == nil {
		t.Error("q should quit")
	}
}
