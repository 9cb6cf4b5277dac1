package storage

import "testing"

func TestTopScoresOrderAndIsolation(t *testing.T) {
	store := openTestStore(t)

	for _, s := range []int{100, 50, 200} {
		if _, err := store.SaveScore("superrun", s); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	store.SaveScore("superrun_classic", 500)

	scores, err := store.TopScores("superrun", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	want := []int{200, 100, 50}
	if len(scores) != len(want) {
		t.Fatalf("got %d scores, expected %d", len(scores), len(want))
	}
	for i, s := range want {
		if scores[i].Score != s || scores[i].GameID != "superrun" {
			t.Errorf("scores[%d] = %+v, expected %d", i, scores[i], s)
		}
	}
}

func TestTopScoresLimitAndTies(t *testing.T) {
	store := openTestStore(t)

	first, _ := store.SaveScore("superrun", 300)
	second, _ := store.SaveScore("superrun", 300)
	store.SaveScore("superrun", 100)
	store.SaveScore("superrun", 200)

	scores, err := store.TopScores("superrun", 2)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 2 {
		t.Fatalf("limit ignored: got %d scores", len(scores))
	}
	if scores[0].ID != first || scores[1].ID != second {
		t.Errorf("ties out of insertion order: %+v", scores)
	}

	// Non-positive limit falls back to 10
	for i := 0; i < 12; i++ {
		store.SaveScore("superrun", i)
	}
	if scores, _ := store.TopScores("superrun", 0); len(scores) != 10 {
		t.Errorf("default limit returned %d scores", len(scores))
	}
}

func TestAllScores(t *testing.T) {
	store := openTestStore(t)
	for i := 0; i < 20; i++ {
		store.SaveScore("superrun", i*10)
	}

	scores, err := store.AllScores("superrun")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(scores) != 20 {
		t.Errorf("got %d scores, expected 20", len(scores))
	}
	if scores[0].Score != 190 || scores[19].Score != 0 {
		t.Errorf("unexpected order: first %d last %d", scores[0].Score, scores[19].Score)
	}
}

func TestHighScore(t *testing.T) {
	store := openTestStore(t)

	if high, err := store.HighScore("superrun"); err != nil || high != 0 {
		t.Fatalf("HighScore() on empty = %d, %v", high, err)
	}

	store.SaveScore("superrun", 100)
	store.SaveScore("superrun", 300)
	store.SaveScore("superrun", 200)

	if high, _ := store.HighScore("superrun"); high != 300 {
		t.Errorf("HighScore() = %d, expected 300", high)
	}
}

func TestScoreStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.ScoreStats("superrun")
	if err != nil {
		t.Fatalf("ScoreStats() failed: %v", err)
	}
	if empty.Count != 0 || empty.Best != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	store.SaveScore("superrun", 100)
	store.SaveScore("superrun", 300)
	store.SaveScore("superrun_classic", 1000)

	stats, err := store.ScoreStats("superrun")
	if err != nil {
		t.Fatalf("ScoreStats() failed: %v", err)
	}
	if stats.Count != 2 || stats.Best != 300 || stats.Average != 200 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed not set")
	}
}

func TestClearScores(t *testing.T) {
	store := openTestStore(t)
	store.SaveScore("superrun", 100)
	store.SaveScore("superrun_classic", 300)

	if err := store.ClearScores("superrun"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}
	if high, _ := store.HighScore("superrun"); high != 0 {
		t.Errorf("scores left after clear: best %d", high)
	}
	if high, _ := store.HighScore("superrun_classic"); high != 300 {
		t.Error("clearing one game touched another")
	}
}
