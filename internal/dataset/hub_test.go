package dataset

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeSource(t *testing.T, dir, weather, matches string) Source {
	t.Helper()
	src := Source{
		WeatherPath: filepath.Join(dir, "weather.csv"),
		MatchesPath: filepath.Join(dir, "matches.csv"),
	}
	if err := os.WriteFile(src.WeatherPath, []byte(weather), 0o644); err != nil {
		t.Fatalf("write weather csv: %v", err)
	}
	if err := os.WriteFile(src.MatchesPath, []byte(matches), 0o644); err != nil {
		t.Fatalf("write matches csv: %v", err)
	}
	return src
}

const (
	hubWeatherCSV = "date,city,temp_c,humidity,weather_type\n" +
		"2023-04-01,Mumbai,35,60,sunny\n" +
		"2023-04-02,Chennai,33,78,humid\n"
	hubMatchesCSV = "date,city,season,team1,team2,venue,total_runs\n" +
		"2023-04-01,Mumbai,2023,MI,CSK,Wankhede,210\n"
)

func TestHubReload(t *testing.T) {
	src := writeSource(t, t.TempDir(), hubWeatherCSV, hubMatchesCSV)
	hub := NewHub(src)

	if got := hub.Snapshot(); len(got.Rows) != 0 {
		t.Fatalf("fresh hub has %d rows, want 0", len(got.Rows))
	}

	table, err := hub.Reload()
	if err != nil {
		t.Fatalf("Reload() error = %v", err)
	}
	if table.WeatherRows != 2 || table.MatchRows != 1 || len(table.Rows) != 1 {
		t.Errorf("Reload() = %d weather, %d matches, %d merged; want 2/1/1",
			table.WeatherRows, table.MatchRows, len(table.Rows))
	}
	if table.LoadedAt.IsZero() {
		t.Error("Reload() did not stamp LoadedAt")
	}

	snap := hub.Snapshot()
	if len(snap.Rows) != 1 || snap.Rows[0].City != "Mumbai" {
		t.Errorf("Snapshot() rows = %+v, want the Mumbai row", snap.Rows)
	}
}

func TestHubReloadKeepsPreviousTableOnError(t *testing.T) {
	dir := t.TempDir()
	src := writeSource(t, dir, hubWeatherCSV, hubMatchesCSV)
	hub := NewHub(src)

	if _, err := hub.Reload(); err != nil {
		t.Fatalf("initial Reload() error = %v", err)
	}

	// Break the weather file: required column gone.
	broken := "date,city\n2023-04-01,Mumbai\n"
	if err := os.WriteFile(src.WeatherPath, []byte(broken), 0o644); err != nil {
		t.Fatalf("overwrite weather csv: %v", err)
	}

	if _, err := hub.Reload(); err == nil {
		t.Fatal("Reload() after breaking the file returned nil error")
	}
	if hub.LastError() == nil {
		t.Error("LastError() = nil after a failed reload")
	}
	if snap := hub.Snapshot(); len(snap.Rows) != 1 {
		t.Errorf("Snapshot() after failed reload has %d rows, want the previous 1", len(snap.Rows))
	}

	// Repairing the file clears the recorded error.
	if err := os.WriteFile(src.WeatherPath, []byte(hubWeatherCSV), 0o644); err != nil {
		t.Fatalf("restore weather csv: %v", err)
	}
	if _, err := hub.Reload(); err != nil {
		t.Fatalf("Reload() after repair error = %v", err)
	}
	if hub.LastError() != nil {
		t.Errorf("LastError() = %v after a successful reload, want nil", hub.LastError())
	}
}

func TestWatcherReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	src := writeSource(t, dir, hubWeatherCSV, hubMatchesCSV)
	hub := NewHub(src)
	if _, err := hub.Reload(); err != nil {
		t.Fatalf("initial Reload() error = %v", err)
	}

	w := NewWatcher(hub)
	w.debounce = 20 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	// Give the watcher a moment to register before writing.
	time.Sleep(100 * time.Millisecond)

	extra := hubMatchesCSV + "2023-04-02,Chennai,2023,CSK,RR,Chepauk,325\n"
	if err := os.WriteFile(src.MatchesPath, []byte(extra), 0o644); err != nil {
		t.Fatalf("rewrite matches csv: %v", err)
	}

	deadline := time.After(5 * time.Second)
	for {
		if len(hub.Snapshot().Rows) == 2 {
			break
		}
		select {
		case <-deadline:
			t.Fatalf("watcher never reloaded: %d rows", len(hub.Snapshot().Rows))
		case <-time.After(20 * time.Millisecond):
		}
	}

	cancel()
	if err := <-done; err != nil {
		t.Errorf("Run() error = %v", err)
	}
}
