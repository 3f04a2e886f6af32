package scoring

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
)

func TestJSONFileStorage_SaveAndLoad(t *testing.T) {
	testPath := filepath.Join(t.TempDir(), "nested", "ranking.json")
	storage := NewJSONFileStorage(testPath)

	entries, err := storage.LoadAll()
	if err != nil {
		t.Errorf("LoadAll on non-existent file returned error: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("Expected 0 entries, got %d", len(entries))
	}

	testEntries := []Entry{
		{Name: "Ana", Score: 200, Rows: 4, Columns: 5, MatchID: "m1", Timestamp: "2026-01-02T10:00:00Z"},
		{Name: "Beto", Score: 100},
	}
	if err := storage.SaveAll(testEntries); err != nil {
		t.Fatalf("SaveAll returned error: %v", err)
	}

	if _, err := os.Stat(testPath); os.IsNotExist(err) {
		t.Errorf("File was not created at %s", testPath)
	}

	loaded, err := storage.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll returned error: %v", err)
	}
	if len(loaded) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(loaded))
	}
	if loaded[0] != testEntries[0] || loaded[1] != testEntries[1] {
		t.Errorf("Loaded content mismatch. Got: %+v", loaded)
	}
}

func TestJSONFileStorage_CorruptFile(t *testing.T) {
	testPath := filepath.Join(t.TempDir(), "corrupt.json")
	if err := os.WriteFile(testPath, []byte("{ not valid json }"), 0644); err != nil {
		t.Fatalf("Failed to write corrupt file: %v", err)
	}

	if _, err := NewJSONFileStorage(testPath).LoadAll(); err == nil {
		t.Error("Expected error when loading corrupt file, got nil")
	}
}

func TestJSONFileStorage_EmptyFile(t *testing.T) {
	testPath := filepath.Join(t.TempDir(), "empty.json")
	if err := os.WriteFile(testPath, []byte(""), 0644); err != nil {
		t.Fatalf("Failed to write empty file: %v", err)
	}

	entries, err := NewJSONFileStorage(testPath).LoadAll()
	if err != nil {
		t.Errorf("LoadAll on empty file returned error: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("Expected 0 entries from empty file, got %d", len(entries))
	}
}

func TestTextFileStorage_RankingFormat(t *testing.T) {
	testPath := filepath.Join(t.TempDir(), "ranking.txt")
	content := "Ana;120\nbroken line\nBeto;abc\nCarla;95\n"
	if err := os.WriteFile(testPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	storage := NewTextFileStorage(testPath, FormatRanking)
	entries, err := storage.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll returned error: %v", err)
	}

	// The line without a separator is skipped, a bad number reads as zero.
	if len(entries) != 3 {
		t.Fatalf("Expected 3 entries, got %d: %+v", len(entries), entries)
	}
	if entries[0].Name != "Ana" || entries[0].Score != 120 {
		t.Errorf("Unexpected first entry: %+v", entries[0])
	}
	if entries[1].Name != "Beto" || entries[1].Score != 0 {
		t.Errorf("Unexpected second entry: %+v", entries[1])
	}

	if err := storage.SaveAll(entries); err != nil {
		t.Fatalf("SaveAll returned error: %v", err)
	}
	data, _ := os.ReadFile(testPath)
	if string(data) != "Ana;120\nBeto;0\nCarla;95\n" {
		t.Errorf("Unexpected file content: %q", data)
	}
}

func TestTextFileStorage_HighScoresFormat(t *testing.T) {
	testPath := filepath.Join(t.TempDir(), "highscores.txt")
	storage := NewTextFileStorage(testPath, FormatHighScores)

	in := []Entry{{Name: "Ana", Score: 88, Rows: 3, Columns: 4}}
	if err := storage.SaveAll(in); err != nil {
		t.Fatalf("SaveAll returned error: %v", err)
	}

	data, _ := os.ReadFile(testPath)
	if string(data) != "Ana,88,3,4\n" {
		t.Errorf("Unexpected file content: %q", data)
	}

	out, err := storage.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll returned error: %v", err)
	}
	if len(out) != 1 || out[0] != in[0] {
		t.Errorf("Round trip mismatch: %+v", out)
	}
}

func TestTextFileStorage_QuotedName(t *testing.T) {
	testPath := filepath.Join(t.TempDir(), "ranking.txt")
	content := "\"Tano;120\nBeto;90\r\nCar;la;80\n"
	if err := os.WriteFile(testPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	storage := NewTextFileStorage(testPath, FormatRanking)
	entries, err := storage.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll returned error: %v", err)
	}
	want := []Entry{{Name: "\"Tano", Score: 120}, {Name: "Beto", Score: 90}, {Name: "Car;la", Score: 80}}
	if len(entries) != len(want) {
		t.Fatalf("Expected %d entries, got %d: %+v", len(want), len(entries), entries)
	}
	for i := range want {
		if entries[i] != want[i] {
			t.Errorf("entry %d: expected %+v, got %+v", i, want[i], entries[i])
		}
	}

	if err := storage.SaveAll(entries); err != nil {
		t.Fatalf("SaveAll returned error: %v", err)
	}
	data, _ := os.ReadFile(testPath)
	if string(data) != "\"Tano;120\nBeto;90\nCar;la;80\n" {
		t.Errorf("Unexpected file content: %q", data)
	}
}

func TestParseTextFormat(t *testing.T) {
	if f, err := ParseTextFormat("HighScores"); err != nil || f != FormatHighScores {
		t.Errorf("expected FormatHighScores, got %v, %v", f, err)
	}
	if f, err := ParseTextFormat(""); err != nil || f != FormatRanking {
		t.Errorf("expected FormatRanking by default, got %v, %v", f, err)
	}
	if _, err := ParseTextFormat("xml"); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestSQLiteStorage(t *testing.T) {
	s, err := OpenSQLite(filepath.Join(t.TempDir(), "ranking.db"))
	if err != nil {
		t.Fatalf("OpenSQLite failed: %v", err)
	}
	defer s.Close()

	entries, err := s.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll on fresh db: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("Expected empty ranking, got %+v", entries)
	}

	r, ranked, err := Record(s, 2,
		Entry{Name: "Beto", Score: 30},
		Entry{Name: "Carla", Score: 20},
		Entry{Name: "Ana", Score: 10},
	)
	if err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	if len(r.Entries) != 2 {
		t.Fatalf("Expected 2 ranked entries, got %d", len(r.Entries))
	}
	if !ranked[0] || !ranked[1] || ranked[2] {
		t.Errorf("Unexpected ranked flags: %v", ranked)
	}

	stored, err := s.LoadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(stored) != 2 || stored[0].Name != "Beto" || stored[1].Name != "Carla" {
		t.Errorf("Unexpected stored ranking: %+v", stored)
	}
}

func TestSyncStorage_ConcurrentRecord(t *testing.T) {
	store := NewSyncStorage(NewJSONFileStorage(filepath.Join(t.TempDir(), "ranking.json")))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if _, _, err := Record(store, DefaultLimit, Entry{Name: "p", Score: i}); err != nil {
				t.Errorf("Record failed: %v", err)
			}
		}(i)
	}
	wg.Wait()

	entries, err := store.LoadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 8 {
		t.Errorf("Expected every concurrent entry to be kept, got %d", len(entries))
	}
}
