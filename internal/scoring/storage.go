package scoring

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
)

// RankingStorage defines the interface for loading and saving ranking data.
// This allows for mocking the storage layer during tests.
type RankingStorage interface {
	// LoadAll loads all ranking entries, in stored order.
	LoadAll() ([]Entry, error)
	// SaveAll saves the entries, overwriting existing data.
	SaveAll(entries []Entry) error
}

// Load reads a ranking from storage.
func Load(storage RankingStorage, limit int) (*Ranking, error) {
	entries, err := storage.LoadAll()
	if err != nil {
		return nil, fmt.Errorf("could not load ranking: %w", err)
	}
	return NewRanking(entries, limit), nil
}

// Record loads the ranking, adds the entries and writes it back. It returns
// the updated ranking and, per entry, whether it was ranked.
func Record(storage RankingStorage, limit int, entries ...Entry) (*Ranking, []bool, error) {
	if rec, ok := storage.(recorder); ok {
		return rec.Record(limit, entries...)
	}
	return record(storage, limit, entries...)
}

// recorder is implemented by storages that need the whole load, add and save
// cycle to run as one step.
type recorder interface {
	Record(limit int, entries ...Entry) (*Ranking, []bool, error)
}

func record(storage RankingStorage, limit int, entries ...Entry) (*Ranking, []bool, error) {
	r, err := Load(storage, limit)
	if err != nil {
		return nil, nil, err
	}
	ranked := make([]bool, len(entries))
	for i, e := range entries {
		ranked[i] = r.Add(e)
	}
	if err := storage.SaveAll(r.Entries); err != nil {
		return nil, nil, fmt.Errorf("could not save ranking: %w", err)
	}
	return r, ranked, nil
}

// SyncStorage serializes access to a storage shared between goroutines.
// Record holds the lock for the whole load, add and save cycle.
type SyncStorage struct {
	mu      sync.Mutex
	storage RankingStorage
}

// NewSyncStorage wraps storage.
func NewSyncStorage(storage RankingStorage) *SyncStorage {
	return &SyncStorage{storage: storage}
}

func (s *SyncStorage) LoadAll() ([]Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.storage.LoadAll()
}

func (s *SyncStorage) SaveAll(entries []Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.storage.SaveAll(entries)
}

func (s *SyncStorage) Record(limit int, entries ...Entry) (*Ranking, []bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return record(s.storage, limit, entries...)
}

// DefaultDir returns the directory used for the game's data files.
func DefaultDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not get user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "go-memotest"), nil
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("error creating ranking directory: %w", err)
		}
	}
	return nil
}

// TextFormat selects the line layout of a TextFileStorage.
type TextFormat int

const (
	// FormatRanking stores "name;score" lines.
	FormatRanking TextFormat = iota
	// FormatHighScores stores "name,score,rows,columns" lines.
	FormatHighScores
)

// ParseTextFormat maps a format name to a TextFormat.
func ParseTextFormat(s string) (TextFormat, error) {
	switch strings.ToLower(s) {
	case "", "ranking":
		return FormatRanking, nil
	case "highscores":
		return FormatHighScores, nil
	}
	return 0, fmt.Errorf("unknown ranking format %q (use ranking or highscores)", s)
}

func (f TextFormat) sep() string {
	if f == FormatHighScores {
		return ","
	}
	return ";"
}

func (f TextFormat) fields() int {
	if f == FormatHighScores {
		return 4
	}
	return 2
}

// TextFileStorage is a RankingStorage backed by a delimited text file.
type TextFileStorage struct {
	path   string
	format TextFormat
}

// NewTextFileStorage creates a text storage at path.
func NewTextFileStorage(path string, format TextFormat) *TextFileStorage {
	return &TextFileStorage{path: path, format: format}
}

// LoadAll reads every well-formed line of the file. Lines with a missing
// separator are skipped.
func (s *TextFileStorage) LoadAll() ([]Entry, error) {
	file, err := os.Open(s.path)
	// If the file doesn't exist, it's not an error; return an empty slice.
	if os.IsNotExist(err) {
		return []Entry{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error opening ranking file for reading: %w", err)
	}
	defer file.Close()

	entries := make([]Entry, 0)
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		e, ok := s.parse(strings.TrimRight(scanner.Text(), "\r"))
		if !ok {
			continue
		}
		entries = append(entries, e)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading ranking line: %w", err)
	}

	return entries, nil
}

// parse splits a line from the right, so the name keeps any quote or
// separator it contains.
func (s *TextFileStorage) parse(line string) (Entry, bool) {
	sep := s.format.sep()
	rest := line
	nums := make([]string, s.format.fields()-1)
	for i := len(nums) - 1; i >= 0; i-- {
		cut := strings.LastIndex(rest, sep)
		if cut < 0 {
			return Entry{}, false
		}
		rest, nums[i] = rest[:cut], rest[cut+1:]
	}
	var e Entry
	e.Name = rest
	// Unparsable numbers read as zero, like atoi.
	e.Score, _ = strconv.Atoi(strings.TrimSpace(nums[0]))
	if s.format == FormatHighScores {
		e.Rows, _ = strconv.Atoi(strings.TrimSpace(nums[1]))
		e.Columns, _ = strconv.Atoi(strings.TrimSpace(nums[2]))
	}
	return e, true
}

// SaveAll writes all entries, one per line.
func (s *TextFileStorage) SaveAll(entries []Entry) error {
	if err := ensureDir(s.path); err != nil {
		return err
	}

	file, err := os.OpenFile(s.path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("error opening ranking file for writing: %w", err)
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	sep := s.format.sep()
	for _, e := range entries {
		name := strings.NewReplacer("\n", " ", "\r", " ").Replace(e.Name)
		line := name + sep + strconv.Itoa(e.Score)
		if s.format == FormatHighScores {
			line += sep + strconv.Itoa(e.Rows) + sep + strconv.Itoa(e.Columns)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("error writing ranking line: %w", err)
		}
	}
	return w.Flush()
}

// JSONFileStorage is an implementation of RankingStorage that uses a stream of
// JSON objects.
type JSONFileStorage struct {
	path string
}

// NewJSONFileStorage creates a JSON storage at path.
func NewJSONFileStorage(path string) *JSONFileStorage {
	return &JSONFileStorage{path: path}
}

// LoadAll reads and decodes all entries from the JSON file.
func (jfs *JSONFileStorage) LoadAll() ([]Entry, error) {
	file, err := os.Open(jfs.path)
	// If the file doesn't exist, it's not an error; return an empty slice.
	if os.IsNotExist(err) {
		return []Entry{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error opening ranking file for reading: %w", err)
	}
	defer file.Close()

	entries := make([]Entry, 0)
	decoder := json.NewDecoder(file)
	for decoder.More() {
		var entry Entry
		if err := decoder.Decode(&entry); err != nil {
			return nil, fmt.Errorf("error decoding JSON entry: %w", err)
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

// SaveAll encodes and writes all entries to the JSON file.
func (jfs *JSONFileStorage) SaveAll(entries []Entry) error {
	if err := ensureDir(jfs.path); err != nil {
		return err
	}

	file, err := os.OpenFile(jfs.path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("error opening ranking file for writing: %w", err)
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	encoder := json.NewEncoder(writer)

	for _, entry := range entries {
		if err := encoder.Encode(entry); err != nil {
			return fmt.Errorf("error encoding JSON entry: %w", err)
		}
	}

	return writer.Flush()
}
