package assets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LoadSets loads art sets from a list of paths (files or directories).
// Directories are scanned one level deep for .yaml/.yml files.
func LoadSets(paths []string) ([]ArtSet, error) {
	var sets []ArtSet

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("failed to access path %s: %w", path, err)
		}

		if info.IsDir() {
			files, err := os.ReadDir(path)
			if err != nil {
				return nil, fmt.Errorf("failed to read dir %s: %w", path, err)
			}
			for _, entry := range files {
				if entry.IsDir() || !isYAML(entry.Name()) {
					continue
				}
				s, err := loadFile(filepath.Join(path, entry.Name()))
				if err != nil {
					return nil, err
				}
				sets = append(sets, s...)
			}
		} else {
			s, err := loadFile(path)
			if err != nil {
				return nil, err
			}
			sets = append(sets, s...)
		}
	}

	return sets, nil
}

func isYAML(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".yaml" || ext == ".yml"
}

func loadFile(path string) ([]ArtSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %s: %w", path, err)
	}

	sets, err := ParseSets(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse art sets in %s: %w", path, err)
	}

	for i, s := range sets {
		if s.ID <= 0 {
			return nil, fmt.Errorf("art set #%d in %s has no id", i+1, path)
		}
	}

	return sets, nil
}
