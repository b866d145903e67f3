package phrases

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/f3rmion/fourzi/internal/fourzi"
)

// JSONLLoader reads one {"phrase": ..., "score": ...} object per line.
type JSONLLoader struct {
	path string
}

// NewJSONLLoader creates a loader for the JSON lines file at path.
func NewJSONLLoader(path string) *JSONLLoader {
	return &JSONLLoader{path: path}
}

// LoadPhrases reads the file, skipping blank and malformed lines.
func (l *JSONLLoader) LoadPhrases(ctx context.Context) (fourzi.Pool, error) {
	file, err := os.Open(l.path)
	if err != nil {
		return nil, fmt.Errorf("opening phrases file: %w", err)
	}
	defer file.Close()

	var entries []fourzi.Entry
	scanner := bufio.NewScanner(file)
	lineNum := 0
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		lineNum++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var entry fourzi.Entry
		if err := json.Unmarshal(line, &entry); err != nil {
			log.Debug().Err(err).Int("line", lineNum).Str("path", l.path).Msg("skipping malformed line")
			continue
		}
		entries = append(entries, entry)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading phrases file: %w", err)
	}

	return nonEmpty(Clean(entries), l.path)
}
