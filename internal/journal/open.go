package journal

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// Open returns a store preloaded from path and makes sure the directory
// exists for later saves. A missing file yields an empty store; malformed
// lines are logged and skipped.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("ensure journal dir: %w", err)
	}
	s := New()
	res, err := s.LoadFromFile(path)
	var nf *NotFoundError
	if errors.As(err, &nf) {
		log.Printf("📂 Journal %s does not exist yet, starting empty", path)
		return s, nil
	}
	if err != nil {
		return nil, err
	}
	for _, f := range res.Failures {
		log.Printf("⚠️ Warning: could not load %s %v", path, f)
	}
	log.Printf("📂 Loaded %d entries from %s", res.Loaded, path)
	return s, nil
}
