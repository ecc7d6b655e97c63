package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const migrationsDir = "db/migrations"

func main() {
	name := flag.String("name", "", "migration name, e.g. add_scores_index")
	flag.Parse()

	slug := strings.TrimSpace(*name)
	if slug == "" {
		log.Fatal("-name is required")
	}
	if strings.Contains(slug, " ") {
		log.Fatal("-name must not contain spaces")
	}

	if err := os.MkdirAll(migrationsDir, 0o755); err != nil {
		log.Fatalf("create %s: %v", migrationsDir, err)
	}
	stamp := time.Now().UTC().Format("20060102150405")
	for _, direction := range []string{"up", "down"} {
		path := filepath.Join(migrationsDir, fmt.Sprintf("%s_%s.%s.sql", stamp, slug, direction))
		if err := createStub(path, direction); err != nil {
			log.Fatalf("create %s migration: %v", direction, err)
		}
		log.Printf("created %s", path)
	}
}

// createStub refuses to overwrite: an existing file at the target path means
// a version collision, not a stub to regenerate.
func createStub(path, direction string) error {
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return err
	}
	defer file.Close()
	_, err = fmt.Fprintf(file, "-- %s migration\n", direction)
	return err
}
