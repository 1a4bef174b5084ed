package main

import (
	"flag"
	"log"
	"os"
	"strings"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// One-shot migration runner: splits the schema file into statements and
// executes them in order. The first failure aborts the run.
func main() {
	dsn := flag.String("dsn", "wecamp.db", "sqlite database path")
	schema := flag.String("schema", "migrations/schema.sql", "schema file to apply")
	flag.Parse()

	raw, err := os.ReadFile(*schema)
	if err != nil {
		log.Fatalf("[migrate] read %s: %v", *schema, err)
	}

	db, err := sqlx.Open("sqlite", *dsn)
	if err != nil {
		log.Fatalf("[migrate] open %s: %v", *dsn, err)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		log.Fatalf("[migrate] ping %s: %v", *dsn, err)
	}

	applied := 0
	for _, stmt := range strings.Split(string(raw), ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		if _, err := db.Exec(stmt); err != nil {
			log.Fatalf("[migrate] statement %d failed: %v\n%s", applied+1, err, stmt)
		}
		applied++
	}
	log.Printf("[migrate] applied %d statements from %s to %s", applied, *schema, *dsn)
}
