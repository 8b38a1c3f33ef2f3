package lookup

import (
	"bufio"
	"database/sql"
	"fmt"
	"os"
	"strings"

	_ "github.com/lib/pq"
)

// LoadFile reads stake addresses from a file, one per line. Lines may
// carry extra tab-separated columns (export formats often append a
// balance); only the first column is used. A header line whose first
// column is not a stake address is skipped.
func LoadFile(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("lookup: opening file: %w", err)
	}
	defer file.Close()

	var addresses []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		addr, _, _ := strings.Cut(line, "\t")
		if !strings.HasPrefix(addr, "stake") {
			continue
		}
		addresses = append(addresses, addr)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("lookup: scanning file: %w", err)
	}
	return addresses, nil
}

// LoadDatabase reads stake addresses from the stake_addresses table of
// a Postgres database.
func LoadDatabase(connStr string) ([]string, error) {
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("lookup: opening database: %w", err)
	}
	defer db.Close()

	rows, err := db.Query("SELECT address FROM stake_addresses")
	if err != nil {
		return nil, fmt.Errorf("lookup: querying addresses: %w", err)
	}
	defer rows.Close()

	var addresses []string
	for rows.Next() {
		var addr string
		if err := rows.Scan(&addr); err != nil {
			return nil, fmt.Errorf("lookup: scanning row: %w", err)
		}
		addresses = append(addresses, addr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("lookup: reading rows: %w", err)
	}
	return addresses, nil
}
