// Command seedrecover searches for a partially-known Cardano seed
// phrase and reports candidates whose stake address is known or active
// on chain.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/lmittmann/tint"

	"seedrecover/internal/keyderiv"
	"seedrecover/internal/lookup"
	"seedrecover/internal/mnemonic"
	"seedrecover/internal/oracle"
	"seedrecover/internal/search"
	"seedrecover/internal/verify"
	"seedrecover/internal/wordlist"
)

var (
	wordlistFile  = flag.String("wordlist", "", "Wordlist file to use (default: built-in English)")
	similar       = flag.Int("similar", 0, "Try similar words up to this edit distance")
	orderSearch   = flag.Bool("order", false, "Try different orders of seed words")
	phraseLength  = flag.Int("length", 0, "Length of seed phrase (default: known words rounded up to a multiple of 3)")
	missingFlag   = flag.String("missing", "", "Comma-separated 1-based missing word positions")
	addressFlag   = flag.String("address", "", "Comma-separated stake addresses to search for")
	addressFile   = flag.String("addresses", "", "Path to file with stake addresses (one per line, TSV tolerated)")
	dbConn        = flag.String("db", "", "Postgres connection string with a stake_addresses table")
	blockfrostKey = flag.String("blockfrost", "", "Blockfrost project ID for on-chain activity checks")
	testnet       = flag.Bool("testnet", false, "Derive testnet stake addresses")
	verbose       = flag.Bool("v", false, "Enable debug logging")
)

func main() {
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	})))

	if err := run(flag.Args()); err != nil {
		slog.Error("seedrecover failed", "error", err)
		os.Exit(1)
	}
}

func run(known []string) error {
	wl, err := loadWordlist(*wordlistFile)
	if err != nil {
		return err
	}

	length, err := resolveLength(*phraseLength, len(known))
	if err != nil {
		return err
	}
	slog.Info("searching", "length", length, "known", len(known), "missing", length-len(known))

	missing, err := parseMissing(*missingFlag, length)
	if err != nil {
		return err
	}

	space, err := search.Build(known, wl, *similar, length, missing)
	if err != nil {
		return err
	}

	verifier, err := buildVerifier()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	network := keyderiv.Mainnet
	if *testnet {
		network = keyderiv.Testnet
	}

	pipeline := &search.Pipeline{
		Enum:     search.NewEnumerator(space, *orderSearch),
		Wordlist: wl,
		Network:  network,
		Verifier: verifier,
	}

	stats, runErr := pipeline.Run(ctx, reportMatch)
	fmt.Fprintf(os.Stderr, "%10d seed phrases checked.\n", stats.Enumerated)
	fmt.Fprintf(os.Stderr, "%10d fulfilled checksum.\n", stats.ChecksumValid)
	fmt.Fprintf(os.Stderr, "%10d without repetitions.\n", stats.Distinct)
	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		return runErr
	}
	return nil
}

func reportMatch(m search.Match) {
	switch {
	case m.Searched && m.Active:
		fmt.Println("Searched and active stake address found:")
	case m.Searched:
		fmt.Println("Searched stake address found:")
	case m.Active:
		fmt.Println("Active stake address found:")
	}
	fmt.Printf("%s: %s\n", m.Address, strings.Join(m.Words, " "))
}

func loadWordlist(path string) (*wordlist.Wordlist, error) {
	if path == "" {
		return wordlist.Default(), nil
	}
	return wordlist.Load(path)
}

// resolveLength applies the default (known words rounded up to a
// multiple of 3) and validates the result.
func resolveLength(length, known int) (int, error) {
	if length == 0 {
		length = known
		if known%3 != 0 {
			length += 3 - known%3
		}
		if length == 0 {
			length = 3
		}
		slog.Info("length not set, using smallest length for given phrase", "length", length)
	}
	if length%3 != 0 {
		return 0, fmt.Errorf("length %d is not a multiple of 3", length)
	}
	if !mnemonic.ValidLength(length) {
		return 0, fmt.Errorf("length %d outside supported range 3..%d", length, mnemonic.MaxWords)
	}
	if known > length {
		return 0, fmt.Errorf("more known words (%d) than length %d", known, length)
	}
	return length, nil
}

// parseMissing converts the 1-based CLI positions to 0-based slots.
func parseMissing(s string, length int) ([]int, error) {
	if s == "" {
		return nil, nil
	}
	var missing []int
	for _, field := range strings.Split(s, ",") {
		pos, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return nil, fmt.Errorf("invalid missing position %q", field)
		}
		if pos < 1 || pos > length {
			return nil, fmt.Errorf("missing position %d outside phrase of length %d", pos, length)
		}
		missing = append(missing, pos-1)
	}
	return missing, nil
}

func buildVerifier() (*verify.Verifier, error) {
	var addresses []string
	configured := false

	if *addressFlag != "" {
		configured = true
		for _, addr := range strings.Split(*addressFlag, ",") {
			addresses = append(addresses, strings.TrimSpace(addr))
		}
	}
	if *addressFile != "" {
		configured = true
		fromFile, err := lookup.LoadFile(*addressFile)
		if err != nil {
			return nil, err
		}
		addresses = append(addresses, fromFile...)
	}
	if *dbConn != "" {
		configured = true
		fromDB, err := lookup.LoadDatabase(*dbConn)
		if err != nil {
			return nil, err
		}
		addresses = append(addresses, fromDB...)
	}

	var set *lookup.StakeSet
	if configured {
		set = lookup.NewStakeSet(addresses)
		slog.Info("loaded stake addresses", "count", set.Len())
	}

	var activity verify.ActivityOracle
	if *blockfrostKey != "" {
		client, err := oracle.New(*blockfrostKey, *testnet)
		if err != nil {
			// The search is still worth running on the remaining
			// backends; the broken credential is reported once here.
			slog.Error("oracle unavailable", "error", err)
		} else {
			activity = client
		}
	}

	return verify.New(set, activity, slog.Default()), nil
}
