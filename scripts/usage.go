package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

// Downloads a monthly chaos stats dump from smogon so it can be bundled
// or passed to global.GlobalInit
func usageMain(usageFileName string, args []string) {
	now := time.Now()
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	defaultMonth := firstOfMonth.AddDate(0, -1, 0).Format("2006-01")

	flags := flag.NewFlagSet("usage", flag.ExitOnError)
	month := flags.String("month", defaultMonth, "Stats month to download, in YYYY-MM form")
	format := flags.String("format", "gen9vgc2026regfbo3", "Smogon format id")
	rating := flags.Int("rating", 0, "Rating cutoff (0, 1500, 1630 or 1760)")

	if err := flags.Parse(args); err != nil {
		log.Fatal(err)
	}

	url := fmt.Sprintf("https://www.smogon.com/stats/%s/chaos/%s-%d.json", *month, *format, *rating)

	log.Printf("Downloading usage stats from %s\n", url)

	response, err := http.Get(url)
	if err != nil {
		panic(err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		log.Fatalf("Bad response for %s: %s", url, response.Status)
	}

	responseBytes, err := io.ReadAll(response.Body)
	if err != nil {
		panic(err)
	}

	if err := os.MkdirAll(filepath.Dir(usageFileName), 0755); err != nil {
		panic(err)
	}

	os.Remove(usageFileName)

	f, err := os.Create(usageFileName)
	if err != nil {
		panic(err)
	}
	defer f.Close()

	f.Write(responseBytes)

	log.Printf("Wrote %d bytes to %s\n", len(responseBytes), usageFileName)
}
