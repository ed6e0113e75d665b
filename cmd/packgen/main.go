/*
Package main implements the offline dictionary pack builder.

packgen reads a raw lexical dump (line-delimited JSON, one record per
word sense group) and writes the versioned pack document the assist
engine loads at runtime:

	packgen -in en-dump.jsonl -lang en -out en.json

Records for other languages are skipped, so one multilingual dump can
feed several pack builds.
*/
package main

import (
	"flag"
	"os"

	"github.com/charmbracelet/log"

	"github.com/GendByteMaster/lexiserve/pkg/dictionary"
	"github.com/GendByteMaster/lexiserve/pkg/langres"
)

func main() {
	inPath := flag.String("in", "", "Path to the raw lexical dump (JSONL)")
	lang := flag.String("lang", langres.Fallback, "Language code to extract")
	outPath := flag.String("out", "", "Output pack path (default <lang>.json)")
	debugMode := flag.Bool("d", false, "Toggle debug mode")

	flag.Parse()

	if *debugMode {
		log.SetLevel(log.DebugLevel)
	}
	if *inPath == "" {
		log.Fatal("Missing -in dump path")
	}
	base := langres.BaseCode(*lang)
	if base == "" {
		log.Fatalf("Invalid language code %q", *lang)
	}
	if *outPath == "" {
		*outPath = base + ".json"
	}

	in, err := os.Open(*inPath)
	if err != nil {
		log.Fatalf("Opening dump: %v", err)
	}
	defer in.Close()

	pack, err := dictionary.BuildPack(in, base)
	if err != nil {
		log.Fatalf("Building pack: %v", err)
	}
	if len(pack.Entries) == 0 {
		log.Warnf("No %s records found in %s", base, *inPath)
	}

	data, err := pack.Encode()
	if err != nil {
		log.Fatalf("Encoding pack: %v", err)
	}
	if err := os.WriteFile(*outPath, data, 0o644); err != nil {
		log.Fatalf("Writing %s: %v", *outPath, err)
	}
	log.Infof("Wrote %s: %d entries, %d words", *outPath, len(pack.Entries), len(pack.Words))
}
