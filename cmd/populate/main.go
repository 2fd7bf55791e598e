package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/lealre/recitation-backend/internal/mongodb"
	"github.com/lealre/recitation-backend/internal/quran"
)

// verseRecord is one entry of the import file, an array of verses exported
// from a text corpus.
type verseRecord struct {
	SurahId     int    `json:"surahId"`
	Number      int    `json:"number"`
	Text        string `json:"text"`
	Translation string `json:"translation"`
}

func main() {
	_ = godotenv.Load()

	file := flag.String("file", "", "Path to the JSON file with verse text")
	flag.Parse()

	if *file == "" {
		log.Fatal("-file is required")
	}

	data, err := os.ReadFile(*file)
	if err != nil {
		log.Fatalf("Failed to read %s: %v", *file, err)
	}

	var records []verseRecord
	if err := json.Unmarshal(data, &records); err != nil {
		log.Fatalf("Failed to parse %s: %v", *file, err)
	}

	ayahs := make([]mongodb.AyahDb, 0, len(records))
	skipped := 0
	for _, record := range records {
		if !quran.ValidVerse(record.SurahId, record.Number) {
			skipped++
			continue
		}
		ayahs = append(ayahs, mongodb.AyahDb{
			Id:          quran.VerseKey(record.SurahId, record.Number),
			SurahId:     record.SurahId,
			Number:      record.Number,
			Text:        record.Text,
			Translation: record.Translation,
		})
	}

	ctx := context.Background()
	client := mongodb.ConnectMongo(ctx)
	defer client.Disconnect(ctx)

	db := mongodb.NewDB(client)
	written, err := db.UpsertAyahs(ctx, ayahs)
	if err != nil {
		log.Fatalf("Failed to upsert verses: %v", err)
	}

	fmt.Printf("Imported %d verses (%d written, %d skipped as invalid)\n", len(ayahs), written, skipped)
}
