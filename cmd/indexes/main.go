package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/lealre/recitation-backend/internal/mongodb"
)

func main() {
	_ = godotenv.Load()

	reset := flag.Bool("reset", false, "Delete existing indexes and recreate them")
	flag.Parse()

	ctx := context.Background()
	client := mongodb.ConnectMongo(ctx)
	defer client.Disconnect(ctx)

	database := client.Database(mongodb.DatabaseName())

	if err := mongodb.CreateAllIndexes(ctx, database, *reset); err != nil {
		log.Fatalf("Failed to create indexes: %v", err)
	}
	fmt.Println("Indexes created successfully")
}
