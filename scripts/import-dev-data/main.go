package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"tour-booking-api/config"
	"tour-booking-api/internal/tour"
	reviewRepo "tour-booking-api/internal/review/repository/mongo"
	tourRepo "tour-booking-api/internal/tour/repository/mongo"
	userRepo "tour-booking-api/internal/user/repository/mongo"
	"tour-booking-api/pkg/log"
	"tour-booking-api/pkg/mongodb"
)

// idFields hold ObjectID hex strings in the seed files.
var idFields = map[string]bool{"_id": true, "tour": true, "user": true, "guides": true}

// dateLayouts are the startDates spellings found in the seed files.
var dateLayouts = []string{time.RFC3339, "2006-01-02,15:04", "2006-01-02T15:04", "2006-01-02"}

func main() {
	importData := flag.Bool("import", false, "load tours, users and reviews from the data dir")
	deleteData := flag.Bool("delete", false, "delete every tour, user and review")
	dir := flag.String("dir", "dev-data/data", "directory holding tours.json, users.json and reviews.json")
	flag.Parse()

	if *importData == *deleteData {
		fmt.Println("Usage: go run scripts/import-dev-data/main.go --import|--delete [--dir dev-data/data]")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := log.Init(log.ZapConfig{
		Level:        "info",
		Mode:         "development",
		Encoding:     "console",
		ColorEnabled: true,
	})

	ctx := context.Background()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Password: cfg.Mongo.Password,
		Database: cfg.Mongo.Database,
		Timeout:  cfg.Mongo.Timeout,
	})
	if err != nil {
		logger.Fatalf(ctx, "Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)
	logger.Info(ctx, "DB connected")

	collections := []struct {
		name string
		file string
	}{
		{tourRepo.Collection, "tours.json"},
		{userRepo.Collection, "users.json"},
		{reviewRepo.Collection, "reviews.json"},
	}

	if *deleteData {
		for _, c := range collections {
			res, err := db.Collection(c.name).DeleteMany(ctx, bson.M{})
			if err != nil {
				logger.Fatalf(ctx, "Failed to delete %s: %v", c.name, err)
			}
			logger.Infof(ctx, "Deleted %d %s", res.DeletedCount, c.name)
		}
		logger.Info(ctx, "Data successfully deleted!")
		return
	}

	for _, c := range collections {
		docs, err := readSeed(filepath.Join(*dir, c.file))
		if err != nil {
			logger.Fatalf(ctx, "Failed to read %s: %v", c.file, err)
		}
		if c.name == tourRepo.Collection {
			for _, d := range docs {
				prepareTour(d)
			}
		}
		if len(docs) == 0 {
			continue
		}

		items := make([]any, len(docs))
		for i, d := range docs {
			items[i] = d
		}
		res, err := db.Collection(c.name).InsertMany(ctx, items)
		if err != nil {
			logger.Fatalf(ctx, "Failed to import %s: %v", c.name, err)
		}
		logger.Infof(ctx, "Imported %d %s", len(res.InsertedIDs), c.name)
	}
	logger.Info(ctx, "Data successfully loaded!")
}

// readSeed decodes a JSON array and converts ids and dates to their BSON types.
func readSeed(path string) ([]bson.M, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var docs []bson.M
	if err := json.Unmarshal(raw, &docs); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	for _, d := range docs {
		convert(d)
	}
	return docs, nil
}

func convert(d bson.M) {
	for k, v := range d {
		switch {
		case idFields[k]:
			d[k] = toObjectIDs(v)
		case k == "startDates":
			d[k] = toDates(v)
		}
	}
}

func toObjectIDs(v any) any {
	switch v := v.(type) {
	case string:
		if oid, err := primitive.ObjectIDFromHex(v); err == nil {
			return oid
		}
	case []any:
		out := make(bson.A, len(v))
		for i, item := range v {
			out[i] = toObjectIDs(item)
		}
		return out
	}
	return v
}

func toDates(v any) any {
	items, ok := v.([]any)
	if !ok {
		return v
	}
	out := make(bson.A, 0, len(items))
	for _, item := range items {
		s, _ := item.(string)
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				out = append(out, t)
				break
			}
		}
	}
	return out
}

// prepareTour drops the seed's numeric id and fills the fields the API
// derives on create.
func prepareTour(d bson.M) {
	delete(d, "id")
	if name, ok := d["name"].(string); ok {
		d["slug"] = tour.Slugify(name)
	}
	if _, ok := d["createdAt"]; !ok {
		d["createdAt"] = time.Now()
	}
	if _, ok := d["secretTour"]; !ok {
		d["secretTour"] = false
	}
	if loc, ok := d["startLocation"].(map[string]any); ok {
		loc["type"] = "Point"
	}
}
