package main

import (
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"baseball-stats-backend/internal/config"
	"baseball-stats-backend/internal/database"
	"baseball-stats-backend/internal/database/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

const batchSize = 500

// Simple structures that directly match DB schema
type PlayerData struct {
	ID           string `yaml:"id"`
	FirstName    string `yaml:"first_name"`
	LastName     string `yaml:"last_name"`
	BirthCountry string `yaml:"birth_country"`
	BirthDate    string `yaml:"birth_date,omitempty"`
	Height       *int   `yaml:"height,omitempty"`
	Weight       *int   `yaml:"weight,omitempty"`
	Bats         string `yaml:"bats"`
	Throws       string `yaml:"throws"`
	DebutDate    string `yaml:"debut_date,omitempty"`
}

type TeamNameData struct {
	TeamID int    `yaml:"team_id"`
	Name   string `yaml:"name"`
	Years  []int  `yaml:"years"`
}

type RosterData struct {
	TeamID  int      `yaml:"team_id"`
	Year    int      `yaml:"year"`
	Players []string `yaml:"players"`
}

type EventData struct {
	ID      int64  `yaml:"id"`
	Batter  string `yaml:"batter"`
	Pitcher string `yaml:"pitcher"`
	Outcome string `yaml:"outcome"`
}

type GameData struct {
	ID        string      `yaml:"id"`
	Date      string      `yaml:"date"`
	HomeTeam  int         `yaml:"home_team"`
	AwayTeam  int         `yaml:"away_team"`
	HomeScore int         `yaml:"home_score"`
	AwayScore int         `yaml:"away_score"`
	Events    []EventData `yaml:"events,omitempty"`
}

// CorpusFile is one YAML file; any section may be empty
type CorpusFile struct {
	Players []PlayerData   `yaml:"players"`
	Teams   []TeamNameData `yaml:"teams"`
	Rosters []RosterData   `yaml:"rosters"`
	Games   []GameData     `yaml:"games"`
}

// corpus holds the rows decoded from every YAML file
type corpus struct {
	players []models.Player
	names   []models.TeamName
	members []models.TeamMember
	games   []models.Game
	events  []models.Event
}

func main() {
	log.Println("🚀 Loading play-by-play corpus from YAML files...")

	dataDir := "scripts/data"
	if len(os.Args) > 1 {
		dataDir = os.Args[1]
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	c, err := loadCorpus(dataDir)
	if err != nil {
		log.Fatalf("Failed to load corpus from %s: %v", dataDir, err)
	}

	if err := insertCorpus(db, c); err != nil {
		log.Fatalf("Failed to insert corpus: %v", err)
	}

	log.Println("✅ Corpus loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel:    logger.Silent,
		AutoMigrate: true,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadCorpus(dataDir string) (*corpus, error) {
	c := &corpus{}

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !(strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml")) {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		var file CorpusFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		if err := c.add(&file); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		return nil
	})

	return c, err
}

func (c *corpus) add(file *CorpusFile) error {
	for _, p := range file.Players {
		player, err := p.toModel()
		if err != nil {
			return fmt.Errorf("player %s: %w", p.ID, err)
		}
		c.players = append(c.players, *player)
	}

	for _, t := range file.Teams {
		for _, year := range t.Years {
			c.names = append(c.names, models.TeamName{TeamID: t.TeamID, Year: year, Name: t.Name})
		}
	}

	for _, r := range file.Rosters {
		for _, id := range r.Players {
			c.members = append(c.members, models.TeamMember{PlayerID: id, Year: r.Year, TeamID: r.TeamID})
		}
	}

	for _, g := range file.Games {
		date, err := time.Parse("2006-01-02", g.Date)
		if err != nil {
			return fmt.Errorf("game %s: invalid date %q", g.ID, g.Date)
		}
		if g.HomeTeam == g.AwayTeam {
			return fmt.Errorf("game %s: home and away team are both %d", g.ID, g.HomeTeam)
		}
		if g.HomeScore < 0 || g.AwayScore < 0 {
			return fmt.Errorf("game %s: negative score", g.ID)
		}
		c.games = append(c.games, models.Game{
			ID:        g.ID,
			Date:      date,
			HomeTeam:  g.HomeTeam,
			AwayTeam:  g.AwayTeam,
			HomeScore: g.HomeScore,
			AwayScore: g.AwayScore,
		})

		for _, e := range g.Events {
			outcome := models.EventType(e.Outcome)
			if !outcome.IsValid() {
				return fmt.Errorf("game %s event %d: unknown outcome %q", g.ID, e.ID, e.Outcome)
			}
			if e.ID == 0 {
				return fmt.Errorf("game %s: events need an explicit id", g.ID)
			}
			c.events = append(c.events, models.Event{
				ID:        e.ID,
				GameID:    g.ID,
				Batter:    e.Batter,
				Pitcher:   e.Pitcher,
				EventType: outcome,
			})
		}
	}

	return nil
}

func (p PlayerData) toModel() (*models.Player, error) {
	player := &models.Player{
		ID:           p.ID,
		FirstName:    p.FirstName,
		LastName:     p.LastName,
		BirthCountry: p.BirthCountry,
		Height:       p.Height,
		Weight:       p.Weight,
		Bats:         models.Hand(p.Bats),
		Throws:       models.Hand(p.Throws),
	}
	if p.Bats != "" && !player.Bats.IsValid() {
		return nil, fmt.Errorf("invalid batting side %q", p.Bats)
	}
	if p.Throws != "" && !player.Throws.IsValid() {
		return nil, fmt.Errorf("invalid throwing arm %q", p.Throws)
	}

	var err error
	if player.BirthDate, err = optionalDate(p.BirthDate); err != nil {
		return nil, err
	}
	if player.DebutDate, err = optionalDate(p.DebutDate); err != nil {
		return nil, err
	}
	return player, nil
}

func optionalDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	d, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q", value)
	}
	return &d, nil
}

// insertCorpus writes every table in one transaction. Rows whose primary key
// already exists are skipped, so the loader can be rerun safely.
func insertCorpus(db *gorm.DB, c *corpus) error {
	return db.Transaction(func(tx *gorm.DB) error {
		skip := tx.Clauses(clause.OnConflict{DoNothing: true})

		steps := []struct {
			name  string
			rows  interface{}
			count int
		}{
			{"Players", &c.players, len(c.players)},
			{"Team names", &c.names, len(c.names)},
			{"Roster entries", &c.members, len(c.members)},
			{"Games", &c.games, len(c.games)},
			{"Events", &c.events, len(c.events)},
		}

		for _, step := range steps {
			if step.count == 0 {
				continue
			}
			result := skip.CreateInBatches(step.rows, batchSize)
			if result.Error != nil {
				return fmt.Errorf("insert %s: %w", strings.ToLower(step.name), result.Error)
			}
			log.Printf("📋 %s: %d created, %d total", step.name, result.RowsAffected, step.count)
		}
		return nil
	})
}
