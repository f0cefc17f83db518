package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

type Config struct {
	Port         int
	DatabaseURL  string
	DatabaseType string
	AdminKeySalt string
	ElectionID   string
	CandidateA   string
	CandidateB   string
}

// JournalEnabled reports whether a database URL was configured
func (c Config) JournalEnabled() bool {
	return c.DatabaseURL != ""
}

// ParseFlags validates flags and fills in defaults from the environment
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var envFile string

	fs := flag.NewFlagSet("election-ledger", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Journal database URL (optional)")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")

	// Election
	fs.StringVar(&cfg.ElectionID, "election-id", "", "Election ID (default: random UUID)")
	fs.StringVar(&cfg.CandidateA, "candidate-a", "", "Display name of candidate A")
	fs.StringVar(&cfg.CandidateB, "candidate-b", "", "Display name of candidate B")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.AdminKeySalt, "admin-salt", "", "Admin key salt (prefer env)")

	fs.StringVar(&envFile, "env-file", ".env", "Dotenv file loaded before env fallbacks")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Existing environment variables win over the file
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 3318 // default
		}
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "sqlite"
		}
	}
	if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
		return Config{}, fmt.Errorf("unsupported DATABASE_TYPE %q", cfg.DatabaseType)
	}

	if cfg.ElectionID == "" {
		cfg.ElectionID = os.Getenv("ELECTION_ID")
		if cfg.ElectionID == "" {
			cfg.ElectionID = uuid.NewString()
		}
	}

	if cfg.CandidateA == "" {
		cfg.CandidateA = envOr("CANDIDATE_A", "Candidate A")
	}
	if cfg.CandidateB == "" {
		cfg.CandidateB = envOr("CANDIDATE_B", "Candidate B")
	}
	if cfg.CandidateA == cfg.CandidateB {
		return Config{}, errors.New("candidate names must differ")
	}

	// Secrets - MUST be provided
	if cfg.AdminKeySalt == "" {
		cfg.AdminKeySalt = os.Getenv("ADMIN_KEY_SALT")
	}
	if cfg.AdminKeySalt == "" {
		return Config{}, errors.New("ADMIN_KEY_SALT required")
	}

	return cfg, nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
