// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseURL: Journal database (optional; no journal when empty)
  - DatabaseType: sqlite (default) or postgres
  - AdminKeySalt: Secret for admin key HMAC (required)
  - ElectionID: Election identifier (default: random UUID)
  - CandidateA, CandidateB: Display names (default: "Candidate A", "Candidate B")

# CLI Flags

	-p             Server port
	-d             Journal database URL
	-t             Database type
	-admin-salt    Admin key salt
	-election-id   Election ID
	-candidate-a   Candidate A name
	-candidate-b   Candidate B name
	-env-file      Dotenv file (default: .env)

# Environment Variables

Flags fall back to environment variables:

	PORT           → -p
	DATABASE_URL   → -d
	DATABASE_TYPE  → -t
	ADMIN_KEY_SALT → -admin-salt
	ELECTION_ID    → -election-id
	CANDIDATE_A    → -candidate-a
	CANDIDATE_B    → -candidate-b

The env file is loaded with godotenv before the fallbacks run. Variables
already present in the environment are not overwritten, and a missing file
is not an error.

CLI flags take precedence over environment variables.

# Validation

ParseFlags returns an error if:

  - ADMIN_KEY_SALT is missing
  - PORT is not a number
  - DATABASE_TYPE is not sqlite or postgres
  - both candidates have the same name
*/
package cliparse
