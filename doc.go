// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the election ledger API server.

The server keeps one authoritative, in-memory ledger of region results for a
two-candidate election. The owner submits results and closes the election;
anyone may read the current leader.

# Starting the Server

	ADMIN_KEY_SALT=... go run .

Or with flags:

	go run . -p 3318 -admin-salt secret -election-id us-2024 \
		-candidate-a Biden -candidate-b Trump

On startup the server logs the election ID and the owner's admin key. Send
the key in X-Admin-Key on POST /results and POST /election/end.

# Configuration

Required settings:

  - ADMIN_KEY_SALT (-admin-salt): Secret for admin key HMAC

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - ELECTION_ID (-election-id): default is a random UUID
  - CANDIDATE_A, CANDIDATE_B: display names
  - DATABASE_URL (-d), DATABASE_TYPE (-t): enable the audit journal

A .env file is read if present.

# Architecture

  - ledger: election state, checks and lifecycle
  - auth: admin keys and the owner policy
  - handlers: HTTP request handlers
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Domain, request and response types
  - db: Journal schema and storage
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
