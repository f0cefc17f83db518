// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the election ledger API.

# Route Registration

	mux := router.NewRouter(l, journal, cfg)

journal may be nil, in which case GET /journal answers 404.

# Endpoints

Health:

	GET /health

Owner operations (require X-Admin-Key):

	POST /results        - Submit a region result
	POST /election/end   - Close the election

Public reads:

	GET /leader          - Current leader
	GET /election        - Election ID, ended flag, candidates
	GET /standings       - Seat totals, region count, leader
	GET /regions/{name}  - Whether a region was submitted
	GET /journal         - Journaled events, in order
*/
package router
