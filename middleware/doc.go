// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /members", middleware.WithLogging(handler))

Each request gets an ID (the incoming X-Request-ID header, or a new UUID),
echoed back in X-Request-ID. Handlers log through the request-scoped logger
so every line carries request_id:

	log := middleware.Logger(r.Context())

# CORS, Recovery and Compression

	handler := middleware.Recover(middleware.CORS(mux))

CORS allows any origin and answers preflight requests with 204. Recover turns
handler panics into 500 responses. Compress gzip-encodes list responses.

# JSON Helpers

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusInternalServerError, err.Error())

ErrorResponse writes {"error": message} with the message unchanged.

# Client IP Extraction

	ip := middleware.GetClientIP(r)

Honors X-Forwarded-For and X-Real-IP, used when logging behind a proxy.
*/
package middleware
