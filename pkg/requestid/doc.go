// Package requestid assigns a correlation id to every HTTP request.
//
// Middleware reuses a well-formed X-Request-Id header sent by the client
// (letters, digits, '-' and '_', at most 128 bytes) and otherwise generates a
// UUID. The id is stored in the request context, echoed on the response and
// picked up by LoggerExtractor for structured logs:
//
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor))
//	http.ListenAndServe(":80", requestid.Middleware(mux))
package requestid
