package api

const createTaskMaxSize = 64 * 1024 // 64 KiB

// HeaderIdempotencyKey carries an optional client-chosen key for POST
// /api/tasks; replays within the dedup TTL are rejected with 409.
const HeaderIdempotencyKey = "Idempotency-Key"

// errorResponse is the JSON body for failed requests. The message field is
// what clients surface to the user.
type errorResponse struct {
	Message string `json:"message"`
}
