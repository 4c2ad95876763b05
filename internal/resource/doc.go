// Package resource enforces a byte budget on managed off-heap memory.
//
// The Controller hands out memory reservations against a configured limit
// using a weighted semaphore. Acquisition is non-blocking: callers get an
// immediate error when the budget is exhausted and control their own
// retry/backoff policy.
package resource
