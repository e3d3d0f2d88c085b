// Package redis provides the Redis client plumbing and the day-scoped
// submission guard. The guard is a serialization point, not the source of
// truth: the database's unique constraint remains the final authority on the
// one-per-day rule.
package redis
