// Package mood implements the mood aggregation core: the
// one-submission-per-user-per-day rule, score averaging, and the mapping from
// an average back to a mood category. Storage and the duplicate guard are
// injected through domain interfaces; the clock is injected so day windows
// are deterministic in tests.
package mood
