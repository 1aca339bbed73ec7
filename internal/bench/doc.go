// Package bench times the queue implementations in container/queue.
//
// Each case enqueues the same sample value N times into an empty queue and
// then dequeues N times, timing both phases together on the monotonic clock.
// Cases run one at a time with no warm-up and no repetition, so a result is
// a single-shot wall-clock measurement.
package bench
