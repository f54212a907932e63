// Package task provides Task, a single-assignment asynchronous settlement
// cell with fan-out observer notification.
//
// A Task starts Pending and settles at most once, to Resolved or Rejected
// (see package async for the state variants). Later Resolve/Reject calls are
// dropped silently; they are logged at debug level only.
//
// Highlights:
// - New/Resolved/Rejected: construct a task
// - FromPromise/FromPromiseMapped/FromChan: bridge external completions
// - Resolve/Reject: settle once, notifying observers in registration order
// - Settled/Wait/Subscribe/ToChan: observe the terminal state
// - Map/FlatMap/All: derive tasks from tasks
//
// Observers run on the settling goroutine. A panicking observer does not keep
// the others from being notified; Map and FlatMap turn callback faults into
// rejections of the derived task.
//
// There is no cancellation: a task that is never settled stays Pending.
package task
