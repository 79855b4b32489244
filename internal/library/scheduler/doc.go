// Package scheduler owns the pending collection of book requests.
//
// Requests are kept in arrival order. Process removes one request per call,
// either the oldest one (FIFO) or the one with the lowest
// (priority, submitted at, arrival) triple (Priority). Every mutation is
// followed by a Save of the whole snapshot through a requests.Repository,
// and every outcome is reported to an audit.Recorder.
//
// Restoring state is explicit: callers invoke Load once at startup.
package scheduler
