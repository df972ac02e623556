// Package services contains the application services of kakai.
//
// RecordStore is the single source of truth for the couple profile and the
// meeting records. It computes derived values (days together, the upcoming
// meeting, stay durations), persists everything to the shared key-value
// storage after every mutation, regenerates the widget projection, and
// fronts the image store.
//
// Storage failures never reach callers: they are logged and the store keeps
// serving its in-memory state. A failed persist is rolled back, so shared
// storage keeps the last successfully written state.
package services
