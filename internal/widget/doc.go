// Package widget is the home-screen widget side of kakai.
//
// The widget runs as its own process and only reads the shared key-value
// storage. Provider turns the stored keys into an Entry, Render formats an
// Entry for one of the widget layouts, and Scheduler refreshes the entry at
// every midnight and whenever the app leaves a reload hint.
//
// The app side of the contract is ReloadSignal: RecordStore calls it after
// each successful persist, and it stamps the reload key that Scheduler polls.
package widget
