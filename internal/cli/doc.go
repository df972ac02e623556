// Package cli provides the interactive kakai terminal front end.
//
// App wires configuration, the shared SQLite storage, the image store and
// the widget reload signal into a services.RecordStore, then runs a REPL
// over it. On first start the user is taken through setup (couple names and
// relationship start date); afterwards meetings can be added, listed, shown
// as a month calendar, edited, annotated with memos and photos, completed,
// deleted and exported as iCalendar.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See runREPL for the command list.
package cli
