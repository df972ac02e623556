// Package kv provides the shared key-value storage read by both the kakai
// app and its widget process.
//
// # Overview
//
// Values are opaque byte slices stored in the SQLite table "metadata" under
// the fixed keys declared in keys.go. The app is the only writer; it groups
// all writes of one persist into a single transaction via Storage.Update, so
// a failed persist leaves the previously committed values in place. The
// widget only ever reads.
//
// # Missing keys
//
// Get returns (nil, nil) for an absent key. Callers treat that as "use the
// default value".
//
// Typical Usage
//
//	db, _ := dbx.OpenSQLite(ctx, path)
//	store := kv.NewSQLiteStorage(db)
//	_ = store.Update(ctx, func(ctx context.Context, repo kv.Repository) error {
//	    return repo.Set(ctx, kv.KeyUserName, []byte("지민"))
//	})
//	name, ok, err := kv.GetString(ctx, store, kv.KeyUserName)
package kv
