// Package gallery stores named canvas snapshots for the lifetime of the
// process.
//
// Entries live in an in-memory SQLite database opened through the pure-Go
// modernc.org/sqlite driver. The database is held on a single connection,
// so the data disappears when the Gallery is closed.
//
// Names are trimmed and NFC-normalised before they are validated and
// stored, so visually identical names collide as duplicates:
//
//	g, _ := gallery.Open(ctx)
//	entry, err := g.Save(ctx, "Sketch", snap)
//	var nameErr *gallery.NameError
//	if errors.As(err, &nameErr) {
//		// ask again
//	}
package gallery
