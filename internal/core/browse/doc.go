// Package browse holds the state of a server-paginated record browser: the
// currently loaded page (PageStore) and the positions selected on each page
// (Tracker). It has no Bubble Tea dependencies; the TUI drives it from its
// single event loop, so none of the types here are safe for concurrent use
// except PageStore.Run, which only touches the fetcher.
//
// Selection is positional. A position is a slot in the page as it was loaded,
// not a record identity, and positions are scoped to the page slot
// (page index + page size) they were made on. Revisiting a slot reapplies
// its positions to whatever records now occupy them.
package browse
