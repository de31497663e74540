package browse

import (
	"errors"
	"slices"

	"github.com/samber/lo"
)

// ErrStaleEpoch is returned when a selection edit was made against a page
// load that has since been replaced.
var ErrStaleEpoch = errors.New("selection edit targets a page that is no longer loaded")

// Keyed is implemented by records that carry a stable identity. Identity is
// only used to map an edited selection back onto positions of the page that
// is currently loaded.
type Keyed interface {
	Key() string
}

// ApplyPositions returns the records of page whose position is in
// positions, in page order. Positions outside the page are ignored.
func ApplyPositions[R any](page []R, positions PositionSet) []R {
	if len(positions) == 0 {
		return []R{}
	}
	return lo.Filter(page, func(_ R, i int) bool {
		return positions.Has(i)
	})
}

// PositionsFor maps a selection of records back to positions in page:
// position i is included iff some selected record has the identity of
// page[i]. Selected records that are not on the page are dropped.
func PositionsFor[R Keyed](page []R, selected []R) PositionSet {
	keys := lo.SliceToMap(selected, func(r R) (string, struct{}) {
		return r.Key(), struct{}{}
	})

	positions := PositionSet{}
	for i, r := range page {
		if _, ok := keys[r.Key()]; ok {
			positions[i] = struct{}{}
		}
	}
	return positions
}

// BulkSelect selects the first count records of page and merges their
// positions into existing. count is clamped to the page length. A count of
// zero or less is a no-op: no records are returned and existing is returned
// as is. existing is never modified.
func BulkSelect[R any](page []R, count int, existing PositionSet) ([]R, PositionSet) {
	if count <= 0 {
		return nil, existing
	}

	n := min(count, len(page))
	records := slices.Clone(page[:n])
	positions := existing.Union(NewPositionSet(lo.Range(n)...))
	return records, positions
}

// Slot identifies the page a set of positions belongs to. A different page
// size lays records out differently, so it opens a different slot.
type Slot struct {
	PageIndex int
	PageSize  int
}

// Tracker owns the selected positions of every page slot visited and the
// selection derived for the page currently loaded.
type Tracker[R Keyed] struct {
	slots    map[Slot]PositionSet
	slot     Slot
	epoch    uint64
	page     []R
	selected []R
}

// NewTracker creates an empty tracker. No page is loaded until Load.
func NewTracker[R Keyed]() *Tracker[R] {
	return &Tracker[R]{
		slots:    make(map[Slot]PositionSet),
		selected: []R{},
	}
}

// Load starts a new epoch for a freshly fetched page and rebuilds the
// derived selection from the positions recorded for slot. It returns the
// new epoch.
func (t *Tracker[R]) Load(slot Slot, page []R) uint64 {
	t.epoch++
	t.slot = slot
	t.page = page
	t.selected = ApplyPositions(page, t.slots[slot])
	return t.epoch
}

// ManualChange replaces the positions of the current slot with those of
// the records in selected. epoch must be the epoch the edit was made
// against; edits against an older page load return ErrStaleEpoch and leave
// the tracker untouched.
func (t *Tracker[R]) ManualChange(epoch uint64, selected []R) (PositionSet, error) {
	if t.epoch == 0 || epoch != t.epoch {
		return nil, ErrStaleEpoch
	}

	positions := PositionsFor(t.page, selected)
	t.setPositions(positions)
	t.selected = ApplyPositions(t.page, positions)
	return positions.Clone(), nil
}

// Toggle flips the selection of the record at position p of the current
// page. It is expressed as a manual selection change so it goes through
// the same identity mapping as any other edit.
func (t *Tracker[R]) Toggle(p int) (PositionSet, error) {
	if p < 0 || p >= len(t.page) {
		return t.Positions(), nil
	}

	target := t.page[p].Key()
	next := slices.Clone(t.selected)
	if t.IsSelected(p) {
		next = lo.Reject(next, func(r R, _ int) bool { return r.Key() == target })
	} else {
		next = append(next, t.page[p])
	}
	return t.ManualChange(t.epoch, next)
}

// SelectAll selects every record of the current page.
func (t *Tracker[R]) SelectAll() (PositionSet, error) {
	return t.ManualChange(t.epoch, t.page)
}

// Clear deselects every record of the current page. Other slots keep their
// positions.
func (t *Tracker[R]) Clear() (PositionSet, error) {
	return t.ManualChange(t.epoch, nil)
}

// BulkSelect selects the first count records of the current page, merging
// with the positions already selected there. It returns the bulk-selected
// records, the merged positions, and whether anything was applied; false
// means the request was a no-op and the caller should keep its bulk-select
// input open.
func (t *Tracker[R]) BulkSelect(count int) ([]R, PositionSet, bool) {
	if t.epoch == 0 || count <= 0 {
		return nil, t.Positions(), false
	}

	records, positions := BulkSelect(t.page, count, t.slots[t.slot])
	t.setPositions(positions)
	t.selected = ApplyPositions(t.page, positions)
	return records, positions.Clone(), true
}

// Selected returns the records of the current page that are selected.
func (t *Tracker[R]) Selected() []R {
	return slices.Clone(t.selected)
}

// Positions returns a copy of the positions selected in the current slot.
func (t *Tracker[R]) Positions() PositionSet {
	return t.slots[t.slot].Clone()
}

// PositionsIn returns a copy of the positions selected in slot.
func (t *Tracker[R]) PositionsIn(slot Slot) PositionSet {
	return t.slots[slot].Clone()
}

// IsSelected reports whether position p of the current page is selected.
func (t *Tracker[R]) IsSelected(p int) bool {
	return p >= 0 && p < len(t.page) && t.slots[t.slot].Has(p)
}

// SelectedCount returns the number of selected positions across every slot.
func (t *Tracker[R]) SelectedCount() int {
	return lo.SumBy(lo.Values(t.slots), func(s PositionSet) int { return s.Len() })
}

// Epoch returns the current page-load epoch. Zero means nothing is loaded.
func (t *Tracker[R]) Epoch() uint64 {
	return t.epoch
}

// Slot returns the slot of the current page.
func (t *Tracker[R]) Slot() Slot {
	return t.slot
}

func (t *Tracker[R]) setPositions(positions PositionSet) {
	if positions.Len() == 0 {
		delete(t.slots, t.slot)
		return
	}
	t.slots[t.slot] = positions.Clone()
}
