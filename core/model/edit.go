// Copyright (c) 2026 PaymentKit Team
// PaymentKit - payment card input engine
// This source code is licensed under the MIT license found in the LICENSE file.

package model

// EditKind tells formatters whether the user is typing forward or deleting.
// Formatters add a separator at the cursor boundary only on Insert, so a
// deleted separator is not put straight back.
type EditKind int

const (
	Insert EditKind = iota
	Delete
)

func (k EditKind) String() string {
	if k == Delete {
		return "delete"
	}
	return "insert"
}

// KindOf classifies the edit that turned before into after. Growing text is
// an insert; anything else (shrinking or same-length replacement) is a delete.
func KindOf(before, after string) EditKind {
	if len(after) > len(before) {
		return Insert
	}
	return Delete
}

// Selection is the half-open range [Start, End) of the existing text that an
// edit replaces. A caret without selection has Start == End.
type Selection struct {
	Start int
	End   int
}

// Caret returns an empty selection at pos.
func Caret(pos int) Selection {
	return Selection{Start: pos, End: pos}
}

// Clamp bounds the selection to a text of length n and orders its ends.
func (s Selection) Clamp(n int) Selection {
	if s.Start > s.End {
		s.Start, s.End = s.End, s.Start
	}
	s.Start = min(max(s.Start, 0), n)
	s.End = min(max(s.End, 0), n)
	return s
}

// Apply returns existing with the selected range replaced by insertion.
func (s Selection) Apply(existing, insertion string) string {
	s = s.Clamp(len(existing))
	return existing[:s.Start] + insertion + existing[s.End:]
}

// Len is the number of characters the selection replaces.
func (s Selection) Len() int {
	return s.End - s.Start
}
