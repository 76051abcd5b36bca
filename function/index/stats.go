package index

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Stats counts the operations a Function index has performed.
type Stats struct {
	Writes  uint64
	Reads   uint64
	Deletes uint64
}

func (s Stats) String() string {
	p := message.NewPrinter(language.English)
	return p.Sprintf("%d writes, %d reads, %d deletes", s.Writes, s.Reads, s.Deletes)
}
