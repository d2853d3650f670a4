package capability

import (
	"github.com/arthur-debert/shkit/pkg/logging"
)

// Entry pairs a symbolic code name with its resolved control sequence
type Entry struct {
	Name     string `json:"name" yaml:"name"`
	Sequence string `json:"sequence" yaml:"sequence"`
}

// Table holds one resolved sequence per symbolic code, in declared order.
// It is immutable once built.
type Table struct {
	entries []Entry
}

// Build queries q once per symbolic code. A failed query leaves that entry
// empty; it never aborts the build.
func Build(q Querier) *Table {
	logger := logging.GetLogger("capability")
	done := logging.LogOperationStart(logger, "build-capability-table")
	defer done()

	entries := make([]Entry, len(codes))
	for i, c := range codes {
		entries[i].Name = c.Name
		seq, err := q.Query(c.Cap, c.Params...)
		if err != nil {
			logger.Debug().Err(err).Str("code", c.Name).Msg("Capability unsupported")
			continue
		}
		entries[i].Sequence = seq
	}
	return &Table{entries: entries}
}

// NewTable builds a table from explicit sequences keyed by code name.
// Codes missing from the map resolve empty and unknown names are ignored.
func NewTable(sequences map[string]string) *Table {
	entries := make([]Entry, len(codes))
	for i, c := range codes {
		entries[i] = Entry{Name: c.Name, Sequence: sequences[c.Name]}
	}
	return &Table{entries: entries}
}

// Len returns the number of entries, always equal to len(Codes())
func (t *Table) Len() int {
	return len(t.entries)
}

// Entries returns a copy of the entries in declared order
func (t *Table) Entries() []Entry {
	return append([]Entry(nil), t.entries...)
}

// Lookup returns the sequence for a code name
func (t *Table) Lookup(name string) (string, bool) {
	for _, e := range t.entries {
		if e.Name == name {
			return e.Sequence, true
		}
	}
	return "", false
}

// Supported counts the entries that resolved to a non-empty sequence
func (t *Table) Supported() int {
	n := 0
	for _, e := range t.entries {
		if e.Sequence != "" {
			n++
		}
	}
	return n
}
