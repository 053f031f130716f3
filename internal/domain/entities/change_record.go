package entities

import (
	"strings"
)

// ChangeStatus is the single-letter tag git uses to describe how a path changed.
type ChangeStatus string

const (
	StatusAdded    ChangeStatus = "A"
	StatusModified ChangeStatus = "M"
	StatusDeleted  ChangeStatus = "D"
	StatusRenamed  ChangeStatus = "R"
)

const (
	plainFieldCount  = 2
	renameFieldCount = 3
)

// ChangeRecord describes a single changed path between two branches.
type ChangeRecord struct {
	Filename    string
	Status      ChangeStatus
	OldFilename string // only set when Status is StatusRenamed
	Language    string // empty until the record is classified
}

// IsRename reports whether the record tracks a path that moved.
func (r ChangeRecord) IsRename() bool {
	return r.Status == StatusRenamed
}

// DisplayName returns the path as shown to users ("old -> new" for renames).
func (r ChangeRecord) DisplayName() string {
	if r.IsRename() {
		return r.OldFilename + " -> " + r.Filename
	}
	return r.Filename
}

// ParseChangeLine converts one line of "git diff --name-status" output into a ChangeRecord.
// Copies are reported as additions of the destination path and type changes as
// modifications. It returns false for lines it cannot interpret.
func ParseChangeLine(line string) (ChangeRecord, bool) {
	fields := strings.Split(strings.TrimRight(line, "\r\n"), "\t")
	if len(fields) < plainFieldCount || fields[0] == "" {
		return ChangeRecord{}, false
	}

	switch code := fields[0][0]; code {
	case 'A', 'M', 'D':
		if len(fields) != plainFieldCount {
			return ChangeRecord{}, false
		}
		return ChangeRecord{Filename: fields[1], Status: ChangeStatus(string(code))}, true
	case 'T':
		if len(fields) != plainFieldCount {
			return ChangeRecord{}, false
		}
		return ChangeRecord{Filename: fields[1], Status: StatusModified}, true
	case 'R':
		if len(fields) != renameFieldCount {
			return ChangeRecord{}, false
		}
		return ChangeRecord{Filename: fields[2], Status: StatusRenamed, OldFilename: fields[1]}, true
	case 'C':
		if len(fields) != renameFieldCount {
			return ChangeRecord{}, false
		}
		return ChangeRecord{Filename: fields[2], Status: StatusAdded}, true
	default:
		return ChangeRecord{}, false
	}
}
