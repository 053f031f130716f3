package entities

import "sort"

// DependencySet is the set of dependency names declared by one manifest snapshot.
// Identity is the name alone; versions are never part of it.
type DependencySet map[string]struct{}

// NewDependencySet builds a set holding the given names.
func NewDependencySet(names ...string) DependencySet {
	set := make(DependencySet, len(names))
	for _, name := range names {
		set.Add(name)
	}
	return set
}

// Add inserts a name into the set. Empty names are ignored.
func (s DependencySet) Add(name string) {
	if name == "" {
		return
	}
	s[name] = struct{}{}
}

// Contains reports whether the name is part of the set.
func (s DependencySet) Contains(name string) bool {
	_, ok := s[name]
	return ok
}

// Len returns the number of names in the set.
func (s DependencySet) Len() int {
	return len(s)
}

// Difference returns the names present in s but not in other.
func (s DependencySet) Difference(other DependencySet) DependencySet {
	result := NewDependencySet()
	for name := range s {
		if !other.Contains(name) {
			result.Add(name)
		}
	}
	return result
}

// Union adds every name of other into s.
func (s DependencySet) Union(other DependencySet) {
	for name := range other {
		s.Add(name)
	}
}

// Sorted returns the names in lexicographic order. The result is never nil.
func (s DependencySet) Sorted() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DependencyDelta is the dependency change carried by one changed manifest.
type DependencyDelta struct {
	Filename    string
	OldFilename string
	Status      ChangeStatus
	Language    string
	NewDeps     DependencySet
	RemovedDeps DependencySet
}

// NewDependencyDelta computes the delta of a change from its before and after snapshots.
// Added files never remove anything and deleted files never add anything.
func NewDependencyDelta(record ChangeRecord, before, after DependencySet) DependencyDelta {
	delta := DependencyDelta{
		Filename:    record.Filename,
		OldFilename: record.OldFilename,
		Status:      record.Status,
		Language:    record.Language,
		NewDeps:     NewDependencySet(),
		RemovedDeps: NewDependencySet(),
	}

	switch record.Status {
	case StatusAdded:
		delta.NewDeps = after.Difference(NewDependencySet())
	case StatusDeleted:
		delta.RemovedDeps = before.Difference(NewDependencySet())
	case StatusModified, StatusRenamed:
		delta.NewDeps = after.Difference(before)
		delta.RemovedDeps = before.Difference(after)
	}

	return delta
}

// Record returns the change record the delta was computed from.
func (d DependencyDelta) Record() ChangeRecord {
	return ChangeRecord{
		Filename:    d.Filename,
		Status:      d.Status,
		OldFilename: d.OldFilename,
		Language:    d.Language,
	}
}

// IsEmpty reports whether the change neither added nor removed a dependency.
func (d DependencyDelta) IsEmpty() bool {
	return d.NewDeps.Len() == 0 && d.RemovedDeps.Len() == 0
}
