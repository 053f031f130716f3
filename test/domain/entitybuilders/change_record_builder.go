//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/depdiff/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// ChangeRecordBuilder helps create test change records with a fluent interface.
type ChangeRecordBuilder struct {
	*testkit.BaseBuilder
	filename    string
	status      entities.ChangeStatus
	oldFilename string
	language    string
}

// NewChangeRecordBuilder creates a new change record builder with sensible defaults.
func NewChangeRecordBuilder() *ChangeRecordBuilder {
	return &ChangeRecordBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		filename:    "requirements.txt",
		status:      entities.StatusModified,
		language:    "python",
	}
}

// WithFilename sets the changed path.
func (b *ChangeRecordBuilder) WithFilename(filename string) *ChangeRecordBuilder {
	b.filename = filename
	return b
}

// WithStatus sets the change status.
func (b *ChangeRecordBuilder) WithStatus(status entities.ChangeStatus) *ChangeRecordBuilder {
	b.status = status
	return b
}

// WithRenameFrom marks the record as a rename from the given path.
func (b *ChangeRecordBuilder) WithRenameFrom(oldFilename string) *ChangeRecordBuilder {
	b.status = entities.StatusRenamed
	b.oldFilename = oldFilename
	return b
}

// WithLanguage sets the language tag.
func (b *ChangeRecordBuilder) WithLanguage(language string) *ChangeRecordBuilder {
	b.language = language
	return b
}

// Build creates the change record (satisfies testkit.Builder interface).
func (b *ChangeRecordBuilder) Build() interface{} {
	return b.BuildChangeRecord()
}

// BuildChangeRecord creates the change record with a concrete return type.
func (b *ChangeRecordBuilder) BuildChangeRecord() entities.ChangeRecord {
	return entities.ChangeRecord{
		Filename:    b.filename,
		Status:      b.status,
		OldFilename: b.oldFilename,
		Language:    b.language,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *ChangeRecordBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.filename = "requirements.txt"
	b.status = entities.StatusModified
	b.oldFilename = ""
	b.language = "python"
	return b
}

// Clone creates a deep copy of the ChangeRecordBuilder.
func (b *ChangeRecordBuilder) Clone() testkit.Builder {
	return &ChangeRecordBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		filename:    b.filename,
		status:      b.status,
		oldFilename: b.oldFilename,
		language:    b.language,
	}
}
