// Code generated by ent, DO NOT EDIT.

package ent

import (
	"ent/auditentry"
	"ent/cell"
	"ent/document"
	"ent/reviewjob"
	"time"

	"github.com/Tanjim-Islam/legal-tabular-review/db/ent/schema"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	auditentryFields := schema.AuditEntry{}.Fields()
	_ = auditentryFields
	// auditentryDescActor is the schema descriptor for actor field.
	auditentryDescActor := auditentryFields[3].Descriptor()
	// auditentry.ActorValidator is a validator for the "actor" field. It is called by the builders before save.
	auditentry.ActorValidator = auditentryDescActor.Validators[0].(func(string) error)
	// auditentryDescAction is the schema descriptor for action field.
	auditentryDescAction := auditentryFields[4].Descriptor()
	// auditentry.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	auditentry.ActionValidator = func() func(string) error {
		validators := auditentryDescAction.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(action string) error {
			for _, fn := range fns {
				if err := fn(action); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// auditentryDescBeforeState is the schema descriptor for before_state field.
	auditentryDescBeforeState := auditentryFields[8].Descriptor()
	// auditentry.BeforeStateValidator is a validator for the "before_state" field. It is called by the builders before save.
	auditentry.BeforeStateValidator = func() func(string) error {
		validators := auditentryDescBeforeState.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(before_state string) error {
			for _, fn := range fns {
				if err := fn(before_state); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// auditentryDescAfterState is the schema descriptor for after_state field.
	auditentryDescAfterState := auditentryFields[9].Descriptor()
	// auditentry.AfterStateValidator is a validator for the "after_state" field. It is called by the builders before save.
	auditentry.AfterStateValidator = func() func(string) error {
		validators := auditentryDescAfterState.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(after_state string) error {
			for _, fn := range fns {
				if err := fn(after_state); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// auditentryDescCreatedAt is the schema descriptor for created_at field.
	auditentryDescCreatedAt := auditentryFields[10].Descriptor()
	// auditentry.DefaultCreatedAt holds the default value on creation for the created_at field.
	auditentry.DefaultCreatedAt = auditentryDescCreatedAt.Default.(func() time.Time)
	// auditentryDescID is the schema descriptor for id field.
	auditentryDescID := auditentryFields[0].Descriptor()
	// auditentry.DefaultID holds the default value on creation for the id field.
	auditentry.DefaultID = auditentryDescID.Default.(func() uuid.UUID)
	cellFields := schema.Cell{}.Fields()
	_ = cellFields
	// cellDescDocumentID is the schema descriptor for document_id field.
	cellDescDocumentID := cellFields[2].Descriptor()
	// cell.DocumentIDValidator is a validator for the "document_id" field. It is called by the builders before save.
	cell.DocumentIDValidator = cellDescDocumentID.Validators[0].(func(string) error)
	// cellDescDocumentIdentifier is the schema descriptor for document_identifier field.
	cellDescDocumentIdentifier := cellFields[3].Descriptor()
	// cell.DocumentIdentifierValidator is a validator for the "document_identifier" field. It is called by the builders before save.
	cell.DocumentIdentifierValidator = cellDescDocumentIdentifier.Validators[0].(func(string) error)
	// cellDescFieldKey is the schema descriptor for field_key field.
	cellDescFieldKey := cellFields[4].Descriptor()
	// cell.FieldKeyValidator is a validator for the "field_key" field. It is called by the builders before save.
	cell.FieldKeyValidator = cellDescFieldKey.Validators[0].(func(string) error)
	// cellDescFieldLabel is the schema descriptor for field_label field.
	cellDescFieldLabel := cellFields[5].Descriptor()
	// cell.FieldLabelValidator is a validator for the "field_label" field. It is called by the builders before save.
	cell.FieldLabelValidator = cellDescFieldLabel.Validators[0].(func(string) error)
	// cellDescFieldType is the schema descriptor for field_type field.
	cellDescFieldType := cellFields[6].Descriptor()
	// cell.FieldTypeValidator is a validator for the "field_type" field. It is called by the builders before save.
	cell.FieldTypeValidator = cellDescFieldType.Validators[0].(func(string) error)
	// cellDescReviewState is the schema descriptor for review_state field.
	cellDescReviewState := cellFields[12].Descriptor()
	// cell.ReviewStateValidator is a validator for the "review_state" field. It is called by the builders before save.
	cell.ReviewStateValidator = func() func(string) error {
		validators := cellDescReviewState.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(review_state string) error {
			for _, fn := range fns {
				if err := fn(review_state); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// cellDescVersion is the schema descriptor for version field.
	cellDescVersion := cellFields[15].Descriptor()
	// cell.DefaultVersion holds the default value on creation for the version field.
	cell.DefaultVersion = cellDescVersion.Default.(int)
	// cellDescCreatedAt is the schema descriptor for created_at field.
	cellDescCreatedAt := cellFields[16].Descriptor()
	// cell.DefaultCreatedAt holds the default value on creation for the created_at field.
	cell.DefaultCreatedAt = cellDescCreatedAt.Default.(func() time.Time)
	// cellDescUpdatedAt is the schema descriptor for updated_at field.
	cellDescUpdatedAt := cellFields[17].Descriptor()
	// cell.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	cell.DefaultUpdatedAt = cellDescUpdatedAt.Default.(func() time.Time)
	// cell.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	cell.UpdateDefaultUpdatedAt = cellDescUpdatedAt.UpdateDefault.(func() time.Time)
	// cellDescID is the schema descriptor for id field.
	cellDescID := cellFields[0].Descriptor()
	// cell.DefaultID holds the default value on creation for the id field.
	cell.DefaultID = cellDescID.Default.(func() uuid.UUID)
	documentFields := schema.Document{}.Fields()
	_ = documentFields
	// documentDescIdentifier is the schema descriptor for identifier field.
	documentDescIdentifier := documentFields[1].Descriptor()
	// document.IdentifierValidator is a validator for the "identifier" field. It is called by the builders before save.
	document.IdentifierValidator = documentDescIdentifier.Validators[0].(func(string) error)
	// documentDescPath is the schema descriptor for path field.
	documentDescPath := documentFields[2].Descriptor()
	// document.PathValidator is a validator for the "path" field. It is called by the builders before save.
	document.PathValidator = documentDescPath.Validators[0].(func(string) error)
	// documentDescSource is the schema descriptor for source field.
	documentDescSource := documentFields[3].Descriptor()
	// document.SourceValidator is a validator for the "source" field. It is called by the builders before save.
	document.SourceValidator = documentDescSource.Validators[0].(func(string) error)
	// documentDescFormat is the schema descriptor for format field.
	documentDescFormat := documentFields[4].Descriptor()
	// document.FormatValidator is a validator for the "format" field. It is called by the builders before save.
	document.FormatValidator = func() func(string) error {
		validators := documentDescFormat.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(format string) error {
			for _, fn := range fns {
				if err := fn(format); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// documentDescFirstSeenAt is the schema descriptor for first_seen_at field.
	documentDescFirstSeenAt := documentFields[5].Descriptor()
	// document.DefaultFirstSeenAt holds the default value on creation for the first_seen_at field.
	document.DefaultFirstSeenAt = documentDescFirstSeenAt.Default.(func() time.Time)
	// documentDescID is the schema descriptor for id field.
	documentDescID := documentFields[0].Descriptor()
	// document.IDValidator is a validator for the "id" field. It is called by the builders before save.
	document.IDValidator = documentDescID.Validators[0].(func(string) error)
	reviewjobFields := schema.ReviewJob{}.Fields()
	_ = reviewjobFields
	// reviewjobDescMode is the schema descriptor for mode field.
	reviewjobDescMode := reviewjobFields[1].Descriptor()
	// reviewjob.ModeValidator is a validator for the "mode" field. It is called by the builders before save.
	reviewjob.ModeValidator = func() func(string) error {
		validators := reviewjobDescMode.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(mode string) error {
			for _, fn := range fns {
				if err := fn(mode); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// reviewjobDescStatus is the schema descriptor for status field.
	reviewjobDescStatus := reviewjobFields[2].Descriptor()
	// reviewjob.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	reviewjob.StatusValidator = func() func(string) error {
		validators := reviewjobDescStatus.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(status string) error {
			for _, fn := range fns {
				if err := fn(status); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// reviewjobDescCreatedAt is the schema descriptor for created_at field.
	reviewjobDescCreatedAt := reviewjobFields[6].Descriptor()
	// reviewjob.DefaultCreatedAt holds the default value on creation for the created_at field.
	reviewjob.DefaultCreatedAt = reviewjobDescCreatedAt.Default.(func() time.Time)
	// reviewjobDescID is the schema descriptor for id field.
	reviewjobDescID := reviewjobFields[0].Descriptor()
	// reviewjob.DefaultID holds the default value on creation for the id field.
	reviewjob.DefaultID = reviewjobDescID.Default.(func() uuid.UUID)
}
