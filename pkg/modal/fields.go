// Package modal resolves submitted modal fields by custom id.
//
// A modal submission is a list of rows. Legacy action rows hold several
// fields, label rows wrap exactly one field. ModalSubmitFields indexes every
// field of both row kinds by custom id.
package modal

import (
	"fmt"

	"github.com/wehubfusion/interactions/pkg/discord"
	ierrors "github.com/wehubfusion/interactions/pkg/errors"
	"go.uber.org/zap"
)

// FieldQuery describes a modal field lookup. Fields are required unless
// Optional is set.
type FieldQuery struct {
	CustomID string
	Type     discord.ComponentType
	Optional bool
}

// ModalSubmitFields is a custom id index over a modal submission
type ModalSubmitFields struct {
	fields   map[string]*discord.ModalSubmitComponent
	settings settings
}

// NewModalSubmitFields indexes the fields of a modal submission
func NewModalSubmitFields(components []discord.ModalSubmissionComponent, opts ...Setting) *ModalSubmitFields {
	f := &ModalSubmitFields{
		fields: make(map[string]*discord.ModalSubmitComponent),
	}
	f.settings.apply(opts)

	skipped := 0
	for i := range components {
		row := &components[i]
		switch row.Type {
		case discord.ComponentTypeActionRow:
			for j := range row.Components {
				f.fields[row.Components[j].CustomID] = &row.Components[j]
			}
		case discord.ComponentTypeLabel:
			if row.Component == nil {
				skipped++
				continue
			}
			f.fields[row.Component.CustomID] = row.Component
		default:
			skipped++
		}
	}

	f.settings.logger.Debug("Indexed modal submit fields",
		zap.Int("fields", len(f.fields)),
		zap.Int("skipped_rows", skipped))

	return f
}

// Get looks up a field by custom id and checks its type.
// A missing field yields an error unless the query is Optional.
func (f *ModalSubmitFields) Get(query FieldQuery) (*discord.ModalSubmitComponent, error) {
	if !query.Type.IsModalField() {
		return nil, f.fail(query.CustomID, ierrors.NewModalFieldError(
			ierrors.CodeInvalidFieldQuery,
			fmt.Sprintf("Component type %s is not a modal field: %s", query.Type, query.CustomID),
			ierrors.ErrInvalidQuery,
		))
	}

	field, ok := f.fields[query.CustomID]
	if !ok {
		if query.Optional {
			return nil, nil
		}
		return nil, f.fail(query.CustomID, ierrors.NewModalFieldError(
			ierrors.CodeRequiredFieldMissing,
			fmt.Sprintf("Unable to find required field: %s", query.CustomID),
			ierrors.ErrNotFound,
		))
	}

	if field.Type != query.Type {
		return nil, f.fail(query.CustomID, ierrors.NewModalFieldError(
			ierrors.CodeFieldTypeMismatch,
			fmt.Sprintf("Expected field type %s. Received: %s", query.Type, field.Type),
			ierrors.ErrTypeMismatch,
		))
	}

	return field, nil
}

// Has reports whether a field with the given custom id was submitted
func (f *ModalSubmitFields) Has(customID string) bool {
	_, ok := f.fields[customID]
	return ok
}

// Len returns the number of indexed fields
func (f *ModalSubmitFields) Len() int {
	return len(f.fields)
}

func (f *ModalSubmitFields) fail(customID string, err *ierrors.Error) error {
	f.settings.logger.Debug("Modal field resolution failed",
		zap.String("custom_id", customID),
		zap.String("code", err.Code),
		zap.Error(err))
	return err
}
