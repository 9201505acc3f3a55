package modal

import (
	"fmt"

	"github.com/wehubfusion/interactions/pkg/discord"
	ierrors "github.com/wehubfusion/interactions/pkg/errors"
)

// FindModalField searches a modal submission for a single field without
// building an index. The field is always required; query.Optional is ignored.
func FindModalField(components []discord.ModalSubmissionComponent, query FieldQuery) (*discord.ModalSubmitComponent, error) {
	for i := range components {
		field := matchRow(&components[i], query.CustomID)
		if field == nil {
			continue
		}
		if field.Type != query.Type {
			return nil, ierrors.NewModalFieldError(
				ierrors.CodeFieldTypeMismatch,
				fmt.Sprintf("Modal field is not of type %s: %s", query.Type, query.CustomID),
				ierrors.ErrTypeMismatch,
			)
		}
		return field, nil
	}
	return nil, ierrors.NewModalFieldError(
		ierrors.CodeFieldNotFound,
		fmt.Sprintf("Unable to find modal field: %s", query.CustomID),
		ierrors.ErrNotFound,
	)
}

func matchRow(row *discord.ModalSubmissionComponent, customID string) *discord.ModalSubmitComponent {
	switch row.Type {
	case discord.ComponentTypeActionRow:
		for j := range row.Components {
			if row.Components[j].CustomID == customID {
				return &row.Components[j]
			}
		}
	case discord.ComponentTypeLabel:
		if row.Component != nil && row.Component.CustomID == customID {
			return row.Component
		}
	}
	return nil
}
