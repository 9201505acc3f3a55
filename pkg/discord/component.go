package discord

import (
	"bytes"
	"encoding/json"
	"fmt"

	ierrors "github.com/wehubfusion/interactions/pkg/errors"
)

// ModalSubmissionComponent is a top-level entry of a modal submission.
// Action rows group several fields in Components, labels wrap a single field
// in Component.
type ModalSubmissionComponent struct {
	Type       ComponentType          `json:"type"`
	ID         int                    `json:"id,omitempty"`
	Components []ModalSubmitComponent `json:"components,omitempty"`
	Component  *ModalSubmitComponent  `json:"component,omitempty"`
}

// ModalSubmitComponent is a submitted modal field
type ModalSubmitComponent struct {
	Type     ComponentType   `json:"type"`
	ID       int             `json:"id,omitempty"`
	CustomID string          `json:"custom_id"`
	Value    json.RawMessage `json:"value,omitempty"`
	Values   []string        `json:"values,omitempty"`
}

// TextValue returns the text of a TextInput or the choice of a RadioGroup.
// ok is false when a RadioGroup was submitted without a selection.
func (c *ModalSubmitComponent) TextValue() (value string, ok bool, err error) {
	switch c.Type {
	case ComponentTypeTextInput, ComponentTypeRadioGroup:
	default:
		return "", false, c.unsupported("text")
	}
	trimmed := bytes.TrimSpace(c.Value)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		if c.Type == ComponentTypeTextInput {
			// an untouched optional text input submits an empty string
			return "", true, nil
		}
		return "", false, nil
	}
	if err := json.Unmarshal(c.Value, &value); err != nil {
		return "", false, fmt.Errorf("field %s is not valid text (%v): %w", c.CustomID, err, ierrors.ErrInvalidValue)
	}
	return value, true, nil
}

// SelectedValues returns the values picked in a select menu, file upload or checkbox group
func (c *ModalSubmitComponent) SelectedValues() ([]string, error) {
	switch c.Type {
	case ComponentTypeStringSelect,
		ComponentTypeUserSelect,
		ComponentTypeRoleSelect,
		ComponentTypeMentionableSelect,
		ComponentTypeChannelSelect,
		ComponentTypeFileUpload,
		ComponentTypeCheckboxGroup:
	default:
		return nil, c.unsupported("selected values")
	}
	if c.Values == nil {
		return []string{}, nil
	}
	return c.Values, nil
}

// Checked returns the state of a Checkbox
func (c *ModalSubmitComponent) Checked() (bool, error) {
	if c.Type != ComponentTypeCheckbox {
		return false, c.unsupported("checked state")
	}
	trimmed := bytes.TrimSpace(c.Value)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return false, nil
	}
	var checked bool
	if err := json.Unmarshal(c.Value, &checked); err != nil {
		return false, fmt.Errorf("field %s is not a valid checkbox state (%v): %w", c.CustomID, err, ierrors.ErrInvalidValue)
	}
	return checked, nil
}

func (c *ModalSubmitComponent) unsupported(what string) error {
	return fmt.Errorf("field %s of type %s has no %s: %w", c.CustomID, c.Type, what, ierrors.ErrInvalidValue)
}
