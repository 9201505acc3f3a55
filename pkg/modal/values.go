package modal

import (
	"github.com/wehubfusion/interactions/pkg/discord"
	ierrors "github.com/wehubfusion/interactions/pkg/errors"
)

// GetText returns the text of a TextInput field or the selection of a
// RadioGroup field. found is false when an optional field is absent or a
// radio group was left unselected.
func (f *ModalSubmitFields) GetText(customID string, t discord.ComponentType, optional bool) (string, bool, error) {
	field, err := f.Get(FieldQuery{CustomID: customID, Type: t, Optional: optional})
	if err != nil || field == nil {
		return "", false, err
	}
	value, ok, err := field.TextValue()
	if err != nil {
		return "", false, f.invalid(customID, err)
	}
	return value, ok, nil
}

// GetSelected returns the values of a select, file upload or checkbox group field
func (f *ModalSubmitFields) GetSelected(customID string, t discord.ComponentType, optional bool) ([]string, bool, error) {
	field, err := f.Get(FieldQuery{CustomID: customID, Type: t, Optional: optional})
	if err != nil || field == nil {
		return nil, false, err
	}
	values, err := field.SelectedValues()
	if err != nil {
		return nil, false, f.invalid(customID, err)
	}
	return values, true, nil
}

// GetChecked returns the state of a Checkbox field
func (f *ModalSubmitFields) GetChecked(customID string, optional bool) (bool, bool, error) {
	field, err := f.Get(FieldQuery{CustomID: customID, Type: discord.ComponentTypeCheckbox, Optional: optional})
	if err != nil || field == nil {
		return false, false, err
	}
	checked, err := field.Checked()
	if err != nil {
		return false, false, f.invalid(customID, err)
	}
	return checked, true, nil
}

func (f *ModalSubmitFields) invalid(customID string, err error) error {
	return f.fail(customID, ierrors.NewModalFieldError(ierrors.CodeInvalidFieldValue, err.Error(), ierrors.ErrInvalidValue))
}
