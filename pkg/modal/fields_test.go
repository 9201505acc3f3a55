package modal

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/wehubfusion/interactions/pkg/discord"
	ierrors "github.com/wehubfusion/interactions/pkg/errors"
)

func testComponents() []discord.ModalSubmissionComponent {
	return []discord.ModalSubmissionComponent{
		{
			Type: discord.ComponentTypeLabel,
			Component: &discord.ModalSubmitComponent{
				Type:     discord.ComponentTypeTextInput,
				CustomID: "text_input",
				Value:    json.RawMessage(`"Foobar"`),
			},
		},
		{
			Type: discord.ComponentTypeActionRow,
			Components: []discord.ModalSubmitComponent{
				{Type: discord.ComponentTypeTextInput, CustomID: "row_text", Value: json.RawMessage(`"in a row"`)},
				{Type: discord.ComponentTypeStringSelect, CustomID: "colour", Values: []string{"red", "blue"}},
			},
		},
		{Type: discord.ComponentTypeTextDisplay, ID: 7},
		{
			Type:      discord.ComponentTypeLabel,
			Component: &discord.ModalSubmitComponent{Type: discord.ComponentTypeCheckbox, CustomID: "agree", Value: json.RawMessage(`true`)},
		},
		{
			Type:      discord.ComponentTypeLabel,
			Component: &discord.ModalSubmitComponent{Type: discord.ComponentTypeRadioGroup, CustomID: "size", Value: json.RawMessage(`null`)},
		},
	}
}

func TestModalSubmitFields_Get(t *testing.T) {
	fields := NewModalSubmitFields(testComponents())

	t.Run("resolves labeled field", func(t *testing.T) {
		field, err := fields.Get(FieldQuery{CustomID: "text_input", Type: discord.ComponentTypeTextInput})
		require.NoError(t, err)
		require.NotNil(t, field)
		assert.Equal(t, "text_input", field.CustomID)
	})

	t.Run("resolves field inside action row", func(t *testing.T) {
		field, err := fields.Get(FieldQuery{CustomID: "colour", Type: discord.ComponentTypeStringSelect})
		require.NoError(t, err)
		assert.Equal(t, []string{"red", "blue"}, field.Values)
	})

	t.Run("missing optional field yields nil", func(t *testing.T) {
		field, err := fields.Get(FieldQuery{CustomID: "missing", Type: discord.ComponentTypeTextInput, Optional: true})
		assert.NoError(t, err)
		assert.Nil(t, field)
	})

	t.Run("fields are required by default", func(t *testing.T) {
		field, err := fields.Get(FieldQuery{CustomID: "missing", Type: discord.ComponentTypeTextInput})
		assert.Nil(t, field)
		require.EqualError(t, err, "Unable to find required field: missing")
		assert.ErrorIs(t, err, ierrors.ErrModalFieldResolution)
		assert.Equal(t, ierrors.CodeRequiredFieldMissing, ierrors.Code(err))
	})

	t.Run("type mismatch", func(t *testing.T) {
		_, err := fields.Get(FieldQuery{CustomID: "text_input", Type: discord.ComponentTypeRadioGroup})
		require.EqualError(t, err, "Expected field type RadioGroup. Received: TextInput")
		assert.True(t, ierrors.IsTypeMismatch(err))
	})

	t.Run("non-field types cannot be queried", func(t *testing.T) {
		_, err := fields.Get(FieldQuery{CustomID: "text_input", Type: discord.ComponentTypeLabel})
		assert.ErrorIs(t, err, ierrors.ErrInvalidQuery)
	})

	t.Run("rows without fields are skipped", func(t *testing.T) {
		assert.Equal(t, 5, fields.Len())
		assert.True(t, fields.Has("row_text"))
		assert.False(t, fields.Has(""))
	})
}

func TestModalSubmitFields_Values(t *testing.T) {
	fields := NewModalSubmitFields(testComponents())

	text, found, err := fields.GetText("text_input", discord.ComponentTypeTextInput, false)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "Foobar", text)

	selected, found, err := fields.GetSelected("colour", discord.ComponentTypeStringSelect, false)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []string{"red", "blue"}, selected)

	checked, found, err := fields.GetChecked("agree", false)
	require.NoError(t, err)
	assert.True(t, found)
	assert.True(t, checked)

	_, found, err = fields.GetText("size", discord.ComponentTypeRadioGroup, false)
	require.NoError(t, err)
	assert.False(t, found, "unselected radio group")

	_, found, err = fields.GetChecked("missing", true)
	assert.NoError(t, err)
	assert.False(t, found)

	_, _, err = fields.GetSelected("text_input", discord.ComponentTypeTextInput, false)
	require.Error(t, err)
	assert.ErrorIs(t, err, ierrors.ErrInvalidValue)
	assert.Equal(t, ierrors.CodeInvalidFieldValue, ierrors.Code(err))
}

func TestModalSubmitFields_DuplicateCustomID(t *testing.T) {
	components := []discord.ModalSubmissionComponent{
		{
			Type:      discord.ComponentTypeLabel,
			Component: &discord.ModalSubmitComponent{Type: discord.ComponentTypeTextInput, CustomID: "dup", Value: json.RawMessage(`"first"`)},
		},
		{
			Type:      discord.ComponentTypeLabel,
			Component: &discord.ModalSubmitComponent{Type: discord.ComponentTypeTextInput, CustomID: "dup", Value: json.RawMessage(`"second"`)},
		},
	}
	text, _, err := NewModalSubmitFields(components).GetText("dup", discord.ComponentTypeTextInput, false)
	require.NoError(t, err)
	assert.Equal(t, "second", text)
}

func TestModalSubmitFields_Empty(t *testing.T) {
	fields := NewModalSubmitFields(nil)
	assert.Equal(t, 0, fields.Len())

	_, err := fields.Get(FieldQuery{CustomID: "any", Type: discord.ComponentTypeTextInput})
	assert.True(t, ierrors.IsNotFound(err))
}

func TestModalSubmitFields_SkippedRows(t *testing.T) {
	tests := []struct {
		name       string
		components []discord.ModalSubmissionComponent
		expected   int
	}{
		{
			name:       "label without component",
			components: []discord.ModalSubmissionComponent{{Type: discord.ComponentTypeLabel}},
			expected:   0,
		},
		{
			name: "label without component next to a field",
			components: []discord.ModalSubmissionComponent{
				{Type: discord.ComponentTypeLabel},
				{
					Type:      discord.ComponentTypeLabel,
					Component: &discord.ModalSubmitComponent{Type: discord.ComponentTypeTextInput, CustomID: "name", Value: json.RawMessage(`"x"`)},
				},
			},
			expected: 1,
		},
		{
			name:       "text display",
			components: []discord.ModalSubmissionComponent{{Type: discord.ComponentTypeTextDisplay, ID: 1}},
			expected:   0,
		},
		{
			name:       "empty action row",
			components: []discord.ModalSubmissionComponent{{Type: discord.ComponentTypeActionRow}},
			expected:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields := NewModalSubmitFields(tt.components)
			assert.Equal(t, tt.expected, fields.Len())
			assert.False(t, fields.Has(""))
		})
	}
}

func TestFindModalField_LabelWithoutComponent(t *testing.T) {
	components := []discord.ModalSubmissionComponent{{Type: discord.ComponentTypeLabel}}
	_, err := FindModalField(components, FieldQuery{CustomID: "", Type: discord.ComponentTypeTextInput})
	assert.Equal(t, ierrors.CodeFieldNotFound, ierrors.Code(err))
}

func TestModalSubmitFields_WithLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	components := append(testComponents(), discord.ModalSubmissionComponent{Type: discord.ComponentTypeLabel})
	fields := NewModalSubmitFields(components, nil, WithLogger(zap.New(core)))

	indexed := logs.FilterMessage("Indexed modal submit fields").All()
	require.Len(t, indexed, 1)
	assert.Equal(t, int64(5), indexed[0].ContextMap()["fields"])
	assert.Equal(t, int64(2), indexed[0].ContextMap()["skipped_rows"])

	_, err := fields.Get(FieldQuery{CustomID: "missing", Type: discord.ComponentTypeTextInput})
	require.Error(t, err)
	assert.NotEmpty(t, logs.FilterField(zap.String("custom_id", "missing")).All())
}
