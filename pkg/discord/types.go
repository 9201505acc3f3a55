// Package discord mirrors the subset of the interaction wire schema that the
// option and modal field resolvers read. Field names and json tags follow the
// platform's API v10 payloads.
package discord

import "fmt"

// OptionType is the type of an application command option
type OptionType int

// Application command option types
const (
	OptionTypeSubcommand      OptionType = 1
	OptionTypeSubcommandGroup OptionType = 2
	OptionTypeString          OptionType = 3
	OptionTypeInteger         OptionType = 4
	OptionTypeBoolean         OptionType = 5
	OptionTypeUser            OptionType = 6
	OptionTypeChannel         OptionType = 7
	OptionTypeRole            OptionType = 8
	OptionTypeMentionable     OptionType = 9
	OptionTypeNumber          OptionType = 10
	OptionTypeAttachment      OptionType = 11
)

var optionTypeNames = map[OptionType]string{
	OptionTypeSubcommand:      "Subcommand",
	OptionTypeSubcommandGroup: "SubcommandGroup",
	OptionTypeString:          "String",
	OptionTypeInteger:         "Integer",
	OptionTypeBoolean:         "Boolean",
	OptionTypeUser:            "User",
	OptionTypeChannel:         "Channel",
	OptionTypeRole:            "Role",
	OptionTypeMentionable:     "Mentionable",
	OptionTypeNumber:          "Number",
	OptionTypeAttachment:      "Attachment",
}

// String returns the enum name of the option type
func (t OptionType) String() string {
	if name, ok := optionTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("OptionType(%d)", int(t))
}

// IsValid checks if the option type is a known type
func (t OptionType) IsValid() bool {
	_, ok := optionTypeNames[t]
	return ok
}

// IsSubcommand reports whether the option type is Subcommand or SubcommandGroup
func (t OptionType) IsSubcommand() bool {
	return t == OptionTypeSubcommand || t == OptionTypeSubcommandGroup
}

// ComponentType is the type of a message or modal component
type ComponentType int

// Component types
const (
	ComponentTypeActionRow         ComponentType = 1
	ComponentTypeButton            ComponentType = 2
	ComponentTypeStringSelect      ComponentType = 3
	ComponentTypeTextInput         ComponentType = 4
	ComponentTypeUserSelect        ComponentType = 5
	ComponentTypeRoleSelect        ComponentType = 6
	ComponentTypeMentionableSelect ComponentType = 7
	ComponentTypeChannelSelect     ComponentType = 8
	ComponentTypeSection           ComponentType = 9
	ComponentTypeTextDisplay       ComponentType = 10
	ComponentTypeThumbnail         ComponentType = 11
	ComponentTypeMediaGallery      ComponentType = 12
	ComponentTypeFile              ComponentType = 13
	ComponentTypeSeparator         ComponentType = 14
	ComponentTypeContainer         ComponentType = 17
	ComponentTypeLabel             ComponentType = 18
	ComponentTypeFileUpload        ComponentType = 19
	ComponentTypeRadioGroup        ComponentType = 21
	ComponentTypeCheckboxGroup     ComponentType = 22
	ComponentTypeCheckbox          ComponentType = 23
)

var componentTypeNames = map[ComponentType]string{
	ComponentTypeActionRow:         "ActionRow",
	ComponentTypeButton:            "Button",
	ComponentTypeStringSelect:      "StringSelect",
	ComponentTypeTextInput:         "TextInput",
	ComponentTypeUserSelect:        "UserSelect",
	ComponentTypeRoleSelect:        "RoleSelect",
	ComponentTypeMentionableSelect: "MentionableSelect",
	ComponentTypeChannelSelect:     "ChannelSelect",
	ComponentTypeSection:           "Section",
	ComponentTypeTextDisplay:       "TextDisplay",
	ComponentTypeThumbnail:         "Thumbnail",
	ComponentTypeMediaGallery:      "MediaGallery",
	ComponentTypeFile:              "File",
	ComponentTypeSeparator:         "Separator",
	ComponentTypeContainer:         "Container",
	ComponentTypeLabel:             "Label",
	ComponentTypeFileUpload:        "FileUpload",
	ComponentTypeRadioGroup:        "RadioGroup",
	ComponentTypeCheckboxGroup:     "CheckboxGroup",
	ComponentTypeCheckbox:          "Checkbox",
}

// String returns the enum name of the component type
func (t ComponentType) String() string {
	if name, ok := componentTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("ComponentType(%d)", int(t))
}

// IsModalField reports whether components of this type are submitted back as modal fields
func (t ComponentType) IsModalField() bool {
	switch t {
	case ComponentTypeTextInput,
		ComponentTypeStringSelect,
		ComponentTypeUserSelect,
		ComponentTypeRoleSelect,
		ComponentTypeMentionableSelect,
		ComponentTypeChannelSelect,
		ComponentTypeFileUpload,
		ComponentTypeRadioGroup,
		ComponentTypeCheckboxGroup,
		ComponentTypeCheckbox:
		return true
	}
	return false
}

// InteractionType is the type of an incoming interaction
type InteractionType int

// Interaction types
const (
	InteractionTypePing                           InteractionType = 1
	InteractionTypeApplicationCommand             InteractionType = 2
	InteractionTypeMessageComponent               InteractionType = 3
	InteractionTypeApplicationCommandAutocomplete InteractionType = 4
	InteractionTypeModalSubmit                    InteractionType = 5
)

var interactionTypeNames = map[InteractionType]string{
	InteractionTypePing:                           "Ping",
	InteractionTypeApplicationCommand:             "ApplicationCommand",
	InteractionTypeMessageComponent:               "MessageComponent",
	InteractionTypeApplicationCommandAutocomplete: "ApplicationCommandAutocomplete",
	InteractionTypeModalSubmit:                    "ModalSubmit",
}

// String returns the enum name of the interaction type
func (t InteractionType) String() string {
	if name, ok := interactionTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("InteractionType(%d)", int(t))
}
