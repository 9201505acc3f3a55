package options

import (
	"github.com/wehubfusion/interactions/pkg/discord"
	ierrors "github.com/wehubfusion/interactions/pkg/errors"
)

// lookupValue runs Get and decodes the value of the found option.
// found is false only when the option is absent and not required.
func lookupValue[T any](o *ApplicationCommandOptions, name string, t discord.OptionType, required bool, decode func(*discord.CommandOption) (T, error)) (value T, found bool, err error) {
	option, err := o.Get(OptionQuery{Name: name, Type: t, Required: required})
	if err != nil || option == nil {
		return value, false, err
	}
	value, err = decode(option)
	if err != nil {
		return value, false, o.fail(name, ierrors.NewOptionError(ierrors.CodeInvalidOptionValue, err.Error(), ierrors.ErrInvalidValue))
	}
	return value, true, nil
}

// GetString returns the value of a String option
func (o *ApplicationCommandOptions) GetString(name string, required bool) (string, bool, error) {
	return lookupValue(o, name, discord.OptionTypeString, required, (*discord.CommandOption).StringValue)
}

// GetInteger returns the value of an Integer option
func (o *ApplicationCommandOptions) GetInteger(name string, required bool) (int64, bool, error) {
	return lookupValue(o, name, discord.OptionTypeInteger, required, (*discord.CommandOption).IntegerValue)
}

// GetNumber returns the value of a Number option
func (o *ApplicationCommandOptions) GetNumber(name string, required bool) (float64, bool, error) {
	return lookupValue(o, name, discord.OptionTypeNumber, required, (*discord.CommandOption).NumberValue)
}

// GetBoolean returns the value of a Boolean option
func (o *ApplicationCommandOptions) GetBoolean(name string, required bool) (bool, bool, error) {
	return lookupValue(o, name, discord.OptionTypeBoolean, required, (*discord.CommandOption).BooleanValue)
}

// GetUser returns the user id of a User option
func (o *ApplicationCommandOptions) GetUser(name string, required bool) (string, bool, error) {
	return lookupValue(o, name, discord.OptionTypeUser, required, (*discord.CommandOption).SnowflakeValue)
}

// GetChannel returns the channel id of a Channel option
func (o *ApplicationCommandOptions) GetChannel(name string, required bool) (string, bool, error) {
	return lookupValue(o, name, discord.OptionTypeChannel, required, (*discord.CommandOption).SnowflakeValue)
}

// GetRole returns the role id of a Role option
func (o *ApplicationCommandOptions) GetRole(name string, required bool) (string, bool, error) {
	return lookupValue(o, name, discord.OptionTypeRole, required, (*discord.CommandOption).SnowflakeValue)
}

// GetMentionable returns the user or role id of a Mentionable option
func (o *ApplicationCommandOptions) GetMentionable(name string, required bool) (string, bool, error) {
	return lookupValue(o, name, discord.OptionTypeMentionable, required, (*discord.CommandOption).SnowflakeValue)
}

// GetAttachment returns the attachment id of an Attachment option
func (o *ApplicationCommandOptions) GetAttachment(name string, required bool) (string, bool, error) {
	return lookupValue(o, name, discord.OptionTypeAttachment, required, (*discord.CommandOption).SnowflakeValue)
}
