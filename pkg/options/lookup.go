package options

import (
	"github.com/wehubfusion/interactions/pkg/discord"
	ierrors "github.com/wehubfusion/interactions/pkg/errors"
)

// GetSubcommand returns the name of the first subcommand found in the option
// tree, searching depth-first. When nothing is found it returns "" unless
// required is set.
func GetSubcommand(opts []discord.CommandOption, required bool) (string, error) {
	if option := find(opts, func(o *discord.CommandOption) bool {
		return o.Type == discord.OptionTypeSubcommand
	}); option != nil {
		return option.Name, nil
	}
	if required {
		return "", ierrors.NewOptionError(ierrors.CodeSubcommandMissing, "Unable to find subcommand", ierrors.ErrNotFound)
	}
	return "", nil
}

// GetGroup returns the name of the first subcommand group found in the option
// tree. When nothing is found it returns "" unless required is set.
func GetGroup(opts []discord.CommandOption, required bool) (string, error) {
	if option := find(opts, func(o *discord.CommandOption) bool {
		return o.Type == discord.OptionTypeSubcommandGroup
	}); option != nil {
		return option.Name, nil
	}
	if required {
		return "", ierrors.NewOptionError(ierrors.CodeGroupMissing, "Unable to find group", ierrors.ErrNotFound)
	}
	return "", nil
}

// GetFocusedOption returns the first focused option of an autocomplete option
// tree, searching below subcommands and groups. Autocomplete handlers almost
// always need it, so callers normally pass required=true.
func GetFocusedOption(opts []discord.CommandOption, required bool) (*discord.CommandOption, error) {
	if option := find(opts, func(o *discord.CommandOption) bool {
		return o.Focused && !o.Type.IsSubcommand()
	}); option != nil {
		return option, nil
	}
	if required {
		return nil, errFocusedMissing()
	}
	return nil, nil
}

func find(opts []discord.CommandOption, match func(o *discord.CommandOption) bool) *discord.CommandOption {
	for i := range opts {
		option := &opts[i]
		if match(option) {
			return option
		}
		if found := find(option.Options, match); found != nil {
			return found
		}
	}
	return nil
}
