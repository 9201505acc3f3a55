// Package options resolves application command options by name.
//
// The option tree of a slash command or autocomplete interaction nests the
// actual arguments below an optional subcommand group and subcommand:
//
//	group
//	└── subcommand
//	    ├── bool
//	    └── str (focused)
//
// ApplicationCommandOptions flattens that tree once, remembering the
// subcommand and group names and the focused option, so that arguments can be
// looked up directly by name and checked for presence and type.
package options

import (
	"fmt"

	"github.com/wehubfusion/interactions/pkg/discord"
	ierrors "github.com/wehubfusion/interactions/pkg/errors"
	"go.uber.org/zap"
)

// OptionQuery describes an option lookup. Options are optional unless
// Required is set.
type OptionQuery struct {
	Name     string
	Type     discord.OptionType
	Required bool
}

// ApplicationCommandOptions is a name index over an application command option tree
type ApplicationCommandOptions struct {
	options    map[string]*discord.CommandOption
	subcommand string
	group      string
	focused    *discord.CommandOption
	settings   settings
}

// NewApplicationCommandOptions indexes the given option tree. A nil slice
// produces an empty resolver.
func NewApplicationCommandOptions(tree []discord.CommandOption, opts ...Setting) *ApplicationCommandOptions {
	o := &ApplicationCommandOptions{
		options: make(map[string]*discord.CommandOption),
	}
	o.settings.apply(opts)
	o.mapOptions(tree)

	o.settings.logger.Debug("Indexed application command options",
		zap.Int("options", len(o.options)),
		zap.String("subcommand", o.subcommand),
		zap.String("group", o.group),
		zap.Bool("has_focused", o.focused != nil))

	return o
}

func (o *ApplicationCommandOptions) mapOptions(opts []discord.CommandOption) {
	for i := range opts {
		option := &opts[i]
		switch option.Type {
		case discord.OptionTypeSubcommand:
			o.subcommand = option.Name
		case discord.OptionTypeSubcommandGroup:
			o.group = option.Name
		default:
			if option.Focused {
				o.focused = option
			}
			o.options[o.settings.key(option.Name)] = option
		}
		if len(option.Options) > 0 {
			o.mapOptions(option.Options)
		}
	}
}

// Get looks up an option by name and checks its type.
// A missing option that is not required yields nil and no error.
func (o *ApplicationCommandOptions) Get(query OptionQuery) (*discord.CommandOption, error) {
	if query.Type.IsSubcommand() || !query.Type.IsValid() {
		return nil, o.fail(query.Name, ierrors.NewOptionError(
			ierrors.CodeInvalidOptionQuery,
			fmt.Sprintf("Option type %s cannot be queried: %s", query.Type, query.Name),
			ierrors.ErrInvalidQuery,
		))
	}

	option, ok := o.options[o.settings.key(query.Name)]
	if !ok {
		if query.Required {
			return nil, o.fail(query.Name, ierrors.NewOptionError(
				ierrors.CodeRequiredOptionMissing,
				fmt.Sprintf("Unable to find required option: %s", query.Name),
				ierrors.ErrNotFound,
			))
		}
		return nil, nil
	}

	if option.Type != query.Type {
		return nil, o.fail(query.Name, ierrors.NewOptionError(
			ierrors.CodeOptionTypeMismatch,
			fmt.Sprintf("Expected option type %s. Received: %s", query.Type, option.Type),
			ierrors.ErrTypeMismatch,
		))
	}

	return option, nil
}

// Subcommand returns the name of the invoked subcommand, or "" if there is none
func (o *ApplicationCommandOptions) Subcommand() string {
	return o.subcommand
}

// Group returns the name of the invoked subcommand group, or "" if there is none
func (o *ApplicationCommandOptions) Group() string {
	return o.group
}

// Focused returns the option the user is typing into during autocomplete
func (o *ApplicationCommandOptions) Focused() (*discord.CommandOption, error) {
	if o.focused == nil {
		return nil, o.fail("", errFocusedMissing())
	}
	return o.focused, nil
}

// Has reports whether an option with the given name was submitted
func (o *ApplicationCommandOptions) Has(name string) bool {
	_, ok := o.options[o.settings.key(name)]
	return ok
}

// Len returns the number of indexed options, subcommands and groups excluded
func (o *ApplicationCommandOptions) Len() int {
	return len(o.options)
}

func (o *ApplicationCommandOptions) fail(name string, err *ierrors.Error) error {
	o.settings.logger.Debug("Option resolution failed",
		zap.String("option", name),
		zap.String("code", err.Code),
		zap.Error(err))
	return err
}

func errFocusedMissing() *ierrors.Error {
	return ierrors.NewOptionError(
		ierrors.CodeFocusedOptionMissing,
		"Unable to find focused option",
		ierrors.ErrNotFound,
	)
}
