// Package interaction turns raw interaction payloads into option and modal
// field resolvers configured from a single Config.
package interaction

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/wehubfusion/interactions/pkg/config"
	"github.com/wehubfusion/interactions/pkg/discord"
	ierrors "github.com/wehubfusion/interactions/pkg/errors"
	"github.com/wehubfusion/interactions/pkg/modal"
	"github.com/wehubfusion/interactions/pkg/options"
	"go.uber.org/zap"
)

// Parser parses interaction payloads
type Parser struct {
	config *config.Config
	logger *zap.Logger
}

// NewParser creates a parser. A nil config uses config.Default().
func NewParser(cfg *config.Config, logger *zap.Logger) (*Parser, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if cfg == nil {
		cfg = config.Default()
	}
	return &Parser{config: cfg, logger: logger}, nil
}

// Interaction is a parsed interaction payload
type Interaction struct {
	ID       string
	Type     discord.InteractionType
	Name     string // command name, set for command and autocomplete interactions
	CustomID string // modal custom id, set for modal submissions

	data   gjson.Result
	parser *Parser
}

// Parse validates a payload and extracts the fields needed to route it
func (p *Parser) Parse(payload []byte) (*Interaction, error) {
	if !gjson.ValidBytes(payload) {
		return nil, fmt.Errorf("invalid interaction payload: %w", ierrors.ErrInvalidValue)
	}
	root := gjson.ParseBytes(payload)
	if !root.IsObject() {
		return nil, fmt.Errorf("interaction payload is not an object: %w", ierrors.ErrInvalidValue)
	}

	typ := root.Get("type")
	if typ.Type != gjson.Number {
		return nil, fmt.Errorf("interaction payload has no type: %w", ierrors.ErrInvalidValue)
	}
	if typ.Float() != float64(typ.Int()) {
		return nil, fmt.Errorf("interaction type %s is not an integer: %w", typ.Raw, ierrors.ErrInvalidValue)
	}

	i := &Interaction{
		ID:     root.Get("id").String(),
		Type:   discord.InteractionType(typ.Int()),
		data:   root.Get("data"),
		parser: p,
	}
	i.Name = i.data.Get("name").String()
	i.CustomID = i.data.Get("custom_id").String()

	p.logger.Debug("Parsed interaction",
		zap.String("id", i.ID),
		zap.String("type", i.Type.String()),
		zap.String("name", i.Name),
		zap.String("custom_id", i.CustomID))

	return i, nil
}

// IsAutocomplete reports whether the interaction is an autocomplete request
func (i *Interaction) IsAutocomplete() bool {
	return i.Type == discord.InteractionTypeApplicationCommandAutocomplete
}

// RawOptions decodes data.options of a command or autocomplete interaction
func (i *Interaction) RawOptions() ([]discord.CommandOption, error) {
	if i.Type != discord.InteractionTypeApplicationCommand && !i.IsAutocomplete() {
		return nil, fmt.Errorf("interaction of type %s has no command options: %w", i.Type, ierrors.ErrInvalidQuery)
	}
	raw := i.data.Get("options")
	if !raw.Exists() {
		return nil, nil
	}
	var opts []discord.CommandOption
	if err := json.Unmarshal([]byte(raw.Raw), &opts); err != nil {
		return nil, fmt.Errorf("failed to decode command options: %w", errors.Join(ierrors.ErrInvalidValue, err))
	}
	return opts, nil
}

// CommandOptions returns a name index over the command options
func (i *Interaction) CommandOptions() (*options.ApplicationCommandOptions, error) {
	opts, err := i.RawOptions()
	if err != nil {
		return nil, err
	}
	settings := []options.Setting{options.WithLogger(i.parser.logger)}
	if i.parser.config.FoldOptionNames {
		settings = append(settings, options.WithNameFolding())
	}
	return options.NewApplicationCommandOptions(opts, settings...), nil
}

// RawComponents decodes data.components of a modal submission
func (i *Interaction) RawComponents() ([]discord.ModalSubmissionComponent, error) {
	if i.Type != discord.InteractionTypeModalSubmit {
		return nil, fmt.Errorf("interaction of type %s has no modal fields: %w", i.Type, ierrors.ErrInvalidQuery)
	}
	raw := i.data.Get("components")
	if !raw.Exists() {
		return nil, nil
	}
	var components []discord.ModalSubmissionComponent
	if err := json.Unmarshal([]byte(raw.Raw), &components); err != nil {
		return nil, fmt.Errorf("failed to decode modal components: %w", errors.Join(ierrors.ErrInvalidValue, err))
	}
	return components, nil
}

// ModalFields returns a custom id index over the submitted modal fields
func (i *Interaction) ModalFields() (*modal.ModalSubmitFields, error) {
	components, err := i.RawComponents()
	if err != nil {
		return nil, err
	}
	return modal.NewModalSubmitFields(components, modal.WithLogger(i.parser.logger)), nil
}
