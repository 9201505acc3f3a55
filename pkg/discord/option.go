package discord

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	ierrors "github.com/wehubfusion/interactions/pkg/errors"
)

// CommandOption is one node of an application command option tree.
// Subcommands and subcommand groups carry children in Options; every other
// option carries a Value. During autocomplete the option being typed into is
// marked Focused and its Value holds the raw user input.
type CommandOption struct {
	Name    string          `json:"name"`
	Type    OptionType      `json:"type"`
	Value   json.RawMessage `json:"value,omitempty"`
	Options []CommandOption `json:"options,omitempty"`
	Focused bool            `json:"focused,omitempty"`
}

// HasValue reports whether the option carries a non-null value
func (o *CommandOption) HasValue() bool {
	trimmed := bytes.TrimSpace(o.Value)
	return len(trimmed) > 0 && !bytes.Equal(trimmed, []byte("null"))
}

// StringValue decodes the value of a String option
func (o *CommandOption) StringValue() (string, error) {
	if !o.HasValue() {
		return "", o.missingValue()
	}
	var s string
	if err := json.Unmarshal(o.Value, &s); err != nil {
		return "", o.invalidValue("string", err)
	}
	return s, nil
}

// IntegerValue decodes the value of an Integer option.
// String-encoded integers are accepted.
func (o *CommandOption) IntegerValue() (int64, error) {
	num, err := o.number()
	if err != nil {
		return 0, err
	}
	i, err := strconv.ParseInt(num, 10, 64)
	if err != nil {
		// 5.0 is a valid JSON rendering of an integer
		f, ferr := strconv.ParseFloat(num, 64)
		if ferr != nil || f != float64(int64(f)) {
			return 0, o.invalidValue("integer", err)
		}
		return int64(f), nil
	}
	return i, nil
}

// NumberValue decodes the value of a Number option.
// String-encoded numbers are accepted.
func (o *CommandOption) NumberValue() (float64, error) {
	num, err := o.number()
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0, o.invalidValue("number", err)
	}
	return f, nil
}

// BooleanValue decodes the value of a Boolean option.
// String-encoded booleans are accepted.
func (o *CommandOption) BooleanValue() (bool, error) {
	if !o.HasValue() {
		return false, o.missingValue()
	}
	var b bool
	if err := json.Unmarshal(o.Value, &b); err == nil {
		return b, nil
	}
	var s string
	if err := json.Unmarshal(o.Value, &s); err != nil {
		return false, o.invalidValue("boolean", err)
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return false, o.invalidValue("boolean", err)
	}
	return b, nil
}

// SnowflakeValue decodes the id carried by User, Channel, Role, Mentionable
// and Attachment options
func (o *CommandOption) SnowflakeValue() (string, error) {
	if !o.HasValue() {
		return "", o.missingValue()
	}
	var s string
	if err := json.Unmarshal(o.Value, &s); err == nil {
		return s, nil
	}
	var n json.Number
	if err := json.Unmarshal(o.Value, &n); err != nil {
		return "", o.invalidValue("snowflake", err)
	}
	return n.String(), nil
}

// number returns the textual form of a numeric value, unwrapping string-encoded input
func (o *CommandOption) number() (string, error) {
	if !o.HasValue() {
		return "", o.missingValue()
	}
	var s string
	if err := json.Unmarshal(o.Value, &s); err == nil {
		return s, nil
	}
	var n json.Number
	if err := json.Unmarshal(o.Value, &n); err != nil {
		return "", o.invalidValue("number", err)
	}
	return n.String(), nil
}

func (o *CommandOption) missingValue() error {
	return fmt.Errorf("option %s has no value: %w", o.Name, ierrors.ErrInvalidValue)
}

func (o *CommandOption) invalidValue(kind string, err error) error {
	return fmt.Errorf("option %s is not a valid %s (%v): %w", o.Name, kind, err, ierrors.ErrInvalidValue)
}
