package process

import (
	"fmt"

	"github.com/aretw0/pricewalk/pkg/domain"
	"github.com/mitchellh/mapstructure"
)

// decode overlays params onto out, which already carries the defaults.
// Unknown keys are rejected so typos in config files do not go unnoticed.
func decode(params map[string]any, out any) error {
	if len(params) == 0 {
		return nil
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(params); err != nil {
		return fmt.Errorf("decode params: %v: %w", err, domain.ErrInvalidArgument)
	}
	return nil
}

// DecodeLevel builds a Level from a loosely typed parameter map.
// Recognized keys: level (default 0), alpha (default 0.25).
func DecodeLevel(params map[string]any) (Level, error) {
	p := NewLevel(0)
	err := decode(params, &p)
	return p, err
}

// DecodeMomentum builds a Momentum from a parameter map. Recognized keys: alpha.
func DecodeMomentum(params map[string]any) (Momentum, error) {
	p := NewMomentum()
	err := decode(params, &p)
	return p, err
}

// DecodeFrequency builds a Frequency from a parameter map. Recognized keys: alpha.
func DecodeFrequency(params map[string]any) (Frequency, error) {
	p := NewFrequency()
	err := decode(params, &p)
	return p, err
}
