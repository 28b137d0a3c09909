package config

import (
	"errors"
	"fmt"

	"github.com/ipwhere/ipwhere/pkg/ipclassify"
	"github.com/qdm12/gosettings"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gotree"
)

// Presets are addresses shown as one-click shortcuts in the web UI.
type Presets struct {
	Addresses []string
}

func (p *Presets) setDefaults() {
	p.Addresses = gosettings.DefaultSlice(p.Addresses, []string{
		"8.8.8.8",
		"1.1.1.1",
		"2001:4860:4860::8888",
		"9.9.9.9",
	})
}

var ErrPresetAddressNotValid = errors.New("preset address is not valid")

func (p Presets) Validate() (err error) {
	for _, address := range p.Addresses {
		if ipclassify.Classify(address) == ipclassify.None {
			return fmt.Errorf("%w: %s", ErrPresetAddressNotValid, address)
		}
	}

	return nil
}

func (p Presets) String() string {
	return p.toLinesNode().String()
}

func (p Presets) toLinesNode() *gotree.Node {
	node := gotree.New("Preset addresses")
	for _, address := range p.Addresses {
		node.Appendf(address)
	}
	return node
}

func (p *Presets) read(reader *reader.Reader) {
	p.Addresses = reader.CSV("PRESET_ADDRESSES")
}
