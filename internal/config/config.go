package config

import (
	"fmt"

	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gotree"
)

type Config struct {
	Client  Client
	Geo     Geo
	PubIP   PubIP
	Server  Server
	Health  Health
	Logger  Logger
	Presets Presets
}

func (c *Config) SetDefaults() {
	c.Client.setDefaults()
	c.Geo.setDefaults()
	c.PubIP.setDefaults()
	c.Server.setDefaults()
	c.Health.SetDefaults()
	c.Logger.setDefaults()
	c.Presets.setDefaults()
}

func (c Config) Validate() (err error) {
	type validator interface {
		Validate() (err error)
	}
	toValidate := map[string]validator{
		"client":    &c.Client,
		"geo":       &c.Geo,
		"public ip": &c.PubIP,
		"server":    &c.Server,
		"health":    &c.Health,
		"logger":    &c.Logger,
		"presets":   &c.Presets,
	}

	for name, v := range toValidate {
		err = v.Validate()
		if err != nil {
			return fmt.Errorf("%s settings: %w", name, err)
		}
	}

	return nil
}

func (c Config) String() string {
	return c.toLinesNode().String()
}

func (c Config) toLinesNode() *gotree.Node {
	node := gotree.New("Settings summary:")
	node.AppendNode(c.Client.toLinesNode())
	node.AppendNode(c.Geo.toLinesNode())
	node.AppendNode(c.PubIP.toLinesNode())
	node.AppendNode(c.Server.toLinesNode())
	node.AppendNode(c.Health.toLinesNode())
	node.AppendNode(c.Logger.toLinesNode())
	node.AppendNode(c.Presets.toLinesNode())
	return node
}

func (c *Config) Read(reader *reader.Reader) (err error) {
	err = c.Client.read(reader)
	if err != nil {
		return fmt.Errorf("reading client settings: %w", err)
	}

	c.Geo.read(reader)

	err = c.PubIP.read(reader)
	if err != nil {
		return fmt.Errorf("reading public IP settings: %w", err)
	}

	err = c.Server.read(reader)
	if err != nil {
		return fmt.Errorf("reading server settings: %w", err)
	}

	c.Health.Read(reader)

	err = c.Logger.read(reader)
	if err != nil {
		return fmt.Errorf("reading logger settings: %w", err)
	}

	c.Presets.read(reader)

	return nil
}
