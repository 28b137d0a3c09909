package config

import (
	"fmt"
	"os"

	"github.com/qdm12/gosettings"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gosettings/validate"
	"github.com/qdm12/gotree"
)

type Health struct {
	ServerAddress string
}

func (h *Health) SetDefaults() {
	h.ServerAddress = gosettings.DefaultComparable(h.ServerAddress, "127.0.0.1:9999")
}

func (h Health) Validate() (err error) {
	uid := os.Getuid()
	err = validate.ListeningAddress(h.ServerAddress, uid)
	if err != nil {
		return fmt.Errorf("server listening address: %w", err)
	}

	return nil
}

func (h Health) String() string {
	return h.toLinesNode().String()
}

func (h Health) toLinesNode() *gotree.Node {
	node := gotree.New("Health")
	node.Appendf("Server listening address: %s", h.ServerAddress)
	return node
}

func (h *Health) Read(reader *reader.Reader) {
	h.ServerAddress = reader.String("HEALTH_SERVER_ADDRESS")
}
