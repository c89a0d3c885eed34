//go:build !linux

package input

import (
	"errors"

	"git.lost.host/meutraa/shadowdance/internal/logger"
)

type DeviceSource struct {
	Path string
	Log  *logger.Logger
}

func (d *DeviceSource) Start(events chan<- Event) error {
	return errors.New("input devices are only supported on linux")
}

func (d *DeviceSource) Close() error {
	return nil
}
