package utils

import (
	"github.com/skratchdot/open-golang/open"
	"go.uber.org/zap"
)

// Opener open a local file for the user
type Opener func(path string) error

// OpenViewer open file with the default application, waiting for the opener command to exit
func OpenViewer(path string) error {
	err := open.Run(path)
	if err != nil {
		zap.L().Error("open viewer failed", zap.Error(err), zap.String("path", path))
		return err
	}

	return nil
}
