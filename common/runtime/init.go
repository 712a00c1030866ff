package runtime

import (
	"github.com/melisma/audiotensor/common/config"
	"github.com/melisma/audiotensor/common/logging"
	"github.com/melisma/audiotensor/common/version"
	"github.com/sirupsen/logrus"
)

// RunStartupSequence sets up logging from the loaded configuration and logs
// the build version. Call after config.Path is final.
func RunStartupSequence() {
	err := logging.Setup(
		config.Get().General.LogDirectory,
		config.Get().General.LogColors,
		config.Get().General.JsonLogs,
		config.Get().General.LogLevel,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	version.Print(true)
}
