package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-phone-auth/internal/client"
	"github.com/MKhiriev/go-phone-auth/internal/config"
	"github.com/MKhiriev/go-phone-auth/internal/logger"
	"github.com/MKhiriev/go-phone-auth/internal/tui"
	"github.com/MKhiriev/go-phone-auth/models"
)

const logFileName = "go-phone-auth-client.log"

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := newBuildInfo()
	fmt.Println(buildInfo)

	// the UI owns the terminal, so logs only go to the file
	log := logger.NewFileLogger("go-phone-auth-client", logFilePath(), false)

	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Err(err).Msg("error getting configs")
		fmt.Fprintln(os.Stderr, "error getting configs:", err)
		os.Exit(1)
	}

	app, err := client.NewApp(cfg, buildInfo, log)
	if err != nil {
		log.Err(err).Msg("init client app error")
		fmt.Fprintln(os.Stderr, "init client app error:", err)
		os.Exit(1)
	}

	if err = app.Run(); err != nil && !errors.Is(err, tui.ErrUserQuit) {
		log.Err(err).Msg("client run error")
		fmt.Fprintln(os.Stderr, "client run error:", err)
		os.Exit(1)
	}
}

func logFilePath() string {
	exe, err := os.Executable()
	if err != nil {
		return logFileName
	}
	return filepath.Join(filepath.Dir(exe), logFileName)
}

func newBuildInfo() models.AppBuildInfo {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	return models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
}
