package main

import (
	"fmt"
	"os"

	"steam-library-manager/logger"
	"steam-library-manager/settings"
)

func main() {
	exePath, workingFolder, err := settings.GetWorkingFolder()
	if err != nil {
		fmt.Printf("failed to get working folder - %v\n", err)
		os.Exit(1)
	}

	settingsObj := settings.NewAppSettings(workingFolder)

	sugar := logger.GetSugar(settingsObj.BaseFolder(), settingsObj.Debug)
	defer logger.Defer()

	sugar.Infof("steam-library-manager %v started (%v)", settings.SLM_VERSION, exePath)

	c := CreateConsole(settingsObj, sugar)
	os.Exit(c.Start())
}
