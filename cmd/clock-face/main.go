package main

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"

	"github.com/ytget/clock-face/internal/config"
	"github.com/ytget/clock-face/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.clock-face"
	AppName = "Clock Face"
)

func main() {
	log.Printf("Clock Face v%s starting...", version)

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewClockTheme())

	// Borderless window where the driver allows it
	var myWindow fyne.Window
	if drv, ok := myApp.Driver().(desktop.Driver); ok {
		myWindow = drv.CreateSplashWindow()
		myWindow.SetTitle(AppName)
	} else {
		myWindow = myApp.NewWindow(AppName)
	}
	myWindow.Resize(fyne.NewSize(ui.DefaultWindowWidth, ui.DefaultWindowHeight))
	myWindow.SetMaster()

	settings := config.NewSettings(myApp)
	root := ui.NewRootUI(myWindow, myApp, settings)
	myApp.Lifecycle().SetOnStopped(root.Shutdown)

	myWindow.ShowAndRun()
}
