package config

import (
	"strings"
	"time"
)

// AppVersion is the version of the application, set at build time with -ldflags.
var AppVersion = "dev"

// AppName is the name of the application.
const AppName = "Resizer"

// AppID is the unique application ID used by Fyne.
const AppID = "com.dixieflatline76.resizer"

// LogWinSubDir is the sub directory for the log files on windows.
var LogWinSubDir = AppName

// LogSubDir is the sub directory for the log files.
var LogSubDir = "." + strings.ToLower(AppName)

// LogExt is the extension for the log files.
var LogExt = ".log"

// ImageExtensions are the extensions offered by the file dialogs and the path completer.
var ImageExtensions = []string{".png", ".jpg"}

// ImageFilterLabel is the display name of the image filter in file dialogs.
const ImageFilterLabel = "Images (*.png *.jpg)"

// DefaultSaveName is the file name proposed by the save dialogs.
const DefaultSaveName = "resized.png"

// Status message durations.
const (
	ValidationMessageDuration = 3 * time.Second
	SaveMessageDuration       = 6 * time.Second
)

// MaxCompletions caps the number of path suggestions shown at once.
const MaxCompletions = 12

// Default window size.
const (
	WindowWidth  = 800
	WindowHeight = 600
)
