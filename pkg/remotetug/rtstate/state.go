// Package rtstate remembers where the user was between sessions.
package rtstate

import (
	"os"
	"path/filepath"

	"github.com/datatug/remotetug/pkg/fsutils"
	"github.com/datatug/remotetug/pkg/remotetug/rtsettings"
)

const stateFileName = "remotetug-state.json"

var settingsDirPath = fsutils.ExpandHome(rtsettings.UserDir)

type State struct {
	Store       string `json:"store,omitempty"`
	CurrentPath string `json:"current_path,omitempty"`
	ViewMode    string `json:"view_mode,omitempty"`
	CurrentFile string `json:"current_file,omitempty"`
}

// SetFilePath points state persistence at an explicit file.
func SetFilePath(filePath string) {
	if filePath == "" {
		return
	}
	filePath = fsutils.ExpandHome(filePath)
	settingsDirPath = filepath.Dir(filePath)
	stateFilePath = filePath
}

var stateFilePath string

func getStateFilePath() string {
	if stateFilePath != "" {
		return stateFilePath
	}
	return filepath.Join(settingsDirPath, stateFileName)
}

var logErr = func(v ...any) {

}

// SetErrorLogger routes persistence errors, which are never fatal.
func SetErrorLogger(f func(v ...any)) {
	logErr = f
}

func GetState() (*State, error) {
	filePath := getStateFilePath()
	var state State
	return &state, readJSON(filePath, false, &state)
}

// GetCurrentPath returns the last visited path for store, or root when the
// state belongs to another store.
func GetCurrentPath(store string) string {
	var state State
	_ = readJSON(getStateFilePath(), false, &state)
	if state.Store != store {
		return ""
	}
	return state.CurrentPath
}

func SaveCurrentPath(store, currentPath string) {
	saveStateValue(func(state *State) {
		if state.Store != store {
			state.CurrentFile = ""
		}
		state.Store = store
		state.CurrentPath = currentPath
	})
}

func SaveViewMode(mode string) {
	saveStateValue(func(state *State) {
		state.ViewMode = mode
	})
}

func SaveCurrentFile(name string) {
	saveStateValue(func(state *State) {
		state.CurrentFile = name
	})
}

var readJSON = fsutils.ReadJSONFile
var writeJSON = fsutils.WriteJSONFile

func saveStateValue(f func(state *State)) {
	filePath := getStateFilePath()
	var state State
	err := readJSON(filePath, false, &state)
	if err != nil {
		logErr("rtstate: error reading state file:", err)
	}

	exists, err := fsutils.DirExists(settingsDirPath)
	if err != nil {
		logErr("rtstate: error checking settings directory:", err)
		return
	}
	if !exists {
		if err = os.MkdirAll(settingsDirPath, os.ModePerm); err != nil {
			logErr("rtstate: error creating settings directory:", err)
			return
		}
	}

	f(&state)
	if err := writeJSON(filePath, state); err != nil {
		logErr("rtstate: error writing state file:", err)
		return
	}
}

// Saver persists navigation state for a single store.
type Saver struct {
	Store string
}

func (s Saver) SaveCurrentPath(path string) {
	SaveCurrentPath(s.Store, path)
}

func (s Saver) SaveViewMode(mode string) {
	SaveViewMode(mode)
}

func (s Saver) SaveCurrentFile(name string) {
	SaveCurrentFile(name)
}
