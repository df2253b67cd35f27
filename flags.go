package main

import "flag"

// Command-line flags. Values given here override the config file for this
// run only, except -pick-assets which saves the chosen directory.
var (
	// configFlag points at the YAML config; empty means ~/.valve-wheel/config.yaml.
	configFlag = flag.String("config", "", "path to the YAML config file")

	// assetsFlag overrides the sound bundle directory.
	assetsFlag = flag.String("assets", "", "directory holding ui_click, siren_loop and ambient_loop")

	// pickAssetsFlag opens a folder picker and remembers the choice.
	pickAssetsFlag = flag.Bool("pick-assets", false, "choose the sound directory with a dialog and save it")

	prefsBackendFlag = flag.String("prefs-backend", "", "preference store: file or sqlite")
	prefsPathFlag    = flag.String("prefs-path", "", "preference store location")

	// debugFlag enables debug logging and the FPS overlay.
	debugFlag = flag.Bool("debug", false, "log at debug level and show the FPS overlay")
)
