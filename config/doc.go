// Package config holds the run parameters of the lvrank command.
//
// Values are layered, later sources winning:
//
//	built-in defaults
//	config file       .lvrank.yaml in the working directory, else
//	                  $XDG_CONFIG_HOME/lvrank/config.yaml (or an explicit --config path)
//	environment       LVRANK_DAMPING, LVRANK_SAMPLES, LVRANK_MAX_SWEEPS, ...
//	command flags
//
// Load returns a validated Config; RankOptions and LoadOptions translate it
// into options for the pagerank and corpus packages.
package config
