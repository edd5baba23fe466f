// Package config loads the optional YAML deployment file used by the
// examples and by embedding applications to wire an Assistant without
// hard-coding paths, thresholds or model names. The library itself only
// requires functional options; this file format is a convenience on top.
package config
