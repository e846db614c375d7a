// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// ConversionStatus indicates what happened to a single file during a
// folder conversion.
type ConversionStatus string

const (
	// ConversionDone means a URL was found and the HTML redirect was written.
	ConversionDone ConversionStatus = "converted"

	// ConversionNoURL means the file has a shortcut extension but no URL
	// could be extracted from it.
	ConversionNoURL ConversionStatus = "no_url"

	// ConversionUnsupported means the file extension is not a shortcut format.
	ConversionUnsupported ConversionStatus = "unsupported"
)

// Run records the outcome of one folder conversion.
type Run struct {
	// ID is assigned by the history store.
	ID int64 `json:"id" yaml:"id"`

	// Folder is the root folder that was converted.
	Folder string `json:"folder" yaml:"folder"`

	// Converted is the number of HTML redirect files written.
	Converted int `json:"converted" yaml:"converted"`

	// NoURL is the number of shortcut files without an extractable URL.
	NoURL int `json:"no_url" yaml:"no_url"`

	// Unsupported is the number of files that were not shortcuts.
	Unsupported int `json:"unsupported" yaml:"unsupported"`

	// StartedAt is when the conversion began (UTC).
	StartedAt time.Time `json:"started_at" yaml:"started_at"`

	// Duration is how long the walk took.
	Duration time.Duration `json:"duration" yaml:"duration"`
}
