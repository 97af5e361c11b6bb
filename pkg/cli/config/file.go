package config

import (
	"bytes"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
)

// File is the TOML config file layout
type File struct {
	Root    string     `toml:"root"`
	Unknown string     `toml:"unknown"`
	Output  FileOutput `toml:"output"`
}

// FileOutput is the [output] table of the config file
type FileOutput struct {
	Dir  string `toml:"dir"`
	File string `toml:"file"`
}

// LoadFile reads and decodes a TOML config file. Unknown keys are rejected.
func LoadFile(path string) (*File, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read config file", goerr.V("path", path))
	}

	var f File
	dec := toml.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		return nil, goerr.Wrap(err, "failed to decode config file", goerr.V("path", path))
	}

	return &f, nil
}
