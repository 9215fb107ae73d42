package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
)

func readJSON(path string, data interface{}) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	b, err := io.ReadAll(f)
	if err != nil {
		return err
	}

	err = json.Unmarshal(b, data)
	if err != nil {
		return fmt.Errorf("couldn't decode %s: %w", path, err)
	}

	return nil
}

func doWriteJSON(path string, data interface{}) error {
	// Same directory as the target so the rename stays on one filesystem.
	f, err := os.CreateTemp(filepath.Dir(path), ".geokit")
	if err != nil {
		return err
	}
	tmpFile := f.Name()
	defer os.Remove(tmpFile) // no-op after a successful rename

	b, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		f.Close()
		return err
	}

	_, err = f.Write(b)
	if err != nil {
		f.Close()
		return err
	}

	err = f.Close()
	if err != nil {
		return err
	}

	return os.Rename(tmpFile, path)
}

func writeJSON(path string, data interface{}) error {
	err := doWriteJSON(path, data)
	if err != nil {
		log.Errorf("Couldn't write results to %s: %s", path, err)
	}
	return err
}
