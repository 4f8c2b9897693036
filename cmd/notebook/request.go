package main

import (
	"encoding/json"
	"io"
	"os"

	"github.com/fwojciec/notebook"
)

// readRequest decodes a chat request from path, or from stdin when path is "-".
func readRequest(path string, stdin io.Reader) (*notebook.ChatRequest, error) {
	r := stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, notebook.Errorf(notebook.EINVALID, "open request %s: %v", path, err)
		}
		defer f.Close()
		r = f
	}

	var req notebook.ChatRequest
	if err := json.NewDecoder(r).Decode(&req); err != nil {
		return nil, notebook.Errorf(notebook.EINVALID, "malformed request: %v", err)
	}
	return &req, nil
}
