package parse

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DetectSource guesses the source format of an input file so the user
// can skip the --source flag. Zip archives are always chatlog exports;
// for JSON the top-level keys decide.
func DetectSource(path string) (string, error) {
	if strings.EqualFold(filepath.Ext(path), ".zip") {
		return SourceChatlog, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read input %s: %w", path, err)
	}

	var top map[string]json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil {
		return "", fmt.Errorf("parse JSON %s: %w", path, err)
	}

	if _, ok := top["log"]; ok {
		return SourceChatlog, nil
	}
	if _, ok := top["chat-sessions"]; ok {
		return SourceChatbox, nil
	}
	if _, ok := top["messages"]; ok {
		return SourceChatbox, nil
	}

	return "", fmt.Errorf("%s: unrecognized export shape, specify --source", filepath.Base(path))
}
