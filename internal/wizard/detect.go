package wizard

import (
	"os"
	"path/filepath"
)

// DetectionResult lists the candidate input files found in the working
// directory.
type DetectionResult struct {
	BriteFiles []string
	CaidaFiles []string
}

// Detect scans a directory for known topology input files. An empty dir
// means the current directory.
func Detect(dir string) DetectionResult {
	if dir == "" {
		dir = "."
	}

	var result DetectionResult
	if matches, err := filepath.Glob(filepath.Join(dir, "*.brite")); err == nil {
		result.BriteFiles = matches
	}
	if matches, err := filepath.Glob(filepath.Join(dir, "*.nodes.geo")); err == nil {
		for _, geo := range matches {
			base := geo[:len(geo)-len(".nodes.geo")]
			set := []string{geo, base + ".nodes.as", base + ".links"}
			if allExist(set) {
				result.CaidaFiles = append(result.CaidaFiles, set...)
			}
		}
	}
	return result
}

func allExist(paths []string) bool {
	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			return false
		}
	}
	return true
}
