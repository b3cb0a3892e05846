package cbamatrix

import (
	"regexp"
	"time"
)

const filenamePrefix = "TEG CBA Matrix"

var unsafeFilenameChars = regexp.MustCompile(`[\\/*?:<>|"]+`)

// SafeName strips characters that are not allowed in file names.
func SafeName(s string) string {
	return unsafeFilenameChars.ReplaceAllString(s, "")
}

// OutputFilename returns "TEG CBA Matrix-<purpose>-<project>-<MMDDYYYY>.xlsx".
func OutputFilename(purpose, projectName string, at time.Time) string {
	return SafeName(filenamePrefix+"-"+purpose+"-"+projectName+"-"+at.Format("01022006")) + ".xlsx"
}
