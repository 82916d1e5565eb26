package model

import "strings"

// preReleaseMarkers are matched as case-sensitive substrings anywhere in a tag.
var preReleaseMarkers = []string{"beta", "RC", "prerelease", "alpha"}

// IsPreRelease returns true if the tag contains a label indicating an unstable build.
func IsPreRelease(tag string) bool {
	for _, marker := range preReleaseMarkers {
		if strings.Contains(tag, marker) {
			return true
		}
	}
	return false
}

type PreReleaseExample struct {
	Tag        string
	PreRelease bool
}

// PreReleaseExamples are the documented classifications that IsPreRelease must reproduce.
var PreReleaseExamples = []PreReleaseExample{
	{Tag: "1.2.3", PreRelease: false},
	{Tag: "1.2.3-beta", PreRelease: true},
	{Tag: "1.2.3-beta2", PreRelease: true},
	{Tag: "1.2.3-RC", PreRelease: true},
	{Tag: "1.2.3-RC1", PreRelease: true},
	{Tag: "1.2.3-prerelease", PreRelease: true},
	{Tag: "1.2.3-prerelease2", PreRelease: true},
	{Tag: "1.2.3-alpha", PreRelease: true},
	{Tag: "1.2.3-alpha2", PreRelease: true},
}
