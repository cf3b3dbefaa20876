// SPDX-License-Identifier: GPL-3.0-only

package dialcode

import (
	"regexp"
	"strings"
)

var (
	reSlugSeparators = regexp.MustCompile(`[()\s\p{Z},.'-]+`)
	reSlugRepeats    = regexp.MustCompile(`_+`)
)

// RegionImageFilename derives the expected map image for a region name,
// e.g. "Republic of Tatarstan (Kazan)" -> "republic_of_tatarstan_kazan.png".
func RegionImageFilename(region string) string {
	name := strings.ToLower(region)
	name = reSlugSeparators.ReplaceAllString(name, "_")
	name = reSlugRepeats.ReplaceAllString(name, "_")
	name = strings.Trim(name, "_")
	return name + ".png"
}

// ImageFiles returns the entry's explicit images, or one derived filename
// per region when the dataset lists none.
func (e *Entry) ImageFiles() []string {
	if len(e.Images) > 0 {
		return append([]string(nil), e.Images...)
	}
	var files []string
	for _, region := range e.Regions {
		files = append(files, RegionImageFilename(region))
	}
	return files
}
