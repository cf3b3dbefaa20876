// SPDX-License-Identifier: GPL-3.0-only

package datasets

import (
	"os"
	"path/filepath"
	"sort"

	"dialcodes-server/commons/dialcode"
)

type ImageCheck struct {
	Region   string
	Filename string
	Exists   bool
}

// ImageReport lists, for every entry with regions, the map image expected
// for its first region.
type ImageReport struct {
	Entries   int
	PNGFiles  int
	Checked   []ImageCheck
	Missing   []string
	ImagesDir string
}

// CheckRegionImages compares the images a dataset expects with the .png
// files present in dir. Checks are de-duplicated and sorted by region.
func CheckRegionImages(ds *dialcode.Dataset, dir string) ImageReport {
	report := ImageReport{Entries: len(ds.Entries), ImagesDir: dir}
	if pngs, err := filepath.Glob(filepath.Join(dir, "*.png")); err == nil {
		report.PNGFiles = len(pngs)
	}

	seen := make(map[ImageCheck]struct{})
	missing := make(map[string]struct{})
	for _, entry := range ds.Entries {
		if len(entry.Regions) == 0 {
			continue
		}
		region := entry.Regions[0]
		filename := dialcode.RegionImageFilename(region)
		_, err := os.Stat(filepath.Join(dir, filename))
		check := ImageCheck{Region: region, Filename: filename, Exists: err == nil}
		if _, ok := seen[check]; !ok {
			seen[check] = struct{}{}
			report.Checked = append(report.Checked, check)
		}
		if !check.Exists {
			missing[filename] = struct{}{}
		}
	}

	sort.Slice(report.Checked, func(i, j int) bool {
		if report.Checked[i].Region != report.Checked[j].Region {
			return report.Checked[i].Region < report.Checked[j].Region
		}
		return report.Checked[i].Filename < report.Checked[j].Filename
	})
	report.Missing = sortedKeys(missing)
	return report
}
