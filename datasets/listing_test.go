// SPDX-License-Identifier: GPL-3.0-only

package datasets

import (
	"testing"

	"dialcodes-server/commons/dialcode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAvailableCountries(t *testing.T) {
	dir := t.TempDir()
	writeDataset(t, dir, "Russia", russiaDataset)
	writeDataset(t, dir, "Russia-mobile", `{
		"country": "Russia",
		"country_code": "+7",
		"dataset_display_name": "Mobile",
		"codes": [{"code": "9xx", "regions": ["Mobile networks"]}]
	}`)
	writeDataset(t, dir, "Empty", "")
	writeDataset(t, dir, "Broken", "{not json")

	infos, err := AvailableCountries(dir)
	require.NoError(t, err)
	require.Len(t, infos, 4)

	names := make([]string, len(infos))
	for i, info := range infos {
		names[i] = info.Filename
	}
	assert.Equal(t, []string{"Broken", "Empty", "Russia", "Russia-mobile"}, names)

	broken := infos[0]
	assert.Equal(t, 0, broken.Count)
	assert.Nil(t, broken.CodeLengthMin)
	assert.Empty(t, broken.RegionGroups)

	russia := infos[2]
	assert.Equal(t, "Russia", russia.DisplayName)
	assert.Equal(t, "Russia", russia.GroupKey)
	assert.Equal(t, DefaultDatasetLabel, russia.DatasetLabel)
	assert.True(t, russia.IsDefaultDataset)
	assert.Equal(t, 3, russia.Count)
	assert.Equal(t, "812", russia.CodeHint)
	require.NotNil(t, russia.CodeLengthMin)
	assert.Equal(t, 3, *russia.CodeLengthMin)
	assert.Equal(t, 4, *russia.CodeLengthMax)
	assert.Equal(t, []string{"Northwest", "Volga"}, russia.RegionGroups)
	assert.Equal(t, []string{"easy", "medium"}, russia.DifficultyLevels)
	assert.Equal(t, "RU", russia.ISOCode)
	assert.NotEmpty(t, russia.Flag)

	mobile := infos[3]
	assert.Equal(t, "Russia", mobile.GroupKey)
	assert.Equal(t, "mobile", mobile.DatasetVariant)
	assert.False(t, mobile.IsDefaultDataset)
	assert.Equal(t, "Mobile", mobile.DatasetLabel)
	assert.Equal(t, "Mobile", mobile.DatasetDisplayLabel)
	assert.Equal(t, "Russia (Mobile)", mobile.StatsKey)
}

func TestDescribeLabels(t *testing.T) {
	ds := &dialcode.Dataset{Name: "Germany-area_codes", Country: "Germany-area_codes"}
	info := Describe("Germany-area_codes", ds)
	assert.Equal(t, "Germany", info.GroupLabel)
	assert.Equal(t, "Area Codes", info.DatasetLabel)
	assert.Equal(t, "Germany (Area Codes)", info.StatsKey)

	ds = &dialcode.Dataset{Name: "Germany", Country: "Germany", Label: "Vorwahlen", ShortLabel: "Ortsnetz"}
	info = Describe("Germany", ds)
	assert.Equal(t, "Vorwahlen", info.DatasetLabel)
	assert.Equal(t, "Ortsnetz", info.DatasetDisplayLabel)
	assert.Equal(t, "Germany", info.StatsKey)
}

func TestDescribeCountryFromDialPrefix(t *testing.T) {
	ds := &dialcode.Dataset{Name: "Russland", Country: "Russland", CountryCode: "+7"}
	info := Describe("Russland", ds)
	assert.Equal(t, "RU", info.ISOCode)

	ds = &dialcode.Dataset{Name: "Nowhere", Country: "Nowhere"}
	info = Describe("Nowhere", ds)
	assert.Empty(t, info.ISOCode)
	assert.Empty(t, info.Flag)
}
