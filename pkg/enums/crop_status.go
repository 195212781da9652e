package enums

import "fmt"

// CropStatus tracks a crop through its growth stages. The progression is
// planted -> growing -> ready -> harvested, but the API does not force
// monotonic transitions; any valid value can be written on update.
type CropStatus string

const (
	CropStatusPlanted   CropStatus = "planted"
	CropStatusGrowing   CropStatus = "growing"
	CropStatusReady     CropStatus = "ready"
	CropStatusHarvested CropStatus = "harvested"
)

var validCropStatuses = []CropStatus{
	CropStatusPlanted,
	CropStatusGrowing,
	CropStatusReady,
	CropStatusHarvested,
}

// String implements fmt.Stringer.
func (s CropStatus) String() string {
	return string(s)
}

// IsValid reports whether the value is a known CropStatus.
func (s CropStatus) IsValid() bool {
	for _, candidate := range validCropStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseCropStatus converts raw input into a CropStatus.
func ParseCropStatus(value string) (CropStatus, error) {
	for _, candidate := range validCropStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid crop status %q", value)
}
