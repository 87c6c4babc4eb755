package activities

// Activity is a promotional campaign record shown to end users. Optional
// fields are pointers so absent values persist as JSON null, keeping the
// on-disk layout stable for existing files.
type Activity struct {
	ID                int64   `json:"id"`
	Title             string  `json:"title"`
	BgImage           *string `json:"bg_image"`
	StartTime         *string `json:"start_time"`
	EndTime           *string `json:"end_time"`
	DetailTopImage    *string `json:"detail_top_image"`
	DetailBottomImage *string `json:"detail_bottom_image"`
}

// Draft holds the caller-supplied fields for a new activity; the store
// assigns the ID.
type Draft struct {
	Title             string  `json:"title"`
	BgImage           *string `json:"bg_image"`
	StartTime         *string `json:"start_time"`
	EndTime           *string `json:"end_time"`
	DetailTopImage    *string `json:"detail_top_image"`
	DetailBottomImage *string `json:"detail_bottom_image"`
}

// ListItem is an Activity plus the derived display period, filled in by
// List when both start and end times are present. It is presentation
// only and never persisted.
type ListItem struct {
	Activity
	Time string `json:"time,omitempty"`
}
