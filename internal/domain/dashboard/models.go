package dashboard

type TrendDetail struct {
	Direction string `json:"direction"`
	Value     string `json:"value"`
}

type StatItem struct {
	Value       int         `json:"value"`
	TrendDetail TrendDetail `json:"trendDetail"`
}

type Stats struct {
	TotalEmployees StatItem `json:"totalEmployees"`
	PresentToday   StatItem `json:"presentToday"`
	OnLeave        StatItem `json:"onLeave"`
	OpenRoles      StatItem `json:"openRoles"`
}

type WeeklyAttendancePoint struct {
	Day   string `json:"day"`
	Value int    `json:"value"`
}
