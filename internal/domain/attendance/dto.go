package attendance

type AttendanceResponse struct {
	ID          string  `json:"id"`
	Date        string  `json:"date"`
	Status      string  `json:"status"`
	SignInTime  *string `json:"sign_in_time,omitempty"`
	SignOffTime *string `json:"sign_off_time,omitempty"`
}

func NewAttendanceResponse(a Attendance) AttendanceResponse {
	resp := AttendanceResponse{
		ID:     a.ID,
		Date:   a.Date.Format("2006-01-02"),
		Status: string(a.Status),
	}
	if a.SignInTime != nil {
		s := a.SignInTime.Format("15:04:05")
		resp.SignInTime = &s
	}
	if a.SignOffTime != nil {
		s := a.SignOffTime.Format("15:04:05")
		resp.SignOffTime = &s
	}
	return resp
}
