package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// attendanceResponse mirrors the attendance service's response envelope
type attendanceResponse struct {
	Success bool `json:"success"`
	Data    struct {
		StudentID      string  `json:"student_id"`
		AttendanceRate float64 `json:"attendance_rate"`
	} `json:"data"`
}

// GetAttendanceRate fetches the student's attendance rate percentage from
// the attendance service.
func (g *FeeGW) GetAttendanceRate(ctx context.Context, studentID string) (float64, error) {
	url := fmt.Sprintf("%s/students/%s/attendance", g.attendanceURL, studentID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to create attendance request: %w", err)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("failed to call attendance service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("attendance service returned status %d", resp.StatusCode)
	}

	var body attendanceResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, fmt.Errorf("failed to decode attendance response: %w", err)
	}

	return body.Data.AttendanceRate, nil
}
