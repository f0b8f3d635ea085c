package services

import (
	"time"

	"crush-hub/internal/env"
	"crush-hub/internal/models"
)

type Server struct {
	startTime time.Time
	now       func() time.Time
}

func NewServer() *Server {
	return &Server{startTime: time.Now(), now: time.Now}
}

/**
 * Build the health report
 * @returns {models.HealthResponse} status, version, uptime and request counters
 * @description
 * - timestamp is taken per call
 * - uptime is rounded to seconds
 */
func (s *Server) GetHealthz() models.HealthResponse {
	now := s.now()
	return models.HealthResponse{
		Status:    "ok",
		Timestamp: now.UTC().Format(time.RFC3339Nano),
		Version:   env.SoftwareVer,
		StartTime: s.startTime.UTC().Format(time.RFC3339),
		Uptime:    now.Sub(s.startTime).Round(time.Second).String(),
		Metrics: models.Metrics{
			TotalRequests:     GetTotalRequestCount(),
			ErrorRequests:     GetTotalErrorCount(),
			DownloadRedirects: GetTotalRedirectCount(),
		},
	}
}
