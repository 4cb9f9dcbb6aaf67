package main

import "time"

// BuildResult is the outcome of one build script invocation. It is
// created per request and never stored.
type BuildResult struct {
	ID       string
	Success  bool
	Message  string
	Output   string // stdout on success
	Error    string // spawn or exit error on failure
	Details  string // stderr on failure
	Duration time.Duration

	// Stderr is always captured but only reported through Details.
	Stderr string
}

// BuildSuccessResponse is the /api/build body for a zero exit
type BuildSuccessResponse struct {
	ID       string        `json:"id"`
	Success  bool          `json:"success"`
	Message  string        `json:"message"`
	Output   string        `json:"output"`
	Duration time.Duration `json:"duration"`
}

// BuildFailureResponse is the /api/build body for a spawn failure or a
// non-zero exit
type BuildFailureResponse struct {
	ID       string        `json:"id"`
	Success  bool          `json:"success"`
	Message  string        `json:"message"`
	Error    string        `json:"error"`
	Details  string        `json:"details"`
	Duration time.Duration `json:"duration"`
}

// Response returns the JSON body for the result. Output and details are
// always present, even when empty.
func (r BuildResult) Response() interface{} {
	if r.Success {
		return BuildSuccessResponse{
			ID:       r.ID,
			Success:  true,
			Message:  r.Message,
			Output:   r.Output,
			Duration: r.Duration,
		}
	}
	return BuildFailureResponse{
		ID:       r.ID,
		Success:  false,
		Message:  r.Message,
		Error:    r.Error,
		Details:  r.Details,
		Duration: r.Duration,
	}
}

// StatusReport describes whether the bundle has been built
type StatusReport struct {
	Status             string `json:"status"`
	WebDirectoryExists bool   `json:"webDirectoryExists"`
	IndexFileExists    bool   `json:"indexFileExists"`
	Message            string `json:"message"`
}

// VersionInfo is returned by /api/version
type VersionInfo struct {
	Version string `json:"version"`
}
