package domain

import "errors"

// ============================================================================
// Artifact Errors (startup, fatal)
// ============================================================================

var (
	ErrArtifactNotFound     = errors.New("model artifact not found")
	ErrArtifactCorrupt      = errors.New("model artifact is corrupt")
	ErrArtifactIncompatible = errors.New("model artifact schema or type is not supported")
)

// ============================================================================
// Request Errors (per-request, recovered)
// ============================================================================

var (
	ErrMalformedRequest = errors.New("malformed forecast request")
	ErrShapeMismatch    = errors.New("input series does not match the model schema")
	ErrEmptyBatch       = errors.New("request contains no series")
)

// ============================================================================
// Serving Errors
// ============================================================================

var (
	ErrServerDraining = errors.New("server is draining and accepts no new requests")
	ErrServerStopped  = errors.New("server is stopped")
	ErrServerBusy     = errors.New("too many concurrent requests")
	ErrPredictTimeout = errors.New("prediction did not finish within the request timeout")
)

// ============================================================================
// Frequency Errors
// ============================================================================

var (
	ErrUnknownFrequency = errors.New("unknown series frequency")
)

// ============================================================================
// Audit Log Errors
// ============================================================================

var (
	ErrAuditLogNotAvailable = errors.New("prediction audit log is not configured")
)
